package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single capability interface every external-model backend
// implements: structured or free-text chat generation plus text embedding.
// The orchestrator receives one Provider at construction; there is no
// process-global client selection.
type Provider interface {
	// Generate sends a prompt to the model and returns its output.
	// When the request carries a Schema, the provider uses its native
	// structured output mechanism and the response Content is the
	// validated JSON. Without a Schema, Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Embed returns one vector per input text. Providers without an
	// embedding API return ErrEmbeddingsUnsupported; callers treat any
	// embedding failure as "no retrieval context".
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation. Most agents send one user message.
	Messages []Message

	// Schema, when set, constrains the response to JSON conforming to it.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "answer-score".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with a label describing why this LLM
// request is being made (e.g. "score", "generate", "summarize").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label from the context, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}

package agents

import "github.com/tutorloop/tutorloop/internal/llm"

var bloomEnum = []any{"remember", "understand", "apply", "analyze", "evaluate", "create"}

// ScoreSchema defines the structured output for answer scoring.
var ScoreSchema = &llm.Schema{
	Name:        "answer-score",
	Description: "Evaluation of a student answer against the question asked",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Correctness and completeness of the answer, 0 to 1",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How confident the evaluation itself is",
			},
			"bloom_level": map[string]any{
				"type":        "string",
				"enum":        bloomEnum,
				"description": "The Bloom level the answer demonstrates",
			},
			"errors": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific misconceptions or mistakes in the answer. Empty if none.",
			},
			"skills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short lowercase names of the skills the answer exercises",
			},
		},
		"required":             []any{"score", "confidence", "bloom_level", "errors", "skills"},
		"additionalProperties": false,
	},
}

// BloomTagSchema defines the structured output for Bloom tagging.
var BloomTagSchema = &llm.Schema{
	Name:        "bloom-tag",
	Description: "Bloom level classification of a text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type": "string",
				"enum": bloomEnum,
			},
		},
		"required":             []any{"level"},
		"additionalProperties": false,
	},
}

// SoloTagSchema defines the structured output for SOLO tagging.
var SoloTagSchema = &llm.Schema{
	Name:        "solo-tag",
	Description: "SOLO level classification of an answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type": "string",
				"enum": []any{"prestructural", "unistructural", "multistructural", "relational", "extended-abstract"},
			},
		},
		"required":             []any{"level"},
		"additionalProperties": false,
	},
}

// QuestionSchema defines the structured output for question generation.
var QuestionSchema = &llm.Schema{
	Name:        "next-question",
	Description: "A single open-ended assessment question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the student, self-contained and answerable in prose",
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}

// SummarySchema defines the structured output for session summarization.
var SummarySchema = &llm.Schema{
	Name:        "session-summary",
	Description: "Advisory recommendation for the student based on session performance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendation": map[string]any{
				"type":        "string",
				"description": "Two or three sentences of concrete study advice",
			},
		},
		"required":             []any{"recommendation"},
		"additionalProperties": false,
	},
}

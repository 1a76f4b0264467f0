package quizgen

import "github.com/bumpwise/bumpquiz/internal/llm"

// QuizBatchSchema defines the JSON schema for quiz generation responses.
var QuizBatchSchema = &llm.Schema{
	Name:        "quiz-batch",
	Description: "A batch of multiple-choice pregnancy education questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question shown to the user, plain text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options, exactly one correct",
						},
						"answer_key": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, matching one entry of options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A short, reassuring explanation of the correct answer",
						},
					},
					"required":             []any{"question", "options", "answer_key", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// FlashcardBatchSchema defines the JSON schema for flashcard generation
// responses.
var FlashcardBatchSchema = &llm.Schema{
	Name:        "flashcard-batch",
	Description: "A batch of pregnancy education flashcards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "The prompt side of the card, a term or short question",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The answer side, one or two sentences",
						},
					},
					"required":             []any{"front", "back"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}

// schemaFor returns the response schema for a content type.
func schemaFor(contentType string) *llm.Schema {
	if contentType == TypeFlashcard {
		return FlashcardBatchSchema
	}
	return QuizBatchSchema
}

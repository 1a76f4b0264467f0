package quizgen

import (
	"encoding/json"
	"fmt"
)

type quizBatch struct {
	Questions []Candidate `json:"questions"`
}

type flashcardBatch struct {
	Cards []Candidate `json:"cards"`
}

// parseBatch extracts candidates from a raw generation response.
func parseBatch(contentType string, raw json.RawMessage) ([]Candidate, error) {
	if contentType == TypeFlashcard {
		var batch flashcardBatch
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, fmt.Errorf("parse flashcard batch: %w", err)
		}
		return batch.Cards, nil
	}

	var batch quizBatch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("parse quiz batch: %w", err)
	}
	return batch.Questions, nil
}

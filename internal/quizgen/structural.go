package quizgen

import "strings"

// QuizValidator checks quiz candidates: non-empty bounded text, exactly
// 4 distinct options, and an answer key matching one of them.
type QuizValidator struct{}

func (v *QuizValidator) Name() string { return "quiz-structural" }

func (v *QuizValidator) Validate(c *Candidate, _ Request) *ValidationError {
	if c.Question == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if len(c.Question) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "question exceeds 500 characters"}
	}
	if len(c.Options) != 4 {
		return &ValidationError{Validator: v.Name(), Message: "options must contain exactly 4 entries"}
	}

	seen := make(map[string]bool, 4)
	keyMatch := false
	for _, opt := range c.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{Validator: v.Name(), Message: "option is empty"}
		}
		if seen[opt] {
			return &ValidationError{Validator: v.Name(), Message: "options contain duplicates"}
		}
		seen[opt] = true
		if opt == c.AnswerKey {
			keyMatch = true
		}
	}
	if !keyMatch {
		return &ValidationError{Validator: v.Name(), Message: "answer_key does not match any option"}
	}
	if len(c.Explanation) > 1000 {
		return &ValidationError{Validator: v.Name(), Message: "explanation exceeds 1000 characters"}
	}
	return nil
}

// FlashcardValidator checks flashcard candidates for non-empty bounded
// front and back text.
type FlashcardValidator struct{}

func (v *FlashcardValidator) Name() string { return "flashcard-structural" }

func (v *FlashcardValidator) Validate(c *Candidate, _ Request) *ValidationError {
	if strings.TrimSpace(c.Front) == "" {
		return &ValidationError{Validator: v.Name(), Message: "front is empty"}
	}
	if len(c.Front) > 200 {
		return &ValidationError{Validator: v.Name(), Message: "front exceeds 200 characters"}
	}
	if strings.TrimSpace(c.Back) == "" {
		return &ValidationError{Validator: v.Name(), Message: "back is empty"}
	}
	if len(c.Back) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "back exceeds 500 characters"}
	}
	return nil
}

package quizgen

import "github.com/bumpwise/bumpquiz/internal/similarity"

// Config controls the behavior of the generation loop.
type Config struct {
	// QuizValidators run on every parsed quiz candidate, in order; the
	// first failure rejects the candidate.
	QuizValidators []Validator

	// FlashcardValidators run on every parsed flashcard candidate.
	FlashcardValidators []Validator

	// MaxAttempts bounds the generation loop.
	MaxAttempts int

	// Threshold is the cosine similarity at or above which a candidate
	// is a duplicate.
	Threshold float32

	// RetentionKeep is how many vectors to keep per (user, content type)
	// after a successful run.
	RetentionKeep int

	// MaxTokens is the token budget for the generator response.
	MaxTokens int

	// Temperature controls generator output randomness (0.0-1.0).
	Temperature float64

	// MaxRejectionReasons is the maximum number of accumulated reasons
	// to include in the retry prompt.
	MaxRejectionReasons int
}

// DefaultConfig returns a Config with the standard validator chains and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		QuizValidators:      []Validator{&QuizValidator{}},
		FlashcardValidators: []Validator{&FlashcardValidator{}},
		MaxAttempts:         3,
		Threshold:           similarity.DefaultThreshold,
		RetentionKeep:       similarity.DefaultRetention,
		MaxTokens:           2048,
		Temperature:         0.8,
		MaxRejectionReasons: 10,
	}
}

// validatorsFor returns the validator chain for a content type.
func (c Config) validatorsFor(contentType string) []Validator {
	if contentType == TypeFlashcard {
		return c.FlashcardValidators
	}
	return c.QuizValidators
}

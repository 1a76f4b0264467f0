// Package quizgen produces validated, deduplicated quiz questions and
// flashcards through a bounded LLM generation loop.
package quizgen

import (
	"github.com/bumpwise/bumpquiz/internal/profile"
)

// Content types the pipeline can produce.
const (
	TypeQuiz      = "quiz"
	TypeFlashcard = "flashcard"
)

// Candidate is one parsed, not-yet-accepted item from a generation
// attempt.
type Candidate struct {
	// Quiz fields.
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerKey   string   `json:"answer_key"`
	Explanation string   `json:"explanation"`

	// Flashcard fields.
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Text returns the candidate's embeddable text, the part that matters
// for near-duplicate detection.
func (c Candidate) Text(contentType string) string {
	if contentType == TypeFlashcard {
		return c.Front
	}
	return c.Question
}

// Request asks the loop for exactly Count accepted items.
type Request struct {
	Profile     profile.Profile
	Week        int
	ContentType string
	Difficulty  string
	Count       int
	// ContextIDs are provenance references recorded on accepted items.
	ContextIDs []string
}

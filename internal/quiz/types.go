// Package quiz owns the interactive session lifecycle: start, answer
// with wrong-answer retry, lazy timeout, scoring, and completion
// side effects.
package quiz

import (
	"time"

	"github.com/bumpwise/bumpquiz/internal/store"
)

// Session statuses.
const (
	StatusStarted    = "started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusTimedOut   = "timed_out"
)

// Next actions for the client after an answer.
const (
	ActionContinue = "continue"
	ActionRetry    = "retry"
)

// StartRequest opens a new quiz session.
type StartRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	// Week overrides the profile-derived pregnancy week when positive.
	Week int `json:"week,omitempty" validate:"omitempty,min=1,max=42"`
}

// QuestionView is the answer-key-free view of one session question.
type QuestionView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// StartResponse describes a freshly created session.
type StartResponse struct {
	SessionID        string         `json:"session_id"`
	ExpiresInSeconds int            `json:"expires_in_seconds"`
	Questions        []QuestionView `json:"questions"`
}

// SubmitAnswerRequest records one answer.
type SubmitAnswerRequest struct {
	SessionID  string    `json:"session_id" validate:"required"`
	QuestionID string    `json:"question_id" validate:"required"`
	Option     string    `json:"option" validate:"required"`
	StartedAt  time.Time `json:"started_at" validate:"required"`
	AnsweredAt time.Time `json:"answered_at" validate:"required"`
}

// SubmitAnswerResponse reports the outcome of one answer.
type SubmitAnswerResponse struct {
	IsCorrect    bool `json:"is_correct"`
	RetryAllowed bool `json:"retry_allowed"`
	// PreviewPoints is the not-yet-credited value of this answer;
	// points are only credited at completion.
	PreviewPoints int    `json:"preview_points"`
	NextAction    string `json:"next_action"`
	// UpdatedQuestions is set only when a retry question was just
	// appended and the question list grew.
	UpdatedQuestions []QuestionView `json:"updated_questions,omitempty"`
	TotalQuestions   int            `json:"total_questions"`
}

// CompleteResponse is the terminal result of a session.
type CompleteResponse struct {
	Score          int      `json:"score"`
	AwardedPoints  int      `json:"awarded_points"`
	BadgesAwarded  []string `json:"badges_awarded"`
	CorrectCount   int      `json:"correct_count"`
	TotalQuestions int      `json:"total_questions"`
}

// QuestionStatus is one entry of a status probe.
type QuestionStatus struct {
	ID       string `json:"id"`
	Answered bool   `json:"answered"`
}

// StatusResponse is a read-only session probe. The probe still performs
// the lazy timeout transition.
type StatusResponse struct {
	Status           string           `json:"status"`
	RemainingSeconds int              `json:"remaining_seconds"`
	PerQuestion      []QuestionStatus `json:"per_question"`
}

// viewOf strips the answer key from a snapshot question.
func viewOf(q store.Question) QuestionView {
	return QuestionView{ID: q.ID, Text: q.Text, Options: q.Options}
}

func viewsOf(questions []store.Question) []QuestionView {
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = viewOf(q)
	}
	return views
}

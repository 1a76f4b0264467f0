package quizplay

import (
	"time"

	"github.com/bumpwise/bumpquiz/internal/quiz"
)

// sessionReadyMsg is sent when the session has been started and the
// question snapshot is available.
type sessionReadyMsg struct {
	Resp *quiz.StartResponse
	Err  error
}

// answerResultMsg is sent when an answer submission has been recorded.
type answerResultMsg struct {
	Resp *quiz.SubmitAnswerResponse
	Err  error
}

// completeMsg is sent when the session has been scored.
type completeMsg struct {
	Resp *quiz.CompleteResponse
	Err  error
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// feedbackDoneMsg ends the post-answer feedback pause.
type feedbackDoneMsg struct{}

// Package quizplay is the interactive quiz session screen.
package quizplay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/quiz"
	"github.com/bumpwise/bumpquiz/internal/router"
	"github.com/bumpwise/bumpquiz/internal/screen"
	"github.com/bumpwise/bumpquiz/internal/screens/summary"
	"github.com/bumpwise/bumpquiz/internal/ui/components"
	"github.com/bumpwise/bumpquiz/internal/ui/layout"
	"github.com/bumpwise/bumpquiz/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseTimedOut
	phaseError
)

const feedbackPause = 1200 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen drives one quiz session from start to completion.
type QuizScreen struct {
	svc        *quiz.Service
	userID     string
	difficulty string

	phase      phase
	sessionID  string
	questions  []quiz.QuestionView
	answered   map[string]bool
	current    int
	mc         components.MultiChoice
	shownAt    time.Time
	remaining  int
	lastResult *quiz.SubmitAnswerResponse
	errMsg     string
	spinner    int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. The session starts on Init.
func New(svc *quiz.Service, userID, difficulty string) *QuizScreen {
	return &QuizScreen{
		svc:        svc,
		userID:     userID,
		difficulty: difficulty,
		answered:   make(map[string]bool),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.startSession(), q.spinnerTick())
}

func (q *QuizScreen) Title() string {
	return "Weekly Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Leave"},
		}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "...", Description: "Next question"}}
	case phaseTimedOut, phaseError:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return q.handleSessionReady(msg)
	case answerResultMsg:
		return q.handleAnswerResult(msg)
	case completeMsg:
		return q.handleComplete(msg)
	case timerTickMsg:
		return q.handleTimerTick()
	case spinnerTickMsg:
		if q.phase == phaseLoading {
			q.spinner++
			return q, q.spinnerTick()
		}
		return q, nil
	case feedbackDoneMsg:
		return q.advance()
	case tea.KeyMsg:
		if q.phase != phaseQuestion {
			return q, nil
		}
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		if q.mc.Submitted {
			return q, q.submitAnswer()
		}
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.phase = phaseError
		var limitErr *quiz.ErrLimitExceeded
		if errors.As(msg.Err, &limitErr) {
			q.errMsg = fmt.Sprintf("You have finished all %d quizzes for today.\nCome back tomorrow!", limitErr.Limit)
		} else {
			q.errMsg = msg.Err.Error()
		}
		return q, nil
	}

	q.sessionID = msg.Resp.SessionID
	q.questions = msg.Resp.Questions
	q.remaining = msg.Resp.ExpiresInSeconds
	q.current = 0
	q.phase = phaseQuestion
	q.showQuestion()
	return q, q.timerTick()
}

func (q *QuizScreen) handleAnswerResult(msg answerResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		var timeout *quiz.ErrSessionTimeout
		if errors.As(msg.Err, &timeout) {
			q.phase = phaseTimedOut
			return q, nil
		}
		q.phase = phaseError
		q.errMsg = msg.Err.Error()
		return q, nil
	}

	q.answered[q.questions[q.current].ID] = true
	q.lastResult = msg.Resp
	if msg.Resp.UpdatedQuestions != nil {
		q.questions = msg.Resp.UpdatedQuestions
	}
	if msg.Resp.IsCorrect {
		// Paint the chosen option green in the feedback view.
		q.mc.CorrectIndex = q.mc.ChosenIndex
	}
	q.phase = phaseFeedback
	return q, tea.Tick(feedbackPause, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

func (q *QuizScreen) handleComplete(msg completeMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		var timeout *quiz.ErrSessionTimeout
		if errors.As(msg.Err, &timeout) {
			q.phase = phaseTimedOut
			return q, nil
		}
		q.phase = phaseError
		q.errMsg = msg.Err.Error()
		return q, nil
	}
	return q, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(msg.Resp)}
	}
}

func (q *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if q.phase != phaseQuestion && q.phase != phaseFeedback {
		return q, nil
	}
	q.remaining--
	if q.remaining <= 0 {
		q.remaining = 0
		q.phase = phaseTimedOut
		return q, nil
	}
	return q, q.timerTick()
}

// advance moves to the next unanswered question, or completes the
// session when none remain.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	for i, question := range q.questions {
		if !q.answered[question.ID] {
			q.current = i
			q.phase = phaseQuestion
			q.showQuestion()
			return q, nil
		}
	}
	q.phase = phaseLoading
	return q, tea.Batch(q.complete(), q.spinnerTick())
}

func (q *QuizScreen) showQuestion() {
	question := q.questions[q.current]
	q.mc = components.NewMultiChoice(question.Text, question.Options, -1)
	q.shownAt = time.Now()
}

func (q *QuizScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		resp, err := q.svc.Start(context.Background(), quiz.StartRequest{
			UserID:     q.userID,
			Difficulty: q.difficulty,
		})
		return sessionReadyMsg{Resp: resp, Err: err}
	}
}

func (q *QuizScreen) submitAnswer() tea.Cmd {
	question := q.questions[q.current]
	option := question.Options[q.mc.ChosenIndex]
	startedAt := q.shownAt
	return func() tea.Msg {
		resp, err := q.svc.SubmitAnswer(context.Background(), quiz.SubmitAnswerRequest{
			SessionID:  q.sessionID,
			QuestionID: question.ID,
			Option:     option,
			StartedAt:  startedAt,
			AnsweredAt: time.Now(),
		})
		return answerResultMsg{Resp: resp, Err: err}
	}
}

func (q *QuizScreen) complete() tea.Cmd {
	return func() tea.Msg {
		resp, err := q.svc.Complete(context.Background(), q.sessionID)
		return completeMsg{Resp: resp, Err: err}
	}
}

func (q *QuizScreen) timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (q *QuizScreen) spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseLoading:
		frame := spinnerFrames[q.spinner%len(spinnerFrames)]
		return center(width, height,
			theme.Hint.Render(frame+" Preparing your questions..."))
	case phaseTimedOut:
		return center(width, height,
			theme.Incorrect.Render("Time is up!")+"\n\n"+
				theme.Body.Render("This session has expired. No points were lost;\nstart a fresh quiz whenever you are ready."))
	case phaseError:
		return center(width, height, theme.Body.Render(q.errMsg))
	}

	var b strings.Builder

	answeredCount := len(q.answered)
	progress := fmt.Sprintf("Question %d of %d", answeredCount+1, len(q.questions))
	if q.phase == phaseFeedback {
		progress = fmt.Sprintf("Question %d of %d", answeredCount, len(q.questions))
	}
	timer := fmt.Sprintf("⏱ %d:%02d", q.remaining/60, q.remaining%60)
	b.WriteString(theme.Subtitle.Render(progress + "    " + timer))
	b.WriteString("\n")
	barWidth := width - 20
	if barWidth > 44 {
		barWidth = 44
	}
	if barWidth > 0 && len(q.questions) > 0 {
		pct := float64(answeredCount) / float64(len(q.questions))
		b.WriteString(components.NewProgressBar("", pct, false, barWidth).View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(q.mc.View())

	if q.phase == phaseFeedback && q.lastResult != nil {
		b.WriteString("\n")
		if q.lastResult.IsCorrect {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct! +%d points", q.lastResult.PreviewPoints)))
		} else if q.lastResult.RetryAllowed {
			b.WriteString(theme.Incorrect.Render("Not quite.") + theme.Hint.Render("  You will see this one again at the end."))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
	}

	return center(width, height, b.String())
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

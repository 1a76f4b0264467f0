package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/quizgen"
	"github.com/bumpwise/bumpquiz/internal/store"
	"github.com/bumpwise/bumpquiz/internal/streaks"
)

// Config controls session behavior.
type Config struct {
	// SessionMinutes is the time budget of one session.
	SessionMinutes int

	// QuestionsPerSession is how many questions a session starts with.
	QuestionsPerSession int
}

// DefaultConfig returns the standard session settings.
func DefaultConfig() Config {
	return Config{
		SessionMinutes:      10,
		QuestionsPerSession: 5,
	}
}

// Generator produces a session's question material.
type Generator interface {
	Generate(ctx context.Context, req quizgen.Request) ([]*store.ContentItem, error)
}

// ProfileSource resolves a user's profile.
type ProfileSource interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
}

// Service is the quiz session state machine. Timeouts are evaluated
// lazily on the next operation; there is no background sweep.
type Service struct {
	sessions store.SessionRepo
	items    store.ContentItemRepo
	gen      Generator
	limits   *limits.Service
	streaks  *streaks.Service
	profiles ProfileSource
	config   Config
	validate *validator.Validate
	now      func() time.Time
}

// NewService wires the session state machine to its collaborators.
func NewService(sessions store.SessionRepo, items store.ContentItemRepo, gen Generator, lim *limits.Service, str *streaks.Service, profiles ProfileSource, cfg Config) *Service {
	return &Service{
		sessions: sessions,
		items:    items,
		gen:      gen,
		limits:   lim,
		streaks:  str,
		profiles: profiles,
		config:   cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Start opens a session with a frozen question snapshot from the
// generation pipeline. Fails with ErrLimitExceeded at the daily cap.
func (s *Service) Start(ctx context.Context, req StartRequest) (*StartResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ErrInvalidRequest{Err: err}
	}

	ok, err := s.limits.CanStartSession(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ErrLimitExceeded{UserID: req.UserID, Limit: s.limits.Config().MaxSessionsPerDay}
	}

	prof, err := s.profiles.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	now := s.now().UTC()
	week := prof.Week(req.Week, now)

	items, err := s.gen.Generate(ctx, quizgen.Request{
		Profile:     prof,
		Week:        week,
		ContentType: quizgen.TypeQuiz,
		Difficulty:  req.Difficulty,
		Count:       s.config.QuestionsPerSession,
	})
	if err != nil {
		var exhausted *quizgen.ExhaustedError
		if errors.As(err, &exhausted) {
			return nil, &ErrInvalidRequest{Err: exhausted}
		}
		return nil, err
	}

	questions := make([]store.Question, len(items))
	for i, it := range items {
		questions[i] = store.Question{
			ID:        it.ID,
			Text:      it.Question,
			Options:   it.Options,
			AnswerKey: it.AnswerKey,
		}
	}

	sess := &store.Session{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Week:       week,
		Difficulty: req.Difficulty,
		Status:     StatusStarted,
		Questions:  questions,
		CreatedAt:  now,
		TimeoutAt:  now.Add(time.Duration(s.config.SessionMinutes) * time.Minute),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &StartResponse{
		SessionID:        sess.ID,
		ExpiresInSeconds: int(sess.TimeoutAt.Sub(now).Seconds()),
		Questions:        viewsOf(questions),
	}, nil
}

// SubmitAnswer records one answer. A first wrong answer on an original
// question appends a retry copy to the end of the list, once.
func (s *Service) SubmitAnswer(ctx context.Context, req SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ErrInvalidRequest{Err: err}
	}

	sess, err := s.liveSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	qIdx := -1
	for i, q := range sess.Questions {
		if q.ID == req.QuestionID {
			qIdx = i
			break
		}
	}
	if qIdx < 0 {
		return nil, &ErrNotFound{Kind: "question", ID: req.QuestionID}
	}
	question := sess.Questions[qIdx]

	attempts, err := s.sessions.Attempts(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	ordinal := 0
	for _, a := range attempts {
		if a.QuestionID == req.QuestionID {
			ordinal++
		}
	}

	correct := req.Option == question.AnswerKey
	if err := s.sessions.AppendAttempt(ctx, sess.ID, store.Attempt{
		QuestionID:     req.QuestionID,
		SelectedOption: req.Option,
		Correct:        correct,
		AttemptOrdinal: ordinal,
		StartedAt:      req.StartedAt.UTC(),
		AnsweredAt:     req.AnsweredAt.UTC(),
	}); err != nil {
		return nil, fmt.Errorf("append attempt: %w", err)
	}

	resp := &SubmitAnswerResponse{
		IsCorrect:      correct,
		NextAction:     ActionContinue,
		TotalQuestions: len(sess.Questions),
	}
	if correct {
		resp.PreviewPoints = s.limits.Config().PointsPerQuestion
	}

	// Retry insertion: only an original question's first wrong answer
	// grows the list, and only once.
	spawnRetry := !correct && ordinal == 0 && question.RetryOf == "" && !question.RetrySpawned
	if spawnRetry {
		sess.Questions[qIdx].RetrySpawned = true
		retry := store.Question{
			ID:        uuid.NewString(),
			Text:      question.Text,
			Options:   question.Options,
			AnswerKey: question.AnswerKey,
			RetryOf:   question.ID,
		}
		sess.Questions = append(sess.Questions, retry)

		if err := s.sessions.UpdateQuestions(ctx, sess.ID, sess.Questions, StatusInProgress); err != nil {
			return nil, fmt.Errorf("append retry question: %w", err)
		}

		resp.RetryAllowed = true
		resp.NextAction = ActionRetry
		resp.UpdatedQuestions = viewsOf(sess.Questions)
		resp.TotalQuestions = len(sess.Questions)
		return resp, nil
	}

	if sess.Status == StatusStarted {
		if err := s.sessions.UpdateStatus(ctx, sess.ID, StatusInProgress); err != nil {
			return nil, fmt.Errorf("update status: %w", err)
		}
	}
	return resp, nil
}

// Complete finishes a session: each snapshot question is scored on its
// last attempt, points are credited, and streak/badge evaluation runs.
// Completing an already-completed session returns the stored result.
func (s *Service) Complete(ctx context.Context, sessionID string) (*CompleteResponse, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status == StatusCompleted {
		// Idempotent replay; badge awards are not repeated.
		correct, total := 0, len(sess.Questions)
		if attempts, aerr := s.sessions.Attempts(ctx, sess.ID); aerr == nil {
			correct = s.correctCount(sess.Questions, attempts)
		}
		return &CompleteResponse{
			Score:          sess.Score,
			AwardedPoints:  sess.PointsAwarded,
			BadgesAwarded:  []string{},
			CorrectCount:   correct,
			TotalQuestions: total,
		}, nil
	}
	if sess.Status == StatusTimedOut {
		return nil, &ErrSessionTimeout{SessionID: sess.ID}
	}
	if err := s.checkTimeout(ctx, sess); err != nil {
		return nil, err
	}

	attempts, err := s.sessions.Attempts(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	correct := s.correctCount(sess.Questions, attempts)
	points := correct * s.limits.Config().PointsPerQuestion
	score := points

	now := s.now().UTC()
	if err := s.sessions.Complete(ctx, sess.ID, score, points, now); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	if err := s.limits.RecordSessionComplete(ctx, sess.UserID, points); err != nil {
		return nil, err
	}

	lifetime, err := s.sessions.CountCompleted(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("count completed sessions: %w", err)
	}

	badges, err := s.streaks.OnSessionComplete(ctx, streaks.CompletionInput{
		UserID:            sess.UserID,
		SessionID:         sess.ID,
		Week:              sess.Week,
		Correct:           correct,
		Total:             len(sess.Questions),
		CompletedSessions: lifetime,
		WeekItemsConsumed: s.weekConsumed(ctx, sess.UserID, sess.Week),
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = string(b)
	}
	return &CompleteResponse{
		Score:          score,
		AwardedPoints:  points,
		BadgesAwarded:  names,
		CorrectCount:   correct,
		TotalQuestions: len(sess.Questions),
	}, nil
}

// Status probes a session without mutating it, except for the lazy
// timeout transition, which it still performs and reports.
func (s *Service) Status(ctx context.Context, sessionID string) (*StatusResponse, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if (sess.Status == StatusStarted || sess.Status == StatusInProgress) && !now.Before(sess.TimeoutAt) {
		if err := s.sessions.UpdateStatus(ctx, sess.ID, StatusTimedOut); err != nil {
			return nil, fmt.Errorf("update status: %w", err)
		}
		sess.Status = StatusTimedOut
	}

	remaining := 0
	if sess.Status == StatusStarted || sess.Status == StatusInProgress {
		remaining = int(sess.TimeoutAt.Sub(now).Seconds())
	}

	attempts, err := s.sessions.Attempts(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	answered := make(map[string]bool, len(attempts))
	for _, a := range attempts {
		answered[a.QuestionID] = true
	}

	per := make([]QuestionStatus, len(sess.Questions))
	for i, q := range sess.Questions {
		per[i] = QuestionStatus{ID: q.ID, Answered: answered[q.ID]}
	}

	return &StatusResponse{
		Status:           sess.Status,
		RemainingSeconds: remaining,
		PerQuestion:      per,
	}, nil
}

func (s *Service) getSession(ctx context.Context, id string) (*store.Session, error) {
	if id == "" {
		return nil, &ErrInvalidRequest{Err: errors.New("session id is required")}
	}
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return nil, &ErrNotFound{Kind: "session", ID: id}
	}
	return sess, nil
}

// liveSession loads a session and rejects terminal or expired states.
func (s *Service) liveSession(ctx context.Context, id string) (*store.Session, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	switch sess.Status {
	case StatusTimedOut:
		return nil, &ErrSessionTimeout{SessionID: sess.ID}
	case StatusCompleted:
		return nil, &ErrInvalidRequest{Err: fmt.Errorf("session %s is already completed", sess.ID)}
	}
	if err := s.checkTimeout(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// checkTimeout performs the lazy timeout transition.
func (s *Service) checkTimeout(ctx context.Context, sess *store.Session) error {
	if s.now().UTC().Before(sess.TimeoutAt) {
		return nil
	}
	if err := s.sessions.UpdateStatus(ctx, sess.ID, StatusTimedOut); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	sess.Status = StatusTimedOut
	return &ErrSessionTimeout{SessionID: sess.ID}
}

// correctCount scores each snapshot question on its own last attempt.
// Unanswered questions count as incorrect.
func (s *Service) correctCount(questions []store.Question, attempts []store.Attempt) int {
	last := make(map[string]bool, len(questions))
	for _, a := range attempts {
		last[a.QuestionID] = a.Correct
	}
	correct := 0
	for _, q := range questions {
		if last[q.ID] {
			correct++
		}
	}
	return correct
}

// weekConsumed reports whether the user has flipped every flashcard of
// a week. No flashcards means not consumed.
func (s *Service) weekConsumed(ctx context.Context, userID string, week int) bool {
	cards, err := s.items.ForWeek(ctx, userID, week, quizgen.TypeFlashcard)
	if err != nil || len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if c.ConsumedAt == nil {
			return false
		}
	}
	return true
}

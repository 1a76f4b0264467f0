package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/quizgen"
	"github.com/bumpwise/bumpquiz/internal/store"
	"github.com/bumpwise/bumpquiz/internal/streaks"
)

// fakeSessionRepo is an in-memory store.SessionRepo.
type fakeSessionRepo struct {
	sessions map[string]*store.Session
	attempts map[string][]store.Attempt
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[string]*store.Session),
		attempts: make(map[string][]store.Attempt),
	}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *store.Session) error {
	cp := *s
	cp.Questions = append([]store.Question(nil), s.Questions...)
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*store.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Questions = append([]store.Question(nil), s.Questions...)
	return &cp, nil
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.sessions[id].Status = status
	return nil
}

func (f *fakeSessionRepo) UpdateQuestions(_ context.Context, id string, questions []store.Question, status string) error {
	f.sessions[id].Questions = append([]store.Question(nil), questions...)
	f.sessions[id].Status = status
	return nil
}

func (f *fakeSessionRepo) Complete(_ context.Context, id string, score, points int, at time.Time) error {
	s := f.sessions[id]
	s.Status = StatusCompleted
	s.Score = score
	s.PointsAwarded = points
	s.CompletedAt = &at
	return nil
}

func (f *fakeSessionRepo) AppendAttempt(_ context.Context, sessionID string, a store.Attempt) error {
	a.Sequence = int64(len(f.attempts[sessionID]) + 1)
	f.attempts[sessionID] = append(f.attempts[sessionID], a)
	return nil
}

func (f *fakeSessionRepo) Attempts(_ context.Context, sessionID string) ([]store.Attempt, error) {
	return append([]store.Attempt(nil), f.attempts[sessionID]...), nil
}

func (f *fakeSessionRepo) CountCompleted(_ context.Context, userID string) (int, error) {
	n := 0
	for _, s := range f.sessions {
		if s.UserID == userID && s.Status == StatusCompleted {
			n++
		}
	}
	return n, nil
}

// fakeItemRepo is a minimal store.ContentItemRepo for week-completion
// checks.
type fakeItemRepo struct {
	items []*store.ContentItem
}

func (f *fakeItemRepo) SaveAll(_ context.Context, items []*store.ContentItem) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeItemRepo) Get(_ context.Context, id string) (*store.ContentItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) ForWeek(_ context.Context, userID string, week int, contentType string) ([]*store.ContentItem, error) {
	var out []*store.ContentItem
	for _, it := range f.items {
		if it.UserID == userID && it.Week == week && it.ContentType == contentType {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) MarkConsumed(_ context.Context, id string, at time.Time) (bool, error) {
	for _, it := range f.items {
		if it.ID == id && it.ConsumedAt == nil {
			it.ConsumedAt = &at
			return true, nil
		}
	}
	return false, nil
}

// fakeLimitsRepo matches the real repo's lazy reset semantics.
type fakeLimitsRepo struct {
	rows map[string]*store.Limits
}

func newFakeLimitsRepo() *fakeLimitsRepo {
	return &fakeLimitsRepo{rows: make(map[string]*store.Limits)}
}

func (f *fakeLimitsRepo) Current(_ context.Context, userID string, dayStart time.Time) (*store.Limits, error) {
	row, ok := f.rows[userID]
	if !ok {
		row = &store.Limits{UserID: userID, ResetAt: dayStart}
		f.rows[userID] = row
	}
	if row.ResetAt.Before(dayStart) {
		row.SessionsToday, row.FlipsToday, row.PointsToday = 0, 0, 0
		row.ResetAt = dayStart
	}
	out := *row
	return &out, nil
}

func (f *fakeLimitsRepo) AddSessions(_ context.Context, userID string, delta int) error {
	f.rows[userID].SessionsToday += delta
	return nil
}

func (f *fakeLimitsRepo) AddFlips(_ context.Context, userID string, delta int) error {
	f.rows[userID].FlipsToday += delta
	return nil
}

func (f *fakeLimitsRepo) AddPoints(_ context.Context, userID string, delta int) error {
	f.rows[userID].PointsToday += delta
	f.rows[userID].PointsTotal += delta
	return nil
}

// fakeStreakRepo is an in-memory store.StreakRepo.
type fakeStreakRepo struct {
	rows map[string]*store.Streak
}

func (f *fakeStreakRepo) Get(_ context.Context, userID string) (*store.Streak, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, nil
	}
	out := *row
	return &out, nil
}

func (f *fakeStreakRepo) Upsert(_ context.Context, s *store.Streak) error {
	cp := *s
	f.rows[s.UserID] = &cp
	return nil
}

// fakeEventRepo records badges; the embedded interface covers unused
// methods.
type fakeEventRepo struct {
	store.EventRepo
	badges []store.BadgeEventData
}

func (f *fakeEventRepo) AppendBadge(_ context.Context, data store.BadgeEventData) error {
	f.badges = append(f.badges, data)
	return nil
}

func (f *fakeEventRepo) BadgeCodes(_ context.Context, userID string) (map[string]bool, error) {
	codes := make(map[string]bool)
	for _, b := range f.badges {
		if b.UserID == userID {
			codes[b.Badge] = true
		}
	}
	return codes, nil
}

// fakeGenerator returns canned question items.
type fakeGenerator struct {
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, req quizgen.Request) ([]*store.ContentItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	items := make([]*store.ContentItem, req.Count)
	for i := range items {
		items[i] = &store.ContentItem{
			ID:          fmt.Sprintf("item-%d", i+1),
			UserID:      req.Profile.UserID,
			Week:        req.Week,
			ContentType: req.ContentType,
			Difficulty:  req.Difficulty,
			Question:    fmt.Sprintf("Question %d?", i+1),
			Options:     []string{"A", "B", "C", "D"},
			AnswerKey:   "A",
		}
	}
	return items, nil
}

// fixedProfiles serves one profile for every user.
type fixedProfiles struct {
	prof profile.Profile
}

func (f *fixedProfiles) Get(_ context.Context, userID string) (profile.Profile, error) {
	p := f.prof
	p.UserID = userID
	return p, nil
}

type quizFixture struct {
	svc      *Service
	sessions *fakeSessionRepo
	items    *fakeItemRepo
	gen      *fakeGenerator
	limits   *fakeLimitsRepo
	events   *fakeEventRepo
	now      time.Time
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sessions := newFakeSessionRepo()
	items := &fakeItemRepo{}
	gen := &fakeGenerator{}
	limitsRepo := newFakeLimitsRepo()
	events := &fakeEventRepo{}

	limSvc := limits.NewService(limitsRepo, limits.Config{
		MaxSessionsPerDay: 2,
		FlipPointCeiling:  50,
		PointsPerFlip:     5,
		PointsPerQuestion: 10,
	})
	strSvc := streaks.NewService(&fakeStreakRepo{rows: make(map[string]*store.Streak)}, events)
	profiles := &fixedProfiles{prof: profile.Profile{Name: "Maya", DueDate: now.AddDate(0, 0, 20*7)}}

	svc := NewService(sessions, items, gen, limSvc, strSvc, profiles, Config{
		SessionMinutes:      10,
		QuestionsPerSession: 3,
	})

	fx := &quizFixture{svc: svc, sessions: sessions, items: items, gen: gen, limits: limitsRepo, events: events, now: now}
	svc.now = func() time.Time { return fx.now }
	return fx
}

func (fx *quizFixture) start(t *testing.T) *StartResponse {
	t.Helper()
	resp, err := fx.svc.Start(context.Background(), StartRequest{UserID: "u1", Difficulty: "medium"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return resp
}

func (fx *quizFixture) answer(t *testing.T, sessionID, questionID, option string) *SubmitAnswerResponse {
	t.Helper()
	resp, err := fx.svc.SubmitAnswer(context.Background(), SubmitAnswerRequest{
		SessionID:  sessionID,
		QuestionID: questionID,
		Option:     option,
		StartedAt:  fx.now,
		AnsweredAt: fx.now.Add(5 * time.Second),
	})
	if err != nil {
		t.Fatalf("SubmitAnswer(%s, %s): %v", questionID, option, err)
	}
	return resp
}

func TestStart(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)

	if resp.SessionID == "" {
		t.Error("no session ID")
	}
	if resp.ExpiresInSeconds != 600 {
		t.Errorf("ExpiresInSeconds = %d, want 600", resp.ExpiresInSeconds)
	}
	if len(resp.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(resp.Questions))
	}

	sess := fx.sessions.sessions[resp.SessionID]
	if sess.Status != StatusStarted {
		t.Errorf("status = %q, want started", sess.Status)
	}
	if sess.Week != 20 {
		t.Errorf("week = %d, want 20 derived from due date", sess.Week)
	}
}

func TestStartValidatesRequest(t *testing.T) {
	fx := newQuizFixture(t)

	_, err := fx.svc.Start(context.Background(), StartRequest{UserID: "u1", Difficulty: "impossible"})
	var invalid *ErrInvalidRequest
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}

	_, err = fx.svc.Start(context.Background(), StartRequest{Difficulty: "easy"})
	if !errors.As(err, &invalid) {
		t.Errorf("missing user error = %v, want ErrInvalidRequest", err)
	}
}

func TestStartWeekOverride(t *testing.T) {
	fx := newQuizFixture(t)

	resp, err := fx.svc.Start(context.Background(), StartRequest{UserID: "u1", Difficulty: "easy", Week: 33})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := fx.sessions.sessions[resp.SessionID].Week; got != 33 {
		t.Errorf("week = %d, want override 33", got)
	}
}

func TestStartDailyCap(t *testing.T) {
	fx := newQuizFixture(t)
	ctx := context.Background()

	// Complete two sessions to reach the cap of 2.
	for i := 0; i < 2; i++ {
		resp := fx.start(t)
		if _, err := fx.svc.Complete(ctx, resp.SessionID); err != nil {
			t.Fatalf("Complete: %v", err)
		}
	}

	_, err := fx.svc.Start(ctx, StartRequest{UserID: "u1", Difficulty: "medium"})
	var limErr *ErrLimitExceeded
	if !errors.As(err, &limErr) {
		t.Fatalf("error = %v, want ErrLimitExceeded", err)
	}
	if limErr.Limit != 2 {
		t.Errorf("Limit = %d, want 2", limErr.Limit)
	}
}

func TestStartGenerationExhausted(t *testing.T) {
	fx := newQuizFixture(t)
	fx.gen.err = &quizgen.ExhaustedError{Attempts: 3, Reasons: []string{"all duplicates"}}

	_, err := fx.svc.Start(context.Background(), StartRequest{UserID: "u1", Difficulty: "medium"})
	var invalid *ErrInvalidRequest
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
	var exhausted *quizgen.ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Error("ErrInvalidRequest does not wrap the ExhaustedError")
	}
}

func TestSnapshotNeverExposesAnswerKeys(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)

	for _, q := range resp.Questions {
		if q.Text == "" || len(q.Options) != 4 {
			t.Errorf("malformed question view: %+v", q)
		}
	}

	// Wrong answer grows the list; the returned views must stay
	// answer-free too.
	ans := fx.answer(t, resp.SessionID, resp.Questions[0].ID, "B")
	if len(ans.UpdatedQuestions) == 0 {
		t.Fatal("no updated questions after retry insertion")
	}
}

func TestSubmitAnswerCorrect(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)

	ans := fx.answer(t, resp.SessionID, resp.Questions[0].ID, "A")
	if !ans.IsCorrect {
		t.Error("correct option judged incorrect")
	}
	if ans.PreviewPoints != 10 {
		t.Errorf("PreviewPoints = %d, want 10", ans.PreviewPoints)
	}
	if ans.NextAction != ActionContinue {
		t.Errorf("NextAction = %q, want continue", ans.NextAction)
	}
	if ans.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want unchanged 3", ans.TotalQuestions)
	}

	if got := fx.sessions.sessions[resp.SessionID].Status; got != StatusInProgress {
		t.Errorf("status = %q, want in_progress after first answer", got)
	}

	// Points are preview only until completion.
	if row, ok := fx.limits.rows["u1"]; ok && row.PointsToday != 0 {
		t.Errorf("points credited before completion: %d", row.PointsToday)
	}
}

func TestSubmitAnswerWrongSpawnsRetry(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	q1 := resp.Questions[0].ID

	ans := fx.answer(t, resp.SessionID, q1, "B")
	if ans.IsCorrect {
		t.Error("wrong option judged correct")
	}
	if !ans.RetryAllowed || ans.NextAction != ActionRetry {
		t.Errorf("retry not offered: %+v", ans)
	}
	if ans.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4 after retry insertion", ans.TotalQuestions)
	}
	if len(ans.UpdatedQuestions) != 4 {
		t.Errorf("UpdatedQuestions has %d entries, want 4", len(ans.UpdatedQuestions))
	}

	retry := fx.sessions.sessions[resp.SessionID].Questions[3]
	if retry.RetryOf != q1 {
		t.Errorf("retry.RetryOf = %q, want %q", retry.RetryOf, q1)
	}
	if retry.ID == q1 {
		t.Error("retry copy reuses the original question ID")
	}
}

func TestRetrySpawnsAtMostOnce(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	q1 := resp.Questions[0].ID

	fx.answer(t, resp.SessionID, q1, "B")
	ans := fx.answer(t, resp.SessionID, q1, "C")
	if ans.RetryAllowed {
		t.Error("second wrong answer offered another retry")
	}
	if ans.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4 (no second retry)", ans.TotalQuestions)
	}
}

func TestRetryCopyNeverSpawnsRetry(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	q1 := resp.Questions[0].ID

	fx.answer(t, resp.SessionID, q1, "B")
	retryID := fx.sessions.sessions[resp.SessionID].Questions[3].ID

	ans := fx.answer(t, resp.SessionID, retryID, "B")
	if ans.RetryAllowed {
		t.Error("retry copy spawned its own retry")
	}
	if ans.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", ans.TotalQuestions)
	}
}

func TestCorrectAnswerNeverSpawnsRetry(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	q1 := resp.Questions[0].ID

	fx.answer(t, resp.SessionID, q1, "A")
	ans := fx.answer(t, resp.SessionID, q1, "A")
	if ans.RetryAllowed || ans.TotalQuestions != 3 {
		t.Errorf("re-submitting a correct answer grew the session: %+v", ans)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)

	_, err := fx.svc.SubmitAnswer(context.Background(), SubmitAnswerRequest{
		SessionID:  resp.SessionID,
		QuestionID: "nope",
		Option:     "A",
		StartedAt:  fx.now,
		AnsweredAt: fx.now,
	})
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) || notFound.Kind != "question" {
		t.Errorf("error = %v, want question not found", err)
	}
}

func TestSubmitAnswerUnknownSession(t *testing.T) {
	fx := newQuizFixture(t)

	_, err := fx.svc.SubmitAnswer(context.Background(), SubmitAnswerRequest{
		SessionID:  "ghost",
		QuestionID: "q",
		Option:     "A",
		StartedAt:  fx.now,
		AnsweredAt: fx.now,
	})
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) || notFound.Kind != "session" {
		t.Errorf("error = %v, want session not found", err)
	}
}

func TestLazyTimeoutOnSubmit(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)

	fx.now = fx.now.Add(11 * time.Minute)
	_, err := fx.svc.SubmitAnswer(context.Background(), SubmitAnswerRequest{
		SessionID:  resp.SessionID,
		QuestionID: resp.Questions[0].ID,
		Option:     "A",
		StartedAt:  fx.now,
		AnsweredAt: fx.now,
	})
	var timeout *ErrSessionTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("error = %v, want ErrSessionTimeout", err)
	}
	if got := fx.sessions.sessions[resp.SessionID].Status; got != StatusTimedOut {
		t.Errorf("status = %q, want timed_out", got)
	}
}

func TestCompleteScoresLastAttempt(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	q1, q2, q3 := resp.Questions[0].ID, resp.Questions[1].ID, resp.Questions[2].ID

	// Q1 wrong then right: the later correct answer supersedes.
	fx.answer(t, resp.SessionID, q1, "B")
	fx.answer(t, resp.SessionID, q1, "A")
	// Q2 right on first try.
	fx.answer(t, resp.SessionID, q2, "A")
	// Q3 wrong, and its retry copy wrong too.
	fx.answer(t, resp.SessionID, q3, "B")

	sess := fx.sessions.sessions[resp.SessionID]
	var q3Retry string
	for _, q := range sess.Questions {
		if q.RetryOf == q3 {
			q3Retry = q.ID
		}
	}
	if q3Retry == "" {
		t.Fatal("no retry copy for q3")
	}
	fx.answer(t, resp.SessionID, q3Retry, "C")

	done, err := fx.svc.Complete(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	// Snapshot: q1 (correct), q2 (correct), q3 (wrong), q1-retry
	// (unanswered), q3-retry (wrong) -> 2 correct at 10 points each.
	if done.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", done.CorrectCount)
	}
	if done.AwardedPoints != 20 {
		t.Errorf("AwardedPoints = %d, want 20", done.AwardedPoints)
	}
	if done.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", done.TotalQuestions)
	}

	row := fx.limits.rows["u1"]
	if row.PointsToday != 20 || row.SessionsToday != 1 {
		t.Errorf("ledger = %+v, want 20 points and 1 session", row)
	}
}

func TestCompleteAwardsBadges(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)

	for _, q := range resp.Questions {
		fx.answer(t, resp.SessionID, q.ID, "A")
	}

	done, err := fx.svc.Complete(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	want := map[string]bool{"first-session": true, "perfect-score": true}
	for _, b := range done.BadgesAwarded {
		delete(want, b)
	}
	for missing := range want {
		t.Errorf("badge %q not awarded: got %v", missing, done.BadgesAwarded)
	}
}

func TestCompleteIdempotent(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	fx.answer(t, resp.SessionID, resp.Questions[0].ID, "A")

	first, err := fx.svc.Complete(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	second, err := fx.svc.Complete(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("repeat Complete: %v", err)
	}

	if second.Score != first.Score || second.AwardedPoints != first.AwardedPoints {
		t.Errorf("replay result %+v differs from %+v", second, first)
	}
	if len(second.BadgesAwarded) != 0 {
		t.Errorf("replay re-awarded badges: %v", second.BadgesAwarded)
	}

	// Ledger credited exactly once.
	if got := fx.limits.rows["u1"].SessionsToday; got != 1 {
		t.Errorf("SessionsToday = %d after replay, want 1", got)
	}
}

func TestCompleteAfterTimeout(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	fx.answer(t, resp.SessionID, resp.Questions[0].ID, "A")

	fx.now = fx.now.Add(11 * time.Minute)
	_, err := fx.svc.Complete(context.Background(), resp.SessionID)
	var timeout *ErrSessionTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("error = %v, want ErrSessionTimeout", err)
	}
	if got := fx.sessions.sessions[resp.SessionID].Status; got != StatusTimedOut {
		t.Errorf("status = %q, want timed_out", got)
	}
	if row, ok := fx.limits.rows["u1"]; ok && row.PointsToday != 0 {
		t.Errorf("timed-out session credited %d points", row.PointsToday)
	}
}

func TestStatus(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)
	fx.answer(t, resp.SessionID, resp.Questions[0].ID, "A")

	fx.now = fx.now.Add(4 * time.Minute)
	st, err := fx.svc.Status(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Status != StatusInProgress {
		t.Errorf("Status = %q, want in_progress", st.Status)
	}
	if st.RemainingSeconds != 360 {
		t.Errorf("RemainingSeconds = %d, want 360", st.RemainingSeconds)
	}
	if len(st.PerQuestion) != 3 {
		t.Fatalf("PerQuestion has %d entries, want 3", len(st.PerQuestion))
	}
	if !st.PerQuestion[0].Answered || st.PerQuestion[1].Answered {
		t.Errorf("answered flags wrong: %+v", st.PerQuestion)
	}
}

func TestStatusFlipsTimeout(t *testing.T) {
	fx := newQuizFixture(t)
	resp := fx.start(t)

	fx.now = fx.now.Add(11 * time.Minute)
	st, err := fx.svc.Status(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Status != StatusTimedOut {
		t.Errorf("Status = %q, want timed_out", st.Status)
	}
	if st.RemainingSeconds != 0 {
		t.Errorf("RemainingSeconds = %d, want 0", st.RemainingSeconds)
	}
	if got := fx.sessions.sessions[resp.SessionID].Status; got != StatusTimedOut {
		t.Errorf("persisted status = %q, want timed_out", got)
	}
}

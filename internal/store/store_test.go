package store

import (
	"context"
	"testing"
	"time"

	"github.com/bumpwise/bumpquiz/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testItem(id, userID string, week int, contentType string) *ContentItem {
	return &ContentItem{
		ID:          id,
		UserID:      userID,
		Week:        week,
		ContentType: contentType,
		Question:    "How much water should you drink daily?",
		Options:     []string{"A) 4 cups", "B) 8-12 cups", "C) 20 cups", "D) 2 cups"},
		AnswerKey:   "B",
		Explanation: "Hydration needs rise during pregnancy.",
		ContentHash: "hash-" + id,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestContentItemSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentItemRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing item")
	}

	item := testItem("item-1", "mom", 20, "quiz")
	item.Embedding = []float32{0.1, 0.2, 0.3}
	if err := repo.SaveAll(ctx, []*ContentItem{item}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected item")
	}
	if got.Question != item.Question {
		t.Errorf("question = %q, want %q", got.Question, item.Question)
	}
	if got.AnswerKey != "B" {
		t.Errorf("answer key = %q, want B", got.AnswerKey)
	}
	if len(got.Options) != 4 {
		t.Errorf("options = %d, want 4", len(got.Options))
	}
	if got.ConsumedAt != nil {
		t.Error("new item should not be consumed")
	}
}

func TestContentItemForWeek(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentItemRepo()
	ctx := context.Background()

	items := []*ContentItem{
		testItem("a", "mom", 20, "quiz"),
		testItem("b", "mom", 20, "flashcard"),
		testItem("c", "mom", 21, "quiz"),
		testItem("d", "other", 20, "quiz"),
	}
	if err := repo.SaveAll(ctx, items); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.ForWeek(ctx, "mom", 20, "quiz")
	if err != nil {
		t.Fatalf("for week: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected exactly item a, got %d items", len(got))
	}
}

func TestMarkConsumedOnce(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentItemRepo()
	ctx := context.Background()

	if err := repo.SaveAll(ctx, []*ContentItem{testItem("flip-me", "mom", 20, "flashcard")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Second)
	first, err := repo.MarkConsumed(ctx, "flip-me", at)
	if err != nil {
		t.Fatalf("mark consumed: %v", err)
	}
	if !first {
		t.Fatal("first mark should report true")
	}

	second, err := repo.MarkConsumed(ctx, "flip-me", at.Add(time.Hour))
	if err != nil {
		t.Fatalf("mark consumed again: %v", err)
	}
	if second {
		t.Fatal("second mark should report false")
	}

	got, err := repo.Get(ctx, "flip-me")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ConsumedAt == nil || !got.ConsumedAt.Equal(at) {
		t.Errorf("consumed_at = %v, want %v", got.ConsumedAt, at)
	}
}

func testSession(id, userID string, now time.Time) *Session {
	return &Session{
		ID:         id,
		UserID:     userID,
		Week:       20,
		Difficulty: "medium",
		Status:     "started",
		Questions: []Question{
			{ID: "q1", Text: "Question one", Options: []string{"A) x", "B) y"}, AnswerKey: "A"},
			{ID: "q2", Text: "Question two", Options: []string{"A) x", "B) y"}, AnswerKey: "B"},
		},
		CreatedAt: now,
		TimeoutAt: now.Add(10 * time.Minute),
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	got, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing session")
	}

	if err := repo.Create(ctx, testSession("sess-1", "mom", now)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err = repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "started" {
		t.Errorf("status = %q, want started", got.Status)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(got.Questions))
	}
	if got.Questions[1].AnswerKey != "B" {
		t.Errorf("snapshot answer key = %q, want B", got.Questions[1].AnswerKey)
	}
	if !got.TimeoutAt.Equal(now.Add(10 * time.Minute)) {
		t.Errorf("timeout_at = %v", got.TimeoutAt)
	}

	// Retry insertion grows the snapshot.
	questions := append(got.Questions, Question{
		ID: "q1-retry", Text: "Question one", Options: []string{"A) x", "B) y"},
		AnswerKey: "A", RetryOf: "q1",
	})
	questions[0].RetrySpawned = true
	if err := repo.UpdateQuestions(ctx, "sess-1", questions, "in_progress"); err != nil {
		t.Fatalf("update questions: %v", err)
	}

	got, err = repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("questions after retry = %d, want 3", len(got.Questions))
	}
	if got.Questions[2].RetryOf != "q1" {
		t.Errorf("retry_of = %q, want q1", got.Questions[2].RetryOf)
	}
	if !got.Questions[0].RetrySpawned {
		t.Error("original question should record the spawn")
	}
	if got.Status != "in_progress" {
		t.Errorf("status = %q, want in_progress", got.Status)
	}

	if err := repo.Complete(ctx, "sess-1", 2, 20, now.Add(5*time.Minute)); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, err = repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get after complete: %v", err)
	}
	if got.Status != "completed" {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.Score != 2 || got.PointsAwarded != 20 {
		t.Errorf("score/points = %d/%d, want 2/20", got.Score, got.PointsAwarded)
	}
	if got.CompletedAt == nil {
		t.Fatal("completed_at should be set")
	}
}

func TestSessionAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	if err := repo.Create(ctx, testSession("sess-2", "mom", now)); err != nil {
		t.Fatalf("create: %v", err)
	}

	submissions := []Attempt{
		{QuestionID: "q1", SelectedOption: "B", Correct: false, AttemptOrdinal: 0, StartedAt: now, AnsweredAt: now.Add(10 * time.Second)},
		{QuestionID: "q2", SelectedOption: "B", Correct: true, AttemptOrdinal: 0, StartedAt: now, AnsweredAt: now.Add(25 * time.Second)},
		{QuestionID: "q1", SelectedOption: "A", Correct: true, AttemptOrdinal: 1, StartedAt: now, AnsweredAt: now.Add(40 * time.Second)},
	}
	for _, a := range submissions {
		if err := repo.AppendAttempt(ctx, "sess-2", a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	attempts, err := repo.Attempts(ctx, "sess-2")
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("attempts = %d, want 3", len(attempts))
	}
	if attempts[2].QuestionID != "q1" || attempts[2].AttemptOrdinal != 1 {
		t.Errorf("last attempt = %s ordinal %d, want q1 ordinal 1",
			attempts[2].QuestionID, attempts[2].AttemptOrdinal)
	}
	if attempts[0].Correct || !attempts[2].Correct {
		t.Error("correctness flags not preserved in order")
	}
}

func TestCountCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for _, id := range []string{"c1", "c2", "c3"} {
		if err := repo.Create(ctx, testSession(id, "mom", now)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if err := repo.Complete(ctx, "c1", 1, 10, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := repo.Complete(ctx, "c2", 2, 20, now); err != nil {
		t.Fatalf("complete: %v", err)
	}

	n, err := repo.CountCompleted(ctx, "mom")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("completed = %d, want 2", n)
	}

	n, err = repo.CountCompleted(ctx, "other")
	if err != nil {
		t.Fatalf("count other: %v", err)
	}
	if n != 0 {
		t.Errorf("completed for other user = %d, want 0", n)
	}
}

func TestLimitsEnsureAndIncrement(t *testing.T) {
	s := openTestStore(t)
	repo := s.LimitsRepo()
	ctx := context.Background()
	dayStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	row, err := repo.Current(ctx, "mom", dayStart)
	if err != nil {
		t.Fatalf("current (new): %v", err)
	}
	if row.SessionsToday != 0 || row.PointsTotal != 0 {
		t.Fatal("fresh row should be zeroed")
	}

	if err := repo.AddSessions(ctx, "mom", 1); err != nil {
		t.Fatalf("add sessions: %v", err)
	}
	if err := repo.AddFlips(ctx, "mom", 2); err != nil {
		t.Fatalf("add flips: %v", err)
	}
	if err := repo.AddPoints(ctx, "mom", 30); err != nil {
		t.Fatalf("add points: %v", err)
	}

	row, err = repo.Current(ctx, "mom", dayStart)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if row.SessionsToday != 1 || row.FlipsToday != 2 {
		t.Errorf("counters = %d sessions / %d flips, want 1/2", row.SessionsToday, row.FlipsToday)
	}
	if row.PointsToday != 30 || row.PointsTotal != 30 {
		t.Errorf("points = %d today / %d total, want 30/30", row.PointsToday, row.PointsTotal)
	}
}

func TestLimitsLazyDailyReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.LimitsRepo()
	ctx := context.Background()

	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.Current(ctx, "mom", day1); err != nil {
		t.Fatalf("current day1: %v", err)
	}
	if err := repo.AddSessions(ctx, "mom", 2); err != nil {
		t.Fatalf("add sessions: %v", err)
	}
	if err := repo.AddPoints(ctx, "mom", 40); err != nil {
		t.Fatalf("add points: %v", err)
	}

	// Next day: daily counters reset, lifetime total survives.
	day2 := day1.AddDate(0, 0, 1)
	row, err := repo.Current(ctx, "mom", day2)
	if err != nil {
		t.Fatalf("current day2: %v", err)
	}
	if row.SessionsToday != 0 || row.FlipsToday != 0 || row.PointsToday != 0 {
		t.Errorf("daily counters not reset: %+v", row)
	}
	if row.PointsTotal != 40 {
		t.Errorf("points total = %d, want 40", row.PointsTotal)
	}
	if !row.ResetAt.Equal(day2) {
		t.Errorf("reset watermark = %v, want %v", row.ResetAt, day2)
	}

	// Same-day calls leave counters alone.
	if err := repo.AddSessions(ctx, "mom", 1); err != nil {
		t.Fatalf("add sessions day2: %v", err)
	}
	row, err = repo.Current(ctx, "mom", day2)
	if err != nil {
		t.Fatalf("current day2 again: %v", err)
	}
	if row.SessionsToday != 1 {
		t.Errorf("sessions = %d, want 1", row.SessionsToday)
	}
}

func testSimRecord(itemID, userID string, week int, created time.Time) *SimilarityRecord {
	return &SimilarityRecord{
		ItemID:      itemID,
		UserID:      userID,
		Week:        week,
		ContentType: "quiz",
		ContentHash: "hash-" + itemID,
		Embedding:   []float32{1, 0, 0},
		CreatedAt:   created,
	}
}

func TestSimilarityScopeAndOverflow(t *testing.T) {
	s := openTestStore(t)
	repo := s.SimilarityRepo()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	records := []*SimilarityRecord{
		testSimRecord("r1", "mom", 19, base),
		testSimRecord("r2", "mom", 20, base.Add(time.Minute)),
		testSimRecord("r3", "mom", 20, base.Add(2*time.Minute)),
		testSimRecord("r4", "other", 20, base.Add(3*time.Minute)),
	}
	for _, r := range records {
		if err := repo.Append(ctx, r); err != nil {
			t.Fatalf("append %s: %v", r.ItemID, err)
		}
	}

	scoped, err := repo.ForScope(ctx, "mom", 20, "quiz")
	if err != nil {
		t.Fatalf("for scope: %v", err)
	}
	if len(scoped) != 2 {
		t.Fatalf("scope records = %d, want 2", len(scoped))
	}

	all, err := repo.ForUser(ctx, "mom", "quiz")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("user records = %d, want 3", len(all))
	}
	if all[0].ItemID != "r1" {
		t.Errorf("oldest first: got %s", all[0].ItemID)
	}

	// Keep the 2 most recent: r1 overflows.
	overflow, err := repo.OverflowIDs(ctx, "mom", "quiz", 2)
	if err != nil {
		t.Fatalf("overflow: %v", err)
	}
	if len(overflow) != 1 || overflow[0] != "r1" {
		t.Fatalf("overflow = %v, want [r1]", overflow)
	}

	if err := repo.Delete(ctx, overflow); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, err = repo.ForUser(ctx, "mom", "quiz")
	if err != nil {
		t.Fatalf("for user after trim: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("records after trim = %d, want 2", len(all))
	}
}

func TestProfileUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "mom")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing profile")
	}

	due := time.Date(2026, 7, 19, 0, 0, 0, 0, time.UTC)
	p := &profile.Profile{
		UserID:    "mom",
		Name:      "Maya",
		DueDate:   due,
		Interests: []string{"nutrition", "sleep"},
	}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	got, err = repo.Get(ctx, "mom")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Maya" || !got.DueDate.Equal(due) {
		t.Errorf("profile = %+v", got)
	}
	if len(got.Interests) != 2 {
		t.Errorf("interests = %v", got.Interests)
	}

	p.Name = "Maya R"
	p.Interests = []string{"exercise"}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	got, err = repo.Get(ctx, "mom")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "Maya R" {
		t.Errorf("name = %q, want Maya R", got.Name)
	}
	if len(got.Interests) != 1 || got.Interests[0] != "exercise" {
		t.Errorf("interests = %v, want [exercise]", got.Interests)
	}
}

func TestStreakUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.StreakRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "mom")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing streak")
	}

	if err := repo.Upsert(ctx, &Streak{UserID: "mom", Current: 1, Longest: 1, LastActiveOn: "2026-03-01"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, &Streak{UserID: "mom", Current: 2, Longest: 2, LastActiveOn: "2026-03-02"}); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	got, err = repo.Get(ctx, "mom")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Current != 2 || got.Longest != 2 || got.LastActiveOn != "2026-03-02" {
		t.Errorf("streak = %+v", got)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      "quiz-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
			RequestBody:  `{"messages":[]}`,
			ResponseBody: `{"items":[]}`,
		})
		if err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", events[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got == nil || got.ResponseBody != `{"items":[]}` {
		t.Errorf("event body not round-tripped: %+v", got)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 || usage[0].Purpose != "quiz-gen" || usage[0].Calls != 3 {
		t.Errorf("usage = %+v", usage)
	}
}

func TestBadgeCodes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	codes, err := repo.BadgeCodes(ctx, "mom")
	if err != nil {
		t.Fatalf("badge codes (empty): %v", err)
	}
	if len(codes) != 0 {
		t.Fatal("expected no badges yet")
	}

	awards := []BadgeEventData{
		{UserID: "mom", Badge: "first-session", SessionID: "s1", Reason: "first completed session"},
		{UserID: "mom", Badge: "perfect-score", SessionID: "s1", Reason: "all answers correct"},
		{UserID: "other", Badge: "first-session", SessionID: "s2"},
	}
	for _, a := range awards {
		if err := repo.AppendBadge(ctx, a); err != nil {
			t.Fatalf("append badge: %v", err)
		}
	}

	codes, err = repo.BadgeCodes(ctx, "mom")
	if err != nil {
		t.Fatalf("badge codes: %v", err)
	}
	if len(codes) != 2 || !codes["first-session"] || !codes["perfect-score"] {
		t.Errorf("codes = %v", codes)
	}
}

func TestGenerationCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []GenerationEventData{
		{UserID: "mom", Week: 20, ContentType: "quiz", Attempt: 1, ParseOK: true, ValidCount: 2, Success: false,
			RejectionReasons: []string{"near-duplicate of existing question"}},
		{UserID: "mom", Week: 20, ContentType: "quiz", Attempt: 2, ParseOK: true, ValidCount: 5, Success: true},
		{UserID: "other", Week: 8, ContentType: "flashcard", Attempt: 1, ParseOK: true, ValidCount: 7, Success: true},
	}
	for _, a := range attempts {
		if err := repo.AppendGeneration(ctx, a); err != nil {
			t.Fatalf("append generation: %v", err)
		}
	}

	total, success, err := repo.GenerationCounts(ctx, "mom")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 2 || success != 1 {
		t.Errorf("counts = %d total / %d success, want 2/1", total, success)
	}
}

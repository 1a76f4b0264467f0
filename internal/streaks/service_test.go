package streaks

import (
	"context"
	"testing"
	"time"

	"github.com/bumpwise/bumpquiz/internal/store"
)

// fakeStreakRepo is an in-memory store.StreakRepo.
type fakeStreakRepo struct {
	rows map[string]*store.Streak
}

func newFakeStreakRepo() *fakeStreakRepo {
	return &fakeStreakRepo{rows: make(map[string]*store.Streak)}
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

// fakeEventRepo records badge events; the embedded interface covers the
// methods this package never calls.
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

func newTestService() (*Service, *fakeStreakRepo, *fakeEventRepo) {
	streaks := newFakeStreakRepo()
	events := &fakeEventRepo{}
	return NewService(streaks, events), streaks, events
}

func completion(correct, total, lifetime int) CompletionInput {
	return CompletionInput{
		UserID:            "u1",
		SessionID:         "sess-1",
		Week:              20,
		Correct:           correct,
		Total:             total,
		CompletedSessions: lifetime,
	}
}

func TestFirstSessionBadge(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	badges, err := svc.OnSessionComplete(ctx, completion(2, 3, 1))
	if err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}
	if len(badges) != 1 || badges[0] != BadgeFirstSession {
		t.Fatalf("badges = %v, want [first-session]", badges)
	}
	if len(events.badges) != 1 {
		t.Errorf("persisted %d badge events, want 1", len(events.badges))
	}

	// The badge is one-time; a second session must not re-award it.
	badges, err = svc.OnSessionComplete(ctx, completion(2, 3, 2))
	if err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}
	for _, b := range badges {
		if b == BadgeFirstSession {
			t.Error("first-session badge awarded twice")
		}
	}
}

func TestPerfectScoreBadge(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	badges, err := svc.OnSessionComplete(ctx, completion(3, 3, 2))
	if err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}
	if !contains(badges, BadgePerfectScore) {
		t.Errorf("badges = %v, want perfect-score included", badges)
	}

	badges, err = svc.OnSessionComplete(ctx, completion(2, 3, 3))
	if err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}
	if contains(badges, BadgePerfectScore) {
		t.Error("imperfect score earned perfect-score badge")
	}
}

func TestStreakAdvancesAcrossDays(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for day := 0; day < 3; day++ {
		d := day
		svc.now = func() time.Time { return base.AddDate(0, 0, d) }
		if _, err := svc.OnSessionComplete(ctx, completion(1, 3, day+1)); err != nil {
			t.Fatalf("OnSessionComplete day %d: %v", day, err)
		}
	}

	streak := repo.rows["u1"]
	if streak.Current != 3 {
		t.Errorf("Current = %d, want 3", streak.Current)
	}
	if streak.Longest != 3 {
		t.Errorf("Longest = %d, want 3", streak.Longest)
	}
}

func TestStreakSameDayNoDouble(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		if _, err := svc.OnSessionComplete(ctx, completion(1, 3, i+1)); err != nil {
			t.Fatalf("OnSessionComplete: %v", err)
		}
	}

	if got := repo.rows["u1"].Current; got != 1 {
		t.Errorf("Current = %d after same-day sessions, want 1", got)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	if _, err := svc.OnSessionComplete(ctx, completion(1, 3, 1)); err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}
	svc.now = func() time.Time { return base.AddDate(0, 0, 1) }
	if _, err := svc.OnSessionComplete(ctx, completion(1, 3, 2)); err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}

	// Skip two days.
	svc.now = func() time.Time { return base.AddDate(0, 0, 4) }
	if _, err := svc.OnSessionComplete(ctx, completion(1, 3, 3)); err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}

	streak := repo.rows["u1"]
	if streak.Current != 1 {
		t.Errorf("Current = %d after gap, want 1", streak.Current)
	}
	if streak.Longest != 2 {
		t.Errorf("Longest = %d, want 2 preserved", streak.Longest)
	}
}

func TestStreakMilestoneBadges(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var all []Badge
	for day := 0; day < 7; day++ {
		d := day
		svc.now = func() time.Time { return base.AddDate(0, 0, d) }
		badges, err := svc.OnSessionComplete(ctx, completion(1, 3, day+2))
		if err != nil {
			t.Fatalf("OnSessionComplete day %d: %v", day, err)
		}
		all = append(all, badges...)
	}

	if !contains(all, BadgeStreak3) {
		t.Error("3-day milestone badge never awarded")
	}
	if !contains(all, BadgeStreak7) {
		t.Error("7-day milestone badge never awarded")
	}
	if contains(all, BadgeStreak30) {
		t.Error("30-day badge awarded after 7 days")
	}
}

func TestWeekCompleteBadge(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in := completion(1, 3, 2)
	in.WeekItemsConsumed = true
	badges, err := svc.OnSessionComplete(ctx, in)
	if err != nil {
		t.Fatalf("OnSessionComplete: %v", err)
	}
	if !contains(badges, BadgeWeekComplete) {
		t.Errorf("badges = %v, want week-complete included", badges)
	}
}

func contains(badges []Badge, want Badge) bool {
	for _, b := range badges {
		if b == want {
			return true
		}
	}
	return false
}

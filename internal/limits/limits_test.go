package limits

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bumpwise/bumpquiz/internal/store"
)

// fakeLimitsRepo is an in-memory store.LimitsRepo with lazy reset
// semantics matching the real one.
type fakeLimitsRepo struct {
	mu   sync.Mutex
	rows map[string]*store.Limits
}

func newFakeLimitsRepo() *fakeLimitsRepo {
	return &fakeLimitsRepo{rows: make(map[string]*store.Limits)}
}

func (f *fakeLimitsRepo) Current(_ context.Context, userID string, dayStart time.Time) (*store.Limits, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[userID]
	if !ok {
		row = &store.Limits{UserID: userID, ResetAt: dayStart}
		f.rows[userID] = row
	}
	if row.ResetAt.Before(dayStart) {
		row.SessionsToday = 0
		row.FlipsToday = 0
		row.PointsToday = 0
		row.ResetAt = dayStart
	}
	out := *row
	return &out, nil
}

func (f *fakeLimitsRepo) AddSessions(_ context.Context, userID string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[userID].SessionsToday += delta
	return nil
}

func (f *fakeLimitsRepo) AddFlips(_ context.Context, userID string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[userID].FlipsToday += delta
	return nil
}

func (f *fakeLimitsRepo) AddPoints(_ context.Context, userID string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[userID].PointsToday += delta
	f.rows[userID].PointsTotal += delta
	return nil
}

func newTestService(repo store.LimitsRepo) *Service {
	return NewService(repo, Config{
		MaxSessionsPerDay: 2,
		FlipPointCeiling:  12,
		PointsPerFlip:     5,
		PointsPerQuestion: 10,
	})
}

func TestCanStartSession(t *testing.T) {
	repo := newFakeLimitsRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	ok, err := svc.CanStartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("CanStartSession: %v", err)
	}
	if !ok {
		t.Error("fresh user blocked from starting a session")
	}

	for i := 0; i < 2; i++ {
		if err := svc.RecordSessionComplete(ctx, "u1", 30); err != nil {
			t.Fatalf("RecordSessionComplete: %v", err)
		}
	}

	ok, err = svc.CanStartSession(ctx, "u1")
	if err != nil {
		t.Fatalf("CanStartSession: %v", err)
	}
	if ok {
		t.Error("user at cap allowed to start a session")
	}
}

func TestRecordSessionCompleteCreditsPoints(t *testing.T) {
	repo := newFakeLimitsRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if err := svc.RecordSessionComplete(ctx, "u1", 30); err != nil {
		t.Fatalf("RecordSessionComplete: %v", err)
	}

	cur, err := svc.Current(ctx, "u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur.SessionsToday != 1 {
		t.Errorf("SessionsToday = %d, want 1", cur.SessionsToday)
	}
	if cur.PointsToday != 30 || cur.PointsTotal != 30 {
		t.Errorf("points = %d today / %d total, want 30/30", cur.PointsToday, cur.PointsTotal)
	}
}

func TestAwardFlipCappedByCeiling(t *testing.T) {
	repo := newFakeLimitsRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	// Ceiling 12, 5 points per flip: awards run 5, 5, 2, 0.
	wantAwards := []int{5, 5, 2, 0}
	for i, want := range wantAwards {
		got, err := svc.AwardFlip(ctx, "u1")
		if err != nil {
			t.Fatalf("AwardFlip #%d: %v", i+1, err)
		}
		if got != want {
			t.Errorf("AwardFlip #%d = %d, want %d", i+1, got, want)
		}
	}

	cur, err := svc.Current(ctx, "u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur.FlipsToday != 4 {
		t.Errorf("FlipsToday = %d, want 4 (flips succeed even at zero award)", cur.FlipsToday)
	}
	if cur.PointsToday != 12 {
		t.Errorf("PointsToday = %d, want ceiling 12", cur.PointsToday)
	}
}

func TestDailyResetRestoresHeadroom(t *testing.T) {
	repo := newFakeLimitsRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }

	for i := 0; i < 3; i++ {
		if _, err := svc.AwardFlip(ctx, "u1"); err != nil {
			t.Fatalf("AwardFlip: %v", err)
		}
	}
	if err := svc.RecordSessionComplete(ctx, "u1", 20); err != nil {
		t.Fatalf("RecordSessionComplete: %v", err)
	}

	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }

	cur, err := svc.Current(ctx, "u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur.SessionsToday != 0 || cur.FlipsToday != 0 || cur.PointsToday != 0 {
		t.Errorf("daily counters not reset: %+v", cur)
	}
	if cur.PointsTotal != 32 {
		t.Errorf("PointsTotal = %d, want lifetime 32 preserved", cur.PointsTotal)
	}

	got, err := svc.AwardFlip(ctx, "u1")
	if err != nil {
		t.Fatalf("AwardFlip: %v", err)
	}
	if got != 5 {
		t.Errorf("award after reset = %d, want full 5", got)
	}
}

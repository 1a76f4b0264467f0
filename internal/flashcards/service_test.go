package flashcards

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
)

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
		if it.ID == id {
			if it.ConsumedAt != nil {
				return false, nil
			}
			it.ConsumedAt = &at
			return true, nil
		}
	}
	return false, nil
}

type fakeLimitsRepo struct {
	rows map[string]*store.Limits
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

type fakeGenerator struct {
	store *fakeItemRepo
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
			ID:          fmt.Sprintf("card-%d-%d", f.calls, i+1),
			UserID:      req.Profile.UserID,
			Week:        req.Week,
			ContentType: req.ContentType,
			Front:       fmt.Sprintf("Front %d", i+1),
			Back:        fmt.Sprintf("Back %d", i+1),
		}
	}
	// The real pipeline persists accepted items before returning them.
	_ = f.store.SaveAll(context.Background(), items)
	return items, nil
}

type fixedProfiles struct{}

func (fixedProfiles) Get(_ context.Context, userID string) (profile.Profile, error) {
	return profile.Profile{
		UserID:  userID,
		Name:    "Maya",
		DueDate: time.Date(2026, 7, 19, 0, 0, 0, 0, time.UTC),
	}, nil
}

type cardFixture struct {
	svc    *Service
	items  *fakeItemRepo
	gen    *fakeGenerator
	limits *fakeLimitsRepo
}

func newCardFixture() *cardFixture {
	items := &fakeItemRepo{}
	gen := &fakeGenerator{store: items}
	limitsRepo := &fakeLimitsRepo{rows: make(map[string]*store.Limits)}

	limSvc := limits.NewService(limitsRepo, limits.Config{
		MaxSessionsPerDay: 5,
		FlipPointCeiling:  12,
		PointsPerFlip:     5,
		PointsPerQuestion: 10,
	})

	svc := NewService(items, gen, limSvc, fixedProfiles{}, Config{CardsPerWeek: 3})
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return &cardFixture{svc: svc, items: items, gen: gen, limits: limitsRepo}
}

func TestGetOrGenerateCreatesDeckOnce(t *testing.T) {
	fx := newCardFixture()
	ctx := context.Background()

	deck, err := fx.svc.GetOrGenerate(ctx, "u1", 18)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if deck.Week != 18 {
		t.Errorf("week = %d, want 18", deck.Week)
	}
	if len(deck.Cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(deck.Cards))
	}
	if fx.gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", fx.gen.calls)
	}

	again, err := fx.svc.GetOrGenerate(ctx, "u1", 18)
	if err != nil {
		t.Fatalf("repeat GetOrGenerate: %v", err)
	}
	if fx.gen.calls != 1 {
		t.Errorf("repeat access regenerated the deck: %d calls", fx.gen.calls)
	}
	if len(again.Cards) != 3 {
		t.Errorf("repeat deck has %d cards, want 3", len(again.Cards))
	}
}

func TestGetOrGenerateDerivesWeekFromDueDate(t *testing.T) {
	fx := newCardFixture()

	deck, err := fx.svc.GetOrGenerate(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	// Due 2026-07-19, now 2026-03-01: 140 days out = week 20.
	if deck.Week != 20 {
		t.Errorf("derived week = %d, want 20", deck.Week)
	}
}

func TestGetOrGenerateScopedPerWeek(t *testing.T) {
	fx := newCardFixture()
	ctx := context.Background()

	if _, err := fx.svc.GetOrGenerate(ctx, "u1", 18); err != nil {
		t.Fatalf("GetOrGenerate week 18: %v", err)
	}
	if _, err := fx.svc.GetOrGenerate(ctx, "u1", 19); err != nil {
		t.Fatalf("GetOrGenerate week 19: %v", err)
	}
	if fx.gen.calls != 2 {
		t.Errorf("generator called %d times, want one per week", fx.gen.calls)
	}
}

func TestGetOrGeneratePropagatesExhaustion(t *testing.T) {
	fx := newCardFixture()
	fx.gen.err = &quizgen.ExhaustedError{Attempts: 3}

	_, err := fx.svc.GetOrGenerate(context.Background(), "u1", 18)
	var exhausted *quizgen.ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Errorf("error = %v, want ExhaustedError", err)
	}
}

func TestFlipAwardsOnce(t *testing.T) {
	fx := newCardFixture()
	ctx := context.Background()

	deck, err := fx.svc.GetOrGenerate(ctx, "u1", 18)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	cardID := deck.Cards[0].ID

	first, err := fx.svc.Flip(ctx, "u1", cardID)
	if err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if first.AlreadyFlipped {
		t.Error("first flip reported as already flipped")
	}
	if first.AwardedPoints != 5 {
		t.Errorf("first flip awarded %d, want 5", first.AwardedPoints)
	}
	if first.Back != deck.Cards[0].Back {
		t.Errorf("Back = %q, want %q", first.Back, deck.Cards[0].Back)
	}

	second, err := fx.svc.Flip(ctx, "u1", cardID)
	if err != nil {
		t.Fatalf("second Flip: %v", err)
	}
	if !second.AlreadyFlipped || second.AwardedPoints != 0 {
		t.Errorf("second flip = %+v, want already flipped with 0 points", second)
	}
	if second.Back != first.Back {
		t.Error("second flip hides the back")
	}

	row := fx.limits.rows["u1"]
	if row.FlipsToday != 1 || row.PointsToday != 5 {
		t.Errorf("ledger = %+v, want 1 flip and 5 points", row)
	}
}

func TestFlipPointsCappedButFlipSucceeds(t *testing.T) {
	fx := newCardFixture()
	ctx := context.Background()

	deck, err := fx.svc.GetOrGenerate(ctx, "u1", 18)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}

	// Ceiling 12, 5 per flip: awards run 5, 5, 2.
	want := []int{5, 5, 2}
	for i, cardID := range []string{deck.Cards[0].ID, deck.Cards[1].ID, deck.Cards[2].ID} {
		res, err := fx.svc.Flip(ctx, "u1", cardID)
		if err != nil {
			t.Fatalf("Flip %d: %v", i+1, err)
		}
		if res.AwardedPoints != want[i] {
			t.Errorf("flip %d awarded %d, want %d", i+1, res.AwardedPoints, want[i])
		}
	}

	row := fx.limits.rows["u1"]
	if row.FlipsToday != 3 || row.PointsToday != 12 {
		t.Errorf("ledger = %+v, want 3 flips and 12 points at the cap", row)
	}
}

func TestFlipUnknownCard(t *testing.T) {
	fx := newCardFixture()

	_, err := fx.svc.Flip(context.Background(), "u1", "ghost")
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFlipForeignCardHidden(t *testing.T) {
	fx := newCardFixture()
	ctx := context.Background()

	deck, err := fx.svc.GetOrGenerate(ctx, "u1", 18)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}

	_, err = fx.svc.Flip(ctx, "u2", deck.Cards[0].ID)
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want ErrNotFound for another user's card", err)
	}
}

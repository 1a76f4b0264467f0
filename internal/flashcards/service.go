// Package flashcards serves per-week flashcard decks and tracks flips.
package flashcards

import (
	"context"
	"fmt"
	"time"

	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/quizgen"
	"github.com/bumpwise/bumpquiz/internal/store"
)

// Config controls deck sizing.
type Config struct {
	// CardsPerWeek is the deck size generated for a new (user, week).
	CardsPerWeek int
}

// DefaultConfig returns the standard deck settings.
func DefaultConfig() Config {
	return Config{CardsPerWeek: 7}
}

// Generator produces the deck's card material.
type Generator interface {
	Generate(ctx context.Context, req quizgen.Request) ([]*store.ContentItem, error)
}

// ProfileSource resolves a user's profile.
type ProfileSource interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
}

// ErrNotFound is returned for an unknown or foreign card.
type ErrNotFound struct {
	CardID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("flashcard %s not found", e.CardID)
}

// CardView is one card as shown to the user.
type CardView struct {
	ID       string `json:"id"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Consumed bool   `json:"consumed"`
}

// Deck is a user's flashcard set for one week.
type Deck struct {
	Week  int        `json:"week"`
	Cards []CardView `json:"cards"`
}

// FlipResult reports the outcome of revealing a card's back.
type FlipResult struct {
	CardID         string `json:"card_id"`
	Back           string `json:"back"`
	AwardedPoints  int    `json:"awarded_points"`
	AlreadyFlipped bool   `json:"already_flipped"`
}

// Service owns the flashcard deck lifecycle. Decks are generated once
// per (user, week) and reused afterwards.
type Service struct {
	items    store.ContentItemRepo
	gen      Generator
	limits   *limits.Service
	profiles ProfileSource
	config   Config
	now      func() time.Time
}

// NewService wires the flashcard service to its collaborators.
func NewService(items store.ContentItemRepo, gen Generator, lim *limits.Service, profiles ProfileSource, cfg Config) *Service {
	return &Service{
		items:    items,
		gen:      gen,
		limits:   lim,
		profiles: profiles,
		config:   cfg,
		now:      time.Now,
	}
}

// GetOrGenerate returns the user's deck for the resolved week, creating
// it through the generation pipeline on first access. weekOverride of 0
// derives the week from the profile's due date.
func (s *Service) GetOrGenerate(ctx context.Context, userID string, weekOverride int) (*Deck, error) {
	prof, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	week := prof.Week(weekOverride, s.now().UTC())

	existing, err := s.items.ForWeek(ctx, userID, week, quizgen.TypeFlashcard)
	if err != nil {
		return nil, fmt.Errorf("load flashcards: %w", err)
	}
	if len(existing) > 0 {
		return deckOf(week, existing), nil
	}

	items, err := s.gen.Generate(ctx, quizgen.Request{
		Profile:     prof,
		Week:        week,
		ContentType: quizgen.TypeFlashcard,
		Count:       s.config.CardsPerWeek,
	})
	if err != nil {
		return nil, err
	}
	return deckOf(week, items), nil
}

// Flip reveals a card's back. The first flip of a card marks it
// consumed and credits capped flip points; later flips only reveal.
func (s *Service) Flip(ctx context.Context, userID, cardID string) (*FlipResult, error) {
	card, err := s.items.Get(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("load flashcard: %w", err)
	}
	if card == nil || card.UserID != userID || card.ContentType != quizgen.TypeFlashcard {
		return nil, &ErrNotFound{CardID: cardID}
	}

	first, err := s.items.MarkConsumed(ctx, cardID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark consumed: %w", err)
	}

	result := &FlipResult{CardID: cardID, Back: card.Back, AlreadyFlipped: !first}
	if first {
		awarded, err := s.limits.AwardFlip(ctx, userID)
		if err != nil {
			return nil, err
		}
		result.AwardedPoints = awarded
	}
	return result, nil
}

func deckOf(week int, items []*store.ContentItem) *Deck {
	cards := make([]CardView, len(items))
	for i, it := range items {
		cards[i] = CardView{
			ID:       it.ID,
			Front:    it.Front,
			Back:     it.Back,
			Consumed: it.ConsumedAt != nil,
		}
	}
	return &Deck{Week: week, Cards: cards}
}

package streaks

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bumpwise/bumpquiz/internal/store"
)

const dayFormat = "2006-01-02"

// CompletionInput describes one completed session for streak and badge
// evaluation.
type CompletionInput struct {
	UserID    string
	SessionID string
	Week      int

	// Correct and Total describe the session's final score.
	Correct int
	Total   int

	// CompletedSessions is the user's lifetime completed session count,
	// including this one.
	CompletedSessions int

	// WeekItemsConsumed reports whether every flashcard for the week is
	// consumed, for the week-complete badge.
	WeekItemsConsumed bool
}

// Service updates streaks and evaluates badge awards.
type Service struct {
	streaks store.StreakRepo
	events  store.EventRepo
	now     func() time.Time
}

// NewService creates a Service over the given repositories.
func NewService(streaks store.StreakRepo, events store.EventRepo) *Service {
	return &Service{streaks: streaks, events: events, now: time.Now}
}

// OnSessionComplete advances the user's streak and returns any newly
// awarded badges. Each badge is awarded at most once per user.
func (s *Service) OnSessionComplete(ctx context.Context, in CompletionInput) ([]Badge, error) {
	streak, err := s.advanceStreak(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	awarded, err := s.events.BadgeCodes(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("load awarded badges: %w", err)
	}

	var badges []Badge
	award := func(b Badge, reason string) {
		if b == "" || awarded[string(b)] {
			return
		}
		badges = append(badges, b)
		s.persist(ctx, in, b, reason)
	}

	if in.CompletedSessions == 1 {
		award(BadgeFirstSession, "Completed the first quiz session")
	}
	if in.Total > 0 && in.Correct == in.Total {
		award(BadgePerfectScore, fmt.Sprintf("All %d questions correct", in.Total))
	}
	award(streakBadge(streak.Current), fmt.Sprintf("%d-day learning streak", streak.Current))
	if in.WeekItemsConsumed {
		award(BadgeWeekComplete, fmt.Sprintf("Finished all week %d content", in.Week))
	}

	return badges, nil
}

// Current returns the user's streak state, zero-valued if none exists.
func (s *Service) Current(ctx context.Context, userID string) (*store.Streak, error) {
	streak, err := s.streaks.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		return &store.Streak{UserID: userID}, nil
	}
	return streak, nil
}

// advanceStreak marks today active: consecutive days extend the streak,
// a gap resets it to 1, and a repeat on the same day changes nothing.
func (s *Service) advanceStreak(ctx context.Context, userID string) (*store.Streak, error) {
	today := s.now().UTC().Format(dayFormat)

	streak, err := s.streaks.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		streak = &store.Streak{UserID: userID}
	}

	switch streak.LastActiveOn {
	case today:
		return streak, nil
	case s.yesterday():
		streak.Current++
	default:
		streak.Current = 1
	}
	streak.LastActiveOn = today
	if streak.Current > streak.Longest {
		streak.Longest = streak.Current
	}

	if err := s.streaks.Upsert(ctx, streak); err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}
	return streak, nil
}

func (s *Service) yesterday() string {
	return s.now().UTC().AddDate(0, 0, -1).Format(dayFormat)
}

// persist records one badge award. Logging must never fail completion.
func (s *Service) persist(ctx context.Context, in CompletionInput, badge Badge, reason string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendBadge(ctx, store.BadgeEventData{
		UserID:    in.UserID,
		Badge:     string(badge),
		SessionID: in.SessionID,
		Reason:    reason,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log badge event: %v\n", err)
	}
}

// Package limits is the sole mutator of a user's daily counters and
// point totals.
package limits

import (
	"context"
	"fmt"
	"time"

	"github.com/bumpwise/bumpquiz/internal/store"
)

// Config holds the daily caps and award sizes.
type Config struct {
	// MaxSessionsPerDay caps how many quiz sessions a user may start
	// per day.
	MaxSessionsPerDay int

	// FlipPointCeiling caps how many points flashcard flips can award
	// per day.
	FlipPointCeiling int

	// PointsPerFlip is the nominal award for one flashcard flip.
	PointsPerFlip int

	// PointsPerQuestion is the award for one correctly answered
	// session question.
	PointsPerQuestion int
}

// DefaultConfig returns the standard caps.
func DefaultConfig() Config {
	return Config{
		MaxSessionsPerDay: 5,
		FlipPointCeiling:  50,
		PointsPerFlip:     5,
		PointsPerQuestion: 10,
	}
}

// Service wraps the ledger repository with cap policy. The repository
// performs lazy watermark resets and atomic increments; the service
// decides how much to award.
type Service struct {
	repo   store.LimitsRepo
	config Config
	now    func() time.Time
}

// NewService creates a Service over the given repository.
func NewService(repo store.LimitsRepo, cfg Config) *Service {
	return &Service{repo: repo, config: cfg, now: time.Now}
}

// Config returns the service's cap configuration.
func (s *Service) Config() Config {
	return s.config
}

// dayStart returns midnight UTC of the current day, the reset watermark
// boundary.
func (s *Service) dayStart() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Current returns the user's ledger state after a lazy daily reset.
func (s *Service) Current(ctx context.Context, userID string) (*store.Limits, error) {
	return s.repo.Current(ctx, userID, s.dayStart())
}

// CanStartSession reports whether the user is under the daily session
// cap. The counter itself is incremented at completion, not here.
func (s *Service) CanStartSession(ctx context.Context, userID string) (bool, error) {
	cur, err := s.repo.Current(ctx, userID, s.dayStart())
	if err != nil {
		return false, err
	}
	return cur.SessionsToday < s.config.MaxSessionsPerDay, nil
}

// RecordSessionComplete credits a finished session: the session counter
// and the earned points, uncapped.
func (s *Service) RecordSessionComplete(ctx context.Context, userID string, points int) error {
	if _, err := s.repo.Current(ctx, userID, s.dayStart()); err != nil {
		return err
	}
	if err := s.repo.AddSessions(ctx, userID, 1); err != nil {
		return fmt.Errorf("increment session counter: %w", err)
	}
	if points > 0 {
		if err := s.repo.AddPoints(ctx, userID, points); err != nil {
			return fmt.Errorf("credit session points: %w", err)
		}
	}
	return nil
}

// AwardFlip credits one flashcard flip and returns the points actually
// awarded. The award is reduced to the remaining daily headroom, down
// to zero; the flip itself always succeeds.
func (s *Service) AwardFlip(ctx context.Context, userID string) (int, error) {
	cur, err := s.repo.Current(ctx, userID, s.dayStart())
	if err != nil {
		return 0, err
	}

	award := s.config.PointsPerFlip
	if headroom := s.config.FlipPointCeiling - cur.PointsToday; award > headroom {
		award = headroom
	}
	if award < 0 {
		award = 0
	}

	if err := s.repo.AddFlips(ctx, userID, 1); err != nil {
		return 0, fmt.Errorf("increment flip counter: %w", err)
	}
	if award > 0 {
		if err := s.repo.AddPoints(ctx, userID, award); err != nil {
			return 0, fmt.Errorf("credit flip points: %w", err)
		}
	}
	return award, nil
}

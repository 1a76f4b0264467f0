package store

import (
	"context"
	"fmt"

	"github.com/bumpwise/bumpquiz/ent"
	"github.com/bumpwise/bumpquiz/ent/userstreak"
)

// streakRepo implements StreakRepo using the ent client.
type streakRepo struct {
	client *ent.Client
}

func (r *streakRepo) Get(ctx context.Context, userID string) (*Streak, error) {
	row, err := r.client.UserStreak.Query().
		Where(userstreak.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query streak: %w", err)
	}

	return &Streak{
		UserID:       row.UserID,
		Current:      row.Current,
		Longest:      row.Longest,
		LastActiveOn: row.LastActiveOn,
	}, nil
}

func (r *streakRepo) Upsert(ctx context.Context, s *Streak) error {
	n, err := r.client.UserStreak.Update().
		Where(userstreak.UserID(s.UserID)).
		SetCurrent(s.Current).
		SetLongest(s.Longest).
		SetLastActiveOn(s.LastActiveOn).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.UserStreak.Create().
		SetUserID(s.UserID).
		SetCurrent(s.Current).
		SetLongest(s.Longest).
		SetLastActiveOn(s.LastActiveOn).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create streak: %w", err)
	}
	return nil
}

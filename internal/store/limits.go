package store

import (
	"context"
	"fmt"
	"time"

	"github.com/bumpwise/bumpquiz/ent"
	"github.com/bumpwise/bumpquiz/ent/userlimit"
)

// limitsRepo implements LimitsRepo using the ent client. The Add* methods
// compile to single UPDATE ... SET x = x + ? statements, so increments
// are atomic at the database level and never read-modify-write.
type limitsRepo struct {
	client *ent.Client
}

func (r *limitsRepo) Current(ctx context.Context, userID string, dayStart time.Time) (*Limits, error) {
	row, err := r.client.UserLimit.Query().
		Where(userlimit.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		row, err = r.client.UserLimit.Create().
			SetUserID(userID).
			SetResetAt(dayStart).
			Save(ctx)
		if err != nil && ent.IsConstraintError(err) {
			// Lost a create race with a parallel request; the row exists now.
			row, err = r.client.UserLimit.Query().
				Where(userlimit.UserID(userID)).
				Only(ctx)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("ensure limits row: %w", err)
	}

	// Lazy daily reset: the watermark trailing dayStart means the counters
	// belong to a previous day.
	if row.ResetAt.Before(dayStart) {
		row, err = r.client.UserLimit.UpdateOne(row).
			SetSessionsToday(0).
			SetFlipsToday(0).
			SetPointsToday(0).
			SetResetAt(dayStart).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("reset daily counters: %w", err)
		}
	}

	return &Limits{
		UserID:        row.UserID,
		SessionsToday: row.SessionsToday,
		FlipsToday:    row.FlipsToday,
		PointsToday:   row.PointsToday,
		PointsTotal:   row.PointsTotal,
		ResetAt:       row.ResetAt,
	}, nil
}

func (r *limitsRepo) AddSessions(ctx context.Context, userID string, delta int) error {
	return r.add(ctx, userID, func(u *ent.UserLimitUpdate) {
		u.AddSessionsToday(delta)
	})
}

func (r *limitsRepo) AddFlips(ctx context.Context, userID string, delta int) error {
	return r.add(ctx, userID, func(u *ent.UserLimitUpdate) {
		u.AddFlipsToday(delta)
	})
}

func (r *limitsRepo) AddPoints(ctx context.Context, userID string, delta int) error {
	return r.add(ctx, userID, func(u *ent.UserLimitUpdate) {
		u.AddPointsToday(delta)
		u.AddPointsTotal(delta)
	})
}

func (r *limitsRepo) add(ctx context.Context, userID string, apply func(*ent.UserLimitUpdate)) error {
	upd := r.client.UserLimit.Update().Where(userlimit.UserID(userID))
	apply(upd)
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("increment limits: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("increment limits: no row for user %q", userID)
	}
	return nil
}

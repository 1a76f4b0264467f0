package store

import (
	"context"
	"fmt"

	"github.com/bumpwise/bumpquiz/ent"
	"github.com/bumpwise/bumpquiz/ent/userprofile"
	"github.com/bumpwise/bumpquiz/internal/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &profile.Profile{
		UserID:    row.UserID,
		Name:      row.Name,
		DueDate:   row.DueDate,
		Interests: row.Interests,
	}, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	n, err := r.client.UserProfile.Update().
		Where(userprofile.UserID(p.UserID)).
		SetName(p.Name).
		SetDueDate(p.DueDate).
		SetInterests(p.Interests).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.UserProfile.Create().
		SetUserID(p.UserID).
		SetName(p.Name).
		SetDueDate(p.DueDate).
		SetInterests(p.Interests).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

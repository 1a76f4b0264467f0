package profile

import (
	"context"
	"fmt"
)

// Repo is the persistence surface the resolver needs.
type Repo interface {
	// Get returns a user's profile, or nil if none is stored.
	Get(ctx context.Context, userID string) (*Profile, error)

	Upsert(ctx context.Context, p *Profile) error
}

// ErrNoProfile is returned when a user has not set up a profile yet.
type ErrNoProfile struct {
	UserID string
}

func (e *ErrNoProfile) Error() string {
	return fmt.Sprintf("no profile for user %s", e.UserID)
}

// Resolver loads profiles from storage for the services that
// personalize content.
type Resolver struct {
	repo Repo
}

// NewResolver returns a Resolver backed by repo.
func NewResolver(repo Repo) *Resolver {
	return &Resolver{repo: repo}
}

// Get returns the user's stored profile, or ErrNoProfile.
func (r *Resolver) Get(ctx context.Context, userID string) (Profile, error) {
	p, err := r.repo.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	if p == nil {
		return Profile{}, &ErrNoProfile{UserID: userID}
	}
	return *p, nil
}

// Save stores the profile.
func (r *Resolver) Save(ctx context.Context, p Profile) error {
	return r.repo.Upsert(ctx, &p)
}

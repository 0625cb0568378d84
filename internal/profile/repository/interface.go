package repository

import (
	"context"

	"personal-task-management/internal/profile"
)

// Repository is the composed interface for the profile data store.
type Repository interface {
	ProfileRepository
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProfileRepository defines all data access methods for the Profile entity.
type ProfileRepository interface {
	// GetOneProfile returns a zero-value Profile (UserID == "") when none is saved.
	GetOneProfile(ctx context.Context, userID string) (profile.Profile, error)
	UpsertProfile(ctx context.Context, opt UpsertProfileOptions) (profile.Profile, error)
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/profile"
	repo "personal-task-management/internal/profile/repository"
)

// Detail returns the caller's profile, or the defaults when nothing is saved yet.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (profile.DetailOutput, error) {
	p, err := uc.load(ctx, sc)
	if err != nil {
		return profile.DetailOutput{}, err
	}
	return profile.DetailOutput{Profile: p}, nil
}

// Update applies the given fields on top of the current profile and saves it.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input profile.UpdateInput) (profile.UpdateOutput, error) {
	if input.TimeZone != nil {
		tz := strings.TrimSpace(*input.TimeZone)
		// "" clears the preference; time.LoadLocation would read it as UTC.
		if tz != "" {
			if _, err := time.LoadLocation(tz); err != nil {
				return profile.UpdateOutput{}, fmt.Errorf("%w: %q", profile.ErrInvalidTimeZone, tz)
			}
		}
		input.TimeZone = &tz
	}

	var saved profile.Profile
	err := uc.repo.InTx(ctx, func(ctx context.Context) error {
		p, err := uc.load(ctx, sc)
		if err != nil {
			return err
		}

		saved, err = uc.repo.UpsertProfile(ctx, repo.UpsertProfileOptions{
			UserID:            sc.UserID,
			Name:              trimmed(input.Name, p.Name),
			Bio:               coalesce(input.Bio, p.Bio),
			Location:          trimmed(input.Location, p.Location),
			Website:           trimmed(input.Website, p.Website),
			DarkMode:          coalesce(input.DarkMode, p.DarkMode),
			TimeZone:          coalesce(input.TimeZone, p.TimeZone),
			NotificationEmail: coalesce(input.NotificationEmail, p.NotificationEmail),
			NotificationWeb:   coalesce(input.NotificationWeb, p.NotificationWeb),
			Phone:             trimmed(input.Phone, p.Phone),
			JobTitle:          trimmed(input.JobTitle, p.JobTitle),
		})
		if err != nil {
			uc.l.Errorf(ctx, "profile.usecase.Update UpsertProfile: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return profile.UpdateOutput{}, err
	}
	return profile.UpdateOutput{Profile: saved}, nil
}

func (uc *implUseCase) load(ctx context.Context, sc model.Scope) (profile.Profile, error) {
	p, err := uc.repo.GetOneProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "profile.usecase.load GetOneProfile: %v", err)
		return profile.Profile{}, err
	}
	if p.UserID == "" {
		return profile.Default(sc.UserID), nil
	}
	return p, nil
}

func coalesce[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func trimmed(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return strings.TrimSpace(*v)
}

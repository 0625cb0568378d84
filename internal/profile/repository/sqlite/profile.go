package sqlite

import (
	"context"
	"database/sql"
	"time"

	"personal-task-management/internal/profile"
	repo "personal-task-management/internal/profile/repository"
)

const profileColumns = `user_id, name, bio, location, website, dark_mode, time_zone,
	notification_email, notification_web, phone, job_title, created_at, updated_at`

// GetOneProfile reads the saved profile of a user.
func (r *implRepository) GetOneProfile(ctx context.Context, userID string) (profile.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = ?`

	var p profile.Profile
	err := r.db.Conn(ctx).QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Bio, &p.Location, &p.Website, &p.DarkMode, &p.TimeZone,
		&p.NotificationEmail, &p.NotificationWeb, &p.Phone, &p.JobTitle, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return profile.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProfile"), err)
		return profile.Profile{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpsertProfile inserts the row or overwrites every field but created_at.
func (r *implRepository) UpsertProfile(ctx context.Context, opt repo.UpsertProfileOptions) (profile.Profile, error) {
	const query = `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			bio = excluded.bio,
			location = excluded.location,
			website = excluded.website,
			dark_mode = excluded.dark_mode,
			time_zone = excluded.time_zone,
			notification_email = excluded.notification_email,
			notification_web = excluded.notification_web,
			phone = excluded.phone,
			job_title = excluded.job_title,
			updated_at = excluded.updated_at`

	now := time.Now().UTC()
	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		opt.UserID, opt.Name, opt.Bio, opt.Location, opt.Website, opt.DarkMode, opt.TimeZone,
		opt.NotificationEmail, opt.NotificationWeb, opt.Phone, opt.JobTitle, now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProfile"), err)
		return profile.Profile{}, repo.ErrFailedToUpsert
	}
	return r.GetOneProfile(ctx, opt.UserID)
}

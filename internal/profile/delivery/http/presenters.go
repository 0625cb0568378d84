package http

import (
	"time"

	"personal-task-management/internal/profile"
)

// --- Request DTOs ---

type updateReq struct {
	Name              *string `json:"name"               binding:"omitempty,max=100"`
	Bio               *string `json:"bio"                binding:"omitempty,max=1000"`
	Location          *string `json:"location"           binding:"omitempty,max=100"`
	Website           *string `json:"website"            binding:"omitempty,max=100"`
	DarkMode          *bool   `json:"dark_mode"`
	TimeZone          *string `json:"time_zone"          binding:"omitempty,max=50"`
	NotificationEmail *bool   `json:"notification_email"`
	NotificationWeb   *bool   `json:"notification_web"`
	Phone             *string `json:"phone"              binding:"omitempty,max=20"`
	JobTitle          *string `json:"job_title"          binding:"omitempty,max=100"`
}

func (r updateReq) toInput() profile.UpdateInput {
	return profile.UpdateInput{
		Name:              r.Name,
		Bio:               r.Bio,
		Location:          r.Location,
		Website:           r.Website,
		DarkMode:          r.DarkMode,
		TimeZone:          r.TimeZone,
		NotificationEmail: r.NotificationEmail,
		NotificationWeb:   r.NotificationWeb,
		Phone:             r.Phone,
		JobTitle:          r.JobTitle,
	}
}

// --- Response DTOs ---

type profileResp struct {
	UserID            string     `json:"user_id"`
	Name              string     `json:"name"`
	Bio               string     `json:"bio"`
	Location          string     `json:"location"`
	Website           string     `json:"website"`
	DarkMode          bool       `json:"dark_mode"`
	TimeZone          string     `json:"time_zone"`
	NotificationEmail bool       `json:"notification_email"`
	NotificationWeb   bool       `json:"notification_web"`
	Phone             string     `json:"phone"`
	JobTitle          string     `json:"job_title"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type itemResp struct {
	Profile profileResp `json:"profile"`
}

func (h *handler) newItemResp(p profile.Profile) itemResp {
	resp := profileResp{
		UserID:            p.UserID,
		Name:              p.Name,
		Bio:               p.Bio,
		Location:          p.Location,
		Website:           p.Website,
		DarkMode:          p.DarkMode,
		TimeZone:          p.TimeZone,
		NotificationEmail: p.NotificationEmail,
		NotificationWeb:   p.NotificationWeb,
		Phone:             p.Phone,
		JobTitle:          p.JobTitle,
	}
	if !p.CreatedAt.IsZero() {
		createdAt, updatedAt := p.CreatedAt, p.UpdatedAt
		resp.CreatedAt, resp.UpdatedAt = &createdAt, &updatedAt
	}
	return itemResp{Profile: resp}
}

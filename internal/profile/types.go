package profile

import "time"

// --- Profile Domain Model ---

// Profile holds a user's personal details and preferences.
type Profile struct {
	UserID            string
	Name              string
	Bio               string
	Location          string
	Website           string
	DarkMode          bool
	TimeZone          string // IANA name, "" falls back to the server timezone
	NotificationEmail bool
	NotificationWeb   bool
	Phone             string
	JobTitle          string
	CreatedAt         time.Time // zero until the profile is first saved
	UpdatedAt         time.Time
}

// Default returns the profile a user has before saving anything.
func Default(userID string) Profile {
	return Profile{
		UserID:            userID,
		NotificationEmail: true,
		NotificationWeb:   true,
	}
}

// --- UseCase Inputs ---

// UpdateInput is a partial update. Nil fields keep their current value.
type UpdateInput struct {
	Name              *string
	Bio               *string
	Location          *string
	Website           *string
	DarkMode          *bool
	TimeZone          *string
	NotificationEmail *bool
	NotificationWeb   *bool
	Phone             *string
	JobTitle          *string
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Profile Profile
}

type UpdateOutput struct {
	Profile Profile
}

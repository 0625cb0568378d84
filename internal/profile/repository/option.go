package repository

// UpsertProfileOptions carries the full row to write.
type UpsertProfileOptions struct {
	UserID            string
	Name              string
	Bio               string
	Location          string
	Website           string
	DarkMode          bool
	TimeZone          string
	NotificationEmail bool
	NotificationWeb   bool
	Phone             string
	JobTitle          string
}

package stats

import "time"

const (
	WeeklyDays  = 7
	MonthlyDays = 30
	MaxDays     = 366
)

// DayCount is the activity of one calendar day in the configured timezone.
type DayCount struct {
	Date           time.Time // midnight of the day
	CreatedCount   int
	CompletedCount int
}

type DailyInput struct {
	Days int
}

type DailyOutput struct {
	Days []DayCount // oldest first, one entry per day
}

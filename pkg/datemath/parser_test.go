package datemath_test

import (
	"errors"
	"testing"
	"time"

	"personal-task-management/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "RFC3339", input: "2024-06-10T08:00:00+07:00", want: time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC)},
		{name: "Date only", input: "2024-06-10", want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Date and minutes", input: "2024-06-10 09:15", want: time.Date(2024, 6, 10, 9, 15, 0, 0, time.UTC)},
		{name: "Today", input: "today", want: startOfBase},
		{name: "Tomorrow mixed case", input: " Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", input: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", input: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", input: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", input: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Next Monday (from Wed)", input: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", input: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Invalid duration", input: "in a few days", wantErr: true},
		{name: "Invalid weekday", input: "next funday", wantErr: true},
		{name: "Garbage", input: "some random day", wantErr: true},
		{name: "Empty", input: "   ", wantErr: true},
		{name: "Impossible date", input: "2024-02-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, baseTime)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Fatalf("Parse() error = %v, want ErrUnrecognized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayBoundsUseParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// 20:00 UTC on May 1st is already May 2nd in UTC+7.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	start := parser.StartOfDay(base)
	if start.Day() != 2 || start.Hour() != 0 {
		t.Errorf("StartOfDay() = %v, want May 2nd midnight local", start)
	}

	end := parser.EndOfDay(base)
	if end.Sub(start) != 23*time.Hour+59*time.Minute+59*time.Second {
		t.Errorf("EndOfDay() = %v, want 23:59:59 after %v", end, start)
	}
}

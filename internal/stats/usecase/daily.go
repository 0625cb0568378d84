package usecase

import (
	"context"
	"fmt"

	"personal-task-management/internal/model"
	"personal-task-management/internal/stats"
	"personal-task-management/internal/stats/repository"
	"personal-task-management/pkg/datemath"
)

const dayKey = "2006-01-02"

// Daily counts the caller's created and completed tasks per local day over the
// last input.Days days, today included. Days without activity are zero-filled.
func (uc *implUseCase) Daily(ctx context.Context, sc model.Scope, input stats.DailyInput) (stats.DailyOutput, error) {
	if input.Days < 1 || input.Days > stats.MaxDays {
		return stats.DailyOutput{}, fmt.Errorf("%w: days must be between 1 and %d", stats.ErrInvalidRange, stats.MaxDays)
	}

	dm, err := uc.parserFor(ctx, sc)
	if err != nil {
		return stats.DailyOutput{}, err
	}

	today := dm.StartOfDay(uc.now())
	from := today.AddDate(0, 0, -(input.Days - 1))

	activity, err := uc.repo.ListActivity(ctx, repository.ListActivityOptions{UserID: sc.UserID, Since: from})
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Daily ListActivity: %v", err)
		return stats.DailyOutput{}, err
	}

	days := make([]stats.DayCount, input.Days)
	index := make(map[string]int, input.Days)
	for i := range days {
		day := from.AddDate(0, 0, i)
		days[i] = stats.DayCount{Date: day}
		index[day.Format(dayKey)] = i
	}

	loc := dm.Location()
	for _, a := range activity {
		if i, ok := index[a.CreatedAt.In(loc).Format(dayKey)]; ok {
			days[i].CreatedCount++
		}
		if a.CompletedAt == nil {
			continue
		}
		if i, ok := index[a.CompletedAt.In(loc).Format(dayKey)]; ok {
			days[i].CompletedCount++
		}
	}

	return stats.DailyOutput{Days: days}, nil
}

// parserFor returns a parser in the caller's profile timezone.
func (uc *implUseCase) parserFor(ctx context.Context, sc model.Scope) (*datemath.Parser, error) {
	if uc.profiles == nil {
		return uc.dateMath, nil
	}
	out, err := uc.profiles.Detail(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.parserFor Detail: %v", err)
		return nil, err
	}
	if out.Profile.TimeZone == "" {
		return uc.dateMath, nil
	}
	dm, err := datemath.NewParser(out.Profile.TimeZone)
	if err != nil {
		uc.l.Warnf(ctx, "stats.usecase.parserFor NewParser: %v", err)
		return uc.dateMath, nil
	}
	return dm, nil
}

package usecase

import (
	"context"
	"errors"
	"time"

	"personal-task-management/internal/task"
	"personal-task-management/pkg/gcalendar"
)

// syncCalendar mirrors t's due date onto the configured calendar after a
// committed write. previous is the task before the write, nil on create.
// Failures are logged and the task is returned as stored.
func (uc *implUseCase) syncCalendar(ctx context.Context, t task.Task, previous *task.Task) task.Task {
	if uc.calendar == nil {
		return t
	}

	wantEvent := t.DueDate != nil && !t.Completed
	switch {
	case !wantEvent && t.CalendarEventID == "":
		return t

	case !wantEvent:
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "task.usecase.syncCalendar DeleteEvent %s: %v", t.CalendarEventID, err)
			return t
		}
		return uc.storeEventID(ctx, t, "")

	case t.CalendarEventID == "":
		event, err := uc.calendar.CreateEvent(ctx, uc.eventRequest(t))
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.syncCalendar CreateEvent for %s: %v", t.ID, err)
			return t
		}
		return uc.storeEventID(ctx, t, event.ID)
	}

	if previous != nil && !eventChanged(*previous, t) {
		return t
	}

	_, err := uc.calendar.UpdateEvent(ctx, t.CalendarEventID, uc.eventRequest(t))
	if errors.Is(err, gcalendar.ErrEventNotFound) {
		event, err := uc.calendar.CreateEvent(ctx, uc.eventRequest(t))
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.syncCalendar CreateEvent for %s: %v", t.ID, err)
			return t
		}
		return uc.storeEventID(ctx, t, event.ID)
	}
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.syncCalendar UpdateEvent %s: %v", t.CalendarEventID, err)
	}
	return t
}

// dropCalendarEvents removes the events of deleted tasks.
func (uc *implUseCase) dropCalendarEvents(ctx context.Context, deleted []task.Task) {
	if uc.calendar == nil {
		return
	}
	for _, t := range deleted {
		if t.CalendarEventID == "" {
			continue
		}
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "task.usecase.dropCalendarEvents DeleteEvent %s: %v", t.CalendarEventID, err)
		}
	}
}

func (uc *implUseCase) storeEventID(ctx context.Context, t task.Task, eventID string) task.Task {
	t.CalendarEventID = eventID
	stored, err := uc.repo.UpdateTask(ctx, toUpdateOptions(t))
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.storeEventID UpdateTask: %v", err)
		return t
	}
	if stored.ID == "" {
		return t
	}
	return stored
}

// eventRequest spans from the due time to the end of that day.
func (uc *implUseCase) eventRequest(t task.Task) gcalendar.CreateEventRequest {
	loc := uc.dateMath.Location()
	start := t.DueDate.In(loc)
	end := uc.dateMath.EndOfDay(start)
	if !end.After(start) {
		end = start.Add(time.Hour)
	}

	return gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    loc.String(),
	}
}

func eventChanged(before, after task.Task) bool {
	if before.Title != after.Title || before.Description != after.Description {
		return true
	}
	if before.DueDate == nil || after.DueDate == nil {
		return before.DueDate != after.DueDate
	}
	return !before.DueDate.Equal(*after.DueDate)
}

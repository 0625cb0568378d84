package task

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/gcalendar"
)

// UseCase is the Task Tree Manager: it keeps every list's task forest consistent
// across creation, reparenting and deletion.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, sc model.Scope, taskListID string) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)

	// DeleteCascade removes the task and every descendant.
	DeleteCascade(ctx context.Context, sc model.Scope, id string) error
	// DeleteKeepChildren removes only the task; its direct children move up to its parent.
	DeleteKeepChildren(ctx context.Context, sc model.Scope, id string) error
}

// Calendar mirrors due dates as calendar events. *gcalendar.Client implements it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

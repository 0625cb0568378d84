package sqlite

import (
	"strings"

	repo "personal-task-management/internal/task/repository"
)

const taskColumns = `id, task_list_id, parent_id, title, description, completed, completed_at,
	level, priority, due_date, tags, calendar_event_id, created_at, updated_at`

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.TaskListID != "" {
		conditions = append(conditions, "task_list_id = ?")
		args = append(args, opt.TaskListID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
// Rows come back parents-first (level), then in creation order.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.TaskListID != "" {
		conditions = append(conditions, "task_list_id = ?")
		args = append(args, opt.TaskListID)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return where + " ORDER BY level ASC, created_at ASC, id ASC", args
}

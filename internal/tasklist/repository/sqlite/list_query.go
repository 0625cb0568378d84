package sqlite

import (
	"strings"

	repo "personal-task-management/internal/tasklist/repository"
)

const listColumns = `id, user_id, title, description, is_folder, is_archived, parent_id, created_at, updated_at`

// buildGetOneQuery builds WHERE clause + args for GetOneList.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneListOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListLists.
func (r *implRepository) buildListQuery(opt repo.ListListsOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.ParentID != "" {
		conditions = append(conditions, "parent_id = ?")
		args = append(args, opt.ParentID)
	}
	if !opt.IncludeArchived {
		conditions = append(conditions, "is_archived = 0")
	}

	return "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY is_folder DESC, created_at ASC", args
}

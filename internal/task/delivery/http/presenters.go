package http

import (
	"bytes"
	"encoding/json"
	"time"

	"personal-task-management/internal/task"
)

// nullableString tells an absent JSON field apart from an explicit null.
type nullableString struct {
	Set   bool
	Value string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = ""
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// toNullable treats "" like null: both clear the field.
func (n nullableString) toNullable() task.Nullable[string] {
	if !n.Set {
		return task.Nullable[string]{}
	}
	if n.Value == "" {
		return task.Nullable[string]{Set: true}
	}
	v := n.Value
	return task.Nullable[string]{Set: true, Value: &v}
}

// --- Request DTOs ---

type createReq struct {
	TaskListID  string   `json:"-"` // populated from URI param
	ParentID    string   `json:"parent_id"`
	Title       string   `json:"title"       binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=5000"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=low medium high"`
	DueDate     string   `json:"due_date"    example:"2026-03-05"`
	Tags        []string `json:"tags"        binding:"max=50"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		TaskListID:  r.TaskListID,
		ParentID:    r.ParentID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    task.Priority(r.Priority),
		DueDate:     r.DueDate,
		Tags:        r.Tags,
	}
}

// ---

type updateReq struct {
	ID          string         `json:"-"` // populated from URI param
	Title       *string        `json:"title"        binding:"omitempty,min=1,max=255"`
	Description *string        `json:"description"  binding:"omitempty,max=5000"`
	Completed   *bool          `json:"completed"`
	Priority    *string        `json:"priority"     binding:"omitempty,oneof=low medium high"`
	DueDate     nullableString `json:"due_date"     swaggertype:"string"`
	Tags        *[]string      `json:"tags"`
	TaskListID  *string        `json:"task_list_id" binding:"omitempty,min=1"`
	ParentID    nullableString `json:"parent_id"    swaggertype:"string"`
	Level       *int           `json:"level"        binding:"omitempty,min=0"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateTaskInput {
	in := task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate.toNullable(),
		Tags:        r.Tags,
		TaskListID:  r.TaskListID,
		ParentID:    r.ParentID.toNullable(),
		Level:       r.Level,
	}
	if r.Priority != nil {
		p := task.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	TaskListID      string     `json:"task_list_id"`
	ParentID        *string    `json:"parent_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	Level           int        `json:"level"`
	Priority        string     `json:"priority"`
	DueDate         *time.Time `json:"due_date"`
	Tags            []string   `json:"tags"`
	CalendarEventID string     `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		TaskListID:      t.TaskListID,
		Title:           t.Title,
		Description:     t.Description,
		Completed:       t.Completed,
		CompletedAt:     t.CompletedAt,
		Level:           t.Level,
		Priority:        string(t.Priority),
		DueDate:         t.DueDate,
		Tags:            t.Tags,
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.ParentID != "" {
		parentID := t.ParentID
		resp.ParentID = &parentID
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

type nodeResp struct {
	taskResp
	Children []nodeResp `json:"children"`
}

func newNodeResps(nodes []task.Node) []nodeResp {
	out := make([]nodeResp, len(nodes))
	for i, n := range nodes {
		out[i] = nodeResp{
			taskResp: newTaskResp(n.Task),
			Children: newNodeResps(n.Children),
		}
	}
	return out
}

type itemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newItemResp(t task.Task) itemResp {
	return itemResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Tree  []nodeResp `json:"tree"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Tree:  newNodeResps(out.Tree),
	}
}

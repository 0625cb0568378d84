package http

import (
	"bytes"
	"encoding/json"
	"time"

	"personal-task-management/internal/tasklist"
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

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	IsFolder    bool   `json:"is_folder"`
	ParentID    string `json:"parent_id"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() tasklist.CreateInput {
	return tasklist.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		IsFolder:    r.IsFolder,
		ParentID:    r.ParentID,
	}
}

// ---

type listReq struct {
	IncludeArchived bool `form:"include_archived"`
}

func (r listReq) toInput() tasklist.ListInput {
	return tasklist.ListInput{IncludeArchived: r.IncludeArchived}
}

// ---

type updateReq struct {
	ID          string         `json:"-"` // populated from URI param
	Title       *string        `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string        `json:"description" binding:"omitempty,max=1000"`
	IsFolder    *bool          `json:"is_folder"`
	IsArchived  *bool          `json:"is_archived"`
	ParentID    nullableString `json:"parent_id"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() tasklist.UpdateInput {
	return tasklist.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsFolder:    r.IsFolder,
		IsArchived:  r.IsArchived,
		ParentIDSet: r.ParentID.Set,
		ParentID:    r.ParentID.Value,
	}
}

// --- Response DTOs ---

type listItemResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsFolder    bool      `json:"is_folder"`
	IsArchived  bool      `json:"is_archived"`
	ParentID    *string   `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newListItemResp(l tasklist.TaskList) listItemResp {
	resp := listItemResp{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		IsFolder:    l.IsFolder,
		IsArchived:  l.IsArchived,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if l.ParentID != "" {
		parentID := l.ParentID
		resp.ParentID = &parentID
	}
	return resp
}

type nodeResp struct {
	listItemResp
	Children []nodeResp `json:"children"`
}

func newNodeResps(nodes []tasklist.Node) []nodeResp {
	out := make([]nodeResp, len(nodes))
	for i, n := range nodes {
		out[i] = nodeResp{
			listItemResp: newListItemResp(n.List),
			Children:     newNodeResps(n.Children),
		}
	}
	return out
}

type itemResp struct {
	List listItemResp `json:"task_list"`
}

func (h *handler) newItemResp(l tasklist.TaskList) itemResp {
	return itemResp{List: newListItemResp(l)}
}

type listResp struct {
	Lists []nodeResp `json:"task_lists"`
}

func (h *handler) newListResp(out tasklist.ListOutput) listResp {
	return listResp{Lists: newNodeResps(out.Lists)}
}

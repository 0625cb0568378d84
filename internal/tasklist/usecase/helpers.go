package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task/tree"
	"personal-task-management/internal/tasklist"
	repo "personal-task-management/internal/tasklist/repository"
)

// coalesce returns *newVal when provided, otherwise the existing value.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// getOwned loads a list that belongs to the caller. Lists owned by someone else
// are reported as not found.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (tasklist.TaskList, error) {
	l, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		return tasklist.TaskList{}, err
	}
	if l.ID == "" {
		return tasklist.TaskList{}, tasklist.ErrListNotFound
	}
	return l, nil
}

// getOwnedFolder resolves a parent candidate; anything but an owned folder is invalid.
func (uc *implUseCase) getOwnedFolder(ctx context.Context, sc model.Scope, id string) (tasklist.TaskList, error) {
	parent, err := uc.getOwned(ctx, sc, id)
	if err == tasklist.ErrListNotFound {
		return tasklist.TaskList{}, tasklist.ErrInvalidParent
	}
	if err != nil {
		return tasklist.TaskList{}, err
	}
	if !parent.IsFolder {
		return tasklist.TaskList{}, tasklist.ErrInvalidParent
	}
	return parent, nil
}

// forest indexes every list of the caller by parent.
func (uc *implUseCase) forest(ctx context.Context, sc model.Scope, includeArchived bool) (*tree.Forest, map[string]tasklist.TaskList, error) {
	lists, err := uc.repo.ListLists(ctx, repo.ListListsOptions{UserID: sc.UserID, IncludeArchived: includeArchived})
	if err != nil {
		return nil, nil, err
	}

	nodes := make([]tree.Node, 0, len(lists))
	byID := make(map[string]tasklist.TaskList, len(lists))
	for _, l := range lists {
		nodes = append(nodes, tree.Node{ID: l.ID, ParentID: l.ParentID})
		byID[l.ID] = l
	}
	return tree.New(nodes), byID, nil
}

func nest(f *tree.Forest, byID map[string]tasklist.TaskList, ids []string) []tasklist.Node {
	out := make([]tasklist.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, tasklist.Node{
			List:     byID[id],
			Children: nest(f, byID, f.Children(id)),
		})
	}
	return out
}

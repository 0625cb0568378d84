package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/tasklist"
	repo "personal-task-management/internal/tasklist/repository"
)

// Detail retrieves a single list owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (tasklist.DetailOutput, error) {
	l, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return tasklist.DetailOutput{}, err
	}
	return tasklist.DetailOutput{List: l}, nil
}

// Update renames, archives, converts or moves a list.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input tasklist.UpdateInput) (tasklist.UpdateOutput, error) {
	var updated tasklist.TaskList
	err := uc.repo.InTx(ctx, func(ctx context.Context) error {
		existing, err := uc.getOwned(ctx, sc, input.ID)
		if err != nil {
			return err
		}

		isFolder := coalesce(input.IsFolder, existing.IsFolder)
		if existing.IsFolder && !isFolder {
			children, err := uc.repo.ListLists(ctx, repo.ListListsOptions{
				UserID:          sc.UserID,
				ParentID:        existing.ID,
				IncludeArchived: true,
			})
			if err != nil {
				uc.l.Errorf(ctx, "tasklist.usecase.Update ListLists: %v", err)
				return err
			}
			if len(children) > 0 {
				return tasklist.ErrFolderNotEmpty
			}
		}
		// Folders hold lists only.
		if !existing.IsFolder && isFolder {
			n, err := uc.repo.CountTasks(ctx, existing.ID)
			if err != nil {
				uc.l.Errorf(ctx, "tasklist.usecase.Update CountTasks: %v", err)
				return err
			}
			if n > 0 {
				return tasklist.ErrListHasTasks
			}
		}

		parentID := existing.ParentID
		if input.ParentIDSet {
			parentID = input.ParentID
		}
		if parentID != "" && parentID != existing.ParentID {
			if err := uc.validateMove(ctx, sc, existing.ID, parentID); err != nil {
				return err
			}
		}

		l, err := uc.repo.UpdateList(ctx, repo.UpdateListOptions{
			ID:          existing.ID,
			Title:       coalesce(input.Title, existing.Title),
			Description: coalesce(input.Description, existing.Description),
			IsFolder:    isFolder,
			IsArchived:  coalesce(input.IsArchived, existing.IsArchived),
			ParentID:    parentID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "tasklist.usecase.Update UpdateList: %v", err)
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return tasklist.UpdateOutput{}, err
	}

	return tasklist.UpdateOutput{List: updated}, nil
}

// validateMove checks that id may live under parentID: the parent is an owned
// folder and is neither id itself nor one of its descendants.
func (uc *implUseCase) validateMove(ctx context.Context, sc model.Scope, id, parentID string) error {
	if parentID == id {
		return tasklist.ErrCircularReference
	}
	if _, err := uc.getOwnedFolder(ctx, sc, parentID); err != nil {
		return err
	}

	f, _, err := uc.forest(ctx, sc, true)
	if err != nil {
		uc.l.Errorf(ctx, "tasklist.usecase.validateMove forest: %v", err)
		return err
	}
	if f.IsAncestor(id, parentID) {
		return tasklist.ErrCircularReference
	}
	return nil
}

// Delete removes a list and its tasks. Lists inside a deleted folder move to the root.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return uc.repo.InTx(ctx, func(ctx context.Context) error {
		existing, err := uc.getOwned(ctx, sc, id)
		if err != nil {
			return err
		}

		children, err := uc.repo.ListLists(ctx, repo.ListListsOptions{
			UserID:          sc.UserID,
			ParentID:        existing.ID,
			IncludeArchived: true,
		})
		if err != nil {
			uc.l.Errorf(ctx, "tasklist.usecase.Delete ListLists: %v", err)
			return err
		}
		for _, child := range children {
			if _, err := uc.repo.UpdateList(ctx, repo.UpdateListOptions{
				ID:          child.ID,
				Title:       child.Title,
				Description: child.Description,
				IsFolder:    child.IsFolder,
				IsArchived:  child.IsArchived,
			}); err != nil {
				uc.l.Errorf(ctx, "tasklist.usecase.Delete UpdateList %s: %v", child.ID, err)
				return err
			}
		}

		if err := uc.repo.DeleteList(ctx, existing.ID); err != nil {
			uc.l.Errorf(ctx, "tasklist.usecase.Delete DeleteList: %v", err)
			return err
		}
		return nil
	})
}

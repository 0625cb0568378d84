package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/tasklist"
	repo "personal-task-management/internal/tasklist/repository"
)

// Create creates a list or folder, optionally inside a folder the caller owns.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input tasklist.CreateInput) (tasklist.CreateOutput, error) {
	var created tasklist.TaskList
	err := uc.repo.InTx(ctx, func(ctx context.Context) error {
		if input.ParentID != "" {
			if _, err := uc.getOwnedFolder(ctx, sc, input.ParentID); err != nil {
				return err
			}
		}

		l, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
			UserID:      sc.UserID,
			Title:       input.Title,
			Description: input.Description,
			IsFolder:    input.IsFolder,
			ParentID:    input.ParentID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "tasklist.usecase.Create CreateList: %v", err)
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return tasklist.CreateOutput{}, err
	}

	return tasklist.CreateOutput{List: created}, nil
}

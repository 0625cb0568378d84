package tasklist

import "errors"

var (
	ErrListNotFound      = errors.New("task list not found")
	ErrInvalidParent     = errors.New("invalid parent folder")
	ErrCircularReference = errors.New("circular folder reference")
	ErrFolderNotEmpty    = errors.New("folder still contains lists")
	ErrListHasTasks      = errors.New("list still contains tasks")
)

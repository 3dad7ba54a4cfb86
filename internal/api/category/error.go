package category

import "FinTrack/pkg/response"

var (
	ErrCategoryNotFound    = response.NewError(404, "category not found")
	ErrCategoryNameTaken   = response.NewError(409, "category name already in use")
	ErrInvalidCategoryType = response.NewError(400, "invalid category type")
	ErrCategoryInUse       = response.NewError(409, "category still has transactions")
	ErrCreateCategory      = response.NewError(500, "failed to create category")
	ErrUpdateCategory      = response.NewError(500, "failed to update category")
	ErrDeleteCategory      = response.NewError(500, "failed to delete category")
)

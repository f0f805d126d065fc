package repository

import "errors"

// Sentinel errors for expected miss conditions. Anything else returned from
// this package is a raw driver error and should be treated as a store failure.
var (
	ErrProductNotFound  = errors.New("repository: product not found")
	ErrCategoryNotFound = errors.New("repository: category not found")
	ErrCategoryExists   = errors.New("repository: category name already exists")
)

package repository

import (
	"errors"
)

var (
	ErrNotFound = errors.New("note not found")
)

// Sort orders accepted by List. Unknown values fall back to SortNewest.
const (
	SortNewest  = "newest"
	SortUpdated = "updated"
	SortTitle   = "title"
)

// ListQuery narrows and orders an active-notes listing. Category is an exact
// match; Search matches case-insensitively as a substring against title or
// content. Empty fields are ignored.
type ListQuery struct {
	Category string
	Search   string
	Sort     string
}

// UpdateFields is a partial update: nil fields keep their stored values.
type UpdateFields struct {
	Title    *string
	Content  *string
	Color    *string
	Category *string
	Tags     *[]string
	Pinned   *bool
}

package domain

import "strings"

// Category is a named bucket a task belongs to. Names are unique and matched
// exactly, including case.
type Category struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
}

// Validate checks that the category has a usable name.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidTaskError("category name cannot be empty")
	}
	return nil
}

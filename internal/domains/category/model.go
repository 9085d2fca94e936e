package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a product category. The hierarchy is two levels deep:
// root categories have a nil ParentID, children point at a root.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ParentID  *uuid.UUID `json:"parent_id"`
	Species   *string    `json:"species"`
	SortOrder int        `json:"sort_order"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Node is a category with its children, as returned by the tree mode.
type Node struct {
	Category
	Children []Category `json:"children"`
}

// HierarchyMode selects how categories are retrieved. Exactly one mode
// applies per call.
type HierarchyMode int

const (
	// ModeTree returns every root with its children attached.
	ModeTree HierarchyMode = iota
	// ModeRoots returns only top-level categories.
	ModeRoots
	// ModeChildren returns the children of one parent.
	ModeChildren
)

package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateCategoryReq struct {
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ParentID  *uuid.UUID `json:"parent_id"`
	Species   *string    `json:"species"`
	SortOrder int        `json:"sort_order"`
	IsActive  *bool      `json:"is_active"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.SortOrder, validation.Min(0)),
	)
}

// UpdateCategoryReq applies only the fields that were present in the
// request body. Nil pointer means "leave unchanged".
type UpdateCategoryReq struct {
	Name      *string    `json:"name"`
	Slug      *string    `json:"slug"`
	ParentID  *uuid.UUID `json:"parent_id"`
	Species   *string    `json:"species"`
	SortOrder *int       `json:"sort_order"`
	IsActive  *bool      `json:"is_active"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Slug, validation.NilOrNotEmpty),
	)
}

// HierarchyQuery selects exactly one retrieval mode. ParentID is only
// consulted in ModeChildren.
type HierarchyQuery struct {
	Mode     HierarchyMode
	ParentID uuid.UUID
}

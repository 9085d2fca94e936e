package article

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"animalovers-backend/internal/shared"
)

type CreateArticleReq struct {
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Content    string     `json:"content"`
	Excerpt    *string    `json:"excerpt"`
	Status     string     `json:"status"`
	CategoryID *uuid.UUID `json:"category_id"`
	Tags       []string   `json:"tags"`
	Species    *string    `json:"species"`
	AgeRange   *string    `json:"age_range"`
	AuthorID   *uuid.UUID `json:"author_id"`
}

func (r CreateArticleReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Status, validation.In("", StatusPublished, StatusDraft)),
	)
}

type UpdateArticleReq struct {
	Title      *string    `json:"title"`
	Slug       *string    `json:"slug"`
	Content    *string    `json:"content"`
	Excerpt    *string    `json:"excerpt"`
	Status     *string    `json:"status"`
	CategoryID *uuid.UUID `json:"category_id"`
	Tags       []string   `json:"tags"`
	Species    *string    `json:"species"`
	AgeRange   *string    `json:"age_range"`
}

func (r UpdateArticleReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.Status, validation.By(optionalStatus)),
	)
}

// Filter holds optional list predicates; absent fields add no clause.
type Filter struct {
	shared.Pagination

	CategorySlug *string
	Species      *string
	AgeRange     *string
	Search       *string
	Status       *string
}

func (f *Filter) Validate() error {
	return f.Pagination.Validate()
}

type TaxonomyReq struct {
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Color *string `json:"color"`
}

func (r TaxonomyReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

func optionalStatus(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if *s != StatusPublished && *s != StatusDraft {
		return validation.NewError("validation_status", "status must be published or draft")
	}
	return nil
}

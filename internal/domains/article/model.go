package article

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// Article is an editorial piece. Only published articles are visible on
// the public routes; the admin back-office sees every status.
type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	Status      string     `json:"status"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Tags        []string   `json:"tags"`
	Species     *string    `json:"species"`
	AgeRange    *string    `json:"age_range"`
	AuthorID    *uuid.UUID `json:"author_id"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaxonomyItem is a row of one of the flat lookup tables managed from
// the back-office. Categories and tags share the same shape.
type TaxonomyItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type (
	ArticleCategory = TaxonomyItem
	ArticleTag      = TaxonomyItem
)

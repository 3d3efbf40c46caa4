package domain

import (
	"time"

	"github.com/google/uuid"
)

// PageSection is one editable block of a public page, addressed by
// (page_slug, section_key).
type PageSection struct {
	ID         uuid.UUID `json:"id"`
	PageSlug   string    `json:"page_slug"`
	SectionKey string    `json:"section_key"`
	Title      string    `json:"title,omitempty"`
	Body       string    `json:"body"`
	SortOrder  int       `json:"sort_order"`
	UpdatedBy  uuid.UUID `json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

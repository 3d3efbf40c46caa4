package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuthorCategory string

const (
	AuthorStaff  AuthorCategory = "STAFF"
	AuthorBoard  AuthorCategory = "BOARD"
	AuthorFellow AuthorCategory = "FELLOW"
)

type Author struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Title     string         `json:"title,omitempty"`
	Bio       string         `json:"bio,omitempty"`
	PhotoURL  string         `json:"photo_url,omitempty"`
	Category  AuthorCategory `json:"category"`
	SortOrder int            `json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

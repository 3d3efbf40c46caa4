package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

type PageRepository interface {
	GetByPage(ctx context.Context, pageSlug string) ([]*domain.PageSection, error)
	// Upsert inserts or replaces the section addressed by
	// (PageSlug, SectionKey).
	Upsert(ctx context.Context, section *domain.PageSection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UpsertSectionInput struct {
	PageSlug   string
	SectionKey string
	Title      string
	Body       string
	SortOrder  int
	UpdatedBy  uuid.UUID
}

type PageService interface {
	GetByPage(ctx context.Context, pageSlug string) ([]*domain.PageSection, error)
	Upsert(ctx context.Context, input UpsertSectionInput) (*domain.PageSection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

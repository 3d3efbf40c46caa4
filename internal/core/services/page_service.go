package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type PageService struct {
	repo ports.PageRepository
}

func NewPageService(repo ports.PageRepository) ports.PageService {
	return &PageService{repo: repo}
}

func (s *PageService) GetByPage(ctx context.Context, pageSlug string) ([]*domain.PageSection, error) {
	sections, err := s.repo.GetByPage(ctx, pageSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get page sections: %w", err)
	}
	return sections, nil
}

func (s *PageService) Upsert(ctx context.Context, input ports.UpsertSectionInput) (*domain.PageSection, error) {
	section := &domain.PageSection{
		PageSlug:   input.PageSlug,
		SectionKey: input.SectionKey,
		Title:      input.Title,
		Body:       input.Body,
		SortOrder:  input.SortOrder,
		UpdatedBy:  input.UpdatedBy,
	}
	if err := s.repo.Upsert(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to upsert page section: %w", err)
	}
	return section, nil
}

func (s *PageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete page section: %w", err)
	}
	return nil
}

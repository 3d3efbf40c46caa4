package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type AuthorService struct {
	repo ports.AuthorRepository
}

func NewAuthorService(repo ports.AuthorRepository) ports.AuthorService {
	return &AuthorService{repo: repo}
}

func (s *AuthorService) List(ctx context.Context) ([]*domain.Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (s *AuthorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	if author == nil {
		return nil, domain.ErrAuthorNotFound
	}
	return author, nil
}

func (s *AuthorService) Create(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
	category := input.Category
	if category == "" {
		category = domain.AuthorStaff
	}

	author := &domain.Author{
		Name:      input.Name,
		Title:     input.Title,
		Bio:       input.Bio,
		PhotoURL:  input.PhotoURL,
		Category:  category,
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

func (s *AuthorService) Update(ctx context.Context, id uuid.UUID, input ports.AuthorInput) (*domain.Author, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	if author == nil {
		return nil, domain.ErrAuthorNotFound
	}

	author.Name = input.Name
	author.Title = input.Title
	author.Bio = input.Bio
	author.PhotoURL = input.PhotoURL
	if input.Category != "" {
		author.Category = input.Category
	}
	author.SortOrder = input.SortOrder

	if err := s.repo.Update(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return author, nil
}

func (s *AuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get author: %w", err)
	}
	if author == nil {
		return domain.ErrAuthorNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	return nil
}

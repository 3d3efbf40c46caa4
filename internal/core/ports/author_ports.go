package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

type AuthorRepository interface {
	List(ctx context.Context) ([]*domain.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)
	Create(ctx context.Context, author *domain.Author) error
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AuthorInput struct {
	Name      string
	Title     string
	Bio       string
	PhotoURL  string
	Category  domain.AuthorCategory
	SortOrder int
}

type AuthorService interface {
	List(ctx context.Context) ([]*domain.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)
	Create(ctx context.Context, input AuthorInput) (*domain.Author, error)
	Update(ctx context.Context, id uuid.UUID, input AuthorInput) (*domain.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

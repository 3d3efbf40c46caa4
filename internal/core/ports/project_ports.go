package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectFilter pages and narrows project listings. PublicOnly hides
// projects still in the PLANNED state from unauthenticated readers.
type ProjectFilter struct {
	Search     string
	Status     domain.ProjectStatus
	PublicOnly bool
	Limit      int
	Offset     int
}

type CreateProjectInput struct {
	Title       string
	Description string
	Status      domain.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedBy   uuid.UUID
}

type UpdateProjectInput struct {
	Title       string
	Description string
	Status      domain.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

type ListProjectsInput struct {
	Page       int
	PageSize   int
	Search     string
	Status     string
	PublicOnly bool
}

type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	List(ctx context.Context, input ListProjectsInput) ([]*domain.Project, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	// ListForUser returns tasks the user created or is assigned to.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   *uuid.UUID
	AssigneeID  *uuid.UUID
	DueDate     *time.Time
	CreatedBy   uuid.UUID
}

type UpdateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	AssigneeID  *uuid.UUID
	DueDate     *time.Time
}

type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

// UserRepository is the credential store. Lookup methods return (nil, nil)
// when no row matches; uniqueness of email is enforced by the storage
// layer and surfaces as domain.ErrEmailTaken from Create.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, int, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ListUsersInput struct {
	Page     int
	PageSize int
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, input ListUsersInput) ([]*domain.User, int, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

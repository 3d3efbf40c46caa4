package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

type MailRepository interface {
	Create(ctx context.Context, mail *domain.Mail) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mail, error)
	List(ctx context.Context, filter MailFilter) ([]*domain.Mail, int, error)
	Update(ctx context.Context, mail *domain.Mail) error
	Delete(ctx context.Context, id uuid.UUID) error
	// NextSequence atomically increments and returns the mail counter
	// for the given year.
	NextSequence(ctx context.Context, year int) (int, error)
}

type MailCategoryRepository interface {
	List(ctx context.Context) ([]*domain.MailCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MailCategory, error)
	Create(ctx context.Context, category *domain.MailCategory) error
}

// MailFilter narrows and pages the mail list. Zero values mean "no
// constraint"; Search matches subject, mail number, sender and recipient.
type MailFilter struct {
	Search string
	Type   domain.MailType
	Status domain.MailStatus
	Limit  int
	Offset int
}

type CreateMailInput struct {
	Subject    string
	Sender     string
	Recipient  string
	Type       domain.MailType
	Status     domain.MailStatus
	CategoryID uuid.UUID
	Date       time.Time
	FileURL    string
	CreatedBy  uuid.UUID
}

type UpdateMailInput struct {
	Subject   string
	Sender    string
	Recipient string
	Status    domain.MailStatus
	FileURL   string
}

type ListMailsInput struct {
	Page     int
	PageSize int
	Search   string
	Type     string
	Status   string
}

type MailService interface {
	Create(ctx context.Context, input CreateMailInput) (*domain.Mail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mail, error)
	List(ctx context.Context, input ListMailsInput) ([]*domain.Mail, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMailInput) (*domain.Mail, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]*domain.MailCategory, error)
	CreateCategory(ctx context.Context, name, code, description string) (*domain.MailCategory, error)
}

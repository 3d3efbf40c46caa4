package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

var romanMonths = [12]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

type MailService struct {
	mails      ports.MailRepository
	categories ports.MailCategoryRepository
}

func NewMailService(mails ports.MailRepository, categories ports.MailCategoryRepository) ports.MailService {
	return &MailService{mails: mails, categories: categories}
}

// Create registers a mail record and assigns it the next number for its
// year. The sequence increment is a single atomic statement in the
// repository, so two concurrent creations never share a number.
func (s *MailService) Create(ctx context.Context, input ports.CreateMailInput) (*domain.Mail, error) {
	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mail category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrMailCategoryNotFound
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	seq, err := s.mails.NextSequence(ctx, date.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to advance mail counter: %w", err)
	}

	status := input.Status
	if status == "" {
		status = domain.MailDraft
	}

	mail := &domain.Mail{
		MailNumber: FormatMailNumber(seq, category.Code, date),
		Subject:    input.Subject,
		Sender:     input.Sender,
		Recipient:  input.Recipient,
		Type:       input.Type,
		Status:     status,
		CategoryID: category.ID,
		Date:       date,
		FileURL:    input.FileURL,
		CreatedBy:  input.CreatedBy,
	}
	if err := s.mails.Create(ctx, mail); err != nil {
		return nil, fmt.Errorf("failed to create mail: %w", err)
	}
	mail.Category = category
	return mail, nil
}

func (s *MailService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mail, error) {
	mail, err := s.mails.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get mail: %w", err)
	}
	if mail == nil {
		return nil, domain.ErrMailNotFound
	}
	return mail, nil
}

func (s *MailService) List(ctx context.Context, input ports.ListMailsInput) ([]*domain.Mail, int, error) {
	limit, offset := pageBounds(input.Page, input.PageSize)
	filter := ports.MailFilter{
		Search: input.Search,
		Type:   domain.MailType(input.Type),
		Status: domain.MailStatus(input.Status),
		Limit:  limit,
		Offset: offset,
	}
	mails, total, err := s.mails.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mails: %w", err)
	}
	return mails, total, nil
}

// Update never touches the mail number; it is fixed at registration.
func (s *MailService) Update(ctx context.Context, id uuid.UUID, input ports.UpdateMailInput) (*domain.Mail, error) {
	mail, err := s.mails.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get mail: %w", err)
	}
	if mail == nil {
		return nil, domain.ErrMailNotFound
	}

	mail.Subject = input.Subject
	mail.Sender = input.Sender
	mail.Recipient = input.Recipient
	if input.Status != "" {
		mail.Status = input.Status
	}
	mail.FileURL = input.FileURL

	if err := s.mails.Update(ctx, mail); err != nil {
		return nil, fmt.Errorf("failed to update mail: %w", err)
	}
	return mail, nil
}

func (s *MailService) Delete(ctx context.Context, id uuid.UUID) error {
	mail, err := s.mails.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get mail: %w", err)
	}
	if mail == nil {
		return domain.ErrMailNotFound
	}
	if err := s.mails.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mail: %w", err)
	}
	return nil
}

func (s *MailService) Categories(ctx context.Context) ([]*domain.MailCategory, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mail categories: %w", err)
	}
	return categories, nil
}

func (s *MailService) CreateCategory(ctx context.Context, name, code, description string) (*domain.MailCategory, error) {
	category := &domain.MailCategory{
		Name:        name,
		Code:        code,
		Description: description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create mail category: %w", err)
	}
	return category, nil
}

// FormatMailNumber renders the official correspondence number, e.g.
// sequence 90 of category SK in March 2025 becomes "0090/SK/III/2025".
func FormatMailNumber(seq int, categoryCode string, date time.Time) string {
	return fmt.Sprintf("%04d/%s/%s/%d", seq, categoryCode, romanMonths[date.Month()-1], date.Year())
}

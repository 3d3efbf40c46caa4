package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type fakeMailRepo struct {
	mu       sync.Mutex
	mails    map[uuid.UUID]*domain.Mail
	counters map[int]int
}

func newFakeMailRepo() *fakeMailRepo {
	return &fakeMailRepo{mails: map[uuid.UUID]*domain.Mail{}, counters: map[int]int{}}
}

func (f *fakeMailRepo) Create(_ context.Context, mail *domain.Mail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mail.ID = uuid.New()
	mail.CreatedAt = time.Now()
	mail.UpdatedAt = mail.CreatedAt
	f.mails[mail.ID] = mail
	return nil
}

func (f *fakeMailRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Mail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mails[id], nil
}

func (f *fakeMailRepo) List(context.Context, ports.MailFilter) ([]*domain.Mail, int, error) {
	return nil, 0, nil
}

func (f *fakeMailRepo) Update(_ context.Context, mail *domain.Mail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mails[mail.ID] = mail
	return nil
}

func (f *fakeMailRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.mails, id)
	return nil
}

func (f *fakeMailRepo) NextSequence(_ context.Context, year int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[year]++
	return f.counters[year], nil
}

type fakeMailCategoryRepo struct {
	categories map[uuid.UUID]*domain.MailCategory
}

func (f *fakeMailCategoryRepo) List(context.Context) ([]*domain.MailCategory, error) {
	var out []*domain.MailCategory
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeMailCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.MailCategory, error) {
	return f.categories[id], nil
}

func (f *fakeMailCategoryRepo) Create(_ context.Context, c *domain.MailCategory) error {
	c.ID = uuid.New()
	f.categories[c.ID] = c
	return nil
}

func TestFormatMailNumber(t *testing.T) {
	tests := []struct {
		seq  int
		code string
		date time.Time
		want string
	}{
		{90, "SK", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), "0090/SK/III/2025"},
		{1, "UM", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "0001/UM/I/2024"},
		{1234, "SP", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "1234/SP/XII/2025"},
		{10000, "SK", time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC), "10000/SK/VIII/2025"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMailNumber(tt.seq, tt.code, tt.date))
	}
}

func TestMailCreateAssignsSequentialNumbers(t *testing.T) {
	mails := newFakeMailRepo()
	categories := &fakeMailCategoryRepo{categories: map[uuid.UUID]*domain.MailCategory{}}
	category := &domain.MailCategory{Name: "Surat Keterangan", Code: "SK"}
	require.NoError(t, categories.Create(context.Background(), category))

	svc := NewMailService(mails, categories)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	first, err := svc.Create(context.Background(), ports.CreateMailInput{
		Subject:    "Keterangan domisili",
		Type:       domain.MailOutgoing,
		CategoryID: category.ID,
		Date:       date,
		CreatedBy:  uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "0001/SK/III/2025", first.MailNumber)
	assert.Equal(t, domain.MailDraft, first.Status, "status defaults to draft")

	second, err := svc.Create(context.Background(), ports.CreateMailInput{
		Subject:    "Keterangan kerja",
		Type:       domain.MailOutgoing,
		CategoryID: category.ID,
		Date:       date,
		CreatedBy:  uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "0002/SK/III/2025", second.MailNumber)
}

func TestMailCreateUnknownCategory(t *testing.T) {
	svc := NewMailService(newFakeMailRepo(), &fakeMailCategoryRepo{categories: map[uuid.UUID]*domain.MailCategory{}})

	_, err := svc.Create(context.Background(), ports.CreateMailInput{
		Subject:    "No category",
		Type:       domain.MailIncoming,
		CategoryID: uuid.New(),
		CreatedBy:  uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrMailCategoryNotFound)
}

func TestMailUpdateKeepsNumber(t *testing.T) {
	mails := newFakeMailRepo()
	categories := &fakeMailCategoryRepo{categories: map[uuid.UUID]*domain.MailCategory{}}
	category := &domain.MailCategory{Name: "Surat Keterangan", Code: "SK"}
	require.NoError(t, categories.Create(context.Background(), category))

	svc := NewMailService(mails, categories)
	mail, err := svc.Create(context.Background(), ports.CreateMailInput{
		Subject:    "Original subject",
		Type:       domain.MailOutgoing,
		CategoryID: category.ID,
		CreatedBy:  uuid.New(),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), mail.ID, ports.UpdateMailInput{
		Subject: "New subject",
		Status:  domain.MailPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, mail.MailNumber, updated.MailNumber)
	assert.Equal(t, "New subject", updated.Subject)
	assert.Equal(t, domain.MailPublished, updated.Status)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type MailType string

const (
	MailIncoming MailType = "INCOMING"
	MailOutgoing MailType = "OUTGOING"
)

type MailStatus string

const (
	MailDraft     MailStatus = "DRAFT"
	MailPublished MailStatus = "PUBLISHED"
	MailArchived  MailStatus = "ARCHIVED"
)

// MailCategory labels a class of official correspondence. Its Code is the
// short token embedded in generated mail numbers (e.g. "SK").
type MailCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Mail is a registered piece of official correspondence. MailNumber is
// assigned once at creation from a per-year counter and never changes.
type Mail struct {
	ID         uuid.UUID     `json:"id"`
	MailNumber string        `json:"mail_number"`
	Subject    string        `json:"subject"`
	Sender     string        `json:"sender,omitempty"`
	Recipient  string        `json:"recipient,omitempty"`
	Type       MailType      `json:"type"`
	Status     MailStatus    `json:"status"`
	CategoryID uuid.UUID     `json:"category_id"`
	Category   *MailCategory `json:"category,omitempty"`
	Date       time.Time     `json:"date"`
	FileURL    string        `json:"file_url,omitempty"`
	CreatedBy  uuid.UUID     `json:"created_by"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

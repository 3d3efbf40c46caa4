package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type MailRepository struct {
	db *sql.DB
}

func NewMailRepository(db *sql.DB) ports.MailRepository {
	return &MailRepository{db: db}
}

func (r *MailRepository) Create(ctx context.Context, mail *domain.Mail) error {
	query := `
		INSERT INTO mails (mail_number, subject, sender, recipient, type, status, category_id, date, file_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		mail.MailNumber, mail.Subject, mail.Sender, mail.Recipient,
		mail.Type, mail.Status, mail.CategoryID, mail.Date, mail.FileURL, mail.CreatedBy,
	).Scan(&mail.ID, &mail.CreatedAt, &mail.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert mail: %w", err)
	}
	return nil
}

func (r *MailRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mail, error) {
	query := `
		SELECT m.id, m.mail_number, m.subject, m.sender, m.recipient, m.type, m.status,
		       m.category_id, m.date, m.file_url, m.created_by, m.created_at, m.updated_at,
		       c.id, c.name, c.code, c.description, c.created_at
		FROM mails m
		JOIN mail_categories c ON c.id = m.category_id
		WHERE m.id = $1
	`
	mail, err := scanMail(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mail: %w", err)
	}
	return mail, nil
}

// List builds the filtered query with squirrel since the predicate set
// varies per request.
func (r *MailRepository) List(ctx context.Context, filter ports.MailFilter) ([]*domain.Mail, int, error) {
	where := sq.And{}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"m.subject": like},
			sq.ILike{"m.mail_number": like},
			sq.ILike{"m.sender": like},
			sq.ILike{"m.recipient": like},
		})
	}
	if filter.Type != "" {
		where = append(where, sq.Eq{"m.type": filter.Type})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"m.status": filter.Status})
	}

	countQuery := psql.Select("count(*)").From("mails m")
	if len(where) > 0 {
		countQuery = countQuery.Where(where)
	}
	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count mails: %w", err)
	}

	listQuery := psql.
		Select(
			"m.id", "m.mail_number", "m.subject", "m.sender", "m.recipient", "m.type", "m.status",
			"m.category_id", "m.date", "m.file_url", "m.created_by", "m.created_at", "m.updated_at",
			"c.id", "c.name", "c.code", "c.description", "c.created_at",
		).
		From("mails m").
		Join("mail_categories c ON c.id = m.category_id").
		OrderBy("m.date DESC", "m.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	if len(where) > 0 {
		listQuery = listQuery.Where(where)
	}
	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mails: %w", err)
	}
	defer rows.Close()

	var mails []*domain.Mail
	for rows.Next() {
		mail, err := scanMail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan mail: %w", err)
		}
		mails = append(mails, mail)
	}
	return mails, total, rows.Err()
}

func (r *MailRepository) Update(ctx context.Context, mail *domain.Mail) error {
	query := `
		UPDATE mails
		SET subject = $2, sender = $3, recipient = $4, status = $5, file_url = $6, updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		mail.ID, mail.Subject, mail.Sender, mail.Recipient, mail.Status, mail.FileURL,
	)
	return err
}

func (r *MailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM mails WHERE id = $1`, id)
	return err
}

// NextSequence advances the per-year counter in one statement so that
// concurrent mail registrations cannot observe the same value.
func (r *MailRepository) NextSequence(ctx context.Context, year int) (int, error) {
	query := `
		INSERT INTO mail_counters (year, counter)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET counter = mail_counters.counter + 1
		RETURNING counter
	`
	var seq int
	if err := r.db.QueryRowContext(ctx, query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance mail counter: %w", err)
	}
	return seq, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMail(row rowScanner) (*domain.Mail, error) {
	mail := &domain.Mail{Category: &domain.MailCategory{}}
	err := row.Scan(
		&mail.ID, &mail.MailNumber, &mail.Subject, &mail.Sender, &mail.Recipient,
		&mail.Type, &mail.Status, &mail.CategoryID, &mail.Date, &mail.FileURL,
		&mail.CreatedBy, &mail.CreatedAt, &mail.UpdatedAt,
		&mail.Category.ID, &mail.Category.Name, &mail.Category.Code,
		&mail.Category.Description, &mail.Category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return mail, nil
}

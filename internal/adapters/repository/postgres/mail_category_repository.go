package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type MailCategoryRepository struct {
	db *sql.DB
}

func NewMailCategoryRepository(db *sql.DB) ports.MailCategoryRepository {
	return &MailCategoryRepository{db: db}
}

func (r *MailCategoryRepository) List(ctx context.Context) ([]*domain.MailCategory, error) {
	query := `SELECT id, name, code, description, created_at FROM mail_categories ORDER BY code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mail categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.MailCategory
	for rows.Next() {
		c := &domain.MailCategory{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mail category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *MailCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MailCategory, error) {
	query := `SELECT id, name, code, description, created_at FROM mail_categories WHERE id = $1`
	c := &domain.MailCategory{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *MailCategoryRepository) Create(ctx context.Context, category *domain.MailCategory) error {
	query := `
		INSERT INTO mail_categories (name, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, category.Name, category.Code, category.Description).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert mail category: %w", err)
	}
	return nil
}

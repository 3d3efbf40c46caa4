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

type AuthorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) ports.AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) List(ctx context.Context) ([]*domain.Author, error) {
	query := `
		SELECT id, name, title, bio, photo_url, category, sort_order, created_at, updated_at
		FROM authors
		ORDER BY sort_order, name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []*domain.Author
	for rows.Next() {
		a := &domain.Author{}
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Title, &a.Bio, &a.PhotoURL,
			&a.Category, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	query := `
		SELECT id, name, title, bio, photo_url, category, sort_order, created_at, updated_at
		FROM authors
		WHERE id = $1
	`
	a := &domain.Author{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Title, &a.Bio, &a.PhotoURL,
		&a.Category, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	query := `
		INSERT INTO authors (name, title, bio, photo_url, category, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		author.Name, author.Title, author.Bio, author.PhotoURL, author.Category, author.SortOrder,
	).Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}
	return nil
}

func (r *AuthorRepository) Update(ctx context.Context, author *domain.Author) error {
	query := `
		UPDATE authors
		SET name = $2, title = $3, bio = $4, photo_url = $5, category = $6, sort_order = $7, updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		author.ID, author.Name, author.Title, author.Bio, author.PhotoURL, author.Category, author.SortOrder,
	)
	return err
}

func (r *AuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	return err
}

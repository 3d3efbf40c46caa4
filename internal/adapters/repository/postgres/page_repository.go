package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type PageRepository struct {
	db *sql.DB
}

func NewPageRepository(db *sql.DB) ports.PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) GetByPage(ctx context.Context, pageSlug string) ([]*domain.PageSection, error) {
	query := `
		SELECT id, page_slug, section_key, title, body, sort_order, updated_by, created_at, updated_at
		FROM page_sections
		WHERE page_slug = $1
		ORDER BY sort_order, section_key
	`
	rows, err := r.db.QueryContext(ctx, query, pageSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get page sections: %w", err)
	}
	defer rows.Close()

	var sections []*domain.PageSection
	for rows.Next() {
		s := &domain.PageSection{}
		if err := rows.Scan(
			&s.ID, &s.PageSlug, &s.SectionKey, &s.Title, &s.Body,
			&s.SortOrder, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan page section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *PageRepository) Upsert(ctx context.Context, section *domain.PageSection) error {
	query := `
		INSERT INTO page_sections (page_slug, section_key, title, body, sort_order, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (page_slug, section_key) DO UPDATE
		SET title = excluded.title, body = excluded.body, sort_order = excluded.sort_order,
		    updated_by = excluded.updated_by, updated_at = now()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		section.PageSlug, section.SectionKey, section.Title, section.Body,
		section.SortOrder, section.UpdatedBy,
	).Scan(&section.ID, &section.CreatedAt, &section.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert page section: %w", err)
	}
	return nil
}

func (r *PageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM page_sections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}

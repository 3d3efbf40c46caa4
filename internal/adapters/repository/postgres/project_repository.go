package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ports.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (title, slug, description, status, start_date, end_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		project.Title, project.Slug, project.Description, project.Status,
		project.StartDate, project.EndDate, project.CreatedBy,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	return r.getOne(ctx, "slug = $1", slug)
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]*domain.Project, int, error) {
	where := sq.And{}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"title": like},
			sq.ILike{"description": like},
		})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	if filter.PublicOnly {
		where = append(where, sq.NotEq{"status": domain.ProjectPlanned})
	}

	countQuery := psql.Select("count(*)").From("projects")
	if len(where) > 0 {
		countQuery = countQuery.Where(where)
	}
	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	listQuery := psql.
		Select("id", "title", "slug", "description", "status", "start_date", "end_date", "created_by", "created_at", "updated_at").
		From("projects").
		OrderBy("created_at DESC").
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
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p := &domain.Project{}
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Description, &p.Status,
			&p.StartDate, &p.EndDate, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, total, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $2, slug = $3, description = $4, status = $5, start_date = $6, end_date = $7, updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Title, project.Slug, project.Description,
		project.Status, project.StartDate, project.EndDate,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrSlugTaken
		}
	}
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *ProjectRepository) getOne(ctx context.Context, cond string, arg any) (*domain.Project, error) {
	query := `
		SELECT id, title, slug, description, status, start_date, end_date, created_by, created_at, updated_at
		FROM projects
		WHERE ` + cond
	p := &domain.Project{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Status,
		&p.StartDate, &p.EndDate, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

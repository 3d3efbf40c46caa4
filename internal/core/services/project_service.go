package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type ProjectService struct {
	repo ports.ProjectRepository
}

func NewProjectService(repo ports.ProjectRepository) ports.ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	status := input.Status
	if status == "" {
		status = domain.ProjectPlanned
	}

	project := &domain.Project{
		Title:       input.Title,
		Slug:        slug.Make(input.Title),
		Description: input.Description,
		Status:      status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, slugStr string) (*domain.Project, error) {
	project, err := s.repo.GetBySlug(ctx, slugStr)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, input ports.ListProjectsInput) ([]*domain.Project, int, error) {
	limit, offset := pageBounds(input.Page, input.PageSize)
	filter := ports.ProjectFilter{
		Search:     input.Search,
		Status:     domain.ProjectStatus(input.Status),
		PublicOnly: input.PublicOnly,
		Limit:      limit,
		Offset:     offset,
	}
	projects, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	if input.Title != "" && input.Title != project.Title {
		project.Title = input.Title
		project.Slug = slug.Make(input.Title)
	}
	project.Description = input.Description
	if input.Status != "" {
		project.Status = input.Status
	}
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return domain.ErrProjectNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type TaskService struct {
	repo ports.TaskRepository
}

func NewTaskService(repo ports.TaskRepository) ports.TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskTodo,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if input.Title != "" {
		task.Title = input.Title
	}
	task.Description = input.Description
	if input.Status != "" {
		task.Status = input.Status
	}
	task.AssigneeID = input.AssigneeID
	task.DueDate = input.DueDate

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/access"
	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"project_id" validate:"omitempty,uuid"`
	AssigneeID  string `json:"assignee_id" validate:"omitempty,uuid"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW DONE"`
	AssigneeID  string `json:"assignee_id" validate:"omitempty,uuid"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.service.Create(r.Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   parseOptionalUUID(req.ProjectID),
		AssigneeID:  parseOptionalUUID(req.AssigneeID),
		DueDate:     parseDate(req.DueDate),
		CreatedBy:   identity.ID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	tasks, err := h.service.ListForUser(r.Context(), identity.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, ok := h.authorizedTask(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	task, ok := h.authorizedTask(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), task.ID, ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		AssigneeID:  parseOptionalUUID(req.AssigneeID),
		DueDate:     parseDate(req.DueDate),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	task, ok := h.authorizedTask(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), task.ID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authorizedTask loads the task and checks the creator-or-admin rule.
func (h *TaskHandler) authorizedTask(w http.ResponseWriter, r *http.Request) (*domain.Task, bool) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return nil, false
	}

	task, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return nil, false
	}

	if err := access.Require(identityFrom(r), access.OwnerOrRole(task.CreatedBy, domain.RoleAdmin)); err != nil {
		respondServiceError(w, err)
		return nil, false
	}
	return task, true
}

func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=PLANNED ACTIVE COMPLETED"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req projectRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.service.Create(r.Context(), ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.ProjectStatus(req.Status),
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		CreatedBy:   identity.ID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

// ListPublic hides PLANNED projects; it backs the marketing site.
func (h *ProjectHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *ProjectHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *ProjectHandler) list(w http.ResponseWriter, r *http.Request, publicOnly bool) {
	page, pageSize := pageParams(r)
	q := r.URL.Query()

	projects, total, err := h.service.List(r.Context(), ports.ListProjectsInput{
		Page:       page,
		PageSize:   pageSize,
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		PublicOnly: publicOnly,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPaged(projects, page, pageSize, total))
}

func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req projectRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.service.Update(r.Context(), id, ports.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.ProjectStatus(req.Status),
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

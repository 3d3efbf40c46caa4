package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type PageHandler struct {
	service ports.PageService
}

func NewPageHandler(service ports.PageService) *PageHandler {
	return &PageHandler{service: service}
}

type upsertSectionRequest struct {
	PageSlug   string `json:"page_slug" validate:"required"`
	SectionKey string `json:"section_key" validate:"required"`
	Title      string `json:"title"`
	Body       string `json:"body" validate:"required"`
	SortOrder  int    `json:"sort_order"`
}

func (h *PageHandler) GetByPage(w http.ResponseWriter, r *http.Request) {
	sections, err := h.service.GetByPage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sections)
}

func (h *PageHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req upsertSectionRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.service.Upsert(r.Context(), ports.UpsertSectionInput{
		PageSlug:   req.PageSlug,
		SectionKey: req.SectionKey,
		Title:      req.Title,
		Body:       req.Body,
		SortOrder:  req.SortOrder,
		UpdatedBy:  identity.ID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, section)
}

func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

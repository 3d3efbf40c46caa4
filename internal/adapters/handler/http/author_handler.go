package http

import (
	"net/http"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type AuthorHandler struct {
	service ports.AuthorService
}

func NewAuthorHandler(service ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

type authorRequest struct {
	Name      string `json:"name" validate:"required"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
	Category  string `json:"category" validate:"omitempty,oneof=STAFF BOARD FELLOW"`
	SortOrder int    `json:"sort_order"`
}

func (r authorRequest) input() ports.AuthorInput {
	return ports.AuthorInput{
		Name:      r.Name,
		Title:     r.Title,
		Bio:       r.Bio,
		PhotoURL:  r.PhotoURL,
		Category:  domain.AuthorCategory(r.Category),
		SortOrder: r.SortOrder,
	}
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, authors)
}

func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	author, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	author, err := h.service.Create(r.Context(), req.input())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, author)
}

func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req authorRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	author, err := h.service.Update(r.Context(), id, req.input())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

type MailHandler struct {
	service ports.MailService
}

func NewMailHandler(service ports.MailService) *MailHandler {
	return &MailHandler{service: service}
}

type createMailRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Sender     string `json:"sender"`
	Recipient  string `json:"recipient"`
	Type       string `json:"type" validate:"required,oneof=INCOMING OUTGOING"`
	Status     string `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	FileURL    string `json:"file_url"`
}

type updateMailRequest struct {
	Subject   string `json:"subject" validate:"required"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Status    string `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	FileURL   string `json:"file_url"`
}

func (h *MailHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req createMailRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	var date time.Time
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	mail, err := h.service.Create(r.Context(), ports.CreateMailInput{
		Subject:    req.Subject,
		Sender:     req.Sender,
		Recipient:  req.Recipient,
		Type:       domain.MailType(req.Type),
		Status:     domain.MailStatus(req.Status),
		CategoryID: categoryID,
		Date:       date,
		FileURL:    req.FileURL,
		CreatedBy:  identity.ID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mail)
}

func (h *MailHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	q := r.URL.Query()

	mails, total, err := h.service.List(r.Context(), ports.ListMailsInput{
		Page:     page,
		PageSize: pageSize,
		Search:   q.Get("search"),
		Type:     q.Get("type"),
		Status:   q.Get("status"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPaged(mails, page, pageSize, total))
}

func (h *MailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	mail, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mail)
}

func (h *MailHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req updateMailRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	mail, err := h.service.Update(r.Context(), id, ports.UpdateMailInput{
		Subject:   req.Subject,
		Sender:    req.Sender,
		Recipient: req.Recipient,
		Status:    domain.MailStatus(req.Status),
		FileURL:   req.FileURL,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mail)
}

func (h *MailHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

type createMailCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required,alpha,uppercase,max=5"`
	Description string `json:"description"`
}

func (h *MailHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *MailHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createMailCategoryRequest
	if err := decodeValid(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name, req.Code, req.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

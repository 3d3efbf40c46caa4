package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/adilaksono/lembaga-cms/internal/core/access"
	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

var validate = validator.New()

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// paged wraps list results with the pagination figures the admin tables
// consume.
type paged struct {
	Items      any `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func newPaged(items any, page, pageSize, total int) paged {
	if pageSize < 1 {
		pageSize = 10
	}
	if page < 1 {
		page = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	return paged{Items: items, Page: page, PageSize: pageSize, TotalItems: total, TotalPages: totalPages}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: message})
}

// respondServiceError maps domain and guard errors to status codes. The
// fallback is a bare 500 so driver errors never leak to clients.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrSlugTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, access.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, access.ErrInsufficientRole), errors.Is(err, access.ErrNotOwner):
		respondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAuthorNotFound),
		errors.Is(err, domain.ErrMailNotFound),
		errors.Is(err, domain.ErrMailCategoryNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrSectionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeValid decodes a JSON body into dst and runs struct validation.
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return validate.Struct(dst)
}

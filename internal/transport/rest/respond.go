// Package rest implements the JSON HTTP API. Every response uses a single
// envelope: {success, data, message, error, pagination}. Handlers translate
// sentinel domain errors to status codes in one place so the mapping cannot
// drift between resources.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/prodboard-backend/internal/domain"
	"github.com/heartmarshall/prodboard-backend/internal/permissions"
	"github.com/heartmarshall/prodboard-backend/pkg/ctxutil"
)

type apiResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      *apiError   `json:"error,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
}

type apiError struct {
	Message string          `json:"message"`
	Fields  []apiFieldError `json:"fields,omitempty"`
}

type apiFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func newPagination(page, limit, total int) *pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: true, Message: message})
}

func writePage(w http.ResponseWriter, data any, page, limit, total int) {
	writeJSON(w, http.StatusOK, apiResponse{
		Success:    true,
		Data:       data,
		Pagination: newPagination(page, limit, total),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Error: &apiError{Message: message}})
}

// respondError maps service errors to HTTP status codes. Field-level
// validation details are surfaced; anything unrecognized is logged and
// reported as a 500 without leaking internals.
func respondError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		fields := make([]apiFieldError, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, apiFieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Error:   &apiError{Message: "validation failed", Fields: fields},
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// identity extracts the caller identity or writes a 401.
func identity(w http.ResponseWriter, r *http.Request) (ctxutil.Identity, bool) {
	id, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return ctxutil.Identity{}, false
	}
	return id, true
}

// require extracts the caller identity and checks the role against action.
// Writes 401 for anonymous callers, 403 for insufficient role.
func require(w http.ResponseWriter, r *http.Request, action permissions.Action) (ctxutil.Identity, bool) {
	id, ok := identity(w, r)
	if !ok {
		return ctxutil.Identity{}, false
	}
	if !permissions.Can(id.Role, action) {
		writeError(w, http.StatusForbidden, "forbidden")
		return ctxutil.Identity{}, false
	}
	return id, true
}

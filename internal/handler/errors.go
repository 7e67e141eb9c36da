package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/identity"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteSuccess(w, ErrorResponse{Success: false, Error: message}, statusCode)
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps the error kind to a status code. Storage failures
// are logged and hidden from the client.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *apperrors.ValidationError
	var notAuthorizedErr *apperrors.NotAuthorizedError

	switch {
	case errors.As(err, &validationErr):
		WriteError(w, validationErr.Reason, http.StatusBadRequest)
	case errors.As(err, &notAuthorizedErr):
		WriteError(w, notAuthorizedErr.Reason, http.StatusForbidden)
	default:
		h.Log.Error("ошибка при обработке запроса",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		WriteError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// caller writes 401 and returns false for anonymous requests.
func caller(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return identity.Identity{}, false
	}
	return id, true
}

// decodeJSON writes 400 and returns false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return false
	}
	return true
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/pkg/apperrors"
)

const titleBadRequest = "Bad Request! Consult the documentation"

type errorMapping struct {
	target error
	status int
	code   string
	title  string
}

// errorTable maps domain failures to HTTP responses. First match wins.
var errorTable = []errorMapping{
	{apperrors.ErrDateInvalid, http.StatusBadRequest, "DATE_INVALID", "Bad Request! Date Invalid"},
	{apperrors.ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED", titleBadRequest},
	{apperrors.ErrInvalidArgument, http.StatusBadRequest, "INVALID_ARGUMENT", titleBadRequest},
	{apperrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Not Found Resource"},
	{apperrors.ErrConflict, http.StatusConflict, "CONFLICT", "Customer with the same email or tax ID already exists"},
	{apperrors.ErrAccessDenied, http.StatusForbidden, "ACCESS_DENIED", "You can't access a credit request that doesn't belong to you"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized"},
}

var timeNow = time.Now

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	detail := dto.ErrorDetail{
		Code:      "INTERNAL_ERROR",
		Title:     "Internal Server Error",
		Message:   "An unexpected error occurred.",
		Status:    http.StatusInternalServerError,
		Timestamp: timeNow().UTC(),
	}

	matched := false
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			detail.Code, detail.Title, detail.Status = m.code, m.title, m.status
			detail.Message = err.Error()
			matched = true
			break
		}
	}
	if !matched {
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	var fieldErrs apperrors.FieldErrors
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &fieldErrs):
		detail.Details = fieldErrs
	case errors.As(err, &validationErr):
		detail.Field = validationErr.Field
		detail.Details = map[string]string{validationErr.Field: validationErr.Message}
	}

	respondJSON(w, detail.Status, dto.ErrorResponse{Error: detail})
}

func parseID(raw, name string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", apperrors.ErrInvalidArgument, name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", apperrors.ErrInvalidArgument, name)
	}
	return id, nil
}

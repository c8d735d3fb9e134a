package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/pkg/ctxutil"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order; business kinds come before the generic
// ErrInvalidValue and ErrAlreadyExists they might also wrap.
var errorMappings = []errorMapping{
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{domain.ErrInvalidState, http.StatusUnprocessableEntity, "INVALID_STATE"},
	{domain.ErrNotEligible, http.StatusUnprocessableEntity, "NOT_ELIGIBLE"},
	{domain.ErrInvalidSex, http.StatusUnprocessableEntity, "INVALID_SEX"},
	{domain.ErrDuplicateTag, http.StatusConflict, "DUPLICATE_TAG"},
	{domain.ErrAlreadyExited, http.StatusConflict, "ALREADY_EXITED"},
	{domain.ErrAlreadyThere, http.StatusConflict, "ALREADY_THERE"},
	{domain.ErrAlreadyPregnant, http.StatusConflict, "ALREADY_PREGNANT"},
	{domain.ErrAlreadyConfirmed, http.StatusConflict, "ALREADY_CONFIRMED"},
	{domain.ErrReferenced, http.StatusConflict, "REFERENCED"},
	{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
	{domain.ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
	{domain.ErrInvalidValue, http.StatusBadRequest, "VALIDATION"},
}

// writeDomainError maps err to a status code and JSON error body. Unknown
// errors are logged and reported as a generic 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		body := errorBody{Error: errorDetail{Code: m.code, Message: err.Error()}}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			body.Error.Message = "validation failed"
			body.Error.Fields = mapSlice(ve.Errors, func(fe domain.FieldError) fieldError {
				return fieldError{Field: fe.Field, Message: fe.Message}
			})
		}
		writeJSON(w, m.status, body)
		return
	}

	if errors.Is(err, context.Canceled) {
		log.WarnContext(r.Context(), "request canceled",
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: errorDetail{Code: "CANCELED", Message: "request canceled"}})
		return
	}

	log.ErrorContext(r.Context(), "unexpected error",
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
	)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{Code: "INTERNAL", Message: "internal server error"}})
}

// Package server provides the HTTP interface of the resume builder: the
// server-rendered builder pages and the JSON API.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrDraftsDisabled is returned by draft endpoints when no database is configured.
var ErrDraftsDisabled = errors.New("drafts are disabled: no database configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	var (
		validationErr *ErrValidation
		fieldErr      *editor.FieldError
		sectionErr    *builder.UnknownSectionError
		schemaErr     *schemas.ValidationError
		pdfErr        *export.PDFError
		validatorErrs validator.ValidationErrors
	)
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, db.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.As(err, &sectionErr):
		return http.StatusNotFound
	case errors.As(err, &validationErr), errors.As(err, &fieldErr), errors.As(err, &validatorErrs):
		return http.StatusBadRequest
	case errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDraftsDisabled), errors.Is(err, export.ErrPDFUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &pdfErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		// Return first validation error for simplicity
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/analyzer"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		notFound         *analyzer.DocumentNotFoundError
		analysisNotFound *analyzer.AnalysisNotFoundError
		wrongType        *analyzer.WrongDocumentTypeError
		emptyDoc         *analyzer.EmptyDocumentError
		validation       *ErrValidation
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &analysisNotFound):
		return http.StatusNotFound
	case errors.As(err, &wrongType), errors.As(err, &emptyDoc), errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package skills

import (
	"fmt"
	"strings"
)

// OntologyFormatError indicates ontology JSON that could not be parsed.
type OntologyFormatError struct {
	Message string
	Cause   error
}

func (e *OntologyFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ontology format error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ontology format error: %s", e.Message)
}

func (e *OntologyFormatError) Unwrap() error {
	return e.Cause
}

// OntologyValidationError indicates ontology JSON that parsed but failed
// schema validation.
type OntologyValidationError struct {
	Problems []string
}

func (e *OntologyValidationError) Error() string {
	return fmt.Sprintf("ontology validation failed: %s", strings.Join(e.Problems, "; "))
}

package analyzer

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DocumentNotFoundError reports a reference to a document id that does not
// exist.
type DocumentNotFoundError struct {
	ID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document %s not found", e.ID)
}

// WrongDocumentTypeError reports a document id that resolves to the wrong
// kind of document, e.g. a job description passed as a resume.
type WrongDocumentTypeError struct {
	ID   string
	Want types.DocumentType
	Got  types.DocumentType
}

func (e *WrongDocumentTypeError) Error() string {
	return fmt.Sprintf("document %s is a %s, not a %s", e.ID, e.Got, e.Want)
}

// AnalysisNotFoundError reports a reference to an analysis id that does not
// exist.
type AnalysisNotFoundError struct {
	ID string
}

func (e *AnalysisNotFoundError) Error() string {
	return fmt.Sprintf("analysis %s not found", e.ID)
}

// EmptyDocumentError reports an upload whose text normalizes to nothing.
type EmptyDocumentError struct {
	Type types.DocumentType
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no text content found in %s", e.Type)
}

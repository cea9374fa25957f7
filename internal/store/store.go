// Package store persists documents and analyses behind a repository
// abstraction. The in-memory implementation is the default; the PostgreSQL
// implementation is selected when a database URL is configured. Lookups for
// absent records return nil without error; the caller decides whether
// absence is a failure.
package store

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DocumentStore persists uploaded documents.
type DocumentStore interface {
	// PutDocument stores a document, replacing any existing record with
	// the same id.
	PutDocument(ctx context.Context, doc *types.Document) error
	// GetDocument returns the document with the given id, or nil.
	GetDocument(ctx context.Context, id string) (*types.Document, error)
	// GetDocumentByHash returns a stored document of the given type with
	// the given content hash, or nil.
	GetDocumentByHash(ctx context.Context, docType types.DocumentType, hash string) (*types.Document, error)
	// CountDocuments counts stored documents of the given type.
	CountDocuments(ctx context.Context, docType types.DocumentType) (int, error)
}

// AnalysisStore persists analysis results.
type AnalysisStore interface {
	// PutAnalysis stores an analysis record atomically.
	PutAnalysis(ctx context.Context, analysis *types.Analysis) error
	// GetAnalysis returns the analysis with the given id, or nil.
	GetAnalysis(ctx context.Context, id string) (*types.Analysis, error)
	// DeleteAnalysis removes an analysis, reporting whether it existed.
	DeleteAnalysis(ctx context.Context, id string) (bool, error)
	// ListAnalyses returns a page of analyses in descending creation-time
	// order.
	ListAnalyses(ctx context.Context, limit, offset int) ([]*types.Analysis, error)
	// CountAnalyses counts stored analyses.
	CountAnalyses(ctx context.Context) (int, error)
	// AverageScore returns the mean score across stored analyses, 0 when
	// none exist.
	AverageScore(ctx context.Context) (float64, error)
}

// Store is the full persistence surface the service composes over.
type Store interface {
	DocumentStore
	AnalysisStore

	// Kind identifies the backing storage, e.g. "memory" or "postgres".
	Kind() string
	// Reset removes all stored documents and analyses.
	Reset(ctx context.Context) error
	// Close releases underlying resources.
	Close()
}

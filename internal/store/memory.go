package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Memory is a mutex-guarded in-memory Store. Safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	documents map[string]*types.Document
	analyses  map[string]*types.Analysis
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		documents: make(map[string]*types.Document),
		analyses:  make(map[string]*types.Analysis),
	}
}

var _ Store = (*Memory)(nil)

// Kind implements Store.
func (m *Memory) Kind() string { return "memory" }

// Close implements Store. A no-op for the in-memory store.
func (m *Memory) Close() {}

// PutDocument implements DocumentStore.
func (m *Memory) PutDocument(_ context.Context, doc *types.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.ID] = doc
	return nil
}

// GetDocument implements DocumentStore.
func (m *Memory) GetDocument(_ context.Context, id string) (*types.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.documents[id], nil
}

// GetDocumentByHash implements DocumentStore.
func (m *Memory) GetDocumentByHash(_ context.Context, docType types.DocumentType, hash string) (*types.Document, error) {
	if hash == "" {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, doc := range m.documents {
		if doc.Type == docType && doc.ContentHash == hash {
			return doc, nil
		}
	}
	return nil, nil
}

// CountDocuments implements DocumentStore.
func (m *Memory) CountDocuments(_ context.Context, docType types.DocumentType) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, doc := range m.documents {
		if doc.Type == docType {
			count++
		}
	}
	return count, nil
}

// PutAnalysis implements AnalysisStore.
func (m *Memory) PutAnalysis(_ context.Context, analysis *types.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses[analysis.ID] = analysis
	return nil
}

// GetAnalysis implements AnalysisStore.
func (m *Memory) GetAnalysis(_ context.Context, id string) (*types.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.analyses[id], nil
}

// DeleteAnalysis implements AnalysisStore.
func (m *Memory) DeleteAnalysis(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.analyses[id]; !ok {
		return false, nil
	}
	delete(m.analyses, id)
	return true, nil
}

// ListAnalyses implements AnalysisStore. Results are ordered by creation
// time descending, ties broken by id for a stable page sequence.
func (m *Memory) ListAnalyses(_ context.Context, limit, offset int) ([]*types.Analysis, error) {
	m.mu.RLock()
	all := make([]*types.Analysis, 0, len(m.analyses))
	for _, a := range m.analyses {
		all = append(all, a)
	}
	m.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	if offset >= len(all) {
		return []*types.Analysis{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// CountAnalyses implements AnalysisStore.
func (m *Memory) CountAnalyses(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.analyses), nil
}

// AverageScore implements AnalysisStore.
func (m *Memory) AverageScore(_ context.Context) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.analyses) == 0 {
		return 0, nil
	}
	total := 0
	for _, a := range m.analyses {
		total += a.Score
	}
	return float64(total) / float64(len(m.analyses)), nil
}

// Reset implements Store.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = make(map[string]*types.Document)
	m.analyses = make(map[string]*types.Analysis)
	return nil
}

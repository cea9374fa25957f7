package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Postgres stores whole records as JSONB so every insert and update is a
// single atomic statement. Lookup columns (type, hash, score, created_at)
// are kept alongside the record for indexed access.
type Postgres struct {
	pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id           TEXT PRIMARY KEY,
	doc_type     TEXT NOT NULL,
	content_hash TEXT NOT NULL,
	record       JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS documents_hash_idx ON documents (doc_type, content_hash);

CREATE TABLE IF NOT EXISTS analyses (
	id         TEXT PRIMARY KEY,
	score      INT NOT NULL,
	record     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_created_idx ON analyses (created_at DESC);
`

// ConnectPostgres establishes a connection pool and ensures the schema
// exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

var _ Store = (*Postgres)(nil)

// Kind implements Store.
func (p *Postgres) Kind() string { return "postgres" }

// Close implements Store.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// PutDocument implements DocumentStore.
func (p *Postgres) PutDocument(ctx context.Context, doc *types.Document) error {
	record, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO documents (id, doc_type, content_hash, record, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET doc_type = $2, content_hash = $3, record = $4, created_at = $5`,
		doc.ID, string(doc.Type), doc.ContentHash, record, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", doc.ID, err)
	}
	return nil
}

// GetDocument implements DocumentStore.
func (p *Postgres) GetDocument(ctx context.Context, id string) (*types.Document, error) {
	return p.scanDocument(p.pool.QueryRow(ctx,
		`SELECT record FROM documents WHERE id = $1`, id))
}

// GetDocumentByHash implements DocumentStore.
func (p *Postgres) GetDocumentByHash(ctx context.Context, docType types.DocumentType, hash string) (*types.Document, error) {
	if hash == "" {
		return nil, nil
	}
	return p.scanDocument(p.pool.QueryRow(ctx,
		`SELECT record FROM documents WHERE doc_type = $1 AND content_hash = $2
		 ORDER BY created_at LIMIT 1`,
		string(docType), hash))
}

func (p *Postgres) scanDocument(row pgx.Row) (*types.Document, error) {
	var record []byte
	if err := row.Scan(&record); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	var doc types.Document
	if err := json.Unmarshal(record, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// CountDocuments implements DocumentStore.
func (p *Postgres) CountDocuments(ctx context.Context, docType types.DocumentType) (int, error) {
	var count int
	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE doc_type = $1`, string(docType),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// PutAnalysis implements AnalysisStore.
func (p *Postgres) PutAnalysis(ctx context.Context, analysis *types.Analysis) error {
	record, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO analyses (id, score, record, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET score = $2, record = $3, created_at = $4`,
		analysis.ID, analysis.Score, record, analysis.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store analysis %s: %w", analysis.ID, err)
	}
	return nil
}

// GetAnalysis implements AnalysisStore.
func (p *Postgres) GetAnalysis(ctx context.Context, id string) (*types.Analysis, error) {
	var record []byte
	err := p.pool.QueryRow(ctx,
		`SELECT record FROM analyses WHERE id = $1`, id,
	).Scan(&record)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	var analysis types.Analysis
	if err := json.Unmarshal(record, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &analysis, nil
}

// DeleteAnalysis implements AnalysisStore.
func (p *Postgres) DeleteAnalysis(ctx context.Context, id string) (bool, error) {
	result, err := p.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ListAnalyses implements AnalysisStore.
func (p *Postgres) ListAnalyses(ctx context.Context, limit, offset int) ([]*types.Analysis, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT record FROM analyses ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := []*types.Analysis{}
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		var analysis types.Analysis
		if err := json.Unmarshal(record, &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		analyses = append(analyses, &analysis)
	}
	return analyses, rows.Err()
}

// CountAnalyses implements AnalysisStore.
func (p *Postgres) CountAnalyses(ctx context.Context) (int, error) {
	var count int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

// AverageScore implements AnalysisStore.
func (p *Postgres) AverageScore(ctx context.Context) (float64, error) {
	var avg float64
	err := p.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(score), 0) FROM analyses`,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average scores: %w", err)
	}
	return avg, nil
}

// Reset implements Store.
func (p *Postgres) Reset(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `TRUNCATE documents, analyses`); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}

// Package analyzer is the composition root of the matching pipeline: it
// ingests documents, runs the scoring pipeline over stored pairs, and owns
// the repository dependency.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Service orchestrates ingestion and analysis over a Store.
type Service struct {
	store     store.Store
	extractor *skills.Extractor
	log       zerolog.Logger

	// ingests collapses concurrent uploads of identical content into one
	// pipeline run per content hash.
	ingests singleflight.Group
}

// New builds a Service over the given store.
func New(s store.Store, ont *skills.Ontology, log zerolog.Logger) *Service {
	return &Service{
		store:     s,
		extractor: skills.NewExtractor(ont),
		log:       log,
	}
}

// IngestResume processes resume text into a stored document. Uploading
// content identical to an existing resume returns the stored document
// instead of creating a duplicate.
func (s *Service) IngestResume(ctx context.Context, text, source string) (*types.Document, error) {
	return s.ingest(ctx, types.DocumentTypeResume, text, source)
}

// IngestJobDescription processes job description text into a stored
// document, deduplicated by content like IngestResume.
func (s *Service) IngestJobDescription(ctx context.Context, text, source string) (*types.Document, error) {
	return s.ingest(ctx, types.DocumentTypeJobDescription, text, source)
}

func (s *Service) ingest(ctx context.Context, docType types.DocumentType, text, source string) (*types.Document, error) {
	start := time.Now()

	cleanText := parsing.Normalize(text)
	if cleanText == "" {
		return nil, &EmptyDocumentError{Type: docType}
	}
	hash := parsing.ContentHash(cleanText)

	result, err, _ := s.ingests.Do(string(docType)+":"+hash, func() (any, error) {
		existing, err := s.store.GetDocumentByHash(ctx, docType, hash)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate: %w", err)
		}
		if existing != nil {
			s.log.Debug().Str("document_id", existing.ID).Msg("duplicate content, reusing document")
			return existing, nil
		}

		// Job descriptions rarely carry resume-style headers, so section
		// detection runs on resumes only.
		var sections []types.DocumentSection
		if docType == types.DocumentTypeResume {
			sections = parsing.DetectSections(cleanText)
		}

		doc := &types.Document{
			ID:              newID(idPrefix(docType)),
			Type:            docType,
			Source:          source,
			ContentHash:     hash,
			CleanText:       cleanText,
			Sections:        sections,
			ExtractedSkills: s.extractor.Extract(cleanText),
			Vectors:         similarity.DocumentVectors(cleanText, sections),
			Metadata:        parsing.ExtractMetadata(cleanText, sections),
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.store.PutDocument(ctx, doc); err != nil {
			return nil, fmt.Errorf("failed to store document: %w", err)
		}

		s.log.Info().
			Str("document_id", doc.ID).
			Int("skills", len(doc.ExtractedSkills)).
			Dur("elapsed", time.Since(start)).
			Msg("document ingested")
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.Document), nil
}

// Analyze scores a stored resume against a stored job description. Both ids
// must exist and resolve to the right document type; nothing is stored when
// validation fails.
func (s *Service) Analyze(ctx context.Context, resumeID, jdID, targetRole string) (*types.Analysis, scoring.ScoreMetadata, error) {
	start := time.Now()

	resume, err := s.getTyped(ctx, resumeID, types.DocumentTypeResume)
	if err != nil {
		return nil, scoring.ScoreMetadata{}, err
	}
	jd, err := s.getTyped(ctx, jdID, types.DocumentTypeJobDescription)
	if err != nil {
		return nil, scoring.ScoreMetadata{}, err
	}

	semantic := similarity.PairSimilarity(resume.CleanText, jd.CleanText)
	score, components, meta := scoring.Score(
		resume.ExtractedSkills, jd.ExtractedSkills, semantic,
		resume.CleanText, jd.CleanText, targetRole,
	)
	report := scoring.GenerateAnalysis(
		resume.ExtractedSkills, jd.ExtractedSkills,
		resume.CleanText, jd.CleanText, components,
	)

	analysis := &types.Analysis{
		ID:               newID("analysis"),
		ResumeID:         resumeID,
		JDID:             jdID,
		Score:            score,
		Components:       components,
		MatchedSkills:    report.MatchedSkills,
		MissingSkills:    report.MissingSkills,
		NiceToHaveSkills: report.NiceToHaveSkills,
		Strengths:        report.Strengths,
		Risks:            report.Risks,
		Recommendations:  report.Recommendations,
		Snippets:         report.Snippets,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.store.PutAnalysis(ctx, analysis); err != nil {
		return nil, scoring.ScoreMetadata{}, fmt.Errorf("failed to store analysis: %w", err)
	}

	s.log.Info().
		Str("analysis_id", analysis.ID).
		Int("score", score).
		Dur("elapsed", time.Since(start)).
		Msg("analysis completed")
	return analysis, meta, nil
}

func (s *Service) getTyped(ctx context.Context, id string, want types.DocumentType) (*types.Document, error) {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if doc == nil {
		return nil, &DocumentNotFoundError{ID: id}
	}
	if doc.Type != want {
		return nil, &WrongDocumentTypeError{ID: id, Want: want, Got: doc.Type}
	}
	return doc, nil
}

// GetAnalysis returns a stored analysis.
func (s *Service) GetAnalysis(ctx context.Context, id string) (*types.Analysis, error) {
	analysis, err := s.store.GetAnalysis(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	if analysis == nil {
		return nil, &AnalysisNotFoundError{ID: id}
	}
	return analysis, nil
}

// DeleteAnalysis removes a stored analysis.
func (s *Service) DeleteAnalysis(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteAnalysis(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if !deleted {
		return &AnalysisNotFoundError{ID: id}
	}
	s.log.Info().Str("analysis_id", id).Msg("analysis deleted")
	return nil
}

// DocumentSummary is the per-document slice of a history item.
type DocumentSummary struct {
	DocumentID  string `json:"document_id"`
	SkillsCount int    `json:"skills_count"`
}

// HistoryItem is one entry of the paginated analysis history.
type HistoryItem struct {
	AnalysisID    string           `json:"analysis_id"`
	Score         int              `json:"score"`
	CreatedAt     time.Time        `json:"created_at"`
	ResumeSummary *DocumentSummary `json:"resume_summary"`
	JDSummary     *DocumentSummary `json:"jd_summary"`
}

// History returns a page of past analyses, newest first, with lightweight
// summaries of the referenced documents. Summaries are nil when a referenced
// document no longer exists.
func (s *Service) History(ctx context.Context, limit, offset int) ([]HistoryItem, error) {
	analyses, err := s.store.ListAnalyses(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	items := make([]HistoryItem, 0, len(analyses))
	for _, a := range analyses {
		item := HistoryItem{
			AnalysisID: a.ID,
			Score:      a.Score,
			CreatedAt:  a.CreatedAt,
		}
		item.ResumeSummary = s.summarize(ctx, a.ResumeID)
		item.JDSummary = s.summarize(ctx, a.JDID)
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) summarize(ctx context.Context, docID string) *DocumentSummary {
	doc, err := s.store.GetDocument(ctx, docID)
	if err != nil || doc == nil {
		return nil
	}
	return &DocumentSummary{DocumentID: doc.ID, SkillsCount: len(doc.ExtractedSkills)}
}

// Stats aggregates system counters.
type Stats struct {
	TotalAnalyses        int     `json:"total_analyses"`
	TotalResumes         int     `json:"total_resumes"`
	TotalJobDescriptions int     `json:"total_job_descriptions"`
	AverageScore         float64 `json:"average_score"`
	StorageType          string  `json:"storage_type"`
}

// Stats returns aggregate counts and the mean score.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	resumes, err := s.store.CountDocuments(ctx, types.DocumentTypeResume)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count resumes: %w", err)
	}
	jds, err := s.store.CountDocuments(ctx, types.DocumentTypeJobDescription)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count job descriptions: %w", err)
	}
	analyses, err := s.store.CountAnalyses(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count analyses: %w", err)
	}
	avg, err := s.store.AverageScore(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to average scores: %w", err)
	}

	return Stats{
		TotalAnalyses:        analyses,
		TotalResumes:         resumes,
		TotalJobDescriptions: jds,
		AverageScore:         roundTo2(avg),
		StorageType:          s.store.Kind(),
	}, nil
}

func roundTo2(x float64) float64 {
	return float64(int(x*100+0.5)) / 100
}

// Reset clears all stored documents and analyses.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	s.log.Info().Msg("all data cleared")
	return nil
}

func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString()[:8])
}

// idPrefix keeps document ids readable: resume_xxxxxxxx / jd_xxxxxxxx.
func idPrefix(docType types.DocumentType) string {
	if docType == types.DocumentTypeJobDescription {
		return "jd"
	}
	return string(docType)
}

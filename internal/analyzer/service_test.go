package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	sampleResume = "5 years experience with Python and React. Senior engineer."
	sampleJD     = "Senior Python developer required. Must have React."
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	return New(m, skills.MustDefault(), zerolog.Nop()), m
}

func TestIngestResume_StoresDocument(t *testing.T) {
	svc, _ := newTestService(t)

	doc, err := svc.IngestResume(context.Background(), sampleResume, "text")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.ID, "resume_"))
	assert.Len(t, doc.ID, len("resume_")+8)
	assert.Equal(t, types.DocumentTypeResume, doc.Type)
	assert.NotEmpty(t, doc.ContentHash)
	assert.NotEmpty(t, doc.Sections)
	assert.NotEmpty(t, doc.ExtractedSkills)
	assert.Contains(t, doc.Vectors, "document")
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestIngestJobDescription_NoSections(t *testing.T) {
	svc, _ := newTestService(t)

	doc, err := svc.IngestJobDescription(context.Background(), sampleJD, "text")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.ID, "jd_"))
	assert.Empty(t, doc.Sections)
	assert.NotEmpty(t, doc.ExtractedSkills)
}

func TestIngest_EmptyText(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.IngestResume(context.Background(), "   \n\n  ", "text")

	var emptyErr *EmptyDocumentError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, types.DocumentTypeResume, emptyErr.Type)
}

func TestIngest_DuplicateContentReturnsExisting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)
	second, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestIngest_SameContentDifferentTypes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	asResume, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)
	asJD, err := svc.IngestJobDescription(ctx, sampleResume, "text")
	require.NoError(t, err)

	assert.NotEqual(t, asResume.ID, asJD.ID)
}

func TestAnalyze_EndToEnd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	resume, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)
	jd, err := svc.IngestJobDescription(ctx, sampleJD, "text")
	require.NoError(t, err)

	analysis, meta, err := svc.Analyze(ctx, resume.ID, jd.ID, "")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(analysis.ID, "analysis_"))
	assert.Equal(t, resume.ID, analysis.ResumeID)
	assert.Equal(t, jd.ID, analysis.JDID)
	assert.GreaterOrEqual(t, analysis.Score, 0)
	assert.LessOrEqual(t, analysis.Score, 100)
	assert.NotEmpty(t, analysis.MatchedSkills)
	assert.Empty(t, analysis.MissingSkills)
	assert.NotEmpty(t, analysis.Strengths)
	assert.NotEmpty(t, analysis.Recommendations)
	assert.NotEmpty(t, analysis.Snippets.JD)
	assert.Equal(t, len(resume.ExtractedSkills), meta.ResumeSkillCount)

	stored, err := svc.GetAnalysis(ctx, analysis.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.Score, stored.Score)
}

func TestAnalyze_UnknownResumeNoSideEffects(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()
	jd, err := svc.IngestJobDescription(ctx, sampleJD, "text")
	require.NoError(t, err)

	_, _, err = svc.Analyze(ctx, "resume_missing1", jd.ID, "")

	var notFound *DocumentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "resume_missing1", notFound.ID)

	count, err := m.CountAnalyses(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAnalyze_WrongDocumentType(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()
	resume, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)
	jd, err := svc.IngestJobDescription(ctx, sampleJD, "text")
	require.NoError(t, err)

	// Swapped ids: the jd id is passed where a resume is expected.
	_, _, err = svc.Analyze(ctx, jd.ID, resume.ID, "")

	var wrongType *WrongDocumentTypeError
	require.ErrorAs(t, err, &wrongType)
	assert.Equal(t, jd.ID, wrongType.ID)
	assert.Equal(t, types.DocumentTypeResume, wrongType.Want)
	assert.Equal(t, types.DocumentTypeJobDescription, wrongType.Got)

	count, err := m.CountAnalyses(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetAnalysis(context.Background(), "analysis_missing")

	var notFound *AnalysisNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteAnalysis(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	resume, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)
	jd, err := svc.IngestJobDescription(ctx, sampleJD, "text")
	require.NoError(t, err)
	analysis, _, err := svc.Analyze(ctx, resume.ID, jd.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAnalysis(ctx, analysis.ID))

	var notFound *AnalysisNotFoundError
	assert.ErrorAs(t, svc.DeleteAnalysis(ctx, analysis.ID), &notFound)
}

func TestHistory_SummariesAndOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	resume, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)
	jd, err := svc.IngestJobDescription(ctx, sampleJD, "text")
	require.NoError(t, err)
	analysis, _, err := svc.Analyze(ctx, resume.ID, jd.ID, "")
	require.NoError(t, err)

	items, err := svc.History(ctx, 20, 0)

	require.NoError(t, err)
	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, analysis.ID, item.AnalysisID)
	assert.Equal(t, analysis.Score, item.Score)
	require.NotNil(t, item.ResumeSummary)
	assert.Equal(t, resume.ID, item.ResumeSummary.DocumentID)
	assert.Equal(t, len(resume.ExtractedSkills), item.ResumeSummary.SkillsCount)
	require.NotNil(t, item.JDSummary)
	assert.Equal(t, jd.ID, item.JDSummary.DocumentID)
}

func TestStats_CountsAndStorageType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	resume, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)
	jd, err := svc.IngestJobDescription(ctx, sampleJD, "text")
	require.NoError(t, err)
	analysis, _, err := svc.Analyze(ctx, resume.ID, jd.ID, "")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalResumes)
	assert.Equal(t, 1, stats.TotalJobDescriptions)
	assert.Equal(t, 1, stats.TotalAnalyses)
	assert.Equal(t, float64(analysis.Score), stats.AverageScore)
	assert.Equal(t, "memory", stats.StorageType)
}

func TestReset_ClearsEverything(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.IngestResume(ctx, sampleResume, "text")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalResumes)
	assert.Zero(t, stats.TotalAnalyses)
}

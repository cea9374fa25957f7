package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleAnalysis() *types.Analysis {
	return &types.Analysis{
		ID:    "analysis_ab12cd34",
		Score: 78,
		Components: types.AnalysisComponents{
			SemanticSimilarity:  0.71,
			SkillCoverage:       0.85,
			ExperienceAlignment: 0.62,
		},
		MatchedSkills: []types.MatchedSkill{
			{Name: "python", Confidence: 0.95, Importance: 0.8, Evidence: []string{"5 years of Python development"}},
			{Name: "react", Confidence: 0.9, Importance: 0.7},
		},
		MissingSkills:    []types.MissingSkill{{Name: "kubernetes", Importance: 0.9}},
		NiceToHaveSkills: []types.NiceToHaveSkill{{Name: "terraform", Importance: 0.5}},
		Strengths:        []string{"Strong skill coverage across the job requirements"},
		Risks:            []string{"Few overlapping skills detected"},
		Recommendations:  []string{"Gain hands-on experience with kubernetes"},
	}
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScore(sampleAnalysis())

	out := buf.String()
	assert.Contains(t, out, "MATCH SCORE")
	assert.Contains(t, out, "Score:  78 / 100")
	assert.Contains(t, out, "Semantic similarity:   0.71")
	assert.Contains(t, out, "Skill coverage:        0.85")
	assert.Contains(t, out, "Experience alignment:  0.62")
}

func TestPrintScore_NilAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScore(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatchedSkills(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchedSkills(sampleAnalysis().MatchedSkills)

	out := buf.String()
	assert.Contains(t, out, "MATCHED SKILLS")
	assert.Contains(t, out, "Matched 2 skills")
	assert.Contains(t, out, "• python")
	assert.Contains(t, out, "confidence 0.95, importance 0.80")
	assert.Contains(t, out, `"5 years of Python development"`)
	assert.Contains(t, out, "• react")
}

func TestPrintMatchedSkills_TruncatesLongList(t *testing.T) {
	skills := make([]types.MatchedSkill, 8)
	for i := range skills {
		skills[i] = types.MatchedSkill{Name: "skill", Confidence: 0.5, Importance: 0.5}
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchedSkills(skills)

	assert.Contains(t, buf.String(), "... and 3 more skills")
}

func TestPrintGaps(t *testing.T) {
	a := sampleAnalysis()

	var buf bytes.Buffer
	NewPrinter(&buf).PrintGaps(a.MissingSkills, a.NiceToHaveSkills)

	out := buf.String()
	assert.Contains(t, out, "SKILL GAPS")
	assert.Contains(t, out, "kubernetes (0.90)")
	assert.Contains(t, out, "terraform (0.50)")
}

func TestPrintGaps_NoGaps(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGaps(nil, nil)

	out := buf.String()
	assert.Contains(t, out, "NO SKILL GAPS FOUND")
	assert.NotContains(t, out, "Missing")
}

func TestPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintInsights(sampleAnalysis())

	out := buf.String()
	assert.Contains(t, out, "INSIGHTS")
	assert.Contains(t, out, "Strengths:")
	assert.Contains(t, out, "Risks:")
	assert.Contains(t, out, "Recommendations:")
}

func TestPrintInsights_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintInsights(&types.Analysis{})
	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_LinesFitBox(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(sampleAnalysis())

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
}

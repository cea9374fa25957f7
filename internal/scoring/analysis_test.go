package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestGenerateAnalysis_MatchedSortedByWeight(t *testing.T) {
	resume := []types.ExtractedSkill{
		{Name: "docker", Confidence: 0.5},
		{Name: "python", Confidence: 0.95},
	}
	jd := []types.ExtractedSkill{
		{Name: "docker", Confidence: 0.9},
		{Name: "python", Confidence: 0.9},
	}
	jdText := "python required for this role, docker optional"

	report := GenerateAnalysis(resume, jd, "used python and docker", jdText, types.AnalysisComponents{})

	require.Len(t, report.MatchedSkills, 2)
	first := report.MatchedSkills[0]
	second := report.MatchedSkills[1]
	assert.Equal(t, "python", first.Name)
	assert.GreaterOrEqual(t, first.Importance*first.Confidence, second.Importance*second.Confidence)
}

func TestGenerateAnalysis_MatchedKeepsResumeEvidence(t *testing.T) {
	resume := []types.ExtractedSkill{
		{Name: "python", Confidence: 0.95, Evidence: []string{"Built python services"}},
	}
	jd := []types.ExtractedSkill{{Name: "python", Confidence: 0.9}}

	report := GenerateAnalysis(resume, jd, "resume", "python required", types.AnalysisComponents{})

	require.Len(t, report.MatchedSkills, 1)
	assert.Equal(t, []string{"Built python services"}, report.MatchedSkills[0].Evidence)
	assert.Equal(t, 0.95, report.MatchedSkills[0].Confidence)
}

func TestGenerateAnalysis_MissingThresholdInclusive(t *testing.T) {
	jd := []types.ExtractedSkill{{Name: "kubernetes", Confidence: 0.9}}

	// base 0.5 + literal 0.2 + repeat min(0.1*2, 0.2) = 0.9 -> missing
	missing, nice := gapSkills(nil, jd, "kubernetes experience preferred in our team of kubernetes admirers")
	require.Len(t, missing, 1)
	assert.Empty(t, nice)
	assert.GreaterOrEqual(t, missing[0].Importance, 0.6)
}

func TestIsMustHave_BoundaryInclusive(t *testing.T) {
	assert.True(t, isMustHave(0.6))
	assert.True(t, isMustHave(0.61))
	assert.False(t, isMustHave(0.59))
}

func TestGapSkills_NiceToHaveBelowThreshold(t *testing.T) {
	jd := []types.ExtractedSkill{{Name: "terraform", Confidence: 0.9}}

	// Skill never named in the text: importance stays at the 0.5 base.
	missing, nice := gapSkills(nil, jd, "infrastructure tooling appreciated")

	assert.Empty(t, missing)
	require.Len(t, nice, 1)
	assert.Equal(t, 0.5, nice[0].Importance)
}

func TestGapSkills_EmptyJD(t *testing.T) {
	missing, nice := gapSkills([]types.ExtractedSkill{{Name: "python"}}, nil, "")

	assert.Empty(t, missing)
	assert.Empty(t, nice)
}

func TestStrengthsAndRisks_Rules(t *testing.T) {
	many := make([]types.ExtractedSkill, 12)
	for i := range many {
		many[i] = types.ExtractedSkill{Name: string(rune('a' + i))}
	}

	strengths, risks := strengthsAndRisks(many, types.AnalysisComponents{
		SemanticSimilarity:  0.85,
		SkillCoverage:       0.9,
		ExperienceAlignment: 0.7,
	})

	assert.Contains(t, strengths, "Strong skill alignment with job requirements")
	assert.Contains(t, strengths, "High semantic similarity between resume and job description")
	assert.Contains(t, strengths, "Comprehensive skill set demonstrated")
	assert.Equal(t, []string{"Consider adding more specific project examples"}, risks)
}

func TestStrengthsAndRisks_GenericFallbacks(t *testing.T) {
	few := []types.ExtractedSkill{{Name: "python"}}

	strengths, risks := strengthsAndRisks(few, types.AnalysisComponents{
		SemanticSimilarity:  0.2,
		SkillCoverage:       0.3,
		ExperienceAlignment: 0.2,
	})

	assert.Equal(t, []string{"Resume shows relevant technical background"}, strengths)
	assert.Contains(t, risks, "Significant skill gaps identified")
	assert.Contains(t, risks, "Experience level may not align with role requirements")
	assert.Contains(t, risks, "Limited skill diversity shown")
}

func TestRecommendations_TieredAndCapped(t *testing.T) {
	missing := []types.MissingSkill{
		{Name: "python", Importance: 0.9},
		{Name: "kubernetes", Importance: 0.7},
		{Name: "docker", Importance: 0.65},
		{Name: "terraform", Importance: 0.6},
		{Name: "aws", Importance: 0.6},
		{Name: "gcp", Importance: 0.6},
	}

	recs := recommendations(missing, "years of experience shipping software", "experience required")

	assert.LessOrEqual(t, len(recs), 5)
	assert.Contains(t, recs, "Add specific examples demonstrating python experience")
	assert.Contains(t, recs, "Consider highlighting kubernetes in your skills section")
	assert.Contains(t, recs, "Focus on the most critical missing skills rather than trying to cover everything")
}

func TestRecommendations_PaddedToThree(t *testing.T) {
	recs := recommendations(nil, "short resume", "short jd")

	assert.GreaterOrEqual(t, len(recs), 1)
	assert.Contains(t, recs, "Ensure your resume clearly demonstrates the impact of your work")
}

func TestSnippets_JDRequirementLines(t *testing.T) {
	jdText := strings.Join([]string{
		"About the role",
		"Python experience is required for this position",
		"nice perks",
		strings.Repeat("x", 250) + " required",
	}, "\n")

	result := snippets("resume text mentioning python somewhere in a sentence", jdText, nil)

	require.Len(t, result.JD, 1)
	assert.Equal(t, "Python experience is required for this position", result.JD[0].Text)
	assert.Equal(t, 1, result.JD[0].Start)
}

func TestSnippets_FallbackToLeadingText(t *testing.T) {
	result := snippets("short resume", "short jd", nil)

	require.Len(t, result.Resume, 1)
	require.Len(t, result.JD, 1)
	assert.Equal(t, "short resume", result.Resume[0].Text)
	assert.Equal(t, "short jd", result.JD[0].Text)
}

func TestSnippets_LongFallbackTruncated(t *testing.T) {
	long := strings.Repeat("a", 300)

	result := snippets(long, long, nil)

	require.Len(t, result.Resume, 1)
	assert.Len(t, result.Resume[0].Text, 203)
	assert.True(t, strings.HasSuffix(result.Resume[0].Text, "..."))
	assert.Equal(t, 200, result.Resume[0].End)
}

func TestSkillSnippet_SentenceThenWindow(t *testing.T) {
	text := "Intro. I shipped python services to production every week. Outro."

	snip, ok := skillSnippet(text, "python")

	require.True(t, ok)
	assert.Equal(t, "I shipped python services to production every week", snip.Text)
	assert.Equal(t, snip.Start+len(snip.Text), snip.End)

	// Sentence too short for the sentence rule, falls back to the window.
	windowText := "python. " + strings.Repeat("other words ", 10)
	snip, ok = skillSnippet(windowText, "python")
	require.True(t, ok)
	assert.Contains(t, strings.ToLower(snip.Text), "python")
}

func TestSkillSnippet_AbsentSkill(t *testing.T) {
	_, ok := skillSnippet("no relevant mention here", "python")

	assert.False(t, ok)
}

func TestGenerateAnalysis_EndToEndSeniorScenario(t *testing.T) {
	resumeText := "5 years experience with Python and React. Senior engineer."
	jdText := "Senior Python developer required. Must have React."

	extractor := skills.NewExtractor(skills.MustDefault())
	resumeSkills := extractor.Extract(resumeText)
	jdSkills := extractor.Extract(jdText)
	components := types.AnalysisComponents{
		SemanticSimilarity:  0.7,
		SkillCoverage:       SkillCoverage(resumeSkills, jdSkills, jdText),
		ExperienceAlignment: ExperienceAlignment(resumeText, jdText),
	}

	report := GenerateAnalysis(resumeSkills, jdSkills, resumeText, jdText, components)

	names := make([]string, 0, len(report.MatchedSkills))
	for _, m := range report.MatchedSkills {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"python", "react"}, names)
	assert.Empty(t, report.MissingSkills)
	assert.NotEmpty(t, report.Strengths)
	assert.NotEmpty(t, report.Risks)
	assert.NotEmpty(t, report.Recommendations)
	assert.NotEmpty(t, report.Snippets.Resume)
	assert.NotEmpty(t, report.Snippets.JD)
}

// Package scoring combines semantic similarity, skill coverage, and
// experience alignment into a bounded match score and generates the
// human-readable analysis around it.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights distribute the final score across the three signals. A valid set
// sums to 1.0.
type Weights struct {
	Semantic            float64 `json:"semantic"`
	SkillCoverage       float64 `json:"skill_coverage"`
	ExperienceAlignment float64 `json:"experience_alignment"`
}

// Weight profiles keyed by role family. Selected once before scoring,
// never switched mid-computation.
var (
	defaultWeights  = Weights{Semantic: 0.45, SkillCoverage: 0.45, ExperienceAlignment: 0.10}
	mlWeights       = Weights{Semantic: 0.40, SkillCoverage: 0.55, ExperienceAlignment: 0.05}
	securityWeights = Weights{Semantic: 0.35, SkillCoverage: 0.50, ExperienceAlignment: 0.15}
	frontendWeights = Weights{Semantic: 0.50, SkillCoverage: 0.40, ExperienceAlignment: 0.10}

	mlRoles       = []string{"ml", "ai", "data scientist", "machine learning"}
	securityRoles = []string{"security", "cybersecurity", "infosec"}
	frontendRoles = []string{"frontend", "ui", "ux"}
)

// WeightsForRole returns the weight profile for a target role. Unknown or
// empty roles get the general software engineering defaults.
func WeightsForRole(role string) Weights {
	lowered := strings.ToLower(strings.TrimSpace(role))
	switch {
	case contains(mlRoles, lowered):
		return mlWeights
	case contains(securityRoles, lowered):
		return securityWeights
	case contains(frontendRoles, lowered):
		return frontendWeights
	default:
		return defaultWeights
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// ScoreMetadata records how a score was produced.
type ScoreMetadata struct {
	Weights           Weights `json:"weights_used"`
	ResumeSkillCount  int     `json:"resume_skills_count"`
	JDSkillCount      int     `json:"jd_skills_count"`
	MatchedSkillCount int     `json:"matched_skills_count"`
	FallbackReason    string  `json:"fallback_reason,omitempty"`
}

// Score fuses the three signals into a 0-100 integer. It never fails: if
// any signal computation panics, the fallback is score 50 with 0.5
// components, keeping the caller-supplied semantic similarity, and the
// cause surfaces only in the metadata.
func Score(resumeSkills, jdSkills []types.ExtractedSkill, semanticSimilarity float64, resumeText, jdText, targetRole string) (score int, components types.AnalysisComponents, meta ScoreMetadata) {
	weights := WeightsForRole(targetRole)

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("cause", r).Msg("score computation failed, using fallback")
			score = 50
			components = types.AnalysisComponents{
				SemanticSimilarity:  semanticSimilarity,
				SkillCoverage:       0.5,
				ExperienceAlignment: 0.5,
			}
			meta = ScoreMetadata{Weights: weights, FallbackReason: fmt.Sprint(r)}
		}
	}()

	coverage := SkillCoverage(resumeSkills, jdSkills, jdText)
	alignment := ExperienceAlignment(resumeText, jdText)

	raw := weights.Semantic*semanticSimilarity +
		weights.SkillCoverage*coverage +
		weights.ExperienceAlignment*alignment

	score = int(math.Round(100 * raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	components = types.AnalysisComponents{
		SemanticSimilarity:  semanticSimilarity,
		SkillCoverage:       coverage,
		ExperienceAlignment: alignment,
	}
	meta = ScoreMetadata{
		Weights:           weights,
		ResumeSkillCount:  len(resumeSkills),
		JDSkillCount:      len(jdSkills),
		MatchedSkillCount: countMatched(resumeSkills, jdSkills),
	}

	log.Info().
		Int("score", score).
		Float64("coverage", coverage).
		Float64("alignment", alignment).
		Msg("score calculated")
	return score, components, meta
}

func countMatched(resumeSkills, jdSkills []types.ExtractedSkill) int {
	jdNames := make(map[string]bool, len(jdSkills))
	for _, s := range jdSkills {
		jdNames[strings.ToLower(s.Name)] = true
	}
	count := 0
	for _, s := range resumeSkills {
		if jdNames[strings.ToLower(s.Name)] {
			count++
		}
	}
	return count
}

// SkillCoverage is the importance-weighted fraction of job description
// skills present in the resume. Names compare case-insensitively. Returns
// 0 when the job description yields no skills.
func SkillCoverage(resumeSkills, jdSkills []types.ExtractedSkill, jdText string) float64 {
	if len(jdSkills) == 0 {
		return 0
	}

	resumeNames := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeNames[strings.ToLower(s.Name)] = true
	}

	var total, covered float64
	for _, jd := range jdSkills {
		importance := skills.Importance(jd.Name, jdText)
		total += importance
		if resumeNames[strings.ToLower(jd.Name)] {
			covered += importance
		}
	}
	if total == 0 {
		return 0
	}
	return covered / total
}

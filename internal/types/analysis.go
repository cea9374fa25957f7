package types

import "time"

// AnalysisComponents holds the three weighted signals that feed the final
// score. Each component is clamped to [0, 1].
type AnalysisComponents struct {
	SemanticSimilarity  float64 `json:"semantic_similarity"`
	SkillCoverage       float64 `json:"skill_coverage"`
	ExperienceAlignment float64 `json:"experience_alignment"`
}

// Snippet is an evidence excerpt with its position in the source text.
// For job-description requirement lines the positions are line indices.
type Snippet struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Snippets groups evidence excerpts by the document they came from.
type Snippets struct {
	Resume []Snippet `json:"resume"`
	JD     []Snippet `json:"jd"`
}

// Analysis is the full result of scoring a resume against a job description.
// Created once per analyze call and immutable; it can be deleted
// independently of the documents it references.
type Analysis struct {
	ID               string             `json:"analysis_id"`
	ResumeID         string             `json:"resume_id"`
	JDID             string             `json:"jd_id"`
	Score            int                `json:"score"`
	Components       AnalysisComponents `json:"components"`
	MatchedSkills    []MatchedSkill     `json:"matched_skills"`
	MissingSkills    []MissingSkill     `json:"missing_skills"`
	NiceToHaveSkills []NiceToHaveSkill  `json:"nice_to_have_skills"`
	Strengths        []string           `json:"strengths"`
	Risks            []string           `json:"risks"`
	Recommendations  []string           `json:"recommendations"`
	Snippets         Snippets           `json:"snippets"`
	CreatedAt        time.Time          `json:"created_at"`
}

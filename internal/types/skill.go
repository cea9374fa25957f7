package types

// SkillCategory is the closed set of categories a skill can belong to.
type SkillCategory string

const (
	CategoryProgrammingLanguage SkillCategory = "programming_language"
	CategoryWebTechnology       SkillCategory = "web_technology"
	CategoryBackendFramework    SkillCategory = "backend_framework"
	CategoryDatabase            SkillCategory = "database"
	CategoryCloudPlatform       SkillCategory = "cloud_platform"
	CategoryDevOps              SkillCategory = "devops"
	CategoryMLAI                SkillCategory = "ml_ai"
	CategoryDataAnalytics       SkillCategory = "data_analytics"
	CategorySecurity            SkillCategory = "security"
	CategoryMobileDevelopment   SkillCategory = "mobile_development"
	CategoryOther               SkillCategory = "other"
)

// ExtractedSkill is a skill detected in a document. There is at most one
// entry per canonical name per document; when the same skill is detected by
// more than one strategy, the higher-confidence detection wins.
type ExtractedSkill struct {
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Confidence  float64       `json:"confidence"`
	Evidence    []string      `json:"evidence,omitempty"`
	StartOffset int           `json:"start_offset,omitempty"`
	EndOffset   int           `json:"end_offset,omitempty"`
}

// MatchedSkill is a job-description skill that is also present in the resume.
type MatchedSkill struct {
	Name       string   `json:"name"`
	Evidence   []string `json:"evidence,omitempty"`
	Confidence float64  `json:"confidence"`
	Importance float64  `json:"importance"`
}

// MissingSkill is an important job-description skill absent from the resume
// (importance >= 0.6).
type MissingSkill struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

// NiceToHaveSkill is a lower-importance job-description skill absent from
// the resume (importance < 0.6).
type NiceToHaveSkill struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

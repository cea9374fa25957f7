package skills

import "strings"

const (
	baseImportance        = 0.5
	requirementBoost      = 0.3
	literalMentionBoost   = 0.2
	repeatMentionPerCount = 0.1
	repeatMentionCap      = 0.2
)

// RequirementSignalPhrases mark a job description as stating hard
// requirements. Shared with snippet generation.
var RequirementSignalPhrases = []string{"requirements", "must have", "required", "essential"}

// Importance scores how much a job description cares about a skill, in
// [0, 1]. The base of 0.5 is boosted by requirement-signal phrasing in the
// JD, a literal mention of the skill, and repeat mentions.
func Importance(skillName, jdText string) float64 {
	if jdText == "" {
		return baseImportance
	}

	jdLower := strings.ToLower(jdText)
	nameLower := strings.ToLower(skillName)
	importance := baseImportance

	for _, phrase := range RequirementSignalPhrases {
		if strings.Contains(jdLower, phrase) {
			importance += requirementBoost
			break
		}
	}

	if strings.Contains(jdLower, nameLower) {
		importance += literalMentionBoost
	}

	if count := strings.Count(jdLower, nameLower); count > 1 {
		boost := repeatMentionPerCount * float64(count)
		if boost > repeatMentionCap {
			boost = repeatMentionCap
		}
		importance += boost
	}

	if importance > 1.0 {
		importance = 1.0
	}
	return importance
}

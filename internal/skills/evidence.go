package skills

import (
	"regexp"
	"strings"
)

const (
	maxEvidenceLen = 200
	evidenceWindow = 50
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// FindEvidence returns a text excerpt justifying a skill detection: the
// first sentence containing the skill name, truncated to 200 characters, or
// failing that a +-50 character window around the first occurrence. Skills
// that never occur literally (pure fuzzy or pattern matches) yield "".
func FindEvidence(skillName, text string) string {
	lowerName := strings.ToLower(skillName)

	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		if strings.Contains(strings.ToLower(sentence), lowerName) {
			cleaned := strings.TrimSpace(sentence)
			return truncateRunes(cleaned, maxEvidenceLen)
		}
	}

	pos := strings.Index(strings.ToLower(text), lowerName)
	if pos < 0 {
		return ""
	}

	runes := []rune(text)
	// Byte offset to rune offset; the texts this runs on are normalized and
	// almost always ASCII, but bullets survive normalization.
	runePos := len([]rune(text[:pos]))

	start := runePos - evidenceWindow
	if start < 0 {
		start = 0
	}
	end := runePos + len([]rune(skillName)) + evidenceWindow
	if end > len(runes) {
		end = len(runes)
	}
	return truncateRunes(string(runes[start:end]), maxEvidenceLen)
}

// truncateRunes shortens s to at most limit runes, appending an ellipsis
// when truncation happened.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

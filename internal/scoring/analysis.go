package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// importance threshold separating must-fix gaps from nice-to-have ones
const missingImportanceThreshold = 0.6

// isMustHave classifies an uncovered skill; the threshold is inclusive on
// the missing side.
func isMustHave(importance float64) bool {
	return importance >= missingImportanceThreshold
}

var (
	snippetSentenceRe = regexp.MustCompile(`[.!?]+`)

	requirementLineTerms = []string{"required", "must have", "essential"}
)

// Report is the explanatory half of an analysis: what matched, what is
// missing, and what the candidate should do about it.
type Report struct {
	MatchedSkills    []types.MatchedSkill
	MissingSkills    []types.MissingSkill
	NiceToHaveSkills []types.NiceToHaveSkill
	Strengths        []string
	Risks            []string
	Recommendations  []string
	Snippets         types.Snippets
}

// GenerateAnalysis builds the full explanation for a scored pair. Skill
// names compare case-insensitively throughout.
func GenerateAnalysis(resumeSkills, jdSkills []types.ExtractedSkill, resumeText, jdText string, components types.AnalysisComponents) Report {
	matched := matchedSkills(resumeSkills, jdSkills, jdText)
	missing, niceToHave := gapSkills(resumeSkills, jdSkills, jdText)
	strengths, risks := strengthsAndRisks(resumeSkills, components)

	return Report{
		MatchedSkills:    matched,
		MissingSkills:    missing,
		NiceToHaveSkills: niceToHave,
		Strengths:        strengths,
		Risks:            risks,
		Recommendations:  recommendations(missing, resumeText, jdText),
		Snippets:         snippets(resumeText, jdText, matched),
	}
}

// matchedSkills pairs each job description skill with its resume
// counterpart, sorted by importance times confidence descending.
func matchedSkills(resumeSkills, jdSkills []types.ExtractedSkill, jdText string) []types.MatchedSkill {
	matched := []types.MatchedSkill{}
	for _, jd := range jdSkills {
		for _, rs := range resumeSkills {
			if !strings.EqualFold(rs.Name, jd.Name) {
				continue
			}
			matched = append(matched, types.MatchedSkill{
				Name:       jd.Name,
				Evidence:   rs.Evidence,
				Confidence: rs.Confidence,
				Importance: skills.Importance(jd.Name, jdText),
			})
			break
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Importance*matched[i].Confidence > matched[j].Importance*matched[j].Confidence
	})
	return matched
}

// gapSkills splits uncovered job description skills into missing (importance
// at or above the threshold) and nice-to-have, each sorted by importance
// descending.
func gapSkills(resumeSkills, jdSkills []types.ExtractedSkill, jdText string) ([]types.MissingSkill, []types.NiceToHaveSkill) {
	resumeNames := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeNames[strings.ToLower(s.Name)] = true
	}

	missing := []types.MissingSkill{}
	niceToHave := []types.NiceToHaveSkill{}
	for _, jd := range jdSkills {
		if resumeNames[strings.ToLower(jd.Name)] {
			continue
		}
		importance := skills.Importance(jd.Name, jdText)
		if isMustHave(importance) {
			missing = append(missing, types.MissingSkill{Name: jd.Name, Importance: importance})
		} else {
			niceToHave = append(niceToHave, types.NiceToHaveSkill{Name: jd.Name, Importance: importance})
		}
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Importance > missing[j].Importance
	})
	sort.SliceStable(niceToHave, func(i, j int) bool {
		return niceToHave[i].Importance > niceToHave[j].Importance
	})
	return missing, niceToHave
}

func strengthsAndRisks(resumeSkills []types.ExtractedSkill, components types.AnalysisComponents) ([]string, []string) {
	strengths := []string{}
	risks := []string{}

	switch {
	case components.SkillCoverage >= 0.8:
		strengths = append(strengths, "Strong skill alignment with job requirements")
	case components.SkillCoverage >= 0.6:
		strengths = append(strengths, "Good skill coverage for the role")
	}
	if components.SemanticSimilarity >= 0.8 {
		strengths = append(strengths, "High semantic similarity between resume and job description")
	}
	if len(resumeSkills) >= 10 {
		strengths = append(strengths, "Comprehensive skill set demonstrated")
	}

	if components.SkillCoverage < 0.5 {
		risks = append(risks, "Significant skill gaps identified")
	}
	if components.ExperienceAlignment < 0.4 {
		risks = append(risks, "Experience level may not align with role requirements")
	}
	if len(resumeSkills) < 5 {
		risks = append(risks, "Limited skill diversity shown")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Resume shows relevant technical background")
	}
	if len(risks) == 0 {
		risks = append(risks, "Consider adding more specific project examples")
	}
	return strengths, risks
}

// recommendations turns the top missing skills into actionable advice,
// capped at five entries.
func recommendations(missing []types.MissingSkill, resumeText, jdText string) []string {
	recs := []string{}

	top := missing
	if len(top) > 3 {
		top = top[:3]
	}
	for _, skill := range top {
		switch {
		case skill.Importance >= 0.8:
			recs = append(recs, fmt.Sprintf("Add specific examples demonstrating %s experience", skill.Name))
		case skill.Importance >= 0.6:
			recs = append(recs, fmt.Sprintf("Consider highlighting %s in your skills section", skill.Name))
		}
	}

	if len(missing) > 5 {
		recs = append(recs, "Focus on the most critical missing skills rather than trying to cover everything")
	}
	if strings.Contains(strings.ToLower(resumeText), "experience") &&
		strings.Contains(strings.ToLower(jdText), "experience") {
		recs = append(recs, "Quantify your experience with specific metrics and achievements")
	}
	if len(recs) < 3 {
		recs = append(recs, "Ensure your resume clearly demonstrates the impact of your work")
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

// snippets collects evidence passages: resume passages for the top three
// matched skills and job description lines that read like requirements.
// Both sides fall back to the leading 200 characters so neither list is
// ever empty.
func snippets(resumeText, jdText string, matched []types.MatchedSkill) types.Snippets {
	resumeSnippets := []types.Snippet{}
	topMatched := matched
	if len(topMatched) > 3 {
		topMatched = topMatched[:3]
	}
	for _, skill := range topMatched {
		if s, ok := skillSnippet(resumeText, skill.Name); ok {
			resumeSnippets = append(resumeSnippets, s)
		}
	}
	if len(resumeSnippets) == 0 {
		resumeSnippets = append(resumeSnippets, leadingSnippet(resumeText))
	}

	jdSnippets := []types.Snippet{}
	for i, line := range strings.Split(jdText, "\n") {
		if !isRequirementLine(line) {
			continue
		}
		jdSnippets = append(jdSnippets, types.Snippet{
			Text:  strings.TrimSpace(line),
			Start: i,
			End:   i,
		})
	}
	if len(jdSnippets) == 0 {
		jdSnippets = append(jdSnippets, leadingSnippet(jdText))
	}

	return types.Snippets{Resume: resumeSnippets, JD: jdSnippets}
}

func isRequirementLine(line string) bool {
	if n := len(line); n <= 20 || n >= 200 {
		return false
	}
	lowered := strings.ToLower(line)
	for _, term := range requirementLineTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// skillSnippet finds a readable passage mentioning the skill: the first
// sentence of 20 to 200 characters containing it, else a 50-character
// window around its first occurrence.
func skillSnippet(text, skillName string) (types.Snippet, bool) {
	loweredSkill := strings.ToLower(skillName)

	offset := 0
	for _, sentence := range snippetSentenceRe.Split(text, -1) {
		if strings.Contains(strings.ToLower(sentence), loweredSkill) {
			cleaned := strings.TrimSpace(sentence)
			if n := len(cleaned); n >= 20 && n <= 200 {
				start := strings.Index(text[offset:], cleaned) + offset
				return types.Snippet{Text: cleaned, Start: start, End: start + len(cleaned)}, true
			}
		}
		offset += len(sentence)
	}

	pos := strings.Index(strings.ToLower(text), loweredSkill)
	if pos < 0 {
		return types.Snippet{}, false
	}
	start := pos - 50
	if start < 0 {
		start = 0
	}
	end := pos + len(skillName) + 50
	if end > len(text) {
		end = len(text)
	}
	return types.Snippet{Text: text[start:end], Start: start, End: end}, true
}

// leadingSnippet returns the first 200 characters of a document.
func leadingSnippet(text string) types.Snippet {
	if len(text) <= 200 {
		return types.Snippet{Text: text, Start: 0, End: len(text)}
	}
	return types.Snippet{Text: text[:200] + "...", Start: 0, End: 200}
}

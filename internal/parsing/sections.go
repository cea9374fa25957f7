package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// sectionHeaderPrefix allows an optional bullet or "1." style prefix before
// the header keyword.
const sectionHeaderPrefix = `^(?:[\x{2022}\-\*\+]\s*|\d+\.\s*)?(?:`

// sectionPatterns maps header keyword groups to section labels. The patterns
// are checked in order against the start of each line, case-insensitively.
var sectionPatterns = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `SUMMARY|PROFILE|OBJECTIVE|ABOUT|INTRODUCTION)`), "summary"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `EXPERIENCE|WORK HISTORY|EMPLOYMENT|CAREER|PROFESSIONAL)`), "experience"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `EDUCATION|ACADEMIC|QUALIFICATIONS|DEGREES)`), "education"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `SKILLS|TECHNOLOGIES|TOOLS|COMPETENCIES|EXPERTISE)`), "skills"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `PROJECTS|PORTFOLIO|ACHIEVEMENTS|ACCOMPLISHMENTS)`), "projects"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `CERTIFICATIONS|CERTIFICATES|TRAINING)`), "certifications"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `LANGUAGES|LANGUAGE SKILLS)`), "languages"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `INTERESTS|HOBBIES|ACTIVITIES)`), "interests"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `REFERENCES|REFEREES)`), "references"},
	{regexp.MustCompile(`(?i)` + sectionHeaderPrefix + `AWARDS|HONORS|RECOGNITIONS)`), "awards"},
}

// fallbackSectionNames label the four contiguous chunks used when no header
// is detected.
var fallbackSectionNames = []string{"summary", "experience", "skills", "education"}

// DetectSections splits normalized text into named sections by matching
// known header lines. Content before the first header becomes an implicit
// "content" section. When no header matches at all, the lines are split
// into up to four contiguous chunks labeled summary/experience/skills/
// education. Non-empty input always yields at least one section.
func DetectSections(text string) []types.DocumentSection {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	var sections []types.DocumentSection
	current := ""
	var content []string
	startLine := 0

	flush := func(endLine int) {
		if len(content) == 0 {
			return
		}
		name := current
		if name == "" {
			name = "content"
		}
		sections = append(sections, types.DocumentSection{
			Name:      name,
			Text:      strings.TrimSpace(strings.Join(content, "\n")),
			StartLine: startLine,
			EndLine:   endLine,
		})
	}

	headerSeen := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if name := identifySectionHeader(trimmed); name != "" {
			flush(i - 1)
			headerSeen = true
			current = name
			content = nil
			startLine = i + 1
			continue
		}

		if len(content) == 0 {
			startLine = i
		}
		content = append(content, trimmed)
	}
	flush(len(lines) - 1)

	if !headerSeen {
		return fallbackSections(lines)
	}
	return sections
}

// identifySectionHeader returns the section label for a header line, or ""
// when the line is not a recognized header.
func identifySectionHeader(line string) string {
	for _, p := range sectionPatterns {
		if p.re.MatchString(line) {
			return p.name
		}
	}
	return ""
}

// fallbackSections splits the line sequence into up to four contiguous
// chunks. Later chunks are omitted when there are too few lines.
func fallbackSections(lines []string) []types.DocumentSection {
	total := len(lines)
	chunk := total / 4
	if chunk < 1 {
		chunk = 1
	}

	var sections []types.DocumentSection
	start := 0
	for i, name := range fallbackSectionNames {
		if start >= total {
			break
		}
		end := start + chunk
		if end > total || i == len(fallbackSectionNames)-1 {
			end = total
		}
		sections = append(sections, types.DocumentSection{
			Name:      name,
			Text:      strings.TrimSpace(strings.Join(lines[start:end], "\n")),
			StartLine: start,
			EndLine:   end - 1,
		})
		start = end
	}
	return sections
}

package scoring

import (
	"math"
	"regexp"
	"strings"
)

// Seniority levels, ordinal.
const (
	levelJunior = iota
	levelMid
	levelSenior
	levelLead
)

// Keyword groups scanned highest level first; the first group with a hit
// decides the level, junior is the default.
var seniorityGroups = []struct {
	level int
	terms []string
}{
	{levelLead, []string{"lead", "principal", "architect", "director", "head"}},
	{levelSenior, []string{"senior", "sr.", "experienced", "expert"}},
	{levelMid, []string{"mid", "intermediate", "mid-level"}},
}

// domainTerms tags a text with a domain when any phrase occurs as a
// substring.
var domainTerms = map[string][]string{
	"fintech":    {"fintech", "financial", "banking", "payments", "blockchain", "cryptocurrency"},
	"healthcare": {"healthcare", "medical", "pharmaceutical", "biotech", "clinical"},
	"ecommerce":  {"ecommerce", "retail", "shopping", "marketplace", "online store"},
	"ai_ml":      {"artificial intelligence", "machine learning", "deep learning", "neural networks"},
	"cloud":      {"cloud", "aws", "azure", "gcp", "kubernetes", "docker"},
	"mobile":     {"mobile", "ios", "android", "react native", "flutter"},
	"web":        {"web", "frontend", "backend", "full-stack", "responsive"},
	"data":       {"data", "analytics", "big data", "data science", "business intelligence"},
}

var yearRe = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)

// ExperienceAlignment scores how well the experience signals of a resume
// and a job description line up: years overlap (0.4), seniority match
// (0.3), and domain overlap (0.3), squashed through a logistic centered at
// 0.5 so extremes compress toward the middle without losing monotonicity.
func ExperienceAlignment(resumeText, jdText string) float64 {
	raw := 0.4*yearsOverlap(resumeText, jdText) +
		0.3*seniorityMatch(resumeText, jdText) +
		0.3*domainMatch(resumeText, jdText)

	return 1 / (1 + math.Exp(-5*(raw-0.5)))
}

// yearsOverlap is the Jaccard similarity of the 4-digit years mentioned in
// each text, 0.5 when either side mentions none.
func yearsOverlap(resumeText, jdText string) float64 {
	resumeYears := yearSet(resumeText)
	jdYears := yearSet(jdText)
	if len(resumeYears) == 0 || len(jdYears) == 0 {
		return 0.5
	}
	return jaccard(resumeYears, jdYears)
}

func yearSet(text string) map[string]bool {
	years := make(map[string]bool)
	for _, m := range yearRe.FindAllString(text, -1) {
		years[m] = true
	}
	return years
}

// seniorityMatch compares the ordinal seniority levels of the two texts.
func seniorityMatch(resumeText, jdText string) float64 {
	diff := seniorityLevel(resumeText) - seniorityLevel(jdText)
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.7
	case 2:
		return 0.4
	default:
		return 0.1
	}
}

func seniorityLevel(text string) int {
	lowered := strings.ToLower(text)
	for _, group := range seniorityGroups {
		for _, term := range group.terms {
			if strings.Contains(lowered, term) {
				return group.level
			}
		}
	}
	return levelJunior
}

// domainMatch is the Jaccard similarity of the domain tags matched in each
// text, 0.5 when either side has no tags.
func domainMatch(resumeText, jdText string) float64 {
	resumeDomains := domainTags(resumeText)
	jdDomains := domainTags(jdText)
	if len(resumeDomains) == 0 || len(jdDomains) == 0 {
		return 0.5
	}
	return jaccard(resumeDomains, jdDomains)
}

func domainTags(text string) map[string]bool {
	lowered := strings.ToLower(text)
	tags := make(map[string]bool)
	for domain, terms := range domainTerms {
		for _, term := range terms {
			if strings.Contains(lowered, term) {
				tags[domain] = true
				break
			}
		}
	}
	return tags
}

func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.5
	}
	return float64(intersection) / float64(union)
}

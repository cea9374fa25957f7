package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Base confidence per detection method.
const (
	confidenceExact         = 0.95
	confidenceSynonym       = 0.90
	confidenceExperience    = 0.85
	confidenceStack         = 0.80
	confidenceProject       = 0.75
	confidenceCertification = 0.90
	confidenceFuzzy         = 0.70

	contextBoost = 0.05

	// Fuzzy token scan thresholds, on a 0-100 similarity ratio.
	fuzzyAcceptThreshold = 80.0
	fuzzyRecordThreshold = 85.0

	minPatternCaptureLen = 3 // captured phrases of 2 chars or fewer are noise
	minFuzzyTokenLen     = 4
)

// contextPattern captures a phrase whose surrounding wording signals a skill
// mention, together with the base confidence of that signal.
type contextPattern struct {
	re         *regexp.Regexp
	confidence float64
}

var contextPatterns = []contextPattern{
	{regexp.MustCompile(`(?i)\b(?:experience|experienced|proficient|skilled|expert|knowledge|familiar|worked with|used|built|developed|implemented|created|designed|architected)\s+(?:in|with|on|using)\s+([a-zA-Z0-9+#\s]+)`), confidenceExperience},
	{regexp.MustCompile(`(?i)\b(?:tech stack|technology stack|stack|technologies?|tools?|frameworks?|libraries?|platforms?)\s*[:=]\s*([a-zA-Z0-9+#,\s]+)`), confidenceStack},
	{regexp.MustCompile(`(?i)\b(?:built|developed|created|implemented|designed|architected)\s+(?:using|with|in)\s+([a-zA-Z0-9+#\s]+)`), confidenceProject},
	{regexp.MustCompile(`(?i)\b(?:certified|certification)\s+(?:in|for)\s+([a-zA-Z0-9+#\s]+)`), confidenceCertification},
}

// strongExperiencePhrases boost confidence when present anywhere in the text.
var strongExperiencePhrases = []string{"experience with", "proficient in", "expert in"}

var fuzzyTokenRe = regexp.MustCompile(`\b[a-zA-Z0-9+#]+\b`)

// Extractor detects canonical skills in normalized text. It is stateless
// apart from the shared read-only ontology and safe for concurrent use.
type Extractor struct {
	ont   *Ontology
	ratio *metrics.Levenshtein
}

// NewExtractor returns an extractor over the given ontology.
func NewExtractor(ont *Ontology) *Extractor {
	return &Extractor{ont: ont, ratio: metrics.NewLevenshtein()}
}

// Extract runs the three detection passes (literal ontology scan, context
// patterns, fuzzy tokens) and merges the results into one set keyed by
// canonical name, keeping the highest-confidence detection per skill.
// Results are ordered by confidence descending, first-detected order on
// ties. Extraction never fails; empty or unusable input yields nil.
func (e *Extractor) Extract(text string) []types.ExtractedSkill {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	detected := make(map[string]types.ExtractedSkill)
	var order []string

	record := func(entryIdx int, base float64) {
		entry := e.ont.entries[entryIdx]
		confidence := e.adjustConfidence(entry.Name, lowered, base)

		existing, seen := detected[entry.Name]
		if seen && existing.Confidence >= confidence {
			return
		}
		if !seen {
			order = append(order, entry.Name)
		}

		skill := types.ExtractedSkill{
			Name:       entry.Name,
			Category:   entry.Category,
			Confidence: confidence,
		}
		if evidence := FindEvidence(entry.Name, text); evidence != "" {
			skill.Evidence = []string{evidence}
		}
		if pos := strings.Index(lowered, strings.ToLower(entry.Name)); pos >= 0 {
			skill.StartOffset = pos
			skill.EndOffset = pos + len(entry.Name)
		}
		detected[entry.Name] = skill
	}

	// Pass 1: literal scan of every canonical name and synonym.
	for _, term := range e.ont.matchLiterals(lowered) {
		base := confidenceExact
		if term.synonym {
			base = confidenceSynonym
		}
		record(term.entry, base)
	}

	// Pass 2: context patterns, with captured phrases resolved against the
	// ontology by exact or substring containment.
	for _, pattern := range contextPatterns {
		for _, match := range pattern.re.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(match[1])
			if len(candidate) < minPatternCaptureLen {
				continue
			}
			if idx, ok := e.ont.containsMatch(candidate); ok {
				record(idx, pattern.confidence)
			}
		}
	}

	// Pass 3: fuzzy token scan against canonical names.
	for _, token := range fuzzyTokenRe.FindAllString(lowered, -1) {
		if len(token) < minFuzzyTokenLen {
			continue
		}
		idx, score := e.bestFuzzyMatch(token)
		if score >= fuzzyRecordThreshold {
			record(idx, confidenceFuzzy)
		}
	}

	skillsList := make([]types.ExtractedSkill, 0, len(order))
	for _, name := range order {
		skillsList = append(skillsList, detected[name])
	}
	sort.SliceStable(skillsList, func(i, j int) bool {
		return skillsList[i].Confidence > skillsList[j].Confidence
	})

	log.Debug().Int("skills", len(skillsList)).Msg("skill extraction complete")
	return skillsList
}

// bestFuzzyMatch returns the ontology entry whose canonical name is most
// similar to the token, with the similarity as a 0-100 ratio. Entries below
// the accept threshold are discarded.
func (e *Extractor) bestFuzzyMatch(token string) (int, float64) {
	bestIdx := -1
	bestScore := 0.0
	for i, entry := range e.ont.entries {
		score := strutil.Similarity(token, strings.ToLower(entry.Name), e.ratio) * 100
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestScore < fuzzyAcceptThreshold {
		return -1, 0
	}
	return bestIdx, bestScore
}

// adjustConfidence applies the context boosts: a strong experience phrase
// anywhere in the text, and co-occurrence of the literal word "skills" with
// the skill name. The result is clamped to 1.0.
func (e *Extractor) adjustConfidence(skillName, lowered string, base float64) float64 {
	confidence := base

	for _, phrase := range strongExperiencePhrases {
		if strings.Contains(lowered, phrase) {
			confidence += contextBoost
			break
		}
	}

	if strings.Contains(lowered, "skills") && strings.Contains(lowered, strings.ToLower(skillName)) {
		confidence += contextBoost
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

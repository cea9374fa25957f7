package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ExtractMetadata computes basic statistics over normalized text. The
// english ratio is the share of ASCII letters among all letters and digits,
// a cheap heuristic for the English-only matching pipeline.
func ExtractMetadata(text string, sections []types.DocumentSection) types.DocumentMetadata {
	meta := types.DocumentMetadata{
		WordCount:      len(strings.Fields(text)),
		LineCount:      len(strings.Split(text, "\n")),
		CharacterCount: len(text),
		HasSections:    len(sections) > 1,
	}

	letters := 0
	alnum := 0
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letters++
			alnum++
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum++
		}
	}
	if alnum > 0 {
		meta.EnglishRatio = float64(letters) / float64(alnum)
	}
	return meta
}

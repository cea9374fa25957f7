// Package parsing provides text normalization, section detection and content
// hashing for ingested documents. All functions in this package are
// best-effort: they return partially processed output rather than failing.
package parsing

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// typographicReplacer rewrites common typographic characters to ASCII
// equivalents after Unicode NFKC normalization.
var typographicReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"–", "-", // en dash
	"—", "--", // em dash
	"•", "•", // bullet (kept, canonical marker)
	"‣", "•", // triangular bullet
	"◦", "•", // white bullet
)

var (
	leadingBulletRe = regexp.MustCompile(`^[\x{2022}\-\*\+]+\s*`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
	blankLineRunRe  = regexp.MustCompile(`\n(?:\s*\n)+`)
	hyphenRejoinRe  = regexp.MustCompile(`([a-z])\s*-\s*([a-z])`)
	sentenceSpaceRe = regexp.MustCompile(`([.!?])\s*([A-Z])`)
)

// Normalize cleans raw text into a canonical form: Unicode NFKC
// normalization, typographic quote/dash/bullet replacement, bullet-line
// canonicalization, whitespace collapsing and light punctuation repair.
// The function is idempotent and never fails; empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = typographicReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			lines[i] = ""
			continue
		}

		// Canonicalize any leading bullet run to a single marker.
		if leadingBulletRe.MatchString(line) {
			line = leadingBulletRe.ReplaceAllString(line, "• ")
		}

		// Collapse whitespace runs inside the line.
		line = whitespaceRunRe.ReplaceAllString(line, " ")

		// Rejoin words split around a hyphen and repair sentence spacing.
		line = hyphenRejoinRe.ReplaceAllString(line, "$1-$2")
		line = sentenceSpaceRe.ReplaceAllString(line, "$1 $2")

		lines[i] = line
	}

	result := strings.Join(lines, "\n")

	// Runs of blank lines collapse to a single blank line.
	result = blankLineRunRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

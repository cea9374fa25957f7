package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var blankRunRe = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes line endings and whitespace while preserving line
// structure. The deeper normalization (Unicode folding, bullet unification)
// happens later in the parsing stage; this pass only makes raw uploads
// uniform.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	result := strings.Join(lines, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// FromFile reads a document from disk, extracting text from HTML files by
// extension and cleaning everything else as plain text.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTMLToText(string(content))
	default:
		return CleanText(string(content)), nil
	}
}

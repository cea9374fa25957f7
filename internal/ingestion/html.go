// Package ingestion converts raw upload formats into the plain text the
// analysis pipeline works on. HTML job postings are reduced to visible text;
// plain text passes through a light cleanup. Binary formats (PDF, DOCX) are
// out of scope.
package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Non-content elements stripped before text extraction.
const strippedSelectors = "script, style, noscript, nav, header, footer, aside"

// Block-level elements whose text becomes one line each.
const blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, td, th, pre, blockquote"

// HTMLToText extracts the visible text of an HTML document, one line per
// block-level element, in document order.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find(strippedSelectors).Remove()

	lines := make([]string, 0, 64)
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		// Elements that contain other block elements would duplicate
		// their children's text, so only leaf blocks contribute.
		if s.Find(blockSelectors).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	// Markup without block structure still has visible text.
	if len(lines) == 0 {
		return CleanText(doc.Text()), nil
	}
	return CleanText(strings.Join(lines, "\n")), nil
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScore outputs the overall score with its component breakdown.
func (p *Printer) PrintScore(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d / 100\n\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("Semantic similarity:   %.2f\n", analysis.Components.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Skill coverage:        %.2f\n", analysis.Components.SkillCoverage))
	sb.WriteString(fmt.Sprintf("Experience alignment:  %.2f", analysis.Components.ExperienceAlignment))

	p.printBox("MATCH SCORE", sb.String())
}

// PrintMatchedSkills outputs the skills found in both documents, strongest
// matches first.
func (p *Printer) PrintMatchedSkills(matched []types.MatchedSkill) {
	if len(matched) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d skills:\n\n", len(matched)))

	count := min(len(matched), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := matched[i]
		sb.WriteString(fmt.Sprintf("• %s\n", skill.Name))
		sb.WriteString(fmt.Sprintf("  confidence %.2f, importance %.2f\n", skill.Confidence, skill.Importance))
		if len(skill.Evidence) > 0 {
			evidence := skill.Evidence[0]
			if len(evidence) > 45 {
				evidence = evidence[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %q\n", evidence))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matched) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(matched)-maxItemsToShow))
	}

	p.printBox("MATCHED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs missing and nice-to-have skills. When the resume covers
// every job-description skill a short confirmation box is printed instead.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(missing []types.MissingSkill, niceToHave []types.NiceToHaveSkill) {
	if len(missing) == 0 && len(niceToHave) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SKILL GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder

	if len(missing) > 0 {
		sb.WriteString("Missing (important):\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%.2f)\n", missing[i].Name, missing[i].Importance))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(niceToHave) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(niceToHave), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", niceToHave[i].Name, niceToHave[i].Importance))
		}
		if len(niceToHave) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(niceToHave)-3))
		}
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs strengths, risks, and recommendations.
func (p *Printer) PrintInsights(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	if len(analysis.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, s := range analysis.Strengths {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Risks) > 0 {
		sb.WriteString("Risks:\n")
		for _, r := range analysis.Risks {
			if len(r) > 50 {
				r = r[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", r))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(analysis.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := analysis.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	if sb.Len() == 0 {
		return
	}

	p.printBox("INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the full verbose report for an analysis.
func (p *Printer) PrintAnalysis(analysis *types.Analysis) {
	if analysis == nil {
		return
	}
	p.PrintScore(analysis)
	p.PrintMatchedSkills(analysis.MatchedSkills)
	p.PrintGaps(analysis.MissingSkills, analysis.NiceToHaveSkills)
	p.PrintInsights(analysis)
}

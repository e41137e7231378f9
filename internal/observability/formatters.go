// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cold-outreach/internal/types"
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

// PrintJobRecord outputs a human-readable summary of one extracted job.
func (p *Printer) PrintJobRecord(index int, job *types.JobRecord) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:       %s\n", job.Role))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", job.Experience))

	if len(job.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(job.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Skills[i]))
		}
		if len(job.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Skills)-maxItemsToShow))
		}
	}

	if job.Description != "" {
		desc := job.Description
		if len(desc) > 100 {
			desc = desc[:97] + "..."
		}
		sb.WriteString("\nDescription:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", desc))
	}

	p.printBox(fmt.Sprintf("JOB #%d", index+1), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLinks outputs the portfolio links matched for a job.
func (p *Printer) PrintLinks(links []string) {
	if len(links) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO MATCHING PORTFOLIO LINKS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d links:\n\n", len(links)))

	count := min(len(links), maxItemsToShow)
	for i := 0; i < count; i++ {
		link := links[i]
		if len(link) > 50 {
			link = link[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", link))
	}

	if len(links) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more links", len(links)-maxItemsToShow))
	}

	p.printBox("MATCHED PORTFOLIO LINKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEmail outputs a composed email preview.
func (p *Printer) PrintEmail(email string) {
	if strings.TrimSpace(email) == "" {
		return
	}

	lines := strings.Split(email, "\n")
	var sb strings.Builder
	count := min(len(lines), 12)
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i])
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(lines) > 12 {
		sb.WriteString(fmt.Sprintf("\n... %d more lines", len(lines)-12))
	}

	p.printBox("COMPOSED EMAIL", sb.String())
}

// PrintSummary outputs overall pipeline counts.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(jobCount, emailCount int) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4,
		fmt.Sprintf("Extracted %d jobs, composed %d emails", jobCount, emailCount))
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

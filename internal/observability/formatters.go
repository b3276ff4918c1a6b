// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mwhite/resume-studio/internal/export"
	"github.com/mwhite/resume-studio/internal/suggestions"
	"github.com/mwhite/resume-studio/internal/types"
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

// PrintResumeSummary outputs a human-readable overview of the loaded resume.
func (p *Printer) PrintResumeSummary(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder

	name := r.PersonalInfo.FullName
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	if r.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", r.PersonalInfo.Email))
	}
	sb.WriteString(fmt.Sprintf("Sections:  %d work, %d education, %d skills\n",
		len(r.WorkExperience), len(r.Education), len(r.Skills)))

	if len(r.WorkExperience) > 0 {
		sb.WriteString("\nWork Experience:\n")
		count := min(len(r.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := r.WorkExperience[i]
			line := strings.TrimSpace(w.Position + " @ " + w.Company)
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(r.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.WorkExperience)-maxItemsToShow))
		}
	}

	p.printBox("RESUME OVERVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the advice items with priority markers.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSuggestions(items []suggestions.Suggestion) {
	if len(items) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d suggestions:\n\n", len(items)))

	for i, s := range items {
		marker := "•"
		if s.Priority == suggestions.PriorityHigh {
			marker = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s [%s] %s\n", marker, s.Priority, s.Title))

		text := s.Suggestion
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", text))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME SUGGESTIONS", sb.String())
}

// PrintExportResults outputs one line per export outcome.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportResults(results map[string]export.Result) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for _, format := range []string{"pdf", "docx", "txt"} {
		result, ok := results[format]
		if !ok {
			continue
		}
		marker := "✅"
		if !result.Success {
			marker = "❌"
		}
		sb.WriteString(fmt.Sprintf("%s %-5s %s\n", marker, strings.ToUpper(format), result.Message))
	}

	p.printBox("EXPORT RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
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

// truncate shortens line to width runes, marking the cut with "...".
func truncate(line string, width int) string {
	if utf8.RuneCountInString(line) <= width {
		return line
	}
	runes := []rune(line)
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		line = truncate(line, inner)
		// %-*s pads by bytes, so pad by runes instead.
		pad := inner - utf8.RuneCountInString(line)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listSummary renders up to maxItemsToShow labels with an overflow note.
func listSummary(sb *strings.Builder, heading string, labels []string) {
	if len(labels) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d):\n", heading, len(labels)))
	count := min(len(labels), maxItemsToShow)
	for _, l := range labels[:count] {
		sb.WriteString(fmt.Sprintf("  • %s\n", l))
	}
	if len(labels) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(labels)-maxItemsToShow))
	}
}

func orUntitled(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}

// PrintResume outputs a human-readable summary of a resume record.
func (p *Printer) PrintResume(d types.ResumeData) {
	var sb strings.Builder

	name := d.PersonalInfo.FullName
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", d.ResumeType))
	if d.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", d.PersonalInfo.Email))
	}
	sb.WriteString(fmt.Sprintf("Summary:  %d chars\n", utf8.RuneCountInString(d.Summary)))
	sb.WriteString("\n")

	var labels []string
	for _, w := range d.WorkExperience {
		labels = append(labels, orUntitled(strings.TrimSpace(w.Position+" @ "+w.Company)))
	}
	listSummary(&sb, "Work Experience", labels)

	labels = labels[:0]
	for _, e := range d.Education {
		labels = append(labels, orUntitled(e.Institution))
	}
	listSummary(&sb, "Education", labels)

	labels = labels[:0]
	for _, c := range d.Certifications {
		labels = append(labels, orUntitled(c.Name))
	}
	listSummary(&sb, "Certifications", labels)

	labels = labels[:0]
	for _, pr := range d.Projects {
		label := orUntitled(pr.Name)
		if len(pr.Technologies) > 0 {
			label += " [" + strings.Join(pr.Technologies, ", ") + "]"
		}
		labels = append(labels, label)
	}
	listSummary(&sb, "Projects", labels)

	labels = labels[:0]
	for _, a := range d.Achievements {
		labels = append(labels, fmt.Sprintf("%s (%s)", orUntitled(a.Title), a.Category.Label()))
	}
	listSummary(&sb, "Achievements", labels)

	if len(d.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(d.Skills, ", ")))
	}

	p.printBox("RESUME RECORD", sb.String())
}

// PrintExport reports a finished export.
func (p *Printer) PrintExport(format, path string, size int) {
	p.printBox("EXPORT", fmt.Sprintf("Format:   %s\nOutput:   %s\nSize:     %d bytes", format, path, size))
}

// Package observability provides formatted output utilities for
// verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/eduguide/advisor/internal/enrich"
	"github.com/eduguide/advisor/internal/profile"
	"github.com/eduguide/advisor/internal/scoring"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the advisee profile.
func (p *Printer) PrintProfile(prof *profile.Profile) {
	if prof == nil || prof.IsEmpty() {
		return
	}

	var sb strings.Builder

	if prof.GPA != nil {
		sb.WriteString(fmt.Sprintf("GPA:      %.2f\n", *prof.GPA))
	}
	if prof.State != "" {
		sb.WriteString(fmt.Sprintf("State:    %s\n", prof.State))
	}
	if len(prof.PreferredStates) > 0 {
		sb.WriteString(fmt.Sprintf("Prefers:  %s\n", strings.Join(prof.PreferredStates, ", ")))
	}
	if prof.IntendedMajor != "" {
		sb.WriteString(fmt.Sprintf("Major:    %s\n", prof.IntendedMajor))
	}
	if prof.Budget != "" {
		sb.WriteString(fmt.Sprintf("Budget:   %s\n", prof.Budget))
	}
	if prof.SATScore != nil {
		sb.WriteString(fmt.Sprintf("SAT:      %d\n", *prof.SATScore))
	}
	if prof.ACTScore != nil {
		sb.WriteString(fmt.Sprintf("ACT:      %d\n", *prof.ACTScore))
	}
	if len(prof.SchoolTypes) > 0 {
		names := make([]string, 0, len(prof.SchoolTypes))
		for _, t := range prof.SchoolTypes {
			names = append(names, string(t))
		}
		sb.WriteString(fmt.Sprintf("Types:    %s\n", strings.Join(names, ", ")))
	}
	if len(prof.Demographics) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(prof.Demographics, ", ")))
	}

	p.printBox("ADVISEE PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking outputs the scored candidates, highest first.
func (p *Printer) PrintRanking(candidates []scoring.Candidate) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	count := len(candidates)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("%3d  %s (%s, %s)\n", c.Score, c.College.Name, c.College.State, c.College.Type))
	}
	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(candidates)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimRight(sb.String(), "\n"))
}

// PrintSources outputs the research notes attached to a response.
func (p *Printer) PrintSources(resp *enrich.Response) {
	if resp == nil || len(resp.Sources) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range resp.Sources {
		sb.WriteString(fmt.Sprintf("%s\n  %s\n", s.Title, s.URL))
	}

	p.printBox("RESEARCH SOURCES", strings.TrimRight(sb.String(), "\n"))
}

package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/enrich"
	"github.com/eduguide/advisor/internal/profile"
	"github.com/eduguide/advisor/internal/research"
	"github.com/eduguide/advisor/internal/scoring"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&profile.Profile{
		GPA:           profile.FloatPtr(3.6),
		State:         "TX",
		IntendedMajor: "Computer Science",
		Budget:        profile.BudgetLow,
	})

	out := buf.String()
	assert.Contains(t, out, "ADVISEE PROFILE")
	assert.Contains(t, out, "3.60")
	assert.Contains(t, out, "TX")
	assert.Contains(t, out, "Computer Science")
}

func TestPrintProfile_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(&profile.Profile{})
	assert.Empty(t, buf.String())
}

func TestPrintRanking_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidates := make([]scoring.Candidate, 8)
	for i := range candidates {
		candidates[i] = scoring.Candidate{
			College: catalog.College{Name: "School", State: "TX", Type: catalog.TypePublicUniversity},
			Score:   90 - i,
		}
	}
	p.PrintRanking(candidates)

	out := buf.String()
	assert.Contains(t, out, "RANKED CANDIDATES")
	assert.Contains(t, out, "and 3 more")
}

func TestPrintSources(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSources(&enrich.Response{
		Sources: []research.Note{
			{Title: "Rice University", URL: "https://www.rice.edu", Note: "Aid covers most students."},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "RESEARCH SOURCES")
	assert.Contains(t, out, "Rice University")
}

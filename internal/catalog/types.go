// Package catalog provides the static college dataset and its repository.
// The dataset is embedded at compile time and immutable for the lifetime
// of the process; callers inject a Catalog wherever scoring needs one so
// tests can substitute small fixtures.
package catalog

import (
	"strconv"
	"strings"
)

// SchoolType classifies an institution.
type SchoolType string

// The four supported institution types.
const (
	TypeCommunityCollege  SchoolType = "Community College"
	TypePublicUniversity  SchoolType = "Public University"
	TypePrivateUniversity SchoolType = "Private University"
	TypeTechnicalCollege  SchoolType = "Technical College"
)

// SATNotReported is the sentinel used when an institution does not
// publish an SAT range.
const SATNotReported = "N/A"

// College is one read-only catalog record.
type College struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	City                string     `json:"city"`
	State               string     `json:"state"`
	Type                SchoolType `json:"type"`
	TuitionInState      int        `json:"tuition_in_state"`
	TuitionOutState     int        `json:"tuition_out_state"`
	MinGPA              float64    `json:"min_gpa"`
	AvgGPA              float64    `json:"avg_gpa"`
	SATRange            string     `json:"sat_range"`
	AcceptanceRate      string     `json:"acceptance_rate"`
	GraduationRate      string     `json:"graduation_rate"`
	FinancialAidPercent int        `json:"financial_aid_percent"`
	Majors              []string   `json:"majors"`
	Tags                []string   `json:"tags"`
	Description         string     `json:"description"`
	Website             string     `json:"website"`
}

// HasTag reports whether the college carries the given classifier tag.
// Matching is case-insensitive.
func (c *College) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ParseSATRange parses a "low-high" SAT range string.
// Returns ok=false for the SATNotReported sentinel or malformed input.
func ParseSATRange(s string) (low, high int, ok bool) {
	if s == "" || s == SATNotReported {
		return 0, 0, false
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	high, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}

	if low <= 0 || high < low {
		return 0, 0, false
	}

	return low, high, true
}

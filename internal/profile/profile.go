// Package profile defines the advisee profile and its patch/merge semantics.
// The engine never stores profiles; it receives the accumulated profile from
// the caller and returns a patch of newly detected fields. Merging the patch
// into durable state is the caller's responsibility.
package profile

import (
	"strings"

	"github.com/eduguide/advisor/internal/catalog"
)

// Budget is the advisee's stated affordability tier.
type Budget string

// Budget tiers. The zero value means the tier is unknown.
const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

// Demographic tags recognized by the extractor and scorer.
const (
	TagFirstGeneration = "first-generation"
	TagMilitary        = "military"
	TagInternational   = "international"
	TagTransfer        = "transfer"
	TagNonTraditional  = "non-traditional"
	TagLowIncome       = "low-income"
	TagDisability      = "disability"
)

// Profile is a sparse record of everything known about one advisee.
// It doubles as the patch type: a patch is a Profile carrying only the
// fields detected in the current turn. Numeric fields are pointers so
// "unset" is distinguishable from a legitimate zero.
type Profile struct {
	GPA             *float64             `json:"gpa,omitempty"`
	State           string               `json:"state,omitempty"`
	PreferredStates []string             `json:"preferred_states,omitempty"`
	IntendedMajor   string               `json:"intended_major,omitempty"`
	Budget          Budget               `json:"budget,omitempty"`
	SchoolTypes     []catalog.SchoolType `json:"school_types,omitempty"`
	SATScore        *int                 `json:"sat_score,omitempty"`
	ACTScore        *int                 `json:"act_score,omitempty"`
	Demographics    []string             `json:"demographics,omitempty"`
	Interests       []string             `json:"interests,omitempty"`
	CareerGoals     string               `json:"career_goals,omitempty"`
}

// IsEmpty reports whether the profile carries no information at all.
func (p *Profile) IsEmpty() bool {
	return p.GPA == nil &&
		p.State == "" &&
		len(p.PreferredStates) == 0 &&
		p.IntendedMajor == "" &&
		p.Budget == "" &&
		len(p.SchoolTypes) == 0 &&
		p.SATScore == nil &&
		p.ACTScore == nil &&
		len(p.Demographics) == 0 &&
		len(p.Interests) == 0 &&
		p.CareerGoals == ""
}

// HasDemographic reports whether the profile carries a demographic tag.
func (p *Profile) HasDemographic(tag string) bool {
	for _, d := range p.Demographics {
		if strings.EqualFold(d, tag) {
			return true
		}
	}
	return false
}

// PrefersType reports whether the profile's school-type preference set
// contains the given type. An empty set expresses no preference.
func (p *Profile) PrefersType(t catalog.SchoolType) bool {
	for _, st := range p.SchoolTypes {
		if st == t {
			return true
		}
	}
	return false
}

// Merge combines a base profile with a patch. Accumulating fields
// (PreferredStates, SchoolTypes, Demographics, Interests) are unioned and
// deduplicated, never overwritten; scalar fields are replaced only when
// the patch carries a value.
func Merge(base, patch Profile) Profile {
	merged := base

	if patch.GPA != nil {
		merged.GPA = patch.GPA
	}
	if patch.State != "" {
		merged.State = patch.State
	}
	if patch.IntendedMajor != "" {
		merged.IntendedMajor = patch.IntendedMajor
	}
	if patch.Budget != "" {
		merged.Budget = patch.Budget
	}
	if patch.SATScore != nil {
		merged.SATScore = patch.SATScore
	}
	if patch.ACTScore != nil {
		merged.ACTScore = patch.ACTScore
	}
	if patch.CareerGoals != "" {
		merged.CareerGoals = patch.CareerGoals
	}

	merged.PreferredStates = unionStrings(base.PreferredStates, patch.PreferredStates)
	merged.Demographics = unionStrings(base.Demographics, patch.Demographics)
	merged.Interests = unionStrings(base.Interests, patch.Interests)
	merged.SchoolTypes = unionTypes(base.SchoolTypes, patch.SchoolTypes)

	return merged
}

// unionStrings appends values from add that are not already present,
// preserving first-seen order and deduplicating case-insensitively.
func unionStrings(existing, add []string) []string {
	if len(add) == 0 {
		return existing
	}

	out := append([]string{}, existing...)
	seen := make(map[string]bool, len(out))
	for _, v := range out {
		seen[strings.ToLower(v)] = true
	}

	for _, v := range add {
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

func unionTypes(existing, add []catalog.SchoolType) []catalog.SchoolType {
	if len(add) == 0 {
		return existing
	}

	out := append([]catalog.SchoolType{}, existing...)
	seen := make(map[catalog.SchoolType]bool, len(out))
	for _, v := range out {
		seen[v] = true
	}

	for _, v := range add {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// FloatPtr returns a pointer to v. Convenience for building patches.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v. Convenience for building patches.
func IntPtr(v int) *int { return &v }

// Package scoring computes college/profile fit scores and rankings.
// The scorer is a pure additive rule set over the immutable catalog and
// a caller-supplied profile: no randomness, no clock, no I/O. Given the
// same profile and catalog snapshot it is byte-for-byte reproducible.
package scoring

import (
	"strings"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/profile"
)

// baseScore is the starting score before any fit rule is applied.
const baseScore = 50

// Score bounds applied as the final step.
const (
	minScore = 0
	maxScore = 100
)

// GPA fit adjustments.
const (
	gpaCommunityBonus = 15
	gpaAboveAvgBonus  = 25
	gpaAboveMinBonus  = 15
	gpaReachBonus     = 5
	gpaReachMargin    = 0.3
	gpaBelowPenalty   = -20
)

// State fit adjustments.
const (
	statePrimaryBonus   = 20
	statePreferredBonus = 15
)

// majorMatchBonus applies when the intended major matches any catalog major.
const majorMatchBonus = 20

// School-type preference adjustments. A non-empty preference set
// penalizes mismatches explicitly rather than just withholding a bonus.
const (
	typeMatchBonus      = 15
	typeMismatchPenalty = -10
)

// SAT fit adjustments.
const (
	satWithinBonus   = 10
	satAboveBonus    = 15
	satBelowPenalty  = -10
	satBelowMargin   = 100
	interestTagBonus = 5
)

// Score computes the fit score for one college against a profile.
// The result is clamped to [0, 100] as the very last step.
func Score(p profile.Profile, c catalog.College) int {
	score := baseScore

	score += gpaFit(p, c)
	score += stateFit(p, c)
	score += majorFit(p, c)
	score += budgetFit(p, c)
	score += typeFit(p, c)
	score += demographicFit(p, c)
	score += testFit(p, c)
	score += interestFit(p, c)

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// gpaFit models admissions fit. Community colleges are open admission:
// a flat bonus independent of the applicant's GPA, present or not. For
// everything else an unset GPA contributes nothing.
func gpaFit(p profile.Profile, c catalog.College) int {
	if c.Type == catalog.TypeCommunityCollege {
		return gpaCommunityBonus
	}
	if p.GPA == nil {
		return 0
	}

	switch {
	case *p.GPA >= c.AvgGPA:
		return gpaAboveAvgBonus
	case *p.GPA >= c.MinGPA:
		return gpaAboveMinBonus
	case *p.GPA >= c.MinGPA-gpaReachMargin:
		return gpaReachBonus
	default:
		return gpaBelowPenalty
	}
}

// stateFit rewards the primary state most, then any accumulated
// preferred state.
func stateFit(p profile.Profile, c catalog.College) int {
	if p.State != "" && p.State == c.State {
		return statePrimaryBonus
	}
	for _, s := range p.PreferredStates {
		if s == c.State {
			return statePreferredBonus
		}
	}
	return 0
}

// majorFit matches the intended major against the college's majors list,
// substring in either direction, case-insensitive.
func majorFit(p profile.Profile, c catalog.College) int {
	if p.IntendedMajor == "" {
		return 0
	}
	want := strings.ToLower(p.IntendedMajor)
	for _, m := range c.Majors {
		have := strings.ToLower(m)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return majorMatchBonus
		}
	}
	return 0
}

// budgetFit resolves effective tuition (in-state when the profile's
// primary state matches the college) and applies the tier thresholds.
func budgetFit(p profile.Profile, c catalog.College) int {
	if p.Budget == "" {
		return 0
	}

	tuition := c.TuitionOutState
	if p.State != "" && p.State == c.State {
		tuition = c.TuitionInState
	}

	switch p.Budget {
	case profile.BudgetLow:
		switch {
		case tuition <= 5000:
			return 20
		case tuition <= 15000:
			return 10
		case tuition > 30000:
			return -15
		}
	case profile.BudgetMedium:
		switch {
		case tuition <= 25000:
			return 15
		case tuition > 50000:
			return -10
		}
	case profile.BudgetHigh:
		return 5
	}
	return 0
}

// typeFit applies the explicit mismatch penalty when the profile states
// a school-type preference the college does not satisfy.
func typeFit(p profile.Profile, c catalog.College) int {
	if len(p.SchoolTypes) == 0 {
		return 0
	}
	if p.PrefersType(c.Type) {
		return typeMatchBonus
	}
	return typeMismatchPenalty
}

// demographicFit applies each bonus independently; they stack.
func demographicFit(p profile.Profile, c catalog.College) int {
	score := 0

	if p.HasDemographic(profile.TagFirstGeneration) && c.FinancialAidPercent > 70 {
		score += 10
	}
	if p.HasDemographic(profile.TagTransfer) && c.HasTag("transfer") {
		score += 15
	}
	if p.HasDemographic(profile.TagMilitary) && c.HasTag("military-friendly") {
		score += 15
	}
	if p.HasDemographic(profile.TagLowIncome) {
		if c.Type == catalog.TypeCommunityCollege {
			score += 15
		}
		if c.FinancialAidPercent > 75 {
			score += 10
		}
	}

	return score
}

// testFit compares the profile's SAT score against the college's
// published range. Colleges without a published range contribute nothing.
func testFit(p profile.Profile, c catalog.College) int {
	if p.SATScore == nil {
		return 0
	}
	low, high, ok := catalog.ParseSATRange(c.SATRange)
	if !ok {
		return 0
	}

	sat := *p.SATScore
	switch {
	case sat > high:
		return satAboveBonus
	case sat >= low:
		return satWithinBonus
	case sat < low-satBelowMargin:
		return satBelowPenalty
	}
	return 0
}

// interestFit grants a small bonus per profile interest present in the
// college's tag list. Uncapped; bounded naturally by the interest list.
func interestFit(p profile.Profile, c catalog.College) int {
	score := 0
	for _, interest := range p.Interests {
		if c.HasTag(interest) {
			score += interestTagBonus
		}
	}
	return score
}

// Package extraction parses free-text advisee messages into structured
// profile patches. Every extractor is best-effort and independent: a
// non-match simply omits the field, out-of-range numbers are rejected
// rather than clamped, and nothing here ever returns an error.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/profile"
)

// GPA domain bounds. Values outside are treated as non-matches.
const (
	minGPA = 0.0
	maxGPA = 4.5
)

// SAT and ACT score domains.
const (
	minSAT = 400
	maxSAT = 1600
	minACT = 1
	maxACT = 36
)

// Extract parses one message against the profile accumulated so far and
// returns a patch containing only newly detected fields. Accumulating
// fields are deduplicated against the current profile; previously known
// fields are never removed.
func Extract(message string, current profile.Profile) profile.Profile {
	var patch profile.Profile
	lower := strings.ToLower(message)

	if gpa, ok := extractGPA(message); ok {
		patch.GPA = &gpa
	}

	if state, ok := extractState(message, lower); ok {
		patch.State = state
		if !containsFold(current.PreferredStates, state) {
			patch.PreferredStates = []string{state}
		}
	}

	if major, ok := extractMajor(message); ok {
		patch.IntendedMajor = major
	}

	if budget, ok := firstMatch(budgetRules, message); ok {
		patch.Budget = profile.Budget(budget)
	}

	if types := extractSchoolTypes(message); len(types) > 0 {
		patch.SchoolTypes = dedupTypes(types, current.SchoolTypes)
	}

	if sat, ok := extractScore(satPattern, message, minSAT, maxSAT); ok {
		patch.SATScore = &sat
	}
	if act, ok := extractScore(actPattern, message, minACT, maxACT); ok {
		patch.ACTScore = &act
	}

	if tags := allMatches(demographicRules, message); len(tags) > 0 {
		patch.Demographics = dedupStrings(tags, current.Demographics)
	}

	return patch
}

// firstMatch returns the value of the first rule whose pattern matches.
func firstMatch(rules []valueRule, message string) (string, bool) {
	for _, rule := range rules {
		if rule.re.MatchString(message) {
			return rule.value, true
		}
	}
	return "", false
}

// allMatches returns the values of every rule whose pattern matches,
// in rule order.
func allMatches(rules []valueRule, message string) []string {
	var values []string
	for _, rule := range rules {
		if rule.re.MatchString(message) {
			values = append(values, rule.value)
		}
	}
	return values
}

// extractGPA tries each GPA pattern in order and returns the first
// captured value inside the valid domain.
func extractGPA(message string) (float64, bool) {
	for _, re := range gpaPatterns {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		gpa, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if gpa < minGPA || gpa > maxGPA {
			continue
		}
		return gpa, true
	}
	return 0, false
}

// extractState resolves a state mention. Resolution order: full state
// name substring, uppercase postal abbreviation on word boundaries,
// major-city lookup. First match wins.
func extractState(message, lower string) (string, bool) {
	for _, entry := range stateNames {
		if strings.Contains(lower, entry.name) {
			return entry.abbr, true
		}
	}

	if m := stateAbbrPattern.FindStringSubmatch(message); m != nil {
		return m[1], true
	}

	for _, entry := range cityStates {
		if strings.Contains(lower, entry.name) {
			return entry.abbr, true
		}
	}

	return "", false
}

// extractMajor returns the canonical major of the first matching category.
func extractMajor(message string) (string, bool) {
	for _, rule := range majorRules {
		if rule.re.MatchString(message) {
			return rule.canonical, true
		}
	}
	return "", false
}

// extractSchoolTypes detects school-type cues. The result is a set:
// community, university (public and/or private, both when ambiguous)
// and technical cues may all fire on one message.
func extractSchoolTypes(message string) []catalog.SchoolType {
	var types []catalog.SchoolType

	if communityCuePattern.MatchString(message) {
		types = append(types, catalog.TypeCommunityCollege)
	}

	if universityCuePattern.MatchString(message) {
		public := publicCuePattern.MatchString(message)
		private := privateCuePattern.MatchString(message)
		switch {
		case public && !private:
			types = append(types, catalog.TypePublicUniversity)
		case private && !public:
			types = append(types, catalog.TypePrivateUniversity)
		default:
			types = append(types, catalog.TypePublicUniversity, catalog.TypePrivateUniversity)
		}
	}

	if technicalCuePattern.MatchString(message) {
		types = append(types, catalog.TypeTechnicalCollege)
	}

	return types
}

// extractScore captures a test score and applies the hard domain gate.
func extractScore(re *regexp.Regexp, message string, lo, hi int) (int, bool) {
	m := re.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if score < lo || score > hi {
		return 0, false
	}
	return score, true
}

// dedupStrings drops values already present in existing (case-insensitive).
func dedupStrings(values, existing []string) []string {
	var out []string
	for _, v := range values {
		if !containsFold(existing, v) && !containsFold(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func dedupTypes(values, existing []catalog.SchoolType) []catalog.SchoolType {
	var out []catalog.SchoolType
	for _, v := range values {
		if !typeIn(existing, v) && !typeIn(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(haystack []string, needle string) bool {
	for _, v := range haystack {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}

func typeIn(haystack []catalog.SchoolType, needle catalog.SchoolType) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

package scoring

import (
	"sort"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/profile"
)

// Candidate pairs a college with its score for one profile. Candidates
// exist only for the duration of a recommendation request.
type Candidate struct {
	College catalog.College `json:"college"`
	Score   int             `json:"score"`
}

// Rank scores every college against the profile and returns the top
// limit entries by descending score. Ties keep catalog iteration order
// (stable sort, no secondary key). limit <= 0 returns everything.
func Rank(p profile.Profile, colleges []catalog.College, limit int) []Candidate {
	candidates := make([]Candidate, 0, len(colleges))
	for _, c := range colleges {
		candidates = append(candidates, Candidate{College: c, Score: Score(p, c)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduguide/advisor/internal/catalog"
)

func TestAliases(t *testing.T) {
	mit := catalog.College{Name: "Massachusetts Institute of Technology"}
	got := Aliases(mit)
	assert.Contains(t, got, "massachusetts institute of technology")
	assert.Contains(t, got, "mit")

	rice := catalog.College{Name: "Rice University", City: "Houston"}
	got = Aliases(rice)
	assert.Contains(t, got, "rice university")
	assert.Contains(t, got, "rice")
	assert.Contains(t, got, "houston")
}

func TestFindTargets_CityMention(t *testing.T) {
	recommended := []catalog.College{
		{ID: "ut-austin", Name: "University of Texas at Austin", City: "Austin"},
		{ID: "rice", Name: "Rice University", City: "Houston"},
	}

	targets := FindTargets("tell me about the school in Austin", recommended)
	require.Len(t, targets, 1)
	assert.Equal(t, "ut-austin", targets[0].ID)
}

func TestFindTargets_MentionedCollegeWins(t *testing.T) {
	recommended := []catalog.College{
		{ID: "ut-austin", Name: "University of Texas at Austin"},
		{ID: "rice", Name: "Rice University"},
		{ID: "texas-am", Name: "Texas A&M University"},
	}

	targets := FindTargets("tell me more about Rice University", recommended)
	require.Len(t, targets, 1)
	assert.Equal(t, "rice", targets[0].ID)
}

func TestFindTargets_AcronymNeedsWordBoundary(t *testing.T) {
	recommended := []catalog.College{
		{ID: "mit", Name: "Massachusetts Institute of Technology"},
		{ID: "rice", Name: "Rice University"},
	}

	// "admitted" contains "mit" but is not a mention.
	targets := FindTargets("what are my chances of getting admitted somewhere good", recommended)
	require.Len(t, targets, 2)
	assert.Equal(t, "mit", targets[0].ID)

	targets = FindTargets("is MIT out of reach for me?", recommended)
	require.Len(t, targets, 1)
	assert.Equal(t, "mit", targets[0].ID)
}

func TestFindTargets_FallsBackToTopRecommendations(t *testing.T) {
	recommended := []catalog.College{
		{ID: "a", Name: "Alpha University"},
		{ID: "b", Name: "Beta University"},
		{ID: "c", Name: "Gamma University"},
	}

	targets := FindTargets("what should I do next?", recommended)
	require.Len(t, targets, MaxTargets)
	assert.Equal(t, "a", targets[0].ID)
	assert.Equal(t, "b", targets[1].ID)
}

func TestFindTargets_CapsMentions(t *testing.T) {
	recommended := []catalog.College{
		{ID: "a", Name: "Alpha University"},
		{ID: "b", Name: "Beta University"},
		{ID: "c", Name: "Gamma University"},
	}

	targets := FindTargets(
		"compare alpha university, beta university, and gamma university",
		recommended)
	assert.Len(t, targets, MaxTargets)
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/profile"
)

func TestRank_DescendingAndTruncated(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	p := profile.Profile{
		GPA:           profile.FloatPtr(3.6),
		State:         "TX",
		IntendedMajor: "Computer Science",
		Budget:        profile.BudgetLow,
	}

	ranked := Rank(p, cat.All(), 5)
	require.Len(t, ranked, 5)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_Deterministic(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	p := profile.Profile{
		GPA:    profile.FloatPtr(3.2),
		State:  "CA",
		Budget: profile.BudgetMedium,
	}

	first := Rank(p, cat.All(), 0)
	second := Rank(p, cat.All(), 0)

	assert.Equal(t, first, second)
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	// All entries score identically for an empty profile except the
	// community colleges; equal-scoring entries must keep their
	// original relative order.
	colleges := []catalog.College{
		{ID: "a", Type: catalog.TypePublicUniversity},
		{ID: "b", Type: catalog.TypePublicUniversity},
		{ID: "c", Type: catalog.TypePublicUniversity},
	}

	ranked := Rank(profile.Profile{}, colleges, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].College.ID)
	assert.Equal(t, "b", ranked[1].College.ID)
	assert.Equal(t, "c", ranked[2].College.ID)
}

func TestRank_ZeroLimitReturnsAll(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	ranked := Rank(profile.Profile{}, cat.All(), 0)
	assert.Len(t, ranked, cat.Len())
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/profile"
	"github.com/eduguide/advisor/internal/scoring"
)

func testEngine(t *testing.T) (*Engine, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return New(cat), cat
}

func TestRespond_FullRecommendationFlow(t *testing.T) {
	eng, cat := testEngine(t)

	resp := eng.Respond(
		"My GPA is 3.6 and I want to study Computer Science in Texas on a budget",
		profile.Profile{}, "")

	require.NotNil(t, resp.ProfileUpdates)
	require.NotNil(t, resp.ProfileUpdates.GPA)
	assert.Equal(t, 3.6, *resp.ProfileUpdates.GPA)
	assert.Equal(t, "TX", resp.ProfileUpdates.State)
	assert.Equal(t, "Computer Science", resp.ProfileUpdates.IntendedMajor)
	assert.Equal(t, profile.BudgetLow, resp.ProfileUpdates.Budget)

	// Recommendation intent: top five for the extracted profile, in
	// descending score order.
	require.Len(t, resp.Colleges, 5)

	merged := profile.Merge(profile.Profile{}, *resp.ProfileUpdates)
	want := scoring.Rank(merged, cat.All(), 5)
	for i, c := range resp.Colleges {
		assert.Equal(t, want[i].College.ID, c.ID, "position %d", i)
	}
}

func TestRespond_GreetingWinsOverHelpCue(t *testing.T) {
	eng, _ := testEngine(t)

	resp := eng.Respond("hi there, can someone help me", profile.Profile{}, "")

	assert.Empty(t, resp.Colleges)
	require.NotNil(t, resp.ProfileUpdates)
	assert.True(t, resp.ProfileUpdates.IsEmpty())
	assert.Contains(t, resp.Content, "Welcome to EduGuide")
}

func TestRespond_TradingMessageIsRefused(t *testing.T) {
	eng, _ := testEngine(t)

	current := profile.Profile{GPA: profile.FloatPtr(3.0)}
	resp := eng.Respond(
		"I need help with fx risk orchestrator kill switch for xauusd trading",
		current, "")

	assert.Empty(t, resp.Colleges)
	require.NotNil(t, resp.ProfileUpdates)
	assert.True(t, resp.ProfileUpdates.IsEmpty())
	assert.NotEmpty(t, resp.FollowUpQuestions)
	assert.Contains(t, resp.Content, "college discovery")
}

func TestRespond_RefusalWinsDespiteCollegeWords(t *testing.T) {
	eng, _ := testEngine(t)

	resp := eng.Respond(
		"recommend a college strategy for scalping eurusd with leverage",
		profile.Profile{}, "")

	assert.Empty(t, resp.Colleges)
	assert.Contains(t, resp.Content, "college discovery")
}

func TestRespond_ProfileAccumulatesAcrossTurns(t *testing.T) {
	eng, _ := testEngine(t)

	first := eng.Respond("my gpa is 3.2", profile.Profile{}, "")
	require.NotNil(t, first.ProfileUpdates)

	current := profile.Merge(profile.Profile{}, *first.ProfileUpdates)
	second := eng.Respond("I'd like to stay in Texas", current, "")
	require.NotNil(t, second.ProfileUpdates)

	merged := profile.Merge(current, *second.ProfileUpdates)
	require.NotNil(t, merged.GPA)
	assert.Equal(t, 3.2, *merged.GPA)
	assert.Equal(t, "TX", merged.State)
}

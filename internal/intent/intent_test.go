package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_EachIntent(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"hello there", IntentGreeting},
		{"can you recommend a college for me", IntentRecommendation},
		{"is my gpa good enough", IntentGPADiscussion},
		{"how do I get a scholarship", IntentFinancialAid},
		{"what are the application requirements", IntentAdmissions},
		{"tell me about community college", IntentCommunityCollege},
		{"compare these two schools", IntentComparison},
		{"what major should I pick", IntentMajorSelection},
		{"are online classes worth it", IntentOnlineLearning},
		{"how do I prepare for the SAT", IntentTestPrep},
		{"help with my personal statement", IntentEssayHelp},
		{"thanks, that helped a lot", IntentThanks},
		{"xyzzy", IntentGeneral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.message), "message: %s", tc.message)
	}
}

func TestClassify_FirstMatchWinsOverLaterIntents(t *testing.T) {
	// Matches both greeting and recommendation; greeting runs first.
	assert.Equal(t, IntentGreeting, Classify("hi, can you recommend a college?"))

	// Matches both recommendation and gpa-discussion; recommendation runs first.
	assert.Equal(t, IntentRecommendation, Classify("recommend a school for my gpa"))
}

func TestClassify_DefaultsToGeneral(t *testing.T) {
	assert.Equal(t, IntentGeneral, Classify("I am not sure what I need"))
}

func TestClassify_RecommendationFromStudyPhrase(t *testing.T) {
	assert.Equal(t, IntentRecommendation,
		Classify("My GPA is 3.6 and I want to study Computer Science in Texas on a budget"))
}

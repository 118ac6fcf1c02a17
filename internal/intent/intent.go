// Package intent maps free-text advisee messages to conversational
// intents. Classification is a fixed, ordered list of keyword patterns:
// the first class whose pattern matches wins, and a message matching no
// class falls through to IntentGeneral. The order is a deliberate
// tie-break policy, not an optimization.
package intent

import "regexp"

// Intent is a fixed classification label governing which response
// template the composer uses.
type Intent string

// The supported intents, in evaluation order.
const (
	IntentGreeting         Intent = "greeting"
	IntentRecommendation   Intent = "recommendation"
	IntentGPADiscussion    Intent = "gpa-discussion"
	IntentFinancialAid     Intent = "financial-aid"
	IntentAdmissions       Intent = "admissions"
	IntentCommunityCollege Intent = "community-college"
	IntentComparison       Intent = "comparison"
	IntentMajorSelection   Intent = "major-selection"
	IntentOnlineLearning   Intent = "online-learning"
	IntentTestPrep         Intent = "test-prep"
	IntentEssayHelp        Intent = "essay-help"
	IntentThanks           Intent = "thanks"
	IntentGeneral          Intent = "general"
)

// intentRule pairs an intent with its keyword pattern.
type intentRule struct {
	intent Intent
	re     *regexp.Regexp
}

// intentRules is evaluated top to bottom; the first match wins. A
// message containing both a greeting and a recommendation cue therefore
// classifies as a greeting.
var intentRules = []intentRule{
	{IntentGreeting, regexp.MustCompile(`(?i)\b(hi|hello|hey|howdy|greetings)\b|good (morning|afternoon|evening)`)},
	{IntentRecommendation, regexp.MustCompile(`(?i)recommend|suggest|which (college|school|university)|what college|best (college|school|university)|good school|where should i (go|apply)|college for me|want to study|looking for (a )?(college|school)`)},
	{IntentGPADiscussion, regexp.MustCompile(`(?i)\bgpa\b|grade point|my grades`)},
	{IntentFinancialAid, regexp.MustCompile(`(?i)financial aid|scholarship|\bfafsa\b|\bgrants?\b|afford|tuition|student loan|pay for (college|school)`)},
	{IntentAdmissions, regexp.MustCompile(`(?i)admissions?\b|\bapply(ing)?\b|application|requirements|get (in|into|accepted)|my chances|acceptance`)},
	{IntentCommunityCollege, regexp.MustCompile(`(?i)community college|2-year|two-year|2 year|associate'?s? degree`)},
	{IntentComparison, regexp.MustCompile(`(?i)\bcompare\b|\bversus\b|\bvs\.?\b|difference between|which is better`)},
	{IntentMajorSelection, regexp.MustCompile(`(?i)\bmajors?\b|what (to|should i) study|degree in|field of study|career path|\bprograms?\b`)},
	{IntentOnlineLearning, regexp.MustCompile(`(?i)\bonline\b|remote (classes|learning)|distance learning|virtual (classes|school)`)},
	{IntentTestPrep, regexp.MustCompile(`(?i)\bsat\b|\bact\b|test prep|standardized test|test scores?`)},
	{IntentEssayHelp, regexp.MustCompile(`(?i)\bessays?\b|personal statement|application writing`)},
	{IntentThanks, regexp.MustCompile(`(?i)\bthanks?\b|thank you|appreciate|that help(s|ed)`)},
}

// Classify maps a message to exactly one intent.
func Classify(message string) Intent {
	for _, rule := range intentRules {
		if rule.re.MatchString(message) {
			return rule.intent
		}
	}
	return IntentGeneral
}

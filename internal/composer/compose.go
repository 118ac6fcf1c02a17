// Package composer turns a classified intent and an advisee profile into
// the deterministic advising response: template text, a ranked college
// list where the intent calls for one, the profile patch to persist, and
// follow-up questions. Composition is pure; all personalization comes
// from the profile and the injected catalog.
package composer

import (
	"fmt"
	"strings"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/intent"
	"github.com/eduguide/advisor/internal/profile"
	"github.com/eduguide/advisor/internal/scoring"
)

// College list caps per branch.
const (
	recommendationLimit = 5
	discussionLimit     = 4
	starterLimit        = 3
)

// Input carries everything one composition needs. Merged is the full
// accumulated profile after this turn's extraction; Patch is only the
// fields newly detected this turn.
type Input struct {
	Intent   intent.Intent
	Merged   profile.Profile
	Patch    profile.Profile
	UserName string
}

// Response is the complete advising reply for one message.
type Response struct {
	Content           string            `json:"content"`
	Colleges          []catalog.College `json:"colleges,omitempty"`
	ProfileUpdates    *profile.Profile  `json:"profile_updates,omitempty"`
	FollowUpQuestions []string          `json:"follow_up_questions,omitempty"`
}

// Composer builds responses against an injected catalog snapshot.
type Composer struct {
	colleges []catalog.College
}

// New returns a composer over the given catalog.
func New(cat *catalog.Catalog) *Composer {
	return &Composer{colleges: cat.All()}
}

// Refusal is the fixed reply for out-of-scope messages. The patch is
// explicitly empty: nothing from a refused message enters the profile.
func Refusal() Response {
	return Response{
		Content:           refusalContent,
		ProfileUpdates:    &profile.Profile{},
		FollowUpQuestions: onboardingFollowUps,
	}
}

// Compose builds the response for one classified message.
func (cp *Composer) Compose(in Input) Response {
	switch in.Intent {
	case intent.IntentGreeting:
		return cp.greeting(in)
	case intent.IntentRecommendation:
		return cp.recommendation(in)
	case intent.IntentGPADiscussion:
		return cp.gpaDiscussion(in)
	case intent.IntentFinancialAid:
		return cp.financialAid(in)
	case intent.IntentAdmissions:
		return cp.admissions(in)
	case intent.IntentCommunityCollege:
		return cp.communityCollege(in)
	case intent.IntentComparison:
		return cp.comparison(in)
	case intent.IntentMajorSelection:
		return cp.majorSelection(in)
	case intent.IntentOnlineLearning:
		return cp.static(in, onlineLearningContent, generalFollowUps)
	case intent.IntentTestPrep:
		return cp.testPrep(in)
	case intent.IntentEssayHelp:
		return cp.static(in, essayHelpContent, admissionsFollowUps)
	case intent.IntentThanks:
		return cp.static(in, thanksContent, nil)
	default:
		return cp.general(in)
	}
}

func (cp *Composer) greeting(in Input) Response {
	content := greetingContent
	if in.UserName != "" {
		content = fmt.Sprintf("Hi %s! %s", in.UserName, greetingContent)
	}
	return Response{
		Content:           content,
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: onboardingFollowUps,
	}
}

func (cp *Composer) recommendation(in Input) Response {
	summary := summarizeSignals(in.Merged)
	if summary == "" {
		return Response{
			Content:           "Happy to recommend some schools! Here are well-rounded options to start with, and the more you tell me about yourself the sharper these get:",
			Colleges:          cp.top(in.Merged, starterLimit),
			ProfileUpdates:    patchOf(in),
			FollowUpQuestions: onboardingFollowUps,
		}
	}

	return Response{
		Content:           fmt.Sprintf("Based on what you've told me (%s), here are my top matches for you:", summary),
		Colleges:          cp.top(in.Merged, recommendationLimit),
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: recommendationFollowUps,
	}
}

func (cp *Composer) gpaDiscussion(in Input) Response {
	if in.Merged.GPA == nil {
		return Response{
			Content:           "Tell me your GPA and I can gauge where you stand. It doesn't have to be perfect; there's a good path from every starting point.",
			ProfileUpdates:    patchOf(in),
			FollowUpQuestions: onboardingFollowUps,
		}
	}

	content := fmt.Sprintf("With a %.2g GPA: %s Here are schools that fit where you are:",
		*in.Merged.GPA, gpaTierComment(*in.Merged.GPA))
	return Response{
		Content:           content,
		Colleges:          cp.top(in.Merged, discussionLimit),
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: admissionsFollowUps,
	}
}

// financialAid ranks with the budget forced to low for this response
// only; the override never enters the returned patch.
func (cp *Composer) financialAid(in Input) Response {
	ranked := in.Merged
	ranked.Budget = profile.BudgetLow

	return Response{
		Content:           financialAidContent,
		Colleges:          cp.top(ranked, starterLimit),
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: financialAidFollowUps,
	}
}

func (cp *Composer) admissions(in Input) Response {
	var b strings.Builder
	if in.Merged.GPA != nil {
		fmt.Fprintf(&b, "%s\n\n", gpaTierComment(*in.Merged.GPA))
	}
	b.WriteString(admissionsChecklist)
	b.WriteString("\n\nSchools worth applying to for your profile:")

	return Response{
		Content:           b.String(),
		Colleges:          cp.top(in.Merged, starterLimit),
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: admissionsFollowUps,
	}
}

// communityCollege records the stated preference in the outgoing patch
// and ranks only the community-college subset of the catalog.
func (cp *Composer) communityCollege(in Input) Response {
	patch := in.Patch
	if !typeIn(patch.SchoolTypes, catalog.TypeCommunityCollege) {
		patch.SchoolTypes = append(patch.SchoolTypes, catalog.TypeCommunityCollege)
	}

	merged := in.Merged
	if !typeIn(merged.SchoolTypes, catalog.TypeCommunityCollege) {
		merged.SchoolTypes = append(merged.SchoolTypes, catalog.TypeCommunityCollege)
	}

	subset := make([]catalog.College, 0)
	for _, c := range cp.colleges {
		if c.Type == catalog.TypeCommunityCollege {
			subset = append(subset, c)
		}
	}

	return Response{
		Content:           communityCollegeContent,
		Colleges:          strip(scoring.Rank(merged, subset, discussionLimit)),
		ProfileUpdates:    &patch,
		FollowUpQuestions: financialAidFollowUps,
	}
}

func (cp *Composer) comparison(in Input) Response {
	return Response{
		Content:           comparisonContent,
		Colleges:          cp.top(in.Merged, discussionLimit),
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: recommendationFollowUps,
	}
}

func (cp *Composer) majorSelection(in Input) Response {
	if in.Merged.IntendedMajor == "" {
		return Response{
			Content: "Picking a major is easier when you start from what you enjoy doing for hours " +
				"without noticing. Tell me a subject or career you're drawn to and I'll lay out the " +
				"options, the outlook, and the schools that do it well.",
			ProfileUpdates:    patchOf(in),
			FollowUpQuestions: majorFollowUps,
		}
	}

	blurb, ok := majorBlurbs[in.Merged.IntendedMajor]
	if !ok {
		blurb = genericMajorBlurb
	}

	return Response{
		Content:           fmt.Sprintf("%s Schools with strong %s programs:", blurb, in.Merged.IntendedMajor),
		Colleges:          cp.top(in.Merged, discussionLimit),
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: majorFollowUps,
	}
}

// testPrep only recommends schools once a score is on record; advice
// alone otherwise.
func (cp *Composer) testPrep(in Input) Response {
	resp := Response{
		Content:           testPrepContent,
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: admissionsFollowUps,
	}
	if in.Merged.SATScore != nil || in.Merged.ACTScore != nil {
		resp.Content += " With your score on file, these schools are in range:"
		resp.Colleges = cp.top(in.Merged, starterLimit)
	}
	return resp
}

func (cp *Composer) general(in Input) Response {
	if !in.Patch.IsEmpty() {
		summary := summarizeSignals(in.Merged)
		content := "Got it, I've noted that."
		if summary != "" {
			content = fmt.Sprintf("Got it — so far I know: %s. Here's how the options look with that in mind:", summary)
		}
		return Response{
			Content:           content,
			Colleges:          cp.top(in.Merged, discussionLimit),
			ProfileUpdates:    patchOf(in),
			FollowUpQuestions: recommendationFollowUps,
		}
	}

	return Response{
		Content:           needMoreInfoContent,
		Colleges:          cp.top(in.Merged, starterLimit),
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: generalFollowUps,
	}
}

// static covers the advice-only branches with fixed copy and no colleges.
func (cp *Composer) static(in Input, content string, followUps []string) Response {
	return Response{
		Content:           content,
		ProfileUpdates:    patchOf(in),
		FollowUpQuestions: followUps,
	}
}

// top ranks the full catalog for a profile and strips the scores.
func (cp *Composer) top(p profile.Profile, limit int) []catalog.College {
	return strip(scoring.Rank(p, cp.colleges, limit))
}

func strip(ranked []scoring.Candidate) []catalog.College {
	out := make([]catalog.College, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.College)
	}
	return out
}

func patchOf(in Input) *profile.Profile {
	patch := in.Patch
	return &patch
}

func typeIn(types []catalog.SchoolType, t catalog.SchoolType) bool {
	for _, st := range types {
		if st == t {
			return true
		}
	}
	return false
}

// summarizeSignals renders the known profile fields as a short inline
// phrase, empty when nothing useful is known.
func summarizeSignals(p profile.Profile) string {
	var parts []string

	if p.GPA != nil {
		parts = append(parts, fmt.Sprintf("a %.2g GPA", *p.GPA))
	}
	if p.State != "" {
		parts = append(parts, fmt.Sprintf("studying in %s", p.State))
	}
	if p.IntendedMajor != "" {
		parts = append(parts, fmt.Sprintf("majoring in %s", p.IntendedMajor))
	}
	if p.Budget != "" {
		parts = append(parts, fmt.Sprintf("a %s budget", p.Budget))
	}
	if p.SATScore != nil {
		parts = append(parts, fmt.Sprintf("an SAT score of %d", *p.SATScore))
	}
	if len(p.SchoolTypes) > 0 {
		names := make([]string, 0, len(p.SchoolTypes))
		for _, t := range p.SchoolTypes {
			names = append(names, strings.ToLower(string(t)))
		}
		parts = append(parts, "interested in "+strings.Join(names, " or "))
	}

	return strings.Join(parts, ", ")
}

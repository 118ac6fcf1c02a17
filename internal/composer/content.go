package composer

// Fixed copy used by the per-intent branches. Kept in one place so the
// templates stay independently reviewable data rather than control flow.

const greetingContent = "Welcome to EduGuide! I'm here to help you find colleges that fit you. " +
	"To get started, tell me a bit about yourself: your GPA, where you'd like to study, " +
	"what you want to major in, and what your budget looks like."

const refusalContent = "I can only help with college discovery and planning — things like finding " +
	"schools that fit your GPA and budget, choosing a major, financial aid, and admissions. " +
	"That question looks like it's about something else entirely. " +
	"What would you like to know about colleges?"

const financialAidContent = "Here's the short version on paying for college. Federal aid starts with " +
	"the FAFSA: file it as early as you can, every year. It unlocks Pell Grants (money you don't pay " +
	"back), subsidized loans, and work-study. Most states layer their own grant programs on top, and " +
	"colleges add institutional scholarships — often automatically considered when you apply. " +
	"Community colleges are the most affordable on-ramp, and many honor transfer scholarships at " +
	"four-year partners. With affordability in mind, here are some options worth a look:"

const admissionsChecklist = "Your application checklist:\n" +
	"  1. Transcript and GPA — request it early\n" +
	"  2. Test scores (SAT/ACT) — check each school's policy, many are test-optional\n" +
	"  3. Essay or personal statement — start drafts the summer before\n" +
	"  4. Letters of recommendation — ask at least a month ahead\n" +
	"  5. FAFSA and aid forms — file as soon as the window opens\n" +
	"  6. Application deadlines — early action can improve your odds"

const comparisonContent = "When comparing schools, line them up on the things that actually change " +
	"your outcome: total cost after aid (not sticker price), graduation rate, strength in your " +
	"intended major, class sizes, and where graduates end up. Visit if you can — fit matters more " +
	"than rank. Here are schools worth putting side by side for your profile:"

const communityCollegeContent = "Community college is one of the smartest on-ramps in higher " +
	"education: open admission, a fraction of university tuition, and transfer agreements that can " +
	"land you at a four-year school with two years of credits already done. Look for schools with " +
	"strong transfer support and articulation agreements with the universities you care about. " +
	"Here are good options:"

const onlineLearningContent = "Online programs have come a long way: accredited degrees, lower cost, " +
	"and schedules that work around a job. The things to verify before enrolling: regional " +
	"accreditation, whether the online degree is identical to the on-campus one, and what student " +
	"support (advising, tutoring, career services) remote students actually get. Hybrid options at " +
	"community colleges are also worth a look if you want some in-person structure."

const testPrepContent = "For the SAT and ACT, consistent practice beats cramming: take a full-length " +
	"timed practice test first, find your weak sections, and drill those. Khan Academy's official SAT " +
	"prep is free and genuinely good. Plan for two attempts — most students improve the second time — " +
	"and check each school's test-optional policy before stressing over a retake."

const essayHelpContent = "For your essay: admissions readers want your voice, not a thesaurus. Pick " +
	"one specific story only you can tell, show what changed in you, and keep it concrete. Draft " +
	"early, get one trusted reader (not five), and revise for honesty before polish. Avoid the " +
	"greatest-hits resume essay — they read hundreds of those."

const thanksContent = "You're welcome — happy to help! Come back any time you want to dig into " +
	"specific schools, majors, or aid options. Good luck out there!"

const needMoreInfoContent = "I'd love to help you find the right fit. Tell me more about yourself — " +
	"your GPA, the state you want to study in, what you might major in, or your budget — and I can " +
	"make specific recommendations. In the meantime, here are a few popular options:"

// gpaTier holds the five-tier GPA commentary. Evaluated top down.
type gpaTier struct {
	floor   float64
	comment string
}

var gpaTiers = []gpaTier{
	{3.8, "That's an excellent GPA — you're competitive for the most selective schools in the " +
		"country, including Ivy-tier programs. Aim high, and use safety schools as a floor, not a plan."},
	{3.5, "That's a strong GPA. Flagship state universities and many selective private schools are " +
		"well within reach, and you should qualify for merit scholarships at plenty of them."},
	{3.0, "That's a solid GPA. Most public universities will take a serious look at you, and a " +
		"strong essay or test score can push you into more selective pools."},
	{2.5, "Your GPA opens doors at accessible four-year schools, and an upward grade trend counts " +
		"for a lot. Consider pairing applications with a transfer-friendly backup."},
	{0, "With your current GPA, community college is a strategic on-ramp: open admission, low cost, " +
		"and a transfer pathway that lets your college grades restart the conversation."},
}

// gpaTierComment returns the commentary for a GPA value.
func gpaTierComment(gpa float64) string {
	for _, tier := range gpaTiers {
		if gpa >= tier.floor {
			return tier.comment
		}
	}
	return gpaTiers[len(gpaTiers)-1].comment
}

// majorBlurbs holds custom commentary for the eight majors advisees ask
// about most; everything else gets the generic growing-field blurb.
var majorBlurbs = map[string]string{
	"Computer Science": "Computer Science remains one of the highest-ROI degrees: median starting " +
		"salaries near the top of any major, and demand across every industry. Look for programs " +
		"with co-ops or strong internship pipelines — experience matters more than ranking.",
	"Engineering": "Engineering degrees lead to consistently strong employment and licensure paths. " +
		"ABET accreditation is the non-negotiable; co-op programs can cover a chunk of tuition while " +
		"you earn experience.",
	"Business": "Business is the most popular major in the country for a reason: flexible, " +
		"broadly employable, and a good base for an MBA later. Concentrations (finance, analytics, " +
		"supply chain) matter more than the generic label.",
	"Nursing": "Nursing demand keeps outpacing supply — strong job security and clear licensure " +
		"steps. Check NCLEX pass rates and clinical placement quality; direct-admit BSN programs " +
		"save you a competitive internal transfer later.",
	"Biology": "Biology is a versatile science base — pre-med, biotech, research, environmental " +
		"work. Plan the next step early: the bachelor's alone is a launchpad, and lab or research " +
		"experience is what differentiates graduates.",
	"Psychology": "Psychology teaches research and people skills that transfer everywhere, but most " +
		"clinical paths run through graduate school. If that's your plan, prioritize programs with " +
		"research opportunities for undergraduates.",
	"Education": "Teaching offers purpose and stable demand, especially in STEM, special education, " +
		"and bilingual classrooms. Look for programs with early classroom placements and strong " +
		"certification pass rates; many states offer loan forgiveness.",
	"Criminal Justice": "Criminal justice opens paths in law enforcement, corrections, forensics, " +
		"and law. Internships with local agencies matter a lot; if law school is the goal, pair it " +
		"with strong writing coursework.",
}

const genericMajorBlurb = "That's a growing field with solid prospects. Compare how deep each " +
	"school's program actually goes — dedicated faculty, internships, and upper-level coursework — " +
	"rather than just whether the major appears in the catalog."

// Follow-up question sets per intent family.
var (
	onboardingFollowUps = []string{
		"What's your GPA?",
		"Which state would you like to study in?",
		"What do you want to major in?",
	}

	recommendationFollowUps = []string{
		"Want me to narrow these down by budget?",
		"Should I focus on a specific state?",
		"Do you want public schools, private schools, or both?",
	}

	financialAidFollowUps = []string{
		"Have you filed the FAFSA yet?",
		"Do you want schools with strong need-based aid?",
		"Should I look at in-state options to cut tuition?",
	}

	admissionsFollowUps = []string{
		"Want a timeline for application season?",
		"Do you need help with your essay?",
		"Should we look at test-optional schools?",
	}

	majorFollowUps = []string{
		"Want colleges that are strong in this major?",
		"Curious about career outcomes for this field?",
		"Should we compare related majors?",
	}

	generalFollowUps = []string{
		"What's your GPA?",
		"Do you have a state or city in mind?",
		"What's your budget for tuition?",
	}
)

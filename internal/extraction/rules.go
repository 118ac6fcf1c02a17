package extraction

import (
	"regexp"

	"github.com/eduguide/advisor/internal/profile"
)

// valueRule pairs a pattern with the value it yields on match.
// Rule slices are evaluated either first-match-wins (classification
// semantics) or accumulate-all (extraction semantics); the evaluators
// live in extract.go.
type valueRule struct {
	re    *regexp.Regexp
	value string
}

// gpaPatterns each capture a decimal GPA in group 1. Values outside
// [0, 4.5] are rejected by the caller, not clamped.
var gpaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d(?:\.\d{1,2})?)\s*gpa`),
	regexp.MustCompile(`(?i)gpa\s*(?:of|is|:)?\s*(\d(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)grade\s+point\s+average[^\d]*(\d(?:\.\d{1,2})?)`),
}

var (
	satPattern = regexp.MustCompile(`(?i)\bsat\b[^\d]*(\d{3,4})`)
	actPattern = regexp.MustCompile(`(?i)\bact\b[^\d]*(\d{1,2})`)
)

// stateEntry maps a full state name to its postal abbreviation.
// The table is ordered: names that contain another state's name as a
// substring ("Arkansas"/"Kansas", "West Virginia"/"Virginia") and the
// DC spellings must be checked before their shorter counterparts.
type stateEntry struct {
	name string
	abbr string
}

var stateNames = []stateEntry{
	{"washington dc", "DC"},
	{"washington, d.c.", "DC"},
	{"district of columbia", "DC"},
	{"west virginia", "WV"},
	{"arkansas", "AR"},
	{"new hampshire", "NH"},
	{"new jersey", "NJ"},
	{"new mexico", "NM"},
	{"new york", "NY"},
	{"north carolina", "NC"},
	{"north dakota", "ND"},
	{"south carolina", "SC"},
	{"south dakota", "SD"},
	{"rhode island", "RI"},
	{"alabama", "AL"},
	{"alaska", "AK"},
	{"arizona", "AZ"},
	{"california", "CA"},
	{"colorado", "CO"},
	{"connecticut", "CT"},
	{"delaware", "DE"},
	{"florida", "FL"},
	{"georgia", "GA"},
	{"hawaii", "HI"},
	{"idaho", "ID"},
	{"illinois", "IL"},
	{"indiana", "IN"},
	{"iowa", "IA"},
	{"kansas", "KS"},
	{"kentucky", "KY"},
	{"louisiana", "LA"},
	{"maine", "ME"},
	{"maryland", "MD"},
	{"massachusetts", "MA"},
	{"michigan", "MI"},
	{"minnesota", "MN"},
	{"mississippi", "MS"},
	{"missouri", "MO"},
	{"montana", "MT"},
	{"nebraska", "NE"},
	{"nevada", "NV"},
	{"ohio", "OH"},
	{"oklahoma", "OK"},
	{"oregon", "OR"},
	{"pennsylvania", "PA"},
	{"tennessee", "TN"},
	{"texas", "TX"},
	{"utah", "UT"},
	{"vermont", "VT"},
	{"virginia", "VA"},
	{"washington", "WA"},
	{"wisconsin", "WI"},
	{"wyoming", "WY"},
}

// stateAbbrPattern matches an uppercase two-letter postal code on word
// boundaries. The match is deliberately case-sensitive: lowercase
// two-letter words collide with common English ("in", "or", "me", "ok",
// "hi", "de").
var stateAbbrPattern = regexp.MustCompile(`\b(A[LKZR]|C[AOT]|D[EC]|FL|GA|HI|I[DLNA]|K[SY]|LA|M[EDAINSOT]|N[EVHJMYCD]|O[HKR]|PA|RI|S[CD]|T[NX]|UT|V[TA]|W[AVIY])\b`)

// cityStates resolves well-known city mentions to a state when neither
// a state name nor an abbreviation appears. Ordered, first match wins.
var cityStates = []stateEntry{
	{"new york city", "NY"},
	{"san antonio", "TX"},
	{"san francisco", "CA"},
	{"san diego", "CA"},
	{"san jose", "CA"},
	{"los angeles", "CA"},
	{"las vegas", "NV"},
	{"houston", "TX"},
	{"dallas", "TX"},
	{"austin", "TX"},
	{"el paso", "TX"},
	{"nyc", "NY"},
	{"brooklyn", "NY"},
	{"chicago", "IL"},
	{"philadelphia", "PA"},
	{"pittsburgh", "PA"},
	{"phoenix", "AZ"},
	{"seattle", "WA"},
	{"boston", "MA"},
	{"atlanta", "GA"},
	{"miami", "FL"},
	{"orlando", "FL"},
	{"tampa", "FL"},
	{"denver", "CO"},
	{"portland", "OR"},
	{"detroit", "MI"},
	{"minneapolis", "MN"},
	{"nashville", "TN"},
	{"charlotte", "NC"},
	{"baltimore", "MD"},
}

// majorRule maps a canonical major to its keyword synonyms.
// The list is ordered; the first category with any matching keyword wins.
type majorRule struct {
	canonical string
	re        *regexp.Regexp
}

var majorRules = []majorRule{
	{"Computer Science", regexp.MustCompile(`(?i)computer science|comp sci|\bcs\b|programming|software|coding`)},
	{"Engineering", regexp.MustCompile(`(?i)engineering|engineer|mechanical|electrical|aerospace`)},
	{"Business", regexp.MustCompile(`(?i)business|management|marketing|accounting|entrepreneur|\bmba\b`)},
	{"Nursing", regexp.MustCompile(`(?i)nursing|\bnurse\b`)},
	{"Biology", regexp.MustCompile(`(?i)biology|pre-?med\b|biomedical|life science`)},
	{"Psychology", regexp.MustCompile(`(?i)psychology|\bpsych\b|counseling|mental health`)},
	{"Education", regexp.MustCompile(`(?i)education|teaching|teacher`)},
	{"Art & Design", regexp.MustCompile(`(?i)\bart\b|graphic design|fine arts|illustration|animation`)},
	{"Communications", regexp.MustCompile(`(?i)communications?\b|journalism|media studies|public relations`)},
	{"Criminal Justice", regexp.MustCompile(`(?i)criminal justice|criminology|law enforcement|forensics`)},
	{"Mathematics", regexp.MustCompile(`(?i)math(ematics)?\b|statistics|actuarial`)},
	{"Political Science", regexp.MustCompile(`(?i)political science|poli sci|\bpolitics\b|international relations`)},
}

// budgetRules classify affordability cues. Ordered, mutually exclusive,
// first matching class wins; no match leaves the budget unset.
var budgetRules = []valueRule{
	{regexp.MustCompile(`(?i)cheap|affordable|on a budget|budget-friendly|tight budget|low cost|low-cost|inexpensive|can'?t afford|free tuition|community college`), string(profile.BudgetLow)},
	{regexp.MustCompile(`(?i)moderate|mid-range|mid range|reasonable|average cost|state school`), string(profile.BudgetMedium)},
	{regexp.MustCompile(`(?i)expensive|private school|\bivy\b|elite|prestigious|money (is|is not|isn'?t) (not )?an issue|price is no object|no budget limit`), string(profile.BudgetHigh)},
}

// School-type cue patterns. Community and technical cues map directly;
// university cues are refined by public/private sub-cues and default to
// both when ambiguous.
var (
	communityCuePattern  = regexp.MustCompile(`(?i)community college|2-year|two-year|2 year|associate'?s? degree`)
	universityCuePattern = regexp.MustCompile(`(?i)university|4-year|four-year|4 year|bachelor`)
	publicCuePattern     = regexp.MustCompile(`(?i)\bpublic\b|state university|state school`)
	privateCuePattern    = regexp.MustCompile(`(?i)\bprivate\b`)
	technicalCuePattern  = regexp.MustCompile(`(?i)technical|trade school|vocational|tech school`)
)

// demographicRules accumulate: any subset may match and all matches are
// unioned into the profile's demographics set.
var demographicRules = []valueRule{
	{regexp.MustCompile(`(?i)first[- ]generation|first[- ]gen\b|first in my family`), profile.TagFirstGeneration},
	{regexp.MustCompile(`(?i)\bmilitary\b|\bveteran\b|\barmy\b|\bnavy\b|\bmarines?\b|air force|national guard|gi bill`), profile.TagMilitary},
	{regexp.MustCompile(`(?i)international student|student visa|\bf-?1 visa\b|from (abroad|another country|overseas)`), profile.TagInternational},
	{regexp.MustCompile(`(?i)\btransfer(ring)?\b`), profile.TagTransfer},
	{regexp.MustCompile(`(?i)non-?traditional|going back to school|returning (to school|student)|adult learner|older student`), profile.TagNonTraditional},
	{regexp.MustCompile(`(?i)low[- ]income|financial hardship|can'?t afford|need-based|pell grant`), profile.TagLowIncome},
	{regexp.MustCompile(`(?i)disability|disabled|accommodations|\badhd\b|\bdyslexia\b`), profile.TagDisability},
}

// Package research gathers short, cited notes about candidate colleges
// from their public websites. Research is strictly best-effort: every
// failure degrades to "no note", never to an error the advisee sees.
package research

import (
	"strings"

	"github.com/eduguide/advisor/internal/catalog"
)

// MaxTargets bounds how many colleges one request researches.
const MaxTargets = 2

// genericAffixes are name parts that don't identify a school on their own.
var genericAffixes = []string{
	"community college",
	"technical college",
	"university",
	"college",
	"institute",
}

// aliasStopwords are skipped when building an acronym from a name.
var aliasStopwords = map[string]bool{
	"of": true, "the": true, "at": true, "and": true, "in": true,
}

// Aliases returns the lowercase strings that count as a mention of the
// college in free text: the full name, an acronym of its significant
// words, the name with a generic affix stripped, and the city it sits
// in ("the school in Austin").
func Aliases(c catalog.College) []string {
	name := strings.ToLower(c.Name)
	aliases := []string{name}

	if acronym := acronymOf(name); len(acronym) >= 3 {
		aliases = append(aliases, acronym)
	}

	for _, affix := range genericAffixes {
		trimmed := strings.TrimSuffix(name, " "+affix)
		if trimmed != name && len(trimmed) >= 4 {
			aliases = append(aliases, trimmed)
			break
		}
	}

	if city := strings.ToLower(c.City); city != "" && city != name {
		aliases = append(aliases, city)
	}

	return aliases
}

// acronymOf builds an acronym from the significant words of a name.
func acronymOf(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		if aliasStopwords[word] {
			continue
		}
		b.WriteByte(word[0])
	}
	return b.String()
}

// FindTargets picks the colleges to research for one request: schools
// the message mentions by name, otherwise the top of the recommended
// list. Never more than MaxTargets.
func FindTargets(message string, recommended []catalog.College) []catalog.College {
	lower := strings.ToLower(message)

	var mentioned []catalog.College
	for _, c := range recommended {
		if mentionsCollege(lower, c) {
			mentioned = append(mentioned, c)
			if len(mentioned) == MaxTargets {
				return mentioned
			}
		}
	}
	if len(mentioned) > 0 {
		return mentioned
	}

	if len(recommended) > MaxTargets {
		recommended = recommended[:MaxTargets]
	}
	return recommended
}

func mentionsCollege(lowerMessage string, c catalog.College) bool {
	for _, alias := range Aliases(c) {
		// Short aliases (acronyms) need word boundaries: "mit" must not
		// match inside "admitted".
		if len(alias) < 6 {
			if containsWord(lowerMessage, alias) {
				return true
			}
			continue
		}
		if strings.Contains(lowerMessage, alias) {
			return true
		}
	}
	return false
}

func containsWord(text, word string) bool {
	for _, w := range strings.Fields(text) {
		if strings.Trim(w, ".,!?;:'\"()") == word {
			return true
		}
	}
	return false
}

// Package engine wires the advising pipeline: scope guard, attribute
// extraction, profile merge, intent classification, and response
// composition. The engine is stateless; callers hold the accumulated
// profile and persist the returned patch themselves.
package engine

import (
	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/composer"
	"github.com/eduguide/advisor/internal/extraction"
	"github.com/eduguide/advisor/internal/intent"
	"github.com/eduguide/advisor/internal/profile"
)

// Engine answers advisee messages against an injected catalog.
type Engine struct {
	composer *composer.Composer
}

// New builds an engine over the given catalog snapshot.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{composer: composer.New(cat)}
}

// Respond processes one advisee message. current is the profile
// accumulated over prior turns; userName is optional and only
// personalizes greetings. Out-of-scope messages short-circuit before
// extraction so nothing from them reaches the profile.
func (e *Engine) Respond(message string, current profile.Profile, userName string) composer.Response {
	if intent.OutOfScope(message) {
		return composer.Refusal()
	}

	patch := extraction.Extract(message, current)
	merged := profile.Merge(current, patch)

	return e.composer.Compose(composer.Input{
		Intent:   intent.Classify(message),
		Merged:   merged,
		Patch:    patch,
		UserName: userName,
	})
}

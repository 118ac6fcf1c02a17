package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutOfScope_SingleTokens(t *testing.T) {
	assert.True(t, OutOfScope("how do I trade forex"))
	assert.True(t, OutOfScope("what leverage should I use"))
	assert.True(t, OutOfScope("is XAUUSD going up"))
}

func TestOutOfScope_Phrases(t *testing.T) {
	assert.True(t, OutOfScope("where do I put my stop loss"))
	assert.True(t, OutOfScope("build me a trading bot"))
	assert.True(t, OutOfScope("I need help with a risk orchestrator kill switch"))
}

func TestOutOfScope_TokenRequiresWordBoundary(t *testing.T) {
	// "fx" must not fire inside larger words.
	assert.False(t, OutOfScope("I love visual effects and vfx-adjacent careers"))
	assert.False(t, OutOfScope("my options for college"))
}

func TestOutOfScope_CollegeTalkPasses(t *testing.T) {
	assert.False(t, OutOfScope("recommend a college for computer science"))
	assert.False(t, OutOfScope("what are my chances at a state school"))
}

func TestOutOfScope_TradingCueWinsOverCollegeWords(t *testing.T) {
	// A trading cue short-circuits even with college vocabulary present.
	assert.True(t, OutOfScope("what's a good stop loss for picking a college major"))
}

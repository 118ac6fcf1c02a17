package intent

import (
	"regexp"
	"strings"
)

// The scope guard detects requests that belong to an unrelated
// financial-trading domain and short-circuits the engine with a fixed
// refusal before extraction or classification run. It is a content
// filter, not a security boundary.

// tradingTokens are single-word cues matched on word boundaries.
var tradingTokens = []string{
	"forex",
	"fx",
	"xauusd",
	"eurusd",
	"scalping",
	"pips",
	"leverage",
	"shorting",
	"hedging",
	"crypto",
	"bitcoin",
}

// tradingPhrases are multi-word cues matched as substrings.
var tradingPhrases = []string{
	"stop loss",
	"take profit",
	"risk orchestrator",
	"kill switch",
	"day trading",
	"swing trading",
	"margin call",
	"candlestick chart",
	"technical analysis",
	"trading strategy",
	"trading bot",
	"order book",
}

var tradingTokenPattern *regexp.Regexp

func init() {
	tradingTokenPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(tradingTokens, "|") + `)\b`)
}

// OutOfScope reports whether the message belongs to the trading domain.
// A single trading cue is enough, regardless of any college-sounding
// words also present.
func OutOfScope(message string) bool {
	if tradingTokenPattern.MatchString(message) {
		return true
	}

	lower := strings.ToLower(message)
	for _, phrase := range tradingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

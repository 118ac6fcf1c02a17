package llm

import "strings"

// CleanJSONBlock strips the wrappers models put around JSON payloads:
// markdown code fences, conversational preamble, and trailing chatter.
// Plain JSON passes through untouched.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		// Drop a bare language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			first := text[:idx]
			if len(first) < 20 && !strings.ContainsAny(first, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Preamble before the payload: scan for the first balanced object
	// or array.
	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")
	switch {
	case objStart >= 0 && (arrStart < 0 || objStart < arrStart):
		if payload := extractBalanced(text[objStart:], '{', '}'); payload != "" {
			return payload
		}
	case arrStart >= 0:
		if payload := extractBalanced(text[arrStart:], '[', ']'); payload != "" {
			return payload
		}
	}

	return text
}

// extractBalanced returns the prefix of text forming one balanced
// open/close pair, respecting JSON string literals and escapes.
// Returns "" when text does not start with open or never balances.
func extractBalanced(text string, open, close byte) string {
	if text == "" || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			depth++
		case ch == close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}

package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from a model response. Gemini
// wraps JSON in ```json fences or surrounds it with conversational prose
// even when told not to; callers that unmarshal responses route them through
// here first. Input with no recognizable JSON value comes back unchanged.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// A short first line without spaces is a language tag, not content.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	if objStart >= 0 && (arrStart < 0 || objStart < arrStart) {
		if obj := extractJSONObject(text[objStart:]); obj != "" {
			return obj
		}
	}
	if arrStart >= 0 {
		if arr := extractJSONArray(text[arrStart:]); arr != "" {
			return arr
		}
	}
	return text
}

// extractJSONObject returns the first balanced JSON object at the start of s,
// or "" when s does not begin one.
func extractJSONObject(s string) string {
	return scanBalanced(s, '{', '}')
}

// extractJSONArray returns the first balanced JSON array at the start of s,
// or "" when s does not begin one.
func extractJSONArray(s string) string {
	return scanBalanced(s, '[', ']')
}

// scanBalanced walks s counting open/close delimiters, skipping delimiters
// inside string literals and after backslash escapes, and returns the prefix
// up to the matching close. An unbalanced or non-matching input yields "".
func scanBalanced(s string, open, close byte) string {
	if len(s) == 0 || s[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}

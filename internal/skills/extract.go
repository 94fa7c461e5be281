package skills

import (
	"regexp"
	"sort"
	"strings"
)

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}+#/.]+`)

// Extract scans a description text for vocabulary skills and returns the
// canonical names found, sorted. Matching is case-insensitive and anchored on
// token boundaries so "go" does not fire inside "mongodb". The function is
// pure: extracting twice from the same text yields the same set, and an empty
// vocabulary or empty text yields an empty set rather than an error.
func Extract(text string, vocab Vocabulary) []string {
	if text == "" || len(vocab) == 0 {
		return []string{}
	}

	padded := " " + normalizeText(text) + " "

	found := make(map[string]bool)
	for canonical, synonyms := range vocab {
		if containsForm(padded, canonical) {
			found[canonical] = true
			continue
		}
		for _, syn := range synonyms {
			if containsForm(padded, syn) {
				found[canonical] = true
				break
			}
		}
	}

	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// containsForm reports whether the padded, normalized text contains the
// surface form as a whole token sequence.
func containsForm(padded, form string) bool {
	form = normalizeText(form)
	if form == "" {
		return false
	}
	return strings.Contains(padded, " "+form+" ")
}

// normalizeText lowercases and collapses everything except letters, digits,
// and the punctuation that appears inside skill names (+, #, /, .).
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

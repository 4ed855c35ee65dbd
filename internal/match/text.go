package match

import (
	"regexp"
	"sort"
	"strings"
)

var punctRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// Normalize replaces every character that is not a letter, digit or
// whitespace with a single space and lowercases the result.
func Normalize(text string) string {
	return strings.ToLower(punctRe.ReplaceAllString(text, " "))
}

// Tokenize returns the set of unique word tokens in text. Duplicates are
// collapsed and order is irrelevant; empty input yields an empty set.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	if text == "" {
		return tokens
	}
	for _, word := range strings.Fields(Normalize(text)) {
		tokens[word] = struct{}{}
	}
	return tokens
}

// intersect returns the tokens present in both sets, sorted alphabetically.
// The result is never nil so it serializes as [] rather than null.
func intersect(a, b map[string]struct{}) []string {
	matched := make([]string, 0)
	for token := range a {
		if _, ok := b[token]; ok {
			matched = append(matched, token)
		}
	}
	sort.Strings(matched)
	return matched
}

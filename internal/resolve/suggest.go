// Package resolve provides fuzzy matching of user input against the fixed
// vocabularies the API accepts (season names, weekdays, ranking types).
package resolve

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type lowerSource []string

func (s lowerSource) String(i int) string { return strings.ToLower(s[i]) }
func (s lowerSource) Len() int            { return len(s) }

// Match returns the candidate equal to input, ignoring case, or "" when
// none matches exactly.
func Match(input string, candidates []string) string {
	for _, c := range candidates {
		if strings.EqualFold(c, input) {
			return c
		}
	}
	return ""
}

// Suggest returns the candidate closest to input for a did-you-mean hint.
// An exact case-insensitive match wins outright; otherwise the best fuzzy
// match is returned. The second result is false when nothing is close.
func Suggest(input string, candidates []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" || len(candidates) == 0 {
		return "", false
	}

	if exact := Match(input, candidates); exact != "" {
		return exact, true
	}

	results := fuzzy.FindFrom(strings.ToLower(input), lowerSource(candidates))
	if len(results) == 0 {
		return "", false
	}
	return candidates[results[0].Index], true
}

// SuggestAll returns up to limit candidates ranked by closeness.
func SuggestAll(input string, candidates []string, limit int) []string {
	input = strings.TrimSpace(input)
	if input == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	results := fuzzy.FindFrom(strings.ToLower(input), lowerSource(candidates))
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = candidates[r.Index]
	}
	return out
}

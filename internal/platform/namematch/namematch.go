// Package namematch reconciles player names between independently-sourced
// lists that disagree on suffixes, punctuation, and word order.
package namematch

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultMinScore is the similarity cutoff below which a query is treated
// as unmatched.
const DefaultMinScore = 80

// Exactly one trailing generational suffix, preceded by whitespace.
var suffixPattern = regexp.MustCompile(`\s+(Jr\.|Sr\.|II|III)$`)

// StripSuffix removes a trailing generational suffix (Jr., Sr., II, III)
// and trims surrounding whitespace. Internal punctuation, accents, and
// hyphens are left untouched. Empty input yields "".
func StripSuffix(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	return strings.TrimSpace(suffixPattern.ReplaceAllString(name, ""))
}

// Clean is the comparison form of a name: suffix-stripped, lower-cased,
// trimmed. Both sides of any equality or similarity check must go through
// Clean, otherwise matches silently fail on case.
func Clean(name string) string {
	return strings.ToLower(StripSuffix(name))
}

// BestMatch scans candidates for the single highest token-sort-ratio score
// against query and returns the winner when its score reaches minScore.
// Ties keep the first candidate encountered. An empty candidate list or an
// empty query never matches. Candidates are compared as-is; callers are
// expected to pass already-cleaned strings.
func BestMatch(query string, candidates []string, minScore int) (string, int, bool) {
	if strings.TrimSpace(query) == "" || len(candidates) == 0 {
		return "", 0, false
	}

	best := ""
	bestScore := -1
	for _, candidate := range candidates {
		if candidate == query {
			// Equality short-circuits at 100 regardless of threshold.
			return candidate, 100, true
		}
		score := fuzzy.TokenSortRatio(query, candidate)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < minScore {
		return "", bestScore, false
	}
	return best, bestScore, true
}

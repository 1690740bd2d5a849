// Package suggest ranks candidate keys by how closely they resemble a key
// that could not be found, for "did you mean" hints.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultThreshold is the minimum similarity a candidate needs to be suggested.
const DefaultThreshold = 0.5

// Match is a candidate key together with its similarity score.
type Match struct {
	Key   string
	Score float64
}

// Closest returns up to limit candidates whose similarity to key is at least
// threshold, best first. Ties are broken alphabetically.
func Closest(key string, candidates []string, limit int, threshold float64) []Match {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(candidates))

	for _, c := range candidates {
		if c == key {
			continue
		}

		score := Similarity(key, c)
		if score < threshold {
			continue
		}

		matches = append(matches, Match{Key: c, Score: score})
	}

	slices.SortFunc(matches, func(a, b Match) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}

		return cmp.Compare(a.Key, b.Key)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

// Keys is Closest with the default threshold, returning only the key names.
func Keys(key string, candidates []string, limit int) []string {
	matches := Closest(key, candidates, limit, DefaultThreshold)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Key
	}

	return out
}

// Similarity scores two keys between 0 and 1 after normalizing them.
// 1.0 means equal after normalization.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	maxLen := max(len(na), len(nb))

	return 1.0 - float64(Levenshtein(na, nb))/float64(maxLen)
}

// Normalize case-folds a key and strips "_", "-" and spaces so that
// "log_level", "logLevel" and "Log-Level" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Levenshtein computes the edit distance between two strings using two rows
// of the dynamic programming matrix.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

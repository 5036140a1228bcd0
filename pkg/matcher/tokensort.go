package matcher

import (
	"math"
	"sort"
	"strings"
)

// TokenSortRatio scores the similarity of two strings from 0 to 100,
// insensitive to case, surrounding whitespace and word order. Both strings
// are tokenised on whitespace, the tokens sorted and rejoined, and the
// results compared with an edit-distance ratio.
func TokenSortRatio(a string, b string) int {
	return ratio(normalise(a), normalise(b))
}

func normalise(value string) string {
	tokens := strings.Fields(strings.ToLower(value))
	sort.Strings(tokens)

	return strings.Join(tokens, " ")
}

func ratio(a string, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	total := len(runesA) + len(runesB)
	if total == 0 {
		return 100
	}

	distance := editDistance(runesA, runesB)

	return int(math.Round(100 * float64(total-distance) / float64(total)))
}

// editDistance is Levenshtein with substitutions costing two, so a
// substitution is never cheaper than the delete+insert pair it replaces and
// the ratio degrades the same way for either edit.
func editDistance(a []rune, b []rune) int {
	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)

	for j := 0; j <= len(b); j += 1 {
		previous[j] = j
	}

	for i := 1; i <= len(a); i += 1 {
		current[0] = i

		for j := 1; j <= len(b); j += 1 {
			substitution := previous[j-1]
			if a[i-1] != b[j-1] {
				substitution += 2
			}

			deletion := previous[j] + 1
			insertion := current[j-1] + 1

			current[j] = min(substitution, min(deletion, insertion))
		}

		previous, current = current, previous
	}

	return previous[len(b)]
}

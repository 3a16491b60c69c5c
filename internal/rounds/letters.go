package rounds

import "strings"

// IsFormable reports whether word can be spelled from the available letters,
// consuming each letter at most once. Both sides are case-folded. A word
// with repeated letters is only formable when the pool holds at least that
// many copies — a plain membership check would get "apple" vs one 'p' wrong.
func IsFormable(word string, letters []string) bool {
	if word == "" {
		return false
	}

	counts := make(map[rune]int, len(letters))
	for _, l := range letters {
		for _, r := range strings.ToLower(l) {
			counts[r]++
		}
	}

	for _, r := range strings.ToLower(word) {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

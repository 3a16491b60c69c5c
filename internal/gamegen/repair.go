package gamegen

import (
	"strings"

	"github.com/adwitiya/lexio/internal/rounds"
)

// RepairPool normalizes a raw letter-pool payload in place:
//
//  1. drops any main or bonus word that is not formable from the letters
//  2. de-duplicates both sets case-insensitively, keeping first occurrence
//  3. removes bonus words that duplicate a main word
//
// The operation is idempotent: repairing an already-repaired pool is a no-op.
func RepairPool(p *rounds.WordPool) {
	p.MainWords = filterFormable(p.MainWords, p.Letters, nil)

	seen := make(map[string]bool, len(p.MainWords))
	for _, w := range p.MainWords {
		seen[strings.ToLower(w)] = true
	}
	p.BonusWords = filterFormable(p.BonusWords, p.Letters, seen)
}

// filterFormable keeps words formable from letters, skipping case-insensitive
// duplicates and anything already in exclude.
func filterFormable(words, letters []string, exclude map[string]bool) []string {
	kept := words[:0]
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		key := strings.ToLower(w)
		if key == "" || seen[key] || exclude[key] {
			continue
		}
		if !rounds.IsFormable(w, letters) {
			continue
		}
		seen[key] = true
		kept = append(kept, w)
	}
	return kept
}

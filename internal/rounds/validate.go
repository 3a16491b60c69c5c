package rounds

import (
	"fmt"
	"strings"
)

// ValidationError describes why a round failed structural validation.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("round %q: %s: %s", e.Kind, e.Field, e.Message)
}

func invalid(k Kind, field, msg string) *ValidationError {
	return &ValidationError{Kind: k, Field: field, Message: msg}
}

// Validate checks that the round's fields satisfy the contract for its kind:
// required fields present, distractor arrays of exactly three entries
// disjoint from the answer, and masked spelling forms that reconstruct the
// target word. The generation backend offers no schema-conformance
// guarantee, so every round passes through here before play.
func (r *Round) Validate() error {
	if r.Prompt == "" {
		return invalid(r.Kind, "displayPrompt", "missing")
	}

	switch r.Kind {
	case KindWordImageMatch:
		if r.Word == "" {
			return invalid(r.Kind, "word", "missing")
		}
		if r.ImageRef == "" {
			return invalid(r.Kind, "imageDataUri", "missing")
		}
		return checkDistractors(r.Kind, "distractorWords", r.DistractorWords, r.Word)

	case KindWordTranslationMatch:
		if r.Word == "" {
			return invalid(r.Kind, "word", "missing")
		}
		if r.Translation == "" {
			return invalid(r.Kind, "correctTranslation", "missing")
		}
		return checkDistractors(r.Kind, "distractorTranslations", r.DistractorTranslations, r.Translation)

	case KindSpellingCompletion:
		if r.Word == "" {
			return invalid(r.Kind, "word", "missing")
		}
		if r.MaskedWord == "" {
			return invalid(r.Kind, "promptWord", "missing")
		}
		if len(r.MissingLetters) == 0 {
			return invalid(r.Kind, "missingLetters", "missing")
		}
		return checkMask(r)

	case KindTraceOrType:
		if r.Word == "" {
			return invalid(r.Kind, "word", "missing")
		}
		return nil

	case KindTrueFalseChallenge:
		if r.Word == "" {
			return invalid(r.Kind, "word", "missing")
		}
		if r.Statement == "" {
			return invalid(r.Kind, "statement", "missing")
		}
		return nil

	case KindFormulaScramble:
		if r.Formula == "" {
			return invalid(r.Kind, "correctFormula", "missing")
		}
		if len(r.ScrambledParts) < 2 {
			return invalid(r.Kind, "scrambledParts", "needs at least 2 parts")
		}
		return nil

	case KindTimelineTeaser:
		if len(r.CorrectOrder) < 2 {
			return invalid(r.Kind, "correctOrder", "needs at least 2 items")
		}
		if len(r.ScrambledOrder) != len(r.CorrectOrder) {
			return invalid(r.Kind, "scrambledOrder", "length differs from correctOrder")
		}
		if !sameItems(r.CorrectOrder, r.ScrambledOrder) {
			return invalid(r.Kind, "scrambledOrder", "items differ from correctOrder")
		}
		return nil

	default:
		return invalid(r.Kind, Discriminant, "unknown mini-game kind")
	}
}

// checkDistractors requires exactly DistractorCount entries, all non-empty
// and none equal (case-insensitively) to the correct answer.
func checkDistractors(k Kind, field string, distractors []string, answer string) error {
	if len(distractors) != DistractorCount {
		return invalid(k, field, fmt.Sprintf("need exactly %d entries, got %d", DistractorCount, len(distractors)))
	}
	folded := strings.ToLower(strings.TrimSpace(answer))
	for _, d := range distractors {
		if strings.TrimSpace(d) == "" {
			return invalid(k, field, "contains an empty entry")
		}
		if strings.ToLower(strings.TrimSpace(d)) == folded {
			return invalid(k, field, "contains the correct answer")
		}
	}
	return nil
}

// checkMask verifies the masked form: same length as the word, one missing
// letter per blank, and visible letters plus missing letters reconstructing
// the word's letter multiset.
func checkMask(r *Round) error {
	word := []rune(strings.ToLower(r.Word))
	masked := []rune(strings.ToLower(r.MaskedWord))
	if len(masked) != len(word) {
		return invalid(r.Kind, "promptWord", "length differs from word")
	}

	counts := make(map[rune]int, len(word))
	for _, c := range word {
		counts[c]++
	}

	blanks := 0
	for i, c := range masked {
		if c == '_' {
			blanks++
			continue
		}
		if c != word[i] {
			return invalid(r.Kind, "promptWord", "visible letter does not match word")
		}
		counts[c]--
	}
	if blanks != len(r.MissingLetters) {
		return invalid(r.Kind, "missingLetters", "count differs from blanks in promptWord")
	}

	for _, l := range r.MissingLetters {
		for _, c := range strings.ToLower(l) {
			if counts[c] == 0 {
				return invalid(r.Kind, "missingLetters", "letters do not reconstruct the word")
			}
			counts[c]--
		}
	}
	for _, n := range counts {
		if n != 0 {
			return invalid(r.Kind, "missingLetters", "letters do not reconstruct the word")
		}
	}
	return nil
}

// sameItems reports whether b is a permutation of a, case-insensitively.
func sameItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[strings.ToLower(strings.TrimSpace(s))]++
	}
	for _, s := range b {
		key := strings.ToLower(strings.TrimSpace(s))
		if seen[key] == 0 {
			return false
		}
		seen[key]--
	}
	return true
}

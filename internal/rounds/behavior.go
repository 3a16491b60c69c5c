package rounds

import "strings"

// OrderSeparator joins an ordered submission (timeline rounds) into the
// single answer string passed to CheckAnswer.
const OrderSeparator = "\n"

// Behavior bundles everything the play loop needs to drive a round kind:
// how to judge a submission, what the canonical answer is, and whether the
// round needs an illustration resolved before play. New kinds are added
// here once instead of being switched on at every call site.
type Behavior struct {
	// Check judges a normalized submission against the round.
	Check func(r *Round, submission string) bool

	// Canonical returns the answer to surface on reveal.
	Canonical func(r *Round) string

	// NeedsImage marks kinds whose ImageRef must be resolved by the image
	// backend before the session is playable.
	NeedsImage bool
}

var behaviors = map[Kind]Behavior{
	KindWordImageMatch: {
		Check:      matchWord,
		Canonical:  func(r *Round) string { return r.Word },
		NeedsImage: true,
	},
	KindWordTranslationMatch: {
		Check:     func(r *Round, s string) bool { return Normalize(s) == Normalize(r.Translation) },
		Canonical: func(r *Round) string { return r.Translation },
	},
	KindSpellingCompletion: {
		Check:     matchWord,
		Canonical: func(r *Round) string { return r.Word },
	},
	KindTraceOrType: {
		Check:     matchWord,
		Canonical: func(r *Round) string { return r.Word },
	},
	KindTrueFalseChallenge: {
		Check: func(r *Round, s string) bool {
			switch Normalize(s) {
			case "true", "t":
				return r.IsCorrect
			case "false", "f":
				return !r.IsCorrect
			}
			return false
		},
		Canonical: func(r *Round) string {
			if r.IsCorrect {
				return "true"
			}
			return "false"
		},
	},
	KindFormulaScramble: {
		// The submission is the concatenation of the pieces the player
		// assembled; both sides are compared with all whitespace stripped.
		Check: func(r *Round, s string) bool {
			return stripSpace(strings.ToLower(s)) == stripSpace(strings.ToLower(r.Formula))
		},
		Canonical: func(r *Round) string { return r.Formula },
	},
	KindTimelineTeaser: {
		// The submission is the arranged sequence joined by OrderSeparator;
		// correct iff it matches CorrectOrder element for element.
		Check: func(r *Round, s string) bool {
			parts := strings.Split(s, OrderSeparator)
			if len(parts) != len(r.CorrectOrder) {
				return false
			}
			for i, p := range parts {
				if Normalize(p) != Normalize(r.CorrectOrder[i]) {
					return false
				}
			}
			return true
		},
		Canonical: func(r *Round) string { return strings.Join(r.CorrectOrder, " -> ") },
	},
}

// BehaviorFor returns the behavior entry for the kind.
func BehaviorFor(k Kind) (Behavior, bool) {
	b, ok := behaviors[k]
	return b, ok
}

// CheckAnswer judges a raw submission against the round. Unknown kinds are
// never correct.
func CheckAnswer(r *Round, submission string) bool {
	b, ok := behaviors[r.Kind]
	if !ok {
		return false
	}
	return b.Check(r, submission)
}

// CanonicalAnswer returns the answer revealed to the player on forfeit.
func CanonicalAnswer(r *Round) string {
	b, ok := behaviors[r.Kind]
	if !ok {
		return ""
	}
	return b.Canonical(r)
}

// Normalize trims surrounding whitespace and case-folds a submission.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func matchWord(r *Round, s string) bool {
	return Normalize(s) == Normalize(r.Word)
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

package rounds

// Kind identifies the mini-game variant of a round. It is the value of the
// discriminant field and is used for dispatch everywhere: schema validation,
// answer checking, and rendering.
type Kind string

const (
	KindWordImageMatch       Kind = "word-image-match"
	KindWordTranslationMatch Kind = "word-translation-match"
	KindSpellingCompletion   Kind = "spelling-completion"
	KindTraceOrType          Kind = "trace-or-type"
	KindTrueFalseChallenge   Kind = "true-false-challenge"
	KindFormulaScramble      Kind = "formula-scramble"
	KindTimelineTeaser       Kind = "timeline-teaser"
)

// Discriminant is the JSON field name that carries the Kind.
const Discriminant = "miniGameType"

// AllKinds returns the closed set of round kinds.
func AllKinds() []Kind {
	return []Kind{
		KindWordImageMatch,
		KindWordTranslationMatch,
		KindSpellingCompletion,
		KindTraceOrType,
		KindTrueFalseChallenge,
		KindFormulaScramble,
		KindTimelineTeaser,
	}
}

// DistractorCount is the required length of distractor arrays.
const DistractorCount = 3

// Round is one challenge within a session. It is a tagged union flattened
// into a single struct: Kind selects which fields are meaningful, and
// Validate enforces the per-kind field contract. Every variant carries
// enough to both render the challenge and deterministically judge an answer.
type Round struct {
	Kind Kind `json:"miniGameType"`

	// Word is the target term. Set for every kind except formula-scramble
	// and timeline-teaser.
	Word string `json:"word,omitempty"`

	// Prompt is the instruction line shown to the player.
	Prompt string `json:"displayPrompt"`

	// word-image-match. ImageRef holds either the unresolved placeholder
	// token emitted by the generation backend or, after image resolution,
	// a data URI.
	ImageRef        string   `json:"imageDataUri,omitempty"`
	DistractorWords []string `json:"distractorWords,omitempty"`

	// word-translation-match.
	Translation            string   `json:"correctTranslation,omitempty"`
	DistractorTranslations []string `json:"distractorTranslations,omitempty"`

	// spelling-completion. MaskedWord is Word with some letters replaced
	// by underscores; MissingLetters are the removed letters.
	MaskedWord     string   `json:"promptWord,omitempty"`
	MissingLetters []string `json:"missingLetters,omitempty"`
	DecoyLetters   []string `json:"decoyLetters,omitempty"`

	// true-false-challenge.
	Statement string `json:"statement,omitempty"`
	IsCorrect bool   `json:"isCorrect"`

	// formula-scramble.
	Formula        string   `json:"correctFormula,omitempty"`
	ScrambledParts []string `json:"scrambledParts,omitempty"`

	// timeline-teaser.
	CorrectOrder   []string `json:"correctOrder,omitempty"`
	ScrambledOrder []string `json:"scrambledOrder,omitempty"`
}

// Session is the sequential session payload: an ordered list of rounds
// played front to back. Immutable once generated.
type Session struct {
	Title    string  `json:"gameTitle"`
	GameType string  `json:"gameType"`
	Rounds   []Round `json:"gameData"`
}

// WordPool is the alternate payload for letter-pool games: the player forms
// words from a fixed letter multiset instead of answering discrete rounds.
type WordPool struct {
	Title    string   `json:"gameTitle"`
	GameType string   `json:"gameType"`
	Letters  []string `json:"letters"`

	// MainWords must all be found to complete the session; BonusWords score
	// a small flat bonus. After repair both are formable from Letters,
	// case-insensitively unique, and disjoint.
	MainWords  []string `json:"mainWords"`
	BonusWords []string `json:"bonusWords"`
}

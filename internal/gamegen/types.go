package gamegen

// Difficulty selects the vocabulary complexity tier for a session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three supported tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Game type names. These appear verbatim in prompts and stored sessions.
const (
	GamePersonalizedPractice = "Personalized Practice"
	GameFormulaScramble      = "Formula Scramble"
	GameCodeCompletion       = "Code Completion Challenge"
	GameTimelineTeaser       = "Timeline Teaser"
	GameWordGrid             = "Word Grid"
)

// Input carries everything the generator needs to build a session.
type Input struct {
	// DocumentText is the source text. Only the first MaxDocumentChars
	// characters are sent to the model.
	DocumentText string

	// DocumentCategory is the category assigned at upload time.
	DocumentCategory string

	// GameType is one of the catalog game names.
	GameType string

	// Difficulty is the requested tier.
	Difficulty Difficulty
}

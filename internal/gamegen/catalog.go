package gamegen

import "slices"

// GameInfo describes one playable game type.
type GameInfo struct {
	ID          string
	Name        string
	Description string
	Improves    []string

	// SupportedCategories limits the game to documents of these
	// categories. Empty means all categories are supported.
	SupportedCategories []string

	// Pool marks letter-pool games, which produce a word pool instead
	// of a sequence of rounds.
	Pool bool
}

var catalog = []GameInfo{
	{
		ID:          "game-1",
		Name:        GamePersonalizedPractice,
		Description: "A dynamic, 5-minute session with varied mini-games to rapidly boost vocabulary from your document.",
		Improves:    []string{"Recall", "Spelling", "Context"},
	},
	{
		ID:                  "game-2",
		Name:                GameFormulaScramble,
		Description:         "Unscramble key formulas and equations from your document. A great way to test your memory of core principles.",
		Improves:            []string{"Recall", "Logic", "Pattern Recognition"},
		SupportedCategories: []string{"Mathematics", "Science", "Engineering"},
	},
	{
		ID:                  "game-3",
		Name:                GameCodeCompletion,
		Description:         "Type the missing pieces of code snippets taken directly from your notes or files. Perfect for syntax practice.",
		Improves:            []string{"Spelling", "Syntax", "Memory"},
		SupportedCategories: []string{"Computer Science & Coding"},
	},
	{
		ID:                  "game-4",
		Name:                GameTimelineTeaser,
		Description:         "Place key events, dates, and figures in the correct chronological order based on your history text.",
		Improves:            []string{"Recall", "Sequencing", "History"},
		SupportedCategories: []string{"History & Social Science"},
	},
	{
		ID:          "game-5",
		Name:        GameWordGrid,
		Description: "Spell as many words as you can from a fixed pool of letters drawn from your document's key vocabulary.",
		Improves:    []string{"Spelling", "Vocabulary", "Speed"},
		Pool:        true,
	},
}

// Catalog returns all game types in display order.
func Catalog() []GameInfo {
	return slices.Clone(catalog)
}

// GameByName returns the catalog entry with the given name, or nil.
func GameByName(name string) *GameInfo {
	for i := range catalog {
		if catalog[i].Name == name {
			g := catalog[i]
			return &g
		}
	}
	return nil
}

// GamesForCategory returns the games playable for documents of the given
// category.
func GamesForCategory(category string) []GameInfo {
	var out []GameInfo
	for _, g := range catalog {
		if len(g.SupportedCategories) == 0 || slices.Contains(g.SupportedCategories, category) {
			out = append(out, g)
		}
	}
	return out
}

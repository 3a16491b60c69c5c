package gamegen

import "github.com/adwitiya/lexio/internal/llm"

// SessionSchema defines the JSON schema for sequential session generation.
// Rounds are a flattened union: miniGameType discriminates, and the
// per-kind structural validator enforces which fields must be present.
var SessionSchema = &llm.Schema{
	Name:        "game-session",
	Description: "A gamified learning session of mini-game rounds",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gameTitle": map[string]any{
				"type":        "string",
				"description": "A fun, encouraging title for this session",
			},
			"gameType": map[string]any{
				"type":        "string",
				"description": "The requested game type, echoed back",
			},
			"gameData": map[string]any{
				"type":        "array",
				"description": "5-10 mini-game rounds",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"miniGameType": map[string]any{
							"type": "string",
							"enum": []any{
								"word-image-match",
								"word-translation-match",
								"spelling-completion",
								"trace-or-type",
								"true-false-challenge",
								"formula-scramble",
								"timeline-teaser",
							},
							"description": "The type of this round",
						},
						"word": map[string]any{
							"type":        "string",
							"description": "The target word, where the round has one",
						},
						"displayPrompt": map[string]any{
							"type":        "string",
							"description": "The prompt shown to the player",
						},
						"imageDataUri": map[string]any{
							"type":        "string",
							"description": "word-image-match: the placeholder IMAGE_FOR_WORD_YourWord",
						},
						"distractorWords": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "word-image-match: exactly 3 incorrect options from the document",
						},
						"correctTranslation": map[string]any{
							"type":        "string",
							"description": "word-translation-match: the correct translation",
						},
						"distractorTranslations": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "word-translation-match: exactly 3 plausible but incorrect translations",
						},
						"promptWord": map[string]any{
							"type":        "string",
							"description": "spelling-completion: the word with removed letters shown as underscores",
						},
						"missingLetters": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "spelling-completion: the removed letters",
						},
						"decoyLetters": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "spelling-completion: plausible but incorrect letters",
						},
						"statement": map[string]any{
							"type":        "string",
							"description": "true-false-challenge: the statement being judged",
						},
						"isCorrect": map[string]any{
							"type":        "boolean",
							"description": "true-false-challenge: whether the statement is true",
						},
						"correctFormula": map[string]any{
							"type":        "string",
							"description": "formula-scramble: the correct, full formula",
						},
						"scrambledParts": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "formula-scramble: the formula's parts, shuffled",
						},
						"correctOrder": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "timeline-teaser: items in the correct chronological order",
						},
						"scrambledOrder": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "timeline-teaser: the same items, shuffled",
						},
					},
					"required": []any{"miniGameType", "displayPrompt"},
				},
			},
		},
		"required":             []any{"gameTitle", "gameType", "gameData"},
		"additionalProperties": false,
	},
}

// WordPoolSchema defines the JSON schema for letter-pool game generation.
var WordPoolSchema = &llm.Schema{
	Name:        "word-pool",
	Description: "A letter-pool spelling game built from a document's vocabulary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gameTitle": map[string]any{
				"type":        "string",
				"description": "A fun, encouraging title for this session",
			},
			"letters": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "6-9 single letters, repeats allowed",
			},
			"mainWords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "4-8 key document words spellable from the letters",
			},
			"bonusWords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Other valid words spellable from the letters",
			},
		},
		"required":             []any{"gameTitle", "letters", "mainWords", "bonusWords"},
		"additionalProperties": false,
	},
}

// HintSchema defines the JSON schema for hint generation.
var HintSchema = &llm.Schema{
	Name:        "game-hint",
	Description: "A hint for a word, grounded in the document context",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "A hint for the word that does not give away the answer",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

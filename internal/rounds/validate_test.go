package rounds

import "testing"

func validImageRound() Round {
	return Round{
		Kind:            KindWordImageMatch,
		Word:            "mitochondria",
		ImageRef:        "data:image/png;base64,xxxx",
		DistractorWords: []string{"nucleus", "ribosome", "membrane"},
		Prompt:          "Which word matches the image?",
	}
}

func validSpellingRound() Round {
	return Round{
		Kind:           KindSpellingCompletion,
		Word:           "osmosis",
		MaskedWord:     "_sm_sis",
		MissingLetters: []string{"o", "o"},
		DecoyLetters:   []string{"a", "e"},
		Prompt:         "Complete the spelling.",
	}
}

func TestValidateAcceptsWellFormedRounds(t *testing.T) {
	rounds := []Round{
		validImageRound(),
		validSpellingRound(),
		{
			Kind:                   KindWordTranslationMatch,
			Word:                   "gato",
			Translation:            "cat",
			DistractorTranslations: []string{"dog", "bird", "fish"},
			Prompt:                 "What is the correct translation?",
		},
		{Kind: KindTraceOrType, Word: "photosynthesis", Prompt: "Type the word."},
		{
			Kind:      KindTrueFalseChallenge,
			Word:      "photosynthesis",
			Statement: "Photosynthesis produces carbon dioxide.",
			IsCorrect: false,
			Prompt:    "True or False?",
		},
		{
			Kind:           KindFormulaScramble,
			Formula:        "E = m c^2",
			ScrambledParts: []string{"c^2", "E", "m", "="},
			Prompt:         "Unscramble the formula.",
		},
		{
			Kind:           KindTimelineTeaser,
			CorrectOrder:   []string{"Stone Age", "Roman Empire", "World War II"},
			ScrambledOrder: []string{"Roman Empire", "World War II", "Stone Age"},
			Prompt:         "Arrange the events in order.",
		},
	}

	for _, r := range rounds {
		if err := r.Validate(); err != nil {
			t.Fatalf("kind %s: unexpected validation error: %v", r.Kind, err)
		}
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Round)
		base   Round
	}{
		{"missing prompt", func(r *Round) { r.Prompt = "" }, validImageRound()},
		{"missing image ref", func(r *Round) { r.ImageRef = "" }, validImageRound()},
		{"two distractors", func(r *Round) { r.DistractorWords = r.DistractorWords[:2] }, validImageRound()},
		{"distractor equals answer", func(r *Round) { r.DistractorWords[1] = "Mitochondria" }, validImageRound()},
		{"mask length mismatch", func(r *Round) { r.MaskedWord = "_sm_si" }, validSpellingRound()},
		{"mask visible letter wrong", func(r *Round) { r.MaskedWord = "_sm_sus" }, validSpellingRound()},
		{"missing letters wrong count", func(r *Round) { r.MissingLetters = []string{"o"} }, validSpellingRound()},
		{"missing letters wrong letters", func(r *Round) { r.MissingLetters = []string{"x", "y"} }, validSpellingRound()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.base
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestValidateTimelinePermutation(t *testing.T) {
	r := Round{
		Kind:           KindTimelineTeaser,
		CorrectOrder:   []string{"a", "b", "c"},
		ScrambledOrder: []string{"c", "b", "x"},
		Prompt:         "Arrange.",
	}
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for scrambled order that is not a permutation")
	}
}

func TestValidateUnknownKind(t *testing.T) {
	r := Round{Kind: "word-search", Prompt: "Find the words."}
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

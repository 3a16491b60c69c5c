package gamegen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/adwitiya/lexio/internal/llm"
	"github.com/adwitiya/lexio/internal/rounds"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryDelay = 0
	return cfg
}

func testInput() Input {
	return Input{
		DocumentText:     "The mitochondria is the powerhouse of the cell. Photosynthesis converts light into energy.",
		DocumentCategory: "Science",
		GameType:         GamePersonalizedPractice,
		Difficulty:       DifficultyMedium,
	}
}

func sessionJSON(t *testing.T, s rounds.Session) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	return raw
}

func validSession() rounds.Session {
	return rounds.Session{
		Title:    "Biology Blitz",
		GameType: GamePersonalizedPractice,
		Rounds: []rounds.Round{
			{
				Kind:      rounds.KindTrueFalseChallenge,
				Word:      "photosynthesis",
				Statement: "Photosynthesis produces carbon dioxide.",
				IsCorrect: false,
				Prompt:    "True or False?",
			},
			{
				Kind:           rounds.KindSpellingCompletion,
				Word:           "cell",
				MaskedWord:     "c_ll",
				MissingLetters: []string{"e"},
				DecoyLetters:   []string{"a", "o"},
				Prompt:         "Complete the spelling.",
			},
			{
				Kind:   rounds.KindTraceOrType,
				Word:   "energy",
				Prompt: "Type the word.",
			},
		},
	}
}

func TestGenerateSession(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: sessionJSON(t, validSession()),
	})
	g := New(provider, &llm.MockImageProvider{}, testConfig())

	session, err := g.GenerateSession(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if session.Title != "Biology Blitz" {
		t.Errorf("title = %q", session.Title)
	}
	if len(session.Rounds) != 3 {
		t.Errorf("len(rounds) = %d, want 3", len(session.Rounds))
	}
	if provider.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", provider.CallCount())
	}
}

func TestGenerateSessionRetriesOnceThenSucceeds(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: sessionJSON(t, validSession())},
	)
	g := New(provider, &llm.MockImageProvider{}, testConfig())

	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }

	_, err := g.GenerateSession(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if provider.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", provider.CallCount())
	}
	if len(slept) != 1 {
		t.Errorf("sleeps = %d, want 1", len(slept))
	}
}

func TestGenerateSessionFailsAfterTwoAttempts(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: sessionJSON(t, validSession())},
	)
	g := New(provider, &llm.MockImageProvider{}, testConfig())
	g.sleep = func(time.Duration) {}

	_, err := g.GenerateSession(context.Background(), testInput())
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	// The player sees the overloaded message, never the backend error.
	if gerr.Message != OverloadedMessage {
		t.Errorf("message = %q", gerr.Message)
	}
	if !strings.Contains(err.Error(), "overloaded") {
		t.Errorf("error = %q", err.Error())
	}
	// Exactly two backend invocations; the third canned response stays unused.
	if provider.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", provider.CallCount())
	}
}

func TestGenerateSessionDropsInvalidRounds(t *testing.T) {
	s := validSession()
	// Wrong distractor count makes this round structurally invalid.
	s.Rounds = append(s.Rounds, rounds.Round{
		Kind:            rounds.KindWordImageMatch,
		Word:            "cell",
		ImageRef:        "IMAGE_FOR_WORD_cell",
		DistractorWords: []string{"leaf"},
		Prompt:          "Which word matches the image?",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: sessionJSON(t, s)})
	g := New(provider, &llm.MockImageProvider{}, testConfig())

	session, err := g.GenerateSession(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(session.Rounds) != 3 {
		t.Errorf("len(rounds) = %d, want 3 (invalid round dropped)", len(session.Rounds))
	}
	for _, r := range session.Rounds {
		if r.Kind == rounds.KindWordImageMatch {
			t.Error("invalid word-image-match round survived")
		}
	}
}

func TestGenerateSessionAllRoundsInvalidFails(t *testing.T) {
	s := rounds.Session{
		Title:    "Broken",
		GameType: GamePersonalizedPractice,
		Rounds: []rounds.Round{
			{Kind: rounds.KindTraceOrType, Prompt: "Type the word."}, // missing word
		},
	}
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: sessionJSON(t, s)},
		llm.MockResponse{Content: sessionJSON(t, s)},
	)
	g := New(provider, &llm.MockImageProvider{}, testConfig())
	g.sleep = func(time.Duration) {}

	_, err := g.GenerateSession(context.Background(), testInput())
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if provider.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", provider.CallCount())
	}
}

func TestGenerateSessionResolvesImages(t *testing.T) {
	s := validSession()
	s.Rounds = append(s.Rounds, rounds.Round{
		Kind:            rounds.KindWordImageMatch,
		Word:            "cell",
		ImageRef:        "IMAGE_FOR_WORD_cell",
		DistractorWords: []string{"leaf", "root", "stem"},
		Prompt:          "Which word matches the image?",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: sessionJSON(t, s)})
	images := &llm.MockImageProvider{Ref: "data:image/png;base64,abc"}
	g := New(provider, images, testConfig())

	session, err := g.GenerateSession(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if images.ImageCallCount() != 1 {
		t.Errorf("image calls = %d, want 1", images.ImageCallCount())
	}
	last := session.Rounds[len(session.Rounds)-1]
	if last.ImageRef != "data:image/png;base64,abc" {
		t.Errorf("image ref = %q", last.ImageRef)
	}
	if len(images.Prompts) != 1 || !strings.Contains(images.Prompts[0], "cell") {
		t.Errorf("image prompt = %v", images.Prompts)
	}
}

func TestGenerateSessionImageFailureFailsGeneration(t *testing.T) {
	s := validSession()
	s.Rounds = append(s.Rounds, rounds.Round{
		Kind:            rounds.KindWordImageMatch,
		Word:            "cell",
		ImageRef:        "IMAGE_FOR_WORD_cell",
		DistractorWords: []string{"leaf", "root", "stem"},
		Prompt:          "Which word matches the image?",
	})
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: sessionJSON(t, s)},
		llm.MockResponse{Content: sessionJSON(t, s)},
	)
	images := &llm.MockImageProvider{Err: errors.New("image backend down")}
	g := New(provider, images, testConfig())
	g.sleep = func(time.Duration) {}

	_, err := g.GenerateSession(context.Background(), testInput())
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	var ierr *ImageError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected wrapped ImageError, got %v", err)
	}
	if ierr.Word != "cell" {
		t.Errorf("image error word = %q", ierr.Word)
	}
}

func TestGenerateSessionSkipsImageRoundsWithoutProvider(t *testing.T) {
	s := validSession()
	s.Rounds = append(s.Rounds, rounds.Round{
		Kind:            rounds.KindWordImageMatch,
		Word:            "cell",
		ImageRef:        "IMAGE_FOR_WORD_cell",
		DistractorWords: []string{"leaf", "root", "stem"},
		Prompt:          "Which word matches the image?",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: sessionJSON(t, s)})
	g := New(provider, nil, testConfig())

	session, err := g.GenerateSession(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(session.Rounds) != 3 {
		t.Errorf("len(rounds) = %d, want 3 (image round dropped)", len(session.Rounds))
	}
	for _, r := range session.Rounds {
		if r.Kind == rounds.KindWordImageMatch {
			t.Error("image round survived without an image provider")
		}
	}
	// Dropping image rounds is not a failed attempt.
	if provider.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", provider.CallCount())
	}
}

func TestGenerateSessionAllImageRoundsWithoutProviderFails(t *testing.T) {
	s := rounds.Session{
		Title:    "Pictures",
		GameType: GamePersonalizedPractice,
		Rounds: []rounds.Round{
			{
				Kind:            rounds.KindWordImageMatch,
				Word:            "cell",
				ImageRef:        "IMAGE_FOR_WORD_cell",
				DistractorWords: []string{"leaf", "root", "stem"},
				Prompt:          "Which word matches the image?",
			},
		},
	}
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: sessionJSON(t, s)},
		llm.MockResponse{Content: sessionJSON(t, s)},
	)
	g := New(provider, nil, testConfig())
	g.sleep = func(time.Duration) {}

	_, err := g.GenerateSession(context.Background(), testInput())
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerateSessionTruncatesDocument(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: sessionJSON(t, validSession())})
	cfg := testConfig()
	cfg.MaxDocumentChars = 100
	g := New(provider, &llm.MockImageProvider{}, cfg)

	in := testInput()
	in.DocumentText = strings.Repeat("x", 500)
	if _, err := g.GenerateSession(context.Background(), in); err != nil {
		t.Fatalf("generate: %v", err)
	}

	sent := provider.Calls[0].Messages[0].Content
	// Count inside the document section only; the surrounding prompt text
	// contains an 'x' of its own.
	_, doc, ok := strings.Cut(sent, "Document text:\n")
	if !ok {
		t.Fatalf("message missing document section: %q", sent)
	}
	if strings.Count(doc, "x") != 100 {
		t.Errorf("document chars sent = %d, want 100", strings.Count(doc, "x"))
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	s := strings.Repeat("é", 60) // two bytes per rune
	got := truncate(s, 99)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated text is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("é", 49) {
		t.Errorf("len = %d, want 98 (backed off to the rune boundary)", len(got))
	}
	if truncate("ascii", 3) != "asc" {
		t.Errorf("ascii truncation changed")
	}
}

func TestGenerateSessionContextCancelled(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(provider, &llm.MockImageProvider{}, testConfig())
	g.sleep = func(time.Duration) {}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GenerateSession(ctx, testInput())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if provider.CallCount() != 1 {
		t.Errorf("call count = %d, want 1 (no retry after cancel)", provider.CallCount())
	}
}

func TestGeneratePool(t *testing.T) {
	raw := json.RawMessage(`{
		"gameTitle": "Letter Lab",
		"letters": ["c","a","t","s"],
		"mainWords": ["cats","cat","star"],
		"bonusWords": ["act","CAT"]
	}`)
	provider := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := New(provider, nil, testConfig())

	in := testInput()
	in.GameType = GameWordGrid
	pool, err := g.GeneratePool(context.Background(), in)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// "star" needs an 'r' that the pool does not contain; "CAT" duplicates
	// a main word case-insensitively.
	if want := []string{"cats", "cat"}; !equalStrings(pool.MainWords, want) {
		t.Errorf("main words = %v, want %v", pool.MainWords, want)
	}
	if want := []string{"act"}; !equalStrings(pool.BonusWords, want) {
		t.Errorf("bonus words = %v, want %v", pool.BonusWords, want)
	}
	if pool.GameType != GameWordGrid {
		t.Errorf("game type = %q", pool.GameType)
	}
}

func TestGeneratePoolNoFormableWordsFails(t *testing.T) {
	raw := json.RawMessage(`{
		"gameTitle": "Letter Lab",
		"letters": ["c","a","t"],
		"mainWords": ["zebra"],
		"bonusWords": []
	}`)
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: raw},
		llm.MockResponse{Content: raw},
	)
	g := New(provider, nil, testConfig())
	g.sleep = func(time.Duration) {}

	in := testInput()
	in.GameType = GameWordGrid
	_, err := g.GeneratePool(context.Background(), in)
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerateHint(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"It is the powerhouse of the cell."}`),
	})
	g := New(provider, nil, testConfig())

	hint, err := g.GenerateHint(context.Background(), "The mitochondria is the powerhouse of the cell.", "mitochondria")
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if hint != "It is the powerhouse of the cell." {
		t.Errorf("hint = %q", hint)
	}
}

func TestGenerateHintNoRetry(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: json.RawMessage(`{"hint":"unused"}`)},
	)
	g := New(provider, nil, testConfig())

	_, err := g.GenerateHint(context.Background(), "ctx", "word")
	var herr *HintError
	if !errors.As(err, &herr) {
		t.Fatalf("expected HintError, got %v", err)
	}
	if provider.CallCount() != 1 {
		t.Errorf("call count = %d, want 1 (hints never retry)", provider.CallCount())
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

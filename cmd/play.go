package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/adwitiya/lexio/internal/gamegen"
	"github.com/adwitiya/lexio/internal/llm"
	"github.com/adwitiya/lexio/internal/play"
	"github.com/adwitiya/lexio/internal/store"
	"github.com/adwitiya/lexio/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <doc-id>",
	Short: "Generate and play a session from a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().String("game", gamegen.GamePersonalizedPractice, "Game type to play")
	playCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, or hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	gameName, _ := cmd.Flags().GetString("game")
	difficulty := gamegen.Difficulty(mustGetString(cmd, "difficulty"))
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", difficulty)
	}
	game := gamegen.GameByName(gameName)
	if game == nil {
		return fmt.Errorf("unknown game %q: see lexio docs for the available games", gameName)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	doc, err := findDocument(cmd, st, args[0])
	if err != nil {
		return err
	}
	if !supportsCategory(game, doc.Category) {
		return fmt.Errorf("%s does not support %s documents", game.Name, doc.Category)
	}

	cfg, err := llm.ResolveConfig()
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	// The generator runs its own two-attempt loop, so it gets the provider
	// without the retry wrapper.
	provider, err := llm.NewLoggedProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	images, err := llm.NewImageProvider(ctx, cfg)
	if err != nil {
		fmt.Println("Image generation unavailable; image rounds will be skipped.")
		images = nil
	}

	gen := gamegen.New(provider, images, gamegen.DefaultConfig())
	in := gamegen.Input{
		DocumentText:     doc.Content,
		DocumentCategory: doc.Category,
		GameType:         game.Name,
		Difficulty:       difficulty,
	}

	fmt.Println("Generating your session...")

	notifier := tui.NewNotifier()
	opts := play.Options{
		SessionID:  uuid.New().String(),
		DocID:      doc.ID,
		Difficulty: string(difficulty),
		Recorder:   st.SessionRepo(),
		After:      notifier.After,
	}

	var ctrl *play.Controller
	if game.Pool {
		pool, err := gen.GeneratePool(ctx, in)
		if err != nil {
			return err
		}
		ctrl = play.NewPool(pool, opts)
	} else {
		session, err := gen.GenerateSession(ctx, in)
		if err != nil {
			return err
		}
		ctrl = play.NewSequential(session, opts)
	}
	ctrl.Start(ctx)

	hinter := func(ctx context.Context, docText, word string) (string, error) {
		return gen.GenerateHint(ctx, docText, word)
	}
	final, err := tui.Run(ctrl, doc.Content, hinter, notifier)
	if err != nil {
		return err
	}

	fmt.Printf("Final score: %d\n", final.Score)
	return nil
}

func supportsCategory(game *gamegen.GameInfo, category string) bool {
	if len(game.SupportedCategories) == 0 {
		return true
	}
	for _, c := range game.SupportedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// findDocument resolves a full document ID or a unique ID prefix.
func findDocument(cmd *cobra.Command, st *store.Store, id string) (*store.Document, error) {
	ctx := cmd.Context()
	repo := st.DocumentRepo()

	if _, err := uuid.Parse(id); err == nil {
		doc, err := repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			return doc, nil
		}
	}

	docs, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []*store.Document
	for _, d := range docs {
		if strings.HasPrefix(d.ID, id) {
			matches = append(matches, d)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no document found for %q", id)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("multiple documents match %q: use a longer prefix", id)
	}
}

func mustGetString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adwitiya/lexio/internal/docflow"
	"github.com/adwitiya/lexio/internal/gamegen"
	"github.com/adwitiya/lexio/internal/llm"
	"github.com/adwitiya/lexio/internal/rounds"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Preview a generated session for a document file (no database)",
	Long: `Generate a session straight from a file and print the rounds.

This is a stateless developer tool — nothing is stored and no session is
played. Useful for evaluating generation quality per category, game type,
and difficulty.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("game", gamegen.GamePersonalizedPractice, "Game type to generate")
	previewCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, or hard")
	previewCmd.Flags().String("category", "", "Document category (detected when empty)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	text := string(raw)

	gameName, _ := cmd.Flags().GetString("game")
	difficulty := gamegen.Difficulty(mustGetString(cmd, "difficulty"))
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", difficulty)
	}
	game := gamegen.GameByName(gameName)
	if game == nil {
		return fmt.Errorf("unknown game %q", gameName)
	}

	cfg, err := llm.ResolveConfig()
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	// No EventRepo — logging skipped for the stateless tool.
	provider, err := llm.NewLoggedProvider(ctx, cfg, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	category, _ := cmd.Flags().GetString("category")
	if category == "" {
		category, err = docflow.New(provider).Categorize(ctx, text)
		if err != nil {
			return fmt.Errorf("categorize document: %w", err)
		}
		fmt.Printf("Detected category: %s\n", category)
	}

	images, err := llm.NewImageProvider(ctx, cfg)
	if err != nil {
		images = nil
	}
	gen := gamegen.New(provider, images, gamegen.DefaultConfig())
	in := gamegen.Input{
		DocumentText:     text,
		DocumentCategory: category,
		GameType:         game.Name,
		Difficulty:       difficulty,
	}

	if game.Pool {
		pool, err := gen.GeneratePool(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s\n", pool.Title)
		fmt.Printf("Letters: %s\n", strings.ToUpper(strings.Join(pool.Letters, " ")))
		fmt.Printf("Main words: %s\n", strings.Join(pool.MainWords, ", "))
		fmt.Printf("Bonus words: %s\n", strings.Join(pool.BonusWords, ", "))
		return nil
	}

	session, err := gen.GenerateSession(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s (%d rounds)\n", session.Title, len(session.Rounds))
	for i, r := range session.Rounds {
		fmt.Printf("\n── Round %d/%d — %s ──\n", i+1, len(session.Rounds), r.Kind)
		fmt.Println(r.Prompt)
		printRound(r)
	}
	return nil
}

func printRound(r rounds.Round) {
	switch r.Kind {
	case rounds.KindWordImageMatch:
		fmt.Printf("  word: %s (image %d bytes)\n", r.Word, len(r.ImageRef))
		fmt.Printf("  distractors: %s\n", strings.Join(r.DistractorWords, ", "))
	case rounds.KindWordTranslationMatch:
		fmt.Printf("  %s -> %s\n", r.Word, r.Translation)
		fmt.Printf("  distractors: %s\n", strings.Join(r.DistractorTranslations, ", "))
	case rounds.KindSpellingCompletion:
		fmt.Printf("  %s (%s)\n", r.MaskedWord, r.Word)
		fmt.Printf("  letters: %s  decoys: %s\n",
			strings.Join(r.MissingLetters, " "), strings.Join(r.DecoyLetters, " "))
	case rounds.KindTraceOrType:
		fmt.Printf("  word: %s\n", r.Word)
	case rounds.KindTrueFalseChallenge:
		fmt.Printf("  %s (%t)\n", r.Statement, r.IsCorrect)
	case rounds.KindFormulaScramble:
		fmt.Printf("  formula: %s\n", r.Formula)
		fmt.Printf("  parts: %s\n", strings.Join(r.ScrambledParts, " | "))
	case rounds.KindTimelineTeaser:
		fmt.Printf("  order: %s\n", strings.Join(r.CorrectOrder, " -> "))
	}
}

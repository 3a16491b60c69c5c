package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/adwitiya/lexio/internal/docflow"
	"github.com/adwitiya/lexio/internal/llm"
	"github.com/adwitiya/lexio/internal/store"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Add a document to the library",
	Long: `Read a text file, check that it is suitable for game generation,
categorize it, and store it in the document library.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("title", "", "Document title (defaults to the file name)")
	uploadCmd.Flags().Bool("vocab", false, "Also print the extracted key vocabulary")
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	text := string(raw)

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, _, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	flows := docflow.New(provider)

	validation, err := flows.Validate(ctx, text)
	if err != nil {
		return fmt.Errorf("validate document: %w", err)
	}
	if !validation.Valid {
		return fmt.Errorf("document rejected: %s", validation.Reason)
	}

	category, err := flows.Categorize(ctx, text)
	if err != nil {
		return fmt.Errorf("categorize document: %w", err)
	}

	doc := &store.Document{
		ID:       uuid.New().String(),
		Title:    title,
		Content:  text,
		Category: category,
	}
	if err := st.DocumentRepo().Save(ctx, doc); err != nil {
		return err
	}

	fmt.Printf("Added %q (%s)\n", title, category)
	fmt.Printf("ID: %s\n", doc.ID)

	if showVocab, _ := cmd.Flags().GetBool("vocab"); showVocab {
		words, err := flows.ExtractVocabulary(ctx, text)
		if err != nil {
			fmt.Fprintln(os.Stderr, "vocabulary extraction failed:", err)
			return nil
		}
		fmt.Println("\nKey vocabulary:")
		for _, w := range words {
			fmt.Println("  -", w)
		}
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adwitiya/lexio/internal/gamegen"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage the document library",
	RunE:  runDocsList,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	RunE:  runDocsList,
}

var docsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsRm,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsRmCmd)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	docs, err := st.DocumentRepo().List(cmd.Context())
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("No documents yet. Add one with: lexio upload <file>")
		return nil
	}

	for _, d := range docs {
		fmt.Printf("%s  %-30s  %-28s  %s\n",
			d.ID[:8], truncateTitle(d.Title, 30), d.Category, d.CreatedAt.Format("2006-01-02"))
		var games []string
		for _, g := range gamegen.GamesForCategory(d.Category) {
			games = append(games, g.Name)
		}
		fmt.Printf("          games: %v\n", games)
	}
	return nil
}

func runDocsRm(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	doc, err := findDocument(cmd, st, args[0])
	if err != nil {
		return err
	}
	if err := st.DocumentRepo().Delete(cmd.Context(), doc.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %q\n", doc.Title)
	return nil
}

func truncateTitle(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play history and model usage",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()

	records, err := st.SessionRepo().List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No sessions played yet.")
	} else {
		fmt.Printf("Sessions (%d):\n", len(records))
		for _, r := range records {
			status := "abandoned mid-setup"
			if r.Completed {
				status = fmt.Sprintf("score %d (%s)", r.Score, r.TerminationReason)
			}
			fmt.Printf("  %s  %-24s %-8s %s\n",
				r.StartedAt.Format("2006-01-02 15:04"), r.GameType, r.Difficulty, status)
		}
	}

	stats, err := st.EventRepo().StatsByPurpose(ctx)
	if err != nil {
		return err
	}
	if len(stats) > 0 {
		fmt.Println("\nModel usage:")
		for _, s := range stats {
			fmt.Printf("  %-16s %4d requests (%d failed)  %d in / %d out tokens\n",
				s.Purpose, s.Requests, s.Failures, s.InputTokens, s.OutputTokens)
		}
	}
	return nil
}

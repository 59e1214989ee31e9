package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all checklists with result summaries",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, _, _, err := buildService()
	if err != nil {
		return err
	}

	records, err := svc.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("list checklists: %w", err)
	}

	cmd.Println("All A11Y Checklists")
	cmd.Println("===================")

	if len(records) == 0 {
		cmd.Println("No checklists found.")
		return nil
	}

	for _, rec := range records {
		summary := rec.Summarize()
		cmd.Printf("\n%s\n", rec.ComponentID)
		cmd.Printf("   Component: %s\n", rec.ComponentPath)
		cmd.Printf("   Updated: %s\n", rec.LastUpdated.Format(time.RFC3339))
		cmd.Printf("   Results: %d pass, %d fail, %d n/a, %d unknown\n",
			summary.Pass, summary.Fail, summary.NotApplicable, summary.Unknown)
	}
	return nil
}

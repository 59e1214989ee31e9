package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	failOnOutdated bool
	failOnFailing  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report outdated or failing checklists",
	Long: `Scans the project for checklist records, compares each stored content
hash against the current component source, and reports records that are
stale or carry failing results.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&failOnOutdated, "fail-on-outdated", false, "exit non-zero when outdated checklists are found")
	checkCmd.Flags().BoolVar(&failOnFailing, "fail-on-failing", true, "exit non-zero when failing checklists are found")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	svc, _, _, err := buildService()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	outdated, err := svc.Outdated(ctx)
	if err != nil {
		return fmt.Errorf("check outdated checklists: %w", err)
	}
	failing, err := svc.Failing(ctx)
	if err != nil {
		return fmt.Errorf("check failing checklists: %w", err)
	}

	cmd.Println("A11Y Checklist Report")
	cmd.Println("=====================")

	if len(outdated) > 0 {
		cmd.Println()
		cmd.Println("Outdated checklists:")
		for _, rec := range outdated {
			cmd.Printf("  - %s (%s)\n", rec.ComponentID, rec.ComponentPath)
		}
	}

	if len(failing) > 0 {
		cmd.Println()
		cmd.Println("Failing checklists:")
		for _, rec := range failing {
			items := rec.FailingItems()
			cmd.Printf("  - %s (%d failures)\n", rec.ComponentID, len(items))
			for _, item := range items {
				reason := item.Reason
				if reason == "" {
					reason = "no reason provided"
				}
				cmd.Printf("    * %s: %s\n", item.GuidelineID, reason)
			}
		}
	}

	if len(outdated) == 0 && len(failing) == 0 {
		cmd.Println()
		cmd.Println("All checklists are up to date and passing.")
	}

	if (failOnOutdated && len(outdated) > 0) || (failOnFailing && len(failing) > 0) {
		return errors.New("accessibility checklist policy violated")
	}
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"a11ycheck/internal/checklist/models"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("a11ycheck version %s\n", models.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

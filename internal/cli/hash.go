package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash [componentPath]",
	Short: "Print the content digest of a component source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	svc, _, _, err := buildService()
	if err != nil {
		return err
	}

	resp, err := svc.ComponentHash(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("compute component hash: %w", err)
	}

	if !resp.Exists {
		cmd.Printf("%s: source file not found\n", args[0])
		return nil
	}
	cmd.Println(resp.Hash)
	return nil
}

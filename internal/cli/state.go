package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/backupscope/internal/engine"
)

var stateCmd = &cobra.Command{
	Use:   "state <path>...",
	Short: "Show the effective state of paths",
	Long: `Resolve each path against the committed selection.

Paths may be relative to the current directory, absolute, or contain "..".
Paths that did not exist at the last commit resolve through their nearest
excluded ancestor, or to included when there is none.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		result, err := eng.State(context.Background(), &engine.StateRequest{
			CWD:   cwd,
			Paths: args,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		rows := make([]stateRow, len(result.States))
		for i, s := range result.States {
			rows[i] = stateRow{Path: s.Path, State: s.State}
		}
		PrintStateTable(cmd.OutOrStdout(), rows)
		return nil
	},
}

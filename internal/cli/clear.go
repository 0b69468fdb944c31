package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/backupscope/internal/engine"
)

var clearDryRun bool

// clearCmd drops the committed selection.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Include the whole tree again",
	Long: `Drop every stored exclusion and partial directory.

After clearing, every path resolves to included until the next commit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Clear(context.Background(), &engine.ClearRequest{DryRun: clearDryRun})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		out := cmd.OutOrStdout()
		msg := fmt.Sprintf("Cleared %s", PrintCount(result.Removed, "override", "overrides"))
		if result.DryRun {
			PrintWarning(out, "Dry run: would clear "+PrintCount(result.Removed, "override", "overrides"))
			return nil
		}
		PrintSuccess(out, msg)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearDryRun, "dry-run", false, "Show what would be cleared without clearing")
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/backupscope/internal/engine"
)

var commitDryRun bool

var commitCmd = &cobra.Command{
	Use:   "commit [file|-]",
	Short: "Commit a snapshot as the new selection",
	Long: `Read a snapshot and store the overrides it implies.

The snapshot is a JSON array of [path, state] records listing the whole tree
with every directory before its contents, as printed by 'backupscope scan'.
It is read from the named file, or from stdin when the argument is '-' or
omitted. A rejected snapshot leaves the previous selection in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSnapshot(cmd, args)
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Commit(context.Background(), &engine.CommitRequest{
			Snapshot: data,
			DryRun:   commitDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		out := cmd.OutOrStdout()
		if result.DryRun {
			PrintWarning(out, "Dry run: nothing was stored")
		} else {
			PrintSuccess(out, fmt.Sprintf("Committed %s", PrintCount(result.Entries, "entry", "entries")))
		}
		PrintLabelValueWithColor(out, "Excluded", PrintCount(len(result.Excluded), "path", "paths"), excludedColor)
		PrintList(out, result.Excluded, 2)
		PrintLabelValueWithColor(out, "Partial", PrintCount(len(result.Partial), "path", "paths"), partialColor)
		PrintList(out, result.Partial, 2)
		return nil
	},
}

func init() {
	commitCmd.Flags().BoolVar(&commitDryRun, "dry-run", false, "Compute the overrides without storing them")
}

// readSnapshot reads the snapshot named by args, defaulting to stdin.
func readSnapshot(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

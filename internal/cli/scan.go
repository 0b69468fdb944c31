package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/backupscope/internal/engine"
	"github.com/danieljhkim/backupscope/internal/scope"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Print the tree snapshot with current states",
	Long: `Walk the tree root and print every path with its current effective state.

The output is an ordered snapshot of [path, state] records. Edit the states and
feed it back to 'backupscope commit' to change the selection. States are written
as codes: 0 excluded, 1 included, 2 partial.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Scan(context.Background(), &engine.ScanRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		data, err := scope.EncodeSnapshot(result.Entries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

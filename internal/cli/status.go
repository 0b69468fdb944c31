package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/backupscope/internal/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the committed selection",
	Long:  `Display the tree root and every stored exclusion and partial directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Status(context.Background(), &engine.StatusRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		out := cmd.OutOrStdout()
		PrintSection(out, "Selection")
		PrintLabelValue(out, "Tree root", result.TreeRoot)
		PrintLabelValue(out, "Options file", result.OptionsFile)

		if len(result.Excluded) == 0 && len(result.Partial) == 0 {
			PrintEmptyState(out, "Nothing excluded; the whole tree is included.")
			return nil
		}
		PrintLabelValueWithColor(out, "Excluded", PrintCount(len(result.Excluded), "path", "paths"), excludedColor)
		PrintList(out, result.Excluded, 2)
		PrintLabelValueWithColor(out, "Partial", PrintCount(len(result.Partial), "path", "paths"), partialColor)
		PrintList(out, result.Partial, 2)
		return nil
	},
}

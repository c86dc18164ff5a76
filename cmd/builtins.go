package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/josephlewis42/myshell/commands"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		defer tw.Flush()

		for _, builtin := range commands.ListBuiltinCommands() {
			fmt.Fprintf(tw, "%s\t%s\n", builtin.Name, builtin.Short)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}

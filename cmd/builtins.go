package cmd

import (
	"fmt"

	"github.com/josephlewis42/minsh/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the commands the interpreter runs in-process.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the interpreter.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, b := range commands.DefaultRegistry().All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Name, b.Description)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}

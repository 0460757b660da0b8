package explain

import (
	"pwmeter/cmd/pwmeter/explain/criteria"
	"pwmeter/cmd/pwmeter/explain/exitcode"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(criteria.Command)
	Command.AddCommand(exitcode.Command)
}

var Command = &cobra.Command{
	Use:     "explain",
	Aliases: []string{"ex"},
	Short:   "Explains things",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

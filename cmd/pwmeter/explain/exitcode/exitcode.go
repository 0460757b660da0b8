package exitcode

import (
	"fmt"
	"pwmeter/internal/cli"
	"strconv"

	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:     "exitcode <exit-code>",
	Aliases: []string{"exit-code", "exit"},
	Short:   "Explains the provided exit code",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			cli.PrintBoxedErrorMessage(
				"We did not receive an exit code",
			)
			return cli.ErrorInvalidInput
		}
		exitCode, err := strconv.Atoi(args[0])
		if err != nil || exitCode < 0 {
			cli.PrintBoxedErrorMessage(
				"Exit code should be a positive number",
			)
			return fmt.Errorf("failed to parse exit code[%s]: %w", args[0], cli.ErrorInvalidInput)
		}
		table := cli.NewTable(cli.NewTableOpts{
			Headers: []string{"source", "is errored"},
			Rows: func(t *cli.Table) error {
				t.NewRow("generic", exitCode&cli.ExitCodeError > 0)
				t.NewRow("input data", exitCode&cli.ExitCodeInputError > 0)
				t.NewRow("password policy", exitCode&cli.ExitCodePolicyError > 0)
				t.NewRow("svc unavailable", exitCode&cli.ExitCodeServiceUnavailable > 0)
				return nil
			},
		})
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Println(table.GetString())
		return nil
	},
}

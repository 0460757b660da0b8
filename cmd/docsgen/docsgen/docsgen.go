package docsgen

import (
	"pwmeter/cmd/pwmeter"
	"pwmeter/internal/cli"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "docs-path",
		DefaultValue: "./docs/cli",
		Usage:        "defines the path to the documentation",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "docsgen",
	Short: "Generates the pwmeter CLI documentation in Markdown",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.GenerateDocs(pwmeter.Command, viper.GetString("docs-path"))
	},
}

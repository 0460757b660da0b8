package pwmeter

import (
	"fmt"
	"os"
	"pwmeter/cmd/pwmeter/check"
	"pwmeter/cmd/pwmeter/explain"
	"pwmeter/cmd/pwmeter/meter"
	"pwmeter/cmd/pwmeter/start"
	"pwmeter/internal/cli"
	"pwmeter/internal/common"
	"pwmeter/internal/config"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "config",
		Short:        'C',
		DefaultValue: "~/.pwmeter/config",
		Usage:        "Defines the location of the global configuration used",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: common.OutputText,
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(common.Outputs, ", ")),
		Type:         cli.FlagTypeString,
	},
}

var flags cli.Flags = cli.Flags{
	{
		Name:         "docs",
		DefaultValue: false,
		Usage:        "When this flag is specified, generates Markdown documentation for the CLI application",
		Type:         cli.FlagTypeBool,
	},
	{
		Name:         "docs-path",
		DefaultValue: "./docs/cli",
		Usage:        "Specifies the location to generate documentation in",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	cobra.AddTemplateFunc("prependText", func() string {
		return cli.Logo + "\n"
	})
	Command.SetHelpTemplate(`{{ prependText }}` + Command.HelpTemplate())
	Command.SetVersionTemplate(cli.Logo + "\n" + `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}` + "\n")

	Command.AddCommand(check.Command)
	Command.AddCommand(explain.Command)
	Command.AddCommand(meter.Command)
	Command.AddCommand(start.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)
	flags.AddToCommand(Command)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		flags.BindViper(Command)
		cli.InitLogging(viper.GetString("log-level"))
		configPath := viper.GetString("config")
		logrus.Debugf("using configuration at path[%s]", configPath)
		if err := config.LoadGlobal(configPath); err != nil {
			logrus.Warnf("failed to load configuration, defaults will be used: %s", err)
		}
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "pwmeter",
	Short:   "Rule-based password strength meter",
	Version: config.GetVersion(),
	Long:    "Scores passwords against a fixed set of rules and explains how to make them stronger",
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("docs") {
			return cli.GenerateDocs(cmd, viper.GetString("docs-path"))
		}
		return cmd.Help()
	},
}

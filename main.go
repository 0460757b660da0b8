package main

import (
	"os"
	"pwmeter/cmd/pwmeter"
	"pwmeter/internal/cli"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := pwmeter.Command.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(cli.GetExitCode(err))
	}
}

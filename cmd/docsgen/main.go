package main

import (
	"os"
	"pwmeter/cmd/docsgen/docsgen"
	"pwmeter/internal/cli"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := docsgen.Command.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(cli.GetExitCode(err))
	}
}

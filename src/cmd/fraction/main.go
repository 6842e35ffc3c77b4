package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"fraction/src/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("fraction")
		os.Exit(cli.GetExitCode(err))
	}
}

// Package main is the lobster command itself.
package main

import (
	"os"

	"github.com/lobster-robotics/common/cli"
	"github.com/lobster-robotics/common/logging"
)

func main() {
	logger := logging.NewWriterLogger("lobster", logging.INFO, os.Stderr)
	if err := cli.NewApp(os.Stdout, os.Stderr, logger).Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

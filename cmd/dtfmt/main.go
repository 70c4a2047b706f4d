package main

import (
	"os"

	"github.com/brandonbloom/dtfmt/internal/cli"
	"github.com/brandonbloom/dtfmt/internal/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		log := logging.New(os.Stderr)
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

// Command singlie drives the list container from the command line.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var debug = flag.Bool("debug", false, "log every step")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(Scenario), "")
	subcommands.Register(new(Build), "")
	subcommands.Register(new(Convert), "")

	flag.Parse()

	logrus.SetOutput(os.Stderr)
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}

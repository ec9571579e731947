package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/karlseguin/singlie"
	"github.com/sirupsen/logrus"
)

const unsetIndex = -1

// Build implements subcommands.Command for the "build" command.
type Build struct {
	topology string
	sep      string
	reverse  bool
	remove   int
	insertAt int
	insert   string
}

// Name implements subcommands.Command.Name.
func (*Build) Name() string {
	return "build"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Build) Synopsis() string {
	return "build a list from the arguments and print it"
}

// Usage implements subcommands.Command.Usage.
func (*Build) Usage() string {
	return "build [flags] <value>...\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (b *Build) SetFlags(f *flag.FlagSet) {
	f.StringVar(&b.topology, "topology", "linear", "list topology: linear or circular")
	f.StringVar(&b.sep, "sep", ",", "separator used when printing")
	f.BoolVar(&b.reverse, "reverse", false, "print the reversed list as well")
	f.IntVar(&b.remove, "remove", unsetIndex, "remove the value at this index")
	f.IntVar(&b.insertAt, "insert-at", unsetIndex, "index for -insert")
	f.StringVar(&b.insert, "insert", "", "value to insert at -insert-at")
}

// Execute implements subcommands.Command.Execute.
func (b *Build) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topology, err := singlie.ParseTopology(b.topology)
	if err != nil {
		logrus.WithError(err).Error("invalid -topology")
		return subcommands.ExitUsageError
	}

	l := singlie.New(topology, f.Args()...)
	logrus.WithFields(logrus.Fields{"topology": topology, "len": l.Len()}).Debug("built list")

	if b.insertAt != unsetIndex {
		if _, err := l.Insert(singlie.InsertOptions[string]{Values: []string{b.insert}, Index: b.insertAt}); err != nil {
			logrus.WithError(err).WithField("index", b.insertAt).Error("insert failed")
			return subcommands.ExitFailure
		}
	}
	if b.remove != unsetIndex {
		if _, err := l.Remove(b.remove); err != nil {
			logrus.WithError(err).WithField("index", b.remove).Error("remove failed")
			return subcommands.ExitFailure
		}
	}

	render("list", l, b.sep)
	if b.reverse {
		render("reversed", l.Reverse(), b.sep)
	}
	return subcommands.ExitSuccess
}

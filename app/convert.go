package main

import (
	"context"
	"flag"
	"slices"

	"github.com/google/subcommands"
	"github.com/karlseguin/singlie"
	"github.com/sirupsen/logrus"
)

// Convert implements subcommands.Command for the "convert" command.
type Convert struct {
	from string
}

// Name implements subcommands.Command.Name.
func (*Convert) Name() string {
	return "convert"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Convert) Synopsis() string {
	return "convert a list to the other topology and back"
}

// Usage implements subcommands.Command.Usage.
func (*Convert) Usage() string {
	return "convert [-from linear|circular] <value>...\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Convert) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "linear", "topology of the source list")
}

// Execute implements subcommands.Command.Execute.
func (c *Convert) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := singlie.ParseTopology(c.from)
	if err != nil {
		logrus.WithError(err).Error("invalid -from")
		return subcommands.ExitUsageError
	}

	source := singlie.New(from, f.Args()...)
	var converted, back *singlie.List[string]
	if from == singlie.Linear {
		converted = source.ToCircular()
		back = converted.ToLinear()
	} else {
		converted = source.ToLinear()
		back = converted.ToCircular()
	}

	render("source", source, " ")
	render("converted", converted, " ")
	render("back", back, " ")

	if !slices.Equal(source.ToSlice(), back.ToSlice()) {
		logrus.WithFields(logrus.Fields{"source": source.String(), "back": back.String()}).Error("round trip changed the values")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

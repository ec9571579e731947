package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/karlseguin/singlie"
	"github.com/sirupsen/logrus"
)

// Scenario implements subcommands.Command for the "scenario" command.
type Scenario struct {
	topology string
}

// Name implements subcommands.Command.Name.
func (*Scenario) Name() string {
	return "scenario"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Scenario) Synopsis() string {
	return "append, prepend, insert and remove on a fresh list, printing each step"
}

// Usage implements subcommands.Command.Usage.
func (*Scenario) Usage() string {
	return "scenario [-topology linear|circular]\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Scenario) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.topology, "topology", "circular", "list topology: linear or circular")
}

// Execute implements subcommands.Command.Execute.
func (s *Scenario) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topology, err := singlie.ParseTopology(s.topology)
	if err != nil {
		logrus.WithError(err).Error("invalid -topology")
		return subcommands.ExitUsageError
	}

	l := singlie.New[string](topology)
	l.Append("E")
	render("append", l, " ")
	if head := l.Head(); head.Next == head {
		logrus.Debug("single node links to itself")
	}

	l.Append("F", "G")
	render("append", l, " ")

	l.Prepend("B", "A")
	render("prepend", l, " ")

	if _, err := l.Insert(singlie.InsertOptions[string]{Values: []string{"D", "C", "X"}, Index: 2}); err != nil {
		logrus.WithError(err).Error("insert failed")
		return subcommands.ExitFailure
	}
	render("insert", l, " ")

	if _, err := l.Remove(2); err != nil {
		logrus.WithError(err).Error("remove failed")
		return subcommands.ExitFailure
	}
	render("remove", l, " ")

	render("reverse", l.Reverse(), " ")
	if topology == singlie.Circular {
		render("linear", l.ToLinear(), " ")
	} else {
		render("circular", l.ToCircular(), " ")
	}

	if _, err := singlie.New[string](topology).Get(0); err != nil {
		logrus.WithError(err).Debug("empty list rejects index 0")
	}
	return subcommands.ExitSuccess
}

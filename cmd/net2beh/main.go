// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Command net2beh reads a TIMENET description from standard input and
// writes its behavior automaton (§4.3) to standard output, as either a
// plain-text dump or a DOT digraph (§6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dalzilio/tippi/behavior"
	"github.com/dalzilio/tippi/internal/cliflags"
	"github.com/dalzilio/tippi/nets"
	"github.com/dalzilio/tippi/render"
	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := izerolog.L.New(
		izerolog.WithZerolog(zerolog.New(os.Stderr).With().Timestamp().Logger()),
		logiface.WithLevel[*izerolog.Event](logiface.LevelInformational),
	)

	fs := flag.NewFlagSet("net2beh", flag.ContinueOnError)
	var format cliflags.Format
	var showBoundViolations bool
	cliflags.RegisterFormat(fs, &format)
	cliflags.RegisterBool(fs, "b", "showBoundViolations", "route bound-violating successors to a singleton sink state", &showBoundViolations)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}

	net, err := nets.Parse(os.Stdin)
	if err != nil {
		log.Err().Err(err).Log("failed to parse net")
		return 1
	}
	max, err := net.Maximalize()
	if err != nil {
		log.Err().Err(err).Log("failed to build maximal net")
		return 1
	}

	g := behavior.Build(max, behavior.Options{ShowBoundViolations: showBoundViolations})
	log.Info().Int("states", g.Len()).Log("behavior automaton built")

	switch format {
	case cliflags.FormatDOT:
		err = render.Behavior(os.Stdout, g)
	case cliflags.FormatText:
		err = render.TextBehavior(os.Stdout, g)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		log.Err().Err(err).Log("failed to render behavior automaton")
		return 1
	}
	return 0
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Command net2cl reads a TIMENET description from standard input, builds
// its closure automaton (§4.4), runs the deadlock and unreachability
// reduction passes over it (§4.6, §4.7), and writes the result to standard
// output as either a plain-text dump or a DOT digraph (§6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dalzilio/tippi/closure"
	"github.com/dalzilio/tippi/internal/cliflags"
	"github.com/dalzilio/tippi/nets"
	"github.com/dalzilio/tippi/reduce"
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

	fs := flag.NewFlagSet("net2cl", flag.ContinueOnError)
	var format cliflags.Format
	var keepDeadlocks, hideEmptyState bool
	cliflags.RegisterFormat(fs, &format)
	cliflags.RegisterBool(fs, "d", "keepDeadlocks", "skip the deadlock and unreachability reduction passes", &keepDeadlocks)
	cliflags.RegisterBool(fs, "e", "hideEmptyState", "omit empty closure states and their edges from the dot rendering (the text format always lists them)", &hideEmptyState)
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

	g, err := closure.Build(max)
	if err != nil {
		log.Err().Err(err).Log("failed to build closure automaton")
		return 1
	}
	log.Info().Int("states", g.Len()).Log("closure automaton built")

	if !keepDeadlocks {
		stats := reduce.Reduce(g)
		log.Info().
			Int("deadlocksRemoved", stats.DeadlocksRemoved).
			Int("maxDeadlockDistance", stats.MaxDeadlockDistance).
			Int("unreachableRemoved", stats.UnreachableRemoved).
			Log("closure automaton reduced")
	}

	opts := render.ClosureOptions{HideEmptyState: hideEmptyState}
	switch format {
	case cliflags.FormatDOT:
		err = render.Closure(os.Stdout, g, opts)
	case cliflags.FormatText:
		err = render.TextClosure(os.Stdout, g)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		log.Err().Err(err).Log("failed to render closure automaton")
		return 1
	}
	return 0
}

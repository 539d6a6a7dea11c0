// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Command chksim reads two simple-automaton descriptions from standard
// input, separated by a second AUTOMATON marker (§6), and reports whether
// the first simulates the second.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dalzilio/tippi/internal/cliflags"
	"github.com/dalzilio/tippi/sim"
	"github.com/dalzilio/tippi/simple"
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

	fs := flag.NewFlagSet("chksim", flag.ContinueOnError)
	var weak bool
	cliflags.RegisterBool(fs, "w", "weak", "treat empty-label (tau) transitions as internal steps rather than an ordinary label", &weak)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}

	automata, err := simple.ParseAll(os.Stdin)
	if err != nil {
		log.Err().Err(err).Log("failed to parse input")
		return 1
	}
	if len(automata) != 2 {
		log.Err().Int("count", len(automata)).Log("expected exactly two AUTOMATON sections")
		return 1
	}
	a, b := automata[0], automata[1]
	if !a.HasInitial || !b.HasInitial {
		log.Err().Log("missing initial state in one of the operands")
		return 1
	}

	var result bool
	if weak {
		result = sim.Simulates[string, string](a, b)
	} else {
		result = sim.Simulates[string, string](strict{a}, strict{b})
	}

	log.Info().Str("relation", "A simulates B").Log(fmt.Sprintf("%v", result))
	fmt.Println(result)
	return 0
}

// strict wraps a *simple.Automaton so that its empty-label transitions are
// reported as ordinary labeled edges rather than tau-steps, giving chksim's
// -w/--weak flag an actual strict/weak distinction: without it, an
// empty-labelled transition in the input must be matched literally, not
// skipped over the way weak simulation skips tau.
type strict struct {
	*simple.Automaton
}

func (s strict) Edges(st string) []sim.Edge[string] {
	var out []sim.Edge[string]
	for _, e := range s.Transitions {
		if e.From == st {
			out = append(out, sim.Edge[string]{Label: e.Label, Tau: false, To: e.To})
		}
	}
	return out
}

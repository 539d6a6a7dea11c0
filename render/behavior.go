// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dalzilio/tippi/behavior"
)

// Behavior writes g as a DOT digraph, grounded on the original's
// Behavior2Dot: one ellipse node per NetState, double-circle (peripheries=2)
// for final states, a filled node for the bound-violation sink, and a
// dashed edge for any self-loop (the unit time step looping on a state with
// no time-enabled transition, for instance).
func Behavior(w io.Writer, g *behavior.Graph) error {
	bw := bufio.NewWriter(w)
	ids := assignIDs[behavior.Key, behavior.State, behavior.Edge](g)

	if _, err := fmt.Fprintln(bw, "digraph Behavior {"); err != nil {
		return err
	}
	for _, h := range g.States() {
		v := g.Value(h)
		if _, err := fmt.Fprintf(bw, "  %s [label=%s, shape=ellipse", ids[h], quote(g.Key(h).String())); err != nil {
			return err
		}
		if v.IsBoundViolation {
			if _, err := fmt.Fprint(bw, ", style=filled, fillcolor=lightgray"); err != nil {
				return err
			}
		}
		if v.IsFinal {
			if _, err := fmt.Fprint(bw, ", peripheries=2"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "];"); err != nil {
			return err
		}
	}
	for _, h := range g.States() {
		for _, eh := range g.Successors(h) {
			_, dst := g.EdgeEndpoints(eh)
			e := g.EdgeValue(eh)
			style := ""
			if dst == h {
				style = ", style=dashed"
			}
			if _, err := fmt.Fprintf(bw, "  %s -> %s [label=%s%s];\n", ids[h], ids[dst], quote(e.Label), style); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}
	return bw.Flush()
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dalzilio/tippi/closure"
)

// ClosureOptions configures Closure — net2cl's -e/--hideEmptyState flag
// (§6) maps directly onto HideEmptyState.
type ClosureOptions struct {
	HideEmptyState bool
}

// Closure writes g as a DOT digraph, grounded on the original's
// RenderClosureAutomaton: double-circle final states, a dashed self-loop
// edge, and the deadlock-distance annotation (§3, ClosureState.deadlock_distance)
// appended to any state with a nonzero DeadlockDistance. The reduce passes
// delete every state they mark, and net2cl's -d/--keepDeadlocks flag skips
// them altogether, so a graph rendered by net2cl carries no annotation.
func Closure(w io.Writer, g *closure.Graph, opts ClosureOptions) error {
	bw := bufio.NewWriter(w)
	ids := assignIDs[closure.Key, closure.State, closure.Edge](g)

	if _, err := fmt.Fprintln(bw, "digraph Closure {"); err != nil {
		return err
	}
	for _, h := range g.States() {
		v := g.Value(h)
		if opts.HideEmptyState && v.IsEmpty {
			continue
		}
		label := g.Key(h).String()
		if v.DeadlockDistance > 0 {
			label = fmt.Sprintf("%s [deadlock d=%d]", label, v.DeadlockDistance)
		}
		if _, err := fmt.Fprintf(bw, "  %s [label=%s, shape=ellipse", ids[h], quote(label)); err != nil {
			return err
		}
		switch {
		case v.IsBoundViolation:
			if _, err := fmt.Fprint(bw, ", style=filled, fillcolor=lightgray"); err != nil {
				return err
			}
		case v.IsEmpty:
			if _, err := fmt.Fprint(bw, ", style=dashed"); err != nil {
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
		if opts.HideEmptyState && g.Value(h).IsEmpty {
			continue
		}
		for _, eh := range g.Successors(h) {
			_, dst := g.EdgeEndpoints(eh)
			if opts.HideEmptyState && g.Value(dst).IsEmpty {
				continue
			}
			e := g.EdgeValue(eh)
			style := ""
			if dst == h {
				style = ", style=dashed"
			} else if e.Kind.IsPartnerAction() {
				style = ", color=gray40, fontcolor=gray40"
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

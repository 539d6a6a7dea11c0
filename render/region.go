// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dalzilio/tippi/region"
)

// Region writes g as a DOT digraph, grounded on the original's
// RenderRegionAutomaton: one node per region, labeled with its member
// count (no renderer in this package lists the members themselves),
// double-circle for a region containing a final closure state, and a
// dashed self-loop edge as in the other two renderers.
func Region(w io.Writer, g *region.Graph) error {
	bw := bufio.NewWriter(w)
	ids := assignIDs[region.Key, region.State, region.Edge](g)

	if _, err := fmt.Fprintln(bw, "digraph Region {"); err != nil {
		return err
	}
	for _, h := range g.States() {
		v := g.Value(h)
		key := g.Key(h)
		label := fmt.Sprintf("region (%d states)", len(key.Members))
		if _, err := fmt.Fprintf(bw, "  %s [label=%s, shape=box", ids[h], quote(label)); err != nil {
			return err
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

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package reduce implements the two fixed-point reduction passes run over a
// closure automaton after construction (§4.6, §4.7): marking and deleting
// deadlock states, then deleting whatever becomes unreachable as a result.
package reduce

import (
	"strconv"

	"github.com/dalzilio/tippi/autom"
	"github.com/dalzilio/tippi/closure"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// Stats summarizes one Reduce call, for the CLI's diagnostic logging
// (SPEC_FULL.md §7 — the ambient logging layer reports these counters rather
// than the library packages doing any logging of their own).
type Stats struct {
	DeadlocksRemoved    int
	MaxDeadlockDistance int
	UnreachableRemoved  int
}

// Reduce runs the deadlock fixed point (§4.6) followed by the unreachability
// pass (§4.7) over g, in place, and reports how much was removed.
func Reduce(g *closure.Graph) Stats {
	before := g.Len()
	maxDist := RemoveDeadlocks(g)
	afterDeadlocks := g.Len()
	unreachable := RemoveUnreachable(g)
	return Stats{
		DeadlocksRemoved:    before - afterDeadlocks,
		MaxDeadlockDistance: maxDist,
		UnreachableRemoved:  unreachable,
	}
}

// RemoveDeadlocks marks and deletes every deadlock ClosureState from g,
// following §4.6's algorithm: an initial scan finds every state whose
// is_deadlock predicate already holds with nothing yet marked, then each
// round considers only the predecessors of the previous round's newly marked
// states, evaluating the predicate against the marked set as it stood at the
// *start* of the round (never against partial results from the same round,
// which would make the result depend on map iteration order). It returns the
// highest distance assigned, or 0 if no state was ever marked.
//
// Self-loop edges are excluded entirely from pc/pdl/sdl/odl and from the
// total-outgoing-edge count: §4.6 states self-loops are "ignored when
// computing odl", and the base definition's own "every outgoing edge...loops
// back to itself [or targets empty/marked]" phrasing only makes sense if a
// self-loop can never by itself block a state from satisfying odl==total —
// excluding self-loops from both sides of that comparison is the reading
// that keeps the two clauses consistent with each other.
//
// A ClosureState routed to the shared bound-violation sink is treated like
// an empty state for the purposes of the "marked or empty" target tests:
// §4.6 does not mention the sink explicitly (it is a §4.4 concept), but a
// violation is exactly as much a dead end as "this action is impossible".
func RemoveDeadlocks(g *closure.Graph) int {
	marked := map[autom.Handle]bool{}

	var frontier []autom.Handle
	for _, h := range g.States() {
		if isDeadlock(g, h, marked) {
			frontier = append(frontier, h)
		}
	}
	if len(frontier) == 0 {
		return 0
	}

	iter := 1
	markAll(g, marked, frontier, iter)
	maxDist := iter

	for len(frontier) > 0 {
		iter++
		candidates := map[autom.Handle]bool{}
		for _, h := range frontier {
			for _, eh := range g.Predecessors(h) {
				src, _ := g.EdgeEndpoints(eh)
				if !marked[src] {
					candidates[src] = true
				}
			}
		}
		var next []autom.Handle
		for h := range candidates {
			if isDeadlock(g, h, marked) {
				next = append(next, h)
			}
		}
		if len(next) == 0 {
			break
		}
		markAll(g, marked, next, iter)
		maxDist = iter
		frontier = next
	}

	toDelete := make([]autom.Handle, 0, len(marked))
	for h := range marked {
		toDelete = append(toDelete, h)
	}
	g.DeleteStates(toDelete)
	return maxDist
}

func markAll(g *closure.Graph, marked map[autom.Handle]bool, hs []autom.Handle, dist int) {
	for _, h := range hs {
		marked[h] = true
		s := g.Value(h)
		s.DeadlockDistance = dist
		g.SetValue(h, s)
	}
}

// nonLoopEdges returns the outgoing edges of h that are not a self-loop.
func nonLoopEdges(g *closure.Graph, h autom.Handle) []autom.Handle {
	var out []autom.Handle
	for _, eh := range g.Successors(h) {
		if _, dst := g.EdgeEndpoints(eh); dst != h {
			out = append(out, eh)
		}
	}
	return out
}

// down reports whether dst counts as "marked or a dead end" for h's
// deadlock test.
func down(g *closure.Graph, marked map[autom.Handle]bool, dst autom.Handle) bool {
	if marked[dst] {
		return true
	}
	v := g.Value(dst)
	return v.IsEmpty || v.IsBoundViolation
}

func isDeadlock(g *closure.Graph, h autom.Handle, marked map[autom.Handle]bool) bool {
	v := g.Value(h)
	if v.IsFinal || v.IsEmpty || v.IsBoundViolation {
		return false
	}
	edges := nonLoopEdges(g, h)
	total := len(edges)
	if total == 0 {
		return true
	}

	var pc, pdl, odl int
	sdl := false
	for _, eh := range edges {
		e := g.EdgeValue(eh)
		_, dst := g.EdgeEndpoints(eh)
		d := down(g, marked, dst)
		if d {
			odl++
		}
		if e.Kind.IsPartnerAction() {
			pc++
			if d {
				pdl++
			}
		} else if marked[dst] {
			sdl = true
		}
	}
	return (pdl == pc && sdl) || (odl == total)
}

// RemoveUnreachable deletes every ClosureState not reachable, along directed
// edges, from the initial state. §4.7 specifies this as a backward
// preset-closure fixed point ("repeatedly drop states whose preset...lies
// entirely within the unreachable set"); we compute the logically equivalent
// forward reachable set from the initial state instead, with
// github.com/katalvlaran/lvlath/bfs.BFS driving the traversal (SPEC_FULL.md
// §9's own choice of substrate for this pass) — a state's entire non-loop
// preset lying in the unreachable set is just the backward restatement of
// "no predecessor of this state is itself reachable from the initial state",
// which forward BFS answers directly without needing the iterative
// preset-closure at all. The initial state is always reachable from itself,
// so it is never a candidate for deletion, matching §4.7's explicit carve-out.
func RemoveUnreachable(g *closure.Graph) int {
	h0, ok := g.Initial()
	if !ok {
		return 0
	}

	fg := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, h := range g.States() {
		_ = fg.AddVertex(vid(h))
	}
	for _, h := range g.States() {
		for _, eh := range g.Successors(h) {
			_, dst := g.EdgeEndpoints(eh)
			_, _ = fg.AddEdge(vid(h), vid(dst), 0)
		}
	}

	res, err := bfs.BFS(fg, vid(h0))
	if err != nil {
		panic("reduce: unreachability traversal failed: " + err.Error())
	}

	var drop []autom.Handle
	for _, h := range g.States() {
		if _, ok := res.Depth[vid(h)]; ok {
			s := g.Value(h)
			s.Reachable = true
			g.SetValue(h, s)
			continue
		}
		if h != h0 {
			drop = append(drop, h)
		}
	}
	g.DeleteStates(drop)
	return len(drop)
}

func vid(h autom.Handle) string {
	return strconv.Itoa(int(h))
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package region builds the region automaton (§4.5): it quotients the
// closure automaton by collapsing every maximal connected subgraph reachable
// through service-action or time edges, over non-empty closure states, into
// a single RegionState. Inter-region edges carry the partner actions that
// cross a region boundary.
package region

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dalzilio/tippi/autom"
	"github.com/dalzilio/tippi/closure"
	"github.com/katalvlaran/lvlath/core"
)

// Key is the find-or-create key of a region: the sorted set of member
// closure keys, joined into one canonical string — the same
// ordered-set-as-key discipline firing.Closure and nets.Marking already use.
type Key struct {
	Members []string
}

func (k Key) Compare(k2 Key) int {
	n := len(k.Members)
	if len(k2.Members) < n {
		n = len(k2.Members)
	}
	for i := 0; i < n; i++ {
		if d := strings.Compare(k.Members[i], k2.Members[i]); d != 0 {
			return d
		}
	}
	switch {
	case len(k.Members) < len(k2.Members):
		return -1
	case len(k.Members) > len(k2.Members):
		return +1
	default:
		return 0
	}
}

func (k Key) String() string {
	return strings.Join(k.Members, ";")
}

// State is the payload of a region-automaton node.
type State struct {
	IsFinal bool
}

// Edge is the payload of a region-automaton edge: always a partner action,
// since service/time edges are absorbed into the region they connect.
type Edge struct {
	Label string
}

// Graph is the concrete region automaton type.
type Graph = autom.Graph[Key, State, Edge]

// Build quotients cg into its region automaton, per §4.5. Empty and
// bound-violation closure states are excluded from every region (and from
// every inter-region edge's target) — they denote "no state here", not a
// point the service can actually be at.
func Build(cg *closure.Graph) *Graph {
	fg := floodGraph(cg)

	visited := map[autom.Handle]bool{}
	var regions [][]autom.Handle
	for _, h := range cg.States() {
		if visited[h] || excluded(cg, h) {
			continue
		}
		regions = append(regions, floodFill(fg, h, visited))
	}

	owner := map[autom.Handle]int{}
	for i, comp := range regions {
		for _, h := range comp {
			owner[h] = i
		}
	}

	g := autom.New[Key, State, Edge]()
	handles := make([]autom.Handle, len(regions))
	for i, comp := range regions {
		handles[i] = g.MustCreate(keyOf(cg, comp), stateOf(cg, comp))
	}
	if h0, ok := cg.Initial(); ok && !excluded(cg, h0) {
		g.SetInitial(handles[owner[h0]])
	}

	for i, comp := range regions {
		for _, h := range comp {
			for _, eh := range cg.Successors(h) {
				e := cg.EdgeValue(eh)
				if !e.Kind.IsPartnerAction() {
					continue
				}
				_, dst := cg.EdgeEndpoints(eh)
				if excluded(cg, dst) {
					continue
				}
				g.Connect(handles[i], handles[owner[dst]], e.Label, Edge{Label: e.Label})
			}
		}
	}
	return g
}

func excluded(cg *closure.Graph, h autom.Handle) bool {
	v := cg.Value(h)
	return v.IsEmpty || v.IsBoundViolation
}

// floodGraph builds an undirected lvlath core.Graph over cg's
// non-empty/non-violation closure states, with one edge per service-action
// or time edge of cg (in either direction, per §4.5's "incoming or outgoing
// edge"). Connected components of this graph are exactly the regions; loops
// and parallel edges are both expected (a final closure state commonly has
// a time self-loop, and two distinct service actions may connect the same
// pair of states), so both are explicitly permitted.
func floodGraph(cg *closure.Graph) *core.Graph {
	fg := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, h := range cg.States() {
		if excluded(cg, h) {
			continue
		}
		_ = fg.AddVertex(vertexID(h))
	}
	for _, h := range cg.States() {
		if excluded(cg, h) {
			continue
		}
		for _, eh := range cg.Successors(h) {
			e := cg.EdgeValue(eh)
			if !e.Kind.IsServiceAction() {
				continue
			}
			_, dst := cg.EdgeEndpoints(eh)
			if excluded(cg, dst) {
				continue
			}
			_, _ = fg.AddEdge(vertexID(h), vertexID(dst), 0)
		}
	}
	return fg
}

// floodFill returns the connected component of fg containing start, marking
// every member of it in visited. fg.Neighbors gives us the undirected
// adjacency directly, so the component search never needs to special-case
// edge direction the way the closure automaton itself does.
func floodFill(fg *core.Graph, start autom.Handle, visited map[autom.Handle]bool) []autom.Handle {
	queue := []autom.Handle{start}
	visited[start] = true
	var comp []autom.Handle
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		comp = append(comp, h)

		neighbors, err := fg.Neighbors(vertexID(h))
		if err != nil {
			continue
		}
		for _, e := range neighbors {
			other := e.To
			if other == vertexID(h) {
				other = e.From
			}
			nh := handleFromVertexID(other)
			if visited[nh] {
				continue
			}
			visited[nh] = true
			queue = append(queue, nh)
		}
	}
	return comp
}

func vertexID(h autom.Handle) string {
	return strconv.Itoa(int(h))
}

func handleFromVertexID(s string) autom.Handle {
	n, _ := strconv.Atoi(s)
	return autom.Handle(n)
}

func keyOf(cg *closure.Graph, comp []autom.Handle) Key {
	members := make([]string, len(comp))
	for i, h := range comp {
		members[i] = cg.Key(h).String()
	}
	sort.Strings(members)
	return Key{Members: members}
}

func stateOf(cg *closure.Graph, comp []autom.Handle) State {
	for _, h := range comp {
		if cg.Value(h).IsFinal {
			return State{IsFinal: true}
		}
	}
	return State{}
}

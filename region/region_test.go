// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package region

import (
	"testing"

	"github.com/dalzilio/tippi/autom"
	"github.com/dalzilio/tippi/closure"
	"github.com/dalzilio/tippi/firing"
	"github.com/dalzilio/tippi/nets"
	"github.com/stretchr/testify/require"
)

// state returns a single-state closure keyed by placing one token on place
// pl, distinct for every pl — enough to give four closure automaton nodes
// four distinct keys without needing a real net to generate them from.
func state(pl int) firing.Closure {
	s := nets.NetState{M: nets.Marking{{Pl: pl, Mult: 1}}}
	return firing.Closure{Seed: s, States: []nets.NetState{s}}
}

// buildFixture grounds spec.md §8 Scenario 6 directly in terms of the
// closure-automaton arena: c0 -1-> c1 -a!-> c2 -b?-> c3, where "1" and "a!"
// are service/time edges and "b?" is a partner edge.
func buildFixture(t *testing.T) (*closure.Graph, []autom.Handle) {
	t.Helper()
	g := autom.New[closure.Key, closure.State, closure.Edge]()
	h := make([]autom.Handle, 4)
	for i := range h {
		h[i] = g.MustCreate(closure.Key{Cl: state(i)}, closure.State{IsFinal: i == 3})
	}
	g.SetInitial(h[0])
	g.Connect(h[0], h[1], "1", closure.Edge{Label: "1", Kind: closure.Time})
	g.Connect(h[1], h[2], "a!", closure.Edge{Label: "a!", Kind: closure.OutputSend})
	g.Connect(h[2], h[3], "b?", closure.Edge{Label: "b?", Kind: closure.OutputRead})
	return g, h
}

func TestRegionQuotient(t *testing.T) {
	cg, h := buildFixture(t)
	rg := Build(cg)

	require.Equal(t, 2, rg.Len())

	r0, ok := rg.Initial()
	require.True(t, ok)
	require.False(t, rg.Value(r0).IsFinal)

	succ := rg.Successors(r0)
	require.Len(t, succ, 1)
	e := rg.EdgeValue(succ[0])
	require.Equal(t, "b?", e.Label)

	_, r1 := rg.EdgeEndpoints(succ[0])
	require.NotEqual(t, r0, r1)
	require.True(t, rg.Value(r1).IsFinal)

	// c0, c1, c2 collapse into r0; c3 is alone in r1.
	key0 := rg.Key(r0)
	require.Len(t, key0.Members, 3)
	require.Contains(t, key0.Members, cg.Key(h[0]).String())
	require.Contains(t, key0.Members, cg.Key(h[1]).String())
	require.Contains(t, key0.Members, cg.Key(h[2]).String())

	key1 := rg.Key(r1)
	require.Equal(t, []string{cg.Key(h[3]).String()}, key1.Members)
}

// TestEmptyAndViolationExcluded checks that neither the shared empty node
// nor the shared bound-violation sink is ever absorbed into a region, even
// when a service-action edge points at one.
func TestEmptyAndViolationExcluded(t *testing.T) {
	g := autom.New[closure.Key, closure.State, closure.Edge]()
	real := g.MustCreate(closure.Key{Cl: state(0)}, closure.State{})
	empty := g.MustCreate(closure.Key{Cl: firing.Closure{}}, closure.State{IsEmpty: true})
	viol := g.MustCreate(closure.Key{Violation: true}, closure.State{IsBoundViolation: true})
	g.SetInitial(real)
	g.Connect(real, empty, "a!", closure.Edge{Label: "a!", Kind: closure.OutputSend})
	g.Connect(real, viol, "1", closure.Edge{Label: "1", Kind: closure.Time})

	rg := Build(g)
	require.Equal(t, 1, rg.Len())
	r0, ok := rg.Initial()
	require.True(t, ok)
	require.Empty(t, rg.Successors(r0))
}

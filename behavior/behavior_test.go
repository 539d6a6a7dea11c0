// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package behavior

import (
	"strings"
	"testing"

	"github.com/dalzilio/tippi/nets"
	"github.com/stretchr/testify/require"
)

func mustMaximal(t *testing.T, src string) *nets.Net {
	t.Helper()
	n, err := nets.Parse(strings.NewReader(src))
	require.NoError(t, err)
	m, err := n.Maximalize()
	require.NoError(t, err)
	return m
}

// TestMinimalCycle grounds scenario 1 of spec.md §8: a place held at exactly
// one token forever, and a transition whose [2,3] interval lets it fire from
// two different clock values back to clock 0.
func TestMinimalCycle(t *testing.T) {
	net := mustMaximal(t, `
TIMENET
PLACE
  SAFE A;
MARKING A:1;
TRANSITION t1
  TIME 2,3;
  CONSUME A:1;
  PRODUCE A:1;
FINALMARKING A:0;
`)
	g := Build(net, Options{})
	require.Equal(t, 4, g.Len())

	edges := 0
	for _, h := range g.States() {
		edges += len(g.Successors(h))
	}
	require.Equal(t, 5, edges)

	for _, h := range g.States() {
		require.False(t, g.Value(h).IsFinal, "marking A:0 is never reached while A holds exactly one token")
	}
}

// TestInterfaceSend grounds scenario 2: an output place that the maximal
// transform turns into a companion "read" transition, producing an
// observable "a!"/"a?" pair of edges instead of a hidden tau move.
func TestInterfaceSend(t *testing.T) {
	net := mustMaximal(t, `
TIMENET
PLACE
  SAFE A, B, a;
OUTPUT a;
MARKING A:1;
TRANSITION t
  TIME 0,1;
  CONSUME A:1;
  PRODUCE B:1, a:1;
FINALMARKING B:1;
`)
	g := Build(net, Options{})

	h0, ok := g.Initial()
	require.True(t, ok)
	require.False(t, g.Value(h0).IsFinal)

	// Firing t ("a!") and, since t's [0,1] interval admits it, a unit time step.
	succ := g.Successors(h0)
	require.Len(t, succ, 2)
	require.Equal(t, "a!", g.EdgeValue(succ[0]).Label)

	_, mid := g.EdgeEndpoints(succ[0])
	require.Equal(t, g.Key(mid).State.M.Get(place(t, net, "a")), 1)

	// Firing the companion ("a?") and a time step looping back to mid.
	succ2 := g.Successors(mid)
	require.Len(t, succ2, 2)
	require.Equal(t, "a?", g.EdgeValue(succ2[0]).Label)

	_, fin := g.EdgeEndpoints(succ2[0])
	require.True(t, g.Value(fin).IsFinal)
}

// TestBoundViolationRouting grounds scenario 3: a transition that overproduces
// into a safe place either gets routed to the shared violation sink or
// silently suppressed, depending on Options.ShowBoundViolations.
func TestBoundViolationRouting(t *testing.T) {
	src := `
TIMENET
PLACE
  SAFE P;
MARKING P:1;
TRANSITION t
  TIME 0,0;
  PRODUCE P:1;
FINALMARKING P:2;
`
	withRouting := Build(mustMaximal(t, src), Options{ShowBoundViolations: true})
	require.Equal(t, 2, withRouting.Len())
	h0, _ := withRouting.Initial()
	succ := withRouting.Successors(h0)
	require.Len(t, succ, 1)
	_, sink := withRouting.EdgeEndpoints(succ[0])
	require.True(t, withRouting.Value(sink).IsBoundViolation)

	withoutRouting := Build(mustMaximal(t, src), Options{})
	require.Equal(t, 1, withoutRouting.Len())
}

func place(t *testing.T, net *nets.Net, name string) int {
	t.Helper()
	idx, ok := net.FindPlace(name)
	require.True(t, ok)
	return idx
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package closure

import (
	"strings"
	"testing"

	"github.com/dalzilio/tippi/autom"
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

// edgeByLabel returns the single outgoing edge of h labeled lbl, failing the
// test if there is none or more than one — Build adds one edge per
// observable transition (plus the unit time step) regardless of whether it
// is currently fireable, so tests must pick the edge out by label rather
// than assume a total Successors count.
func edgeByLabel(t *testing.T, g *Graph, h autom.Handle, lbl string) autom.Handle {
	t.Helper()
	var found autom.Handle
	n := 0
	for _, eh := range g.Successors(h) {
		if g.EdgeValue(eh).Label == lbl {
			found, n = eh, n+1
		}
	}
	require.Equal(t, 1, n, "expected exactly one %q edge out of %s", lbl, g.Key(h))
	return found
}

// TestInterfaceSend grounds scenario 2 of spec.md §8: the maximal net's
// companion transition for an output place gives a two-edge path from the
// initial closure to the accepting one, labeled with the observable "a!"
// (OutputSend, the service's own move) and "a?" (OutputRead, the partner's).
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
	g, err := Build(net)
	require.NoError(t, err)

	h0, ok := g.Initial()
	require.True(t, ok)
	require.False(t, g.Value(h0).IsFinal)

	e1 := edgeByLabel(t, g, h0, "a!")
	require.Equal(t, OutputSend, g.EdgeValue(e1).Kind)
	_, mid := g.EdgeEndpoints(e1)
	require.False(t, g.Value(mid).IsFinal)
	require.False(t, g.Value(mid).IsEmpty)

	e2 := edgeByLabel(t, g, mid, "a?")
	require.Equal(t, OutputRead, g.EdgeValue(e2).Kind)
	_, fin := g.EdgeEndpoints(e2)
	require.True(t, g.Value(fin).IsFinal)
}

// TestEmptyClosureIsDistinctFromViolation checks the §4.4 invariant that an
// observable action not currently fireable from any state in a closure
// produces a distinct "is_empty" node, separate from the shared
// bound-violation sink.
func TestEmptyClosureIsDistinctFromViolation(t *testing.T) {
	net := mustMaximal(t, `
TIMENET
PLACE
  SAFE A, a;
OUTPUT a;
MARKING A:0;
TRANSITION t
  CONSUME A:1;
  PRODUCE a:1;
FINALMARKING a:1;
`)
	g, err := Build(net)
	require.NoError(t, err)

	h0, ok := g.Initial()
	require.True(t, ok)

	e := edgeByLabel(t, g, h0, "a!")
	_, dst := g.EdgeEndpoints(e)
	st := g.Value(dst)
	require.True(t, st.IsEmpty)
	require.False(t, st.IsBoundViolation)
}

// TestMultipleInterfacesRejected grounds §4.4's MultipleInterfaces
// configuration error: a transition may not touch more than one interface
// place. Maximalize itself rejects it first, since it labels every
// transition (via nets.Net.LabelOf) up front — Build's own classifyAll pass
// only ever sees nets that already cleared that check, and exists as
// defense in depth for callers that build a maximal net some other way.
func TestMultipleInterfacesRejected(t *testing.T) {
	n, err := nets.Parse(strings.NewReader(`
TIMENET
PLACE
  SAFE a, b;
INPUT a;
OUTPUT b;
TRANSITION t
  CONSUME a:1;
  PRODUCE b:1;
`))
	require.NoError(t, err)
	_, err = n.Maximalize()
	require.ErrorIs(t, err, ErrMultipleInterfaces)
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dalzilio/tippi/behavior"
	"github.com/dalzilio/tippi/closure"
	"github.com/dalzilio/tippi/nets"
	"github.com/dalzilio/tippi/region"
	"github.com/dalzilio/tippi/simple"
	"github.com/stretchr/testify/require"
)

const src = `
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
`

func mustNet(t *testing.T) *nets.Net {
	t.Helper()
	n, err := nets.Parse(strings.NewReader(src))
	require.NoError(t, err)
	m, err := n.Maximalize()
	require.NoError(t, err)
	return m
}

func TestBehaviorDOT(t *testing.T) {
	net := mustNet(t)
	g := behavior.Build(net, behavior.Options{})

	var buf bytes.Buffer
	require.NoError(t, Behavior(&buf, g))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "digraph Behavior {"))
	require.Contains(t, out, "peripheries=2")
	require.Contains(t, out, "shape=ellipse")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}

func TestClosureDOT(t *testing.T) {
	net := mustNet(t)
	g, err := closure.Build(net)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Closure(&buf, g, ClosureOptions{}))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "digraph Closure {"))
	require.Contains(t, out, "a!")
}

func TestClosureDOTHidesEmptyState(t *testing.T) {
	net := mustNet(t)
	g, err := closure.Build(net)
	require.NoError(t, err)

	var shown, hidden bytes.Buffer
	require.NoError(t, Closure(&shown, g, ClosureOptions{}))
	require.NoError(t, Closure(&hidden, g, ClosureOptions{HideEmptyState: true}))
	require.Greater(t, len(shown.String()), len(hidden.String()))
}

func TestRegionDOT(t *testing.T) {
	net := mustNet(t)
	cg, err := closure.Build(net)
	require.NoError(t, err)
	rg := region.Build(cg)

	var buf bytes.Buffer
	require.NoError(t, Region(&buf, rg))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "digraph Region {"))
	require.Contains(t, out, "region (")
}

// TestTextClosureRoundTrips checks the plain-text dump of a closure
// automaton is itself valid simple-automaton input.
func TestTextClosureRoundTrips(t *testing.T) {
	net := mustNet(t)
	g, err := closure.Build(net)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, TextClosure(&buf, g))

	a, err := simple.Parse(&buf)
	require.NoError(t, err)
	require.True(t, a.HasInitial)
	require.Equal(t, g.Len(), len(a.States))
}

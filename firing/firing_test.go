// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package firing

import (
	"strings"
	"testing"

	"github.com/dalzilio/tippi/nets"
	"github.com/stretchr/testify/require"
)

const sampleNet = `
TIMENET
PLACE
  SAFE p1, p2, p3;
INPUT in1;
OUTPUT out1;
MARKING p1:1;
TRANSITION t1
  TIME 0,5;
  CONSUME p1:1, in1:1;
  PRODUCE p2:1;
TRANSITION tau
  CONSUME p2:1;
  PRODUCE p3:1;
FINALMARKING p3:1;
`

func mustParse(t *testing.T, src string) *nets.Net {
	t.Helper()
	n, err := nets.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return n
}

func TestInitialAndFireable(t *testing.T) {
	net := mustParse(t, sampleNet)
	s0 := Initial(net)
	require.True(t, s0.M.Equal(net.Initial))

	t1, ok := net.FindTransition("t1")
	require.True(t, ok)

	// t1 needs a token in the input place in1, which only the maximal net's
	// companion transition can provide; the raw net alone cannot fire it.
	require.False(t, IsFireable(net, s0, t1))
}

func TestFireAndClockReset(t *testing.T) {
	net := mustParse(t, sampleNet)
	max, err := net.Maximalize()
	require.NoError(t, err)

	s0 := Initial(max)
	send, ok := max.FindTransition("in1$send")
	require.True(t, ok)
	require.True(t, IsFireable(max, s0, send))

	s1 := Fire(max, s0, send)
	t1, ok := max.FindTransition("t1")
	require.True(t, ok)
	require.True(t, IsFireable(max, s1, t1))

	s2 := Fire(max, s1, t1)
	require.Equal(t, 1, s2.M.Get(mustPlace(t, max, "p2")))
	require.False(t, ViolatesBound(max, s2))
}

func TestFirePanicsWhenNotFireable(t *testing.T) {
	net := mustParse(t, sampleNet)
	s0 := Initial(net)
	t1, _ := net.FindTransition("t1")
	require.Panics(t, func() { Fire(net, s0, t1) })
}

func TestBuildClosure(t *testing.T) {
	net := mustParse(t, sampleNet)
	max, err := net.Maximalize()
	require.NoError(t, err)
	s0 := Initial(max)
	send, _ := max.FindTransition("in1$send")
	s1 := Fire(max, s0, send)

	cl := BuildClosure(max, s1)
	require.False(t, cl.ContainsLoop)
	require.False(t, cl.ContainsBoundViolation)
	require.True(t, cl.ContainsState(s1))
}

func mustPlace(t *testing.T, net *nets.Net, name string) int {
	t.Helper()
	idx, ok := net.FindPlace(name)
	require.True(t, ok)
	return idx
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// listAutomaton is the simplest possible Automaton: a fixed adjacency map,
// enough to state the fixtures below without reaching for package simple's
// textual format.
type listAutomaton[S comparable] struct {
	init  S
	edges map[S][]Edge[S]
}

func (a listAutomaton[S]) Init() S             { return a.init }
func (a listAutomaton[S]) Edges(s S) []Edge[S] { return a.edges[s] }

// TestSimulationPositive grounds spec.md §8 Scenario 4: A has states {0,1}
// with 0-a->1 and 0-b->0; B has the single state x with x-a->x. A simulates
// B because B's only edge, x-a->x, is matched by A's 0-a->1.
func TestSimulationPositive(t *testing.T) {
	a := listAutomaton[int]{
		init: 0,
		edges: map[int][]Edge[int]{
			0: {{Label: "a", To: 1}, {Label: "b", To: 0}},
			1: {},
		},
	}
	b := listAutomaton[string]{
		init: "x",
		edges: map[string][]Edge[string]{
			"x": {{Label: "a", To: "x"}},
		},
	}
	require.True(t, Simulates[int, string](a, b))
}

// TestSimulationNegativeAfterAddingC grounds the same scenario's negative
// half: adding x-c->c to B breaks simulation, since A has no "c" edge from
// any state reachable while tracking x.
func TestSimulationNegativeAfterAddingC(t *testing.T) {
	a := listAutomaton[int]{
		init: 0,
		edges: map[int][]Edge[int]{
			0: {{Label: "a", To: 1}, {Label: "b", To: 0}},
			1: {},
		},
	}
	b := listAutomaton[string]{
		init: "x",
		edges: map[string][]Edge[string]{
			"x": {{Label: "a", To: "x"}, {Label: "c", To: "x"}},
		},
	}
	require.False(t, Simulates[int, string](a, b))
}

// TestWeakSimulationViaTauPrefix checks that an "a" edge in B can be matched
// by an A-path that must first cross an internal (Tau) edge: A's only "a"
// edge hangs off state 1, reached from the initial state 0 by a single tau
// move.
func TestWeakSimulationViaTauPrefix(t *testing.T) {
	a := listAutomaton[int]{
		init: 0,
		edges: map[int][]Edge[int]{
			0: {{Tau: true, To: 1}},
			1: {{Label: "a", To: 1}},
		},
	}
	b := listAutomaton[string]{
		init: "x",
		edges: map[string][]Edge[string]{
			"x": {{Label: "a", To: "x"}},
		},
	}
	require.True(t, Simulates[int, string](a, b))
}

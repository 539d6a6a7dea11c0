// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package behavior builds the behavior automaton (§4.3): the full, explicit
// timed state graph of a net, reachable by firing and by unit time steps.
// It is the root-most consumer of package firing and the first automaton
// built on top of the generic arena in package autom.
package behavior

import (
	"github.com/dalzilio/tippi/autom"
	"github.com/dalzilio/tippi/firing"
	"github.com/dalzilio/tippi/nets"
)

// Key is the find-or-create key of a behavior-automaton state: either a real
// NetState, or the singleton bound-violation sink (Violation true, in which
// case State is the zero value and ignored). Violation sorts before every
// real state, per §3 ("Bound-violation state compares less than all real
// states").
type Key struct {
	Violation bool
	State     nets.NetState
}

// Compare gives Key the total order autom.Key requires.
func (k Key) Compare(k2 Key) int {
	if k.Violation != k2.Violation {
		if k.Violation {
			return -1
		}
		return +1
	}
	if k.Violation {
		return 0
	}
	return k.State.Compare(k2.State)
}

func (k Key) String() string {
	if k.Violation {
		return "<bound-violation>"
	}
	return k.State.String()
}

// State is the payload of a behavior-automaton node.
type State struct {
	IsFinal          bool
	IsBoundViolation bool
}

// Edge is the payload of a behavior-automaton edge: a transition's §4.1
// label, or "1" for a unit time step.
type Edge struct {
	Label string
}

// Graph is the concrete behavior automaton type.
type Graph = autom.Graph[Key, State, Edge]

// Options configures Build.
type Options struct {
	// ShowBoundViolations routes a bound-violating successor to a shared
	// singleton sink state instead of silently suppressing the edge
	// (§4.3 step 3, §6 net2beh's -b/--showBoundViolations flag).
	ShowBoundViolations bool
}

// Build constructs the behavior automaton of net by reachability from its
// initial NetState (§4.3): a single-threaded worklist fires every fireable
// transition and, when admitted, a unit time step, from every newly
// discovered state.
func Build(net *nets.Net, opts Options) *Graph {
	g := autom.New[Key, State, Edge]()

	s0 := firing.Initial(net)
	h0, _ := g.FindOrCreate(Key{State: s0}, func() State {
		return State{IsFinal: isFinal(net, s0)}
	})
	g.SetInitial(h0)

	worklist := []autom.Handle{h0}
	for len(worklist) > 0 {
		h := worklist[0]
		worklist = worklist[1:]

		k := g.Key(h)
		if k.Violation {
			continue
		}
		s := k.State

		for _, t := range firing.Fireable(net, s) {
			next := firing.Fire(net, s, t)
			worklist = connect(g, worklist, net, opts, h, next, net.Label[t])
		}
		if firing.CanStep(net, s) {
			next := firing.Step(net, s)
			worklist = connect(g, worklist, net, opts, h, next, "1")
		}
	}
	return g
}

// connect fires the (source, label) edge found during Build into next,
// find-or-creating the target state (or the shared violation sink) and
// appending it to the worklist when freshly created.
func connect(g *Graph, worklist []autom.Handle, net *nets.Net, opts Options, src autom.Handle, next nets.NetState, label string) []autom.Handle {
	if firing.ViolatesBound(net, next) {
		if !opts.ShowBoundViolations {
			return worklist
		}
		h, created := g.FindOrCreate(Key{Violation: true}, func() State {
			return State{IsBoundViolation: true}
		})
		g.Connect(src, h, label, Edge{Label: label})
		if created {
			worklist = append(worklist, h)
		}
		return worklist
	}
	h, created := g.FindOrCreate(Key{State: next}, func() State {
		return State{IsFinal: isFinal(net, next)}
	})
	g.Connect(src, h, label, Edge{Label: label})
	if created {
		worklist = append(worklist, h)
	}
	return worklist
}

func isFinal(net *nets.Net, s nets.NetState) bool {
	for _, m := range net.Final {
		if m.Equal(s.M) {
			return true
		}
	}
	return false
}

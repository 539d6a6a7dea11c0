// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package closure builds the closure automaton (§4.4): its nodes are
// tau-closures (firing.Closure values) and its edges are the net's
// observable (non-internal) actions plus the unit time step, with internal
// churn collapsed away by package firing's tau-closure construction.
package closure

import (
	"github.com/dalzilio/tippi/autom"
	"github.com/dalzilio/tippi/firing"
	"github.com/dalzilio/tippi/nets"
)

// ErrMultipleInterfaces re-exports nets.ErrMultipleInterfaces: a transition
// connected to more than one interface place is a configuration error
// (§4.4), detected once, up front, before any state is explored.
var ErrMultipleInterfaces = nets.ErrMultipleInterfaces

// Kind classifies a ClosureEdge (§3): Time is the unit time step; the other
// four mirror nets.Interface minus Internal, since an internal transition
// never survives as a closure edge — it is fired away inside the
// tau-closure that produced the edge's endpoints.
type Kind int

const (
	InputRead Kind = iota
	InputSend
	OutputRead
	OutputSend
	Time
)

func (k Kind) String() string {
	switch k {
	case InputRead:
		return "InputRead"
	case InputSend:
		return "InputSend"
	case OutputRead:
		return "OutputRead"
	case OutputSend:
		return "OutputSend"
	default:
		return "Time"
	}
}

// IsServiceAction reports whether k is a move the service itself makes
// (OutputSend, InputRead) or the unit time step, which the region automaton
// (package region) treats the same way when flood-filling a region (§4.5).
func (k Kind) IsServiceAction() bool {
	return k == InputRead || k == OutputSend || k == Time
}

// IsPartnerAction reports whether k is a move the environment makes
// (InputSend, OutputRead) — the only edges that cross a region boundary.
func (k Kind) IsPartnerAction() bool {
	return k == InputSend || k == OutputRead
}

func kindOf(role nets.Interface) Kind {
	switch role {
	case nets.InputRead:
		return InputRead
	case nets.InputSend:
		return InputSend
	case nets.OutputRead:
		return OutputRead
	case nets.OutputSend:
		return OutputSend
	default:
		panic("closure: kindOf called with an internal transition")
	}
}

// Key is the find-or-create key of a closure-automaton state: either a real
// tau-closure, or the singleton bound-violation sink (Violation true, Cl the
// zero value). Violation sorts before every real closure, mirroring
// package behavior's Key.
type Key struct {
	Violation bool
	Cl        firing.Closure
}

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
	return k.Cl.Compare(k2.Cl)
}

func (k Key) String() string {
	if k.Violation {
		return "<bound-violation>"
	}
	return k.Cl.String()
}

// State is the payload of a closure-automaton node. DeadlockDistance and
// Reachable are left at their zero values by Build; package reduce fills
// them in during the two reduction passes (§4.6, §4.7).
type State struct {
	IsFinal          bool
	IsEmpty          bool
	IsBoundViolation bool
	DeadlockDistance int
	Reachable        bool
}

// Edge is the payload of a closure-automaton edge.
type Edge struct {
	Label string
	Kind  Kind
}

// Graph is the concrete closure automaton type.
type Graph = autom.Graph[Key, State, Edge]

// Build constructs the closure automaton of net (which must already be the
// result of (*nets.Net).Maximalize — the closure automaton has no special
// casing for interface places of its own, exactly like package firing).
func Build(net *nets.Net) (*Graph, error) {
	roles, err := classifyAll(net)
	if err != nil {
		return nil, err
	}

	g := autom.New[Key, State, Edge]()
	s0 := firing.Initial(net)
	h0 := addClosure(g, net, firing.BuildClosure(net, s0))
	g.SetInitial(h0)

	worklist := []autom.Handle{h0}
	for len(worklist) > 0 {
		h := worklist[0]
		worklist = worklist[1:]

		k := g.Key(h)
		if k.Violation {
			continue
		}
		src := k.Cl

		for t, role := range roles {
			if role == nets.Internal {
				continue
			}
			var succ []nets.NetState
			for _, s := range src.States {
				if firing.IsFireable(net, s, t) {
					succ = append(succ, firing.Fire(net, s, t))
				}
			}
			cl := firing.BuildClosureSet(net, succ)
			worklist = connect(g, worklist, net, h, cl, net.Label[t], kindOf(role))
		}

		var stepped []nets.NetState
		for _, s := range src.States {
			if firing.CanStep(net, s) {
				stepped = append(stepped, firing.Step(net, s))
			}
		}
		cl := firing.BuildClosureSet(net, stepped)
		worklist = connect(g, worklist, net, h, cl, "1", Time)
	}
	return g, nil
}

func classifyAll(net *nets.Net) ([]nets.Interface, error) {
	roles := make([]nets.Interface, len(net.Tr))
	for t := range net.Tr {
		role, _, err := net.Classify(t)
		if err != nil {
			return nil, err
		}
		roles[t] = role
	}
	return roles, nil
}

func connect(g *Graph, worklist []autom.Handle, net *nets.Net, src autom.Handle, cl firing.Closure, label string, kind Kind) []autom.Handle {
	h, created := g.FindOrCreate(keyOf(cl), func() State { return stateOf(net, cl) })
	g.Connect(src, h, label, Edge{Label: label, Kind: kind})
	if created {
		worklist = append(worklist, h)
	}
	return worklist
}

func addClosure(g *Graph, net *nets.Net, cl firing.Closure) autom.Handle {
	h, _ := g.FindOrCreate(keyOf(cl), func() State { return stateOf(net, cl) })
	return h
}

func keyOf(cl firing.Closure) Key {
	if cl.ContainsBoundViolation {
		return Key{Violation: true}
	}
	return Key{Cl: cl}
}

func stateOf(net *nets.Net, cl firing.Closure) State {
	if cl.ContainsBoundViolation {
		return State{IsBoundViolation: true}
	}
	return State{IsFinal: isFinal(net, cl), IsEmpty: len(cl.States) == 0}
}

func isFinal(net *nets.Net, cl firing.Closure) bool {
	for _, s := range cl.States {
		for _, m := range net.Final {
			if m.Equal(s.M) {
				return true
			}
		}
	}
	return false
}

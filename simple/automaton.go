// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package simple implements the simple-automaton textual format of §6: a
// small, general notion of labeled transition system used by chksim as a
// self-contained input/output format, and as the reference implementation
// of package sim's generic Automaton interface.
package simple

import "github.com/dalzilio/tippi/sim"

// Edge is one transition of a simple-automaton: Label == "" denotes tau
// (§6, "an empty transition label denotes tau").
type Edge struct {
	Label    string
	From, To string
}

// Automaton is a mutable simple-automaton value: either the result of
// Parse, or one built up directly by a renderer converting a behavior,
// closure, or region automaton to this format for plain-text output. Its
// fields are exported and safe to populate by hand; the Add* methods exist
// only to keep the States slice free of duplicates while doing so.
type Automaton struct {
	States      []string
	Transitions []Edge
	Initial     string
	HasInitial  bool
	Final       map[string]bool
}

// New returns an empty Automaton ready for incremental construction.
func New() *Automaton {
	return &Automaton{Final: map[string]bool{}}
}

// AddState registers name if it is not already present. Called implicitly
// by AddEdge, SetInitial, and AddFinal — direct calls only matter for
// states with no incident edge (the STATES section's reason to exist).
func (a *Automaton) AddState(name string) {
	for _, s := range a.States {
		if s == name {
			return
		}
	}
	a.States = append(a.States, name)
}

// AddEdge appends one transition, registering its endpoints as states.
func (a *Automaton) AddEdge(label, from, to string) {
	a.AddState(from)
	a.AddState(to)
	a.Transitions = append(a.Transitions, Edge{Label: label, From: from, To: to})
}

// SetInitial designates name as the automaton's initial state.
func (a *Automaton) SetInitial(name string) {
	a.AddState(name)
	a.Initial = name
	a.HasInitial = true
}

// AddFinal marks name as an accepting state.
func (a *Automaton) AddFinal(name string) {
	a.AddState(name)
	if a.Final == nil {
		a.Final = map[string]bool{}
	}
	a.Final[name] = true
}

// Init implements sim.Automaton[string].
func (a *Automaton) Init() string {
	return a.Initial
}

// Edges implements sim.Automaton[string]: every outgoing transition of s,
// with an empty Label reported as a Tau move.
func (a *Automaton) Edges(s string) []sim.Edge[string] {
	var out []sim.Edge[string]
	for _, e := range a.Transitions {
		if e.From == s {
			out = append(out, sim.Edge[string]{Label: e.Label, Tau: e.Label == "", To: e.To})
		}
	}
	return out
}

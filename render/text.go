// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package render

import (
	"io"

	"github.com/dalzilio/tippi/behavior"
	"github.com/dalzilio/tippi/closure"
	"github.com/dalzilio/tippi/region"
	"github.com/dalzilio/tippi/simple"
)

// TextBehavior writes g as a plain-text dump in the simple-automaton format
// (§6, "a plain-text emitter mirroring the automaton input format").
func TextBehavior(w io.Writer, g *behavior.Graph) error {
	ids := assignIDs[behavior.Key, behavior.State, behavior.Edge](g)
	a := simple.New()
	for _, h := range g.States() {
		a.AddState(ids[h])
		if g.Value(h).IsFinal {
			a.AddFinal(ids[h])
		}
		for _, eh := range g.Successors(h) {
			_, dst := g.EdgeEndpoints(eh)
			a.AddEdge(g.EdgeValue(eh).Label, ids[h], ids[dst])
		}
	}
	if h0, ok := g.Initial(); ok {
		a.SetInitial(ids[h0])
	}
	return simple.Write(w, a)
}

// TextClosure writes g as a plain-text dump in the simple-automaton format.
func TextClosure(w io.Writer, g *closure.Graph) error {
	ids := assignIDs[closure.Key, closure.State, closure.Edge](g)
	a := simple.New()
	for _, h := range g.States() {
		a.AddState(ids[h])
		if g.Value(h).IsFinal {
			a.AddFinal(ids[h])
		}
		for _, eh := range g.Successors(h) {
			_, dst := g.EdgeEndpoints(eh)
			a.AddEdge(g.EdgeValue(eh).Label, ids[h], ids[dst])
		}
	}
	if h0, ok := g.Initial(); ok {
		a.SetInitial(ids[h0])
	}
	return simple.Write(w, a)
}

// TextRegion writes g as a plain-text dump in the simple-automaton format.
func TextRegion(w io.Writer, g *region.Graph) error {
	ids := assignIDs[region.Key, region.State, region.Edge](g)
	a := simple.New()
	for _, h := range g.States() {
		a.AddState(ids[h])
		if g.Value(h).IsFinal {
			a.AddFinal(ids[h])
		}
		for _, eh := range g.Successors(h) {
			_, dst := g.EdgeEndpoints(eh)
			a.AddEdge(g.EdgeValue(eh).Label, ids[h], ids[dst])
		}
	}
	if h0, ok := g.Initial(); ok {
		a.SetInitial(ids[h0])
	}
	return simple.Write(w, a)
}

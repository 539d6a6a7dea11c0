// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package render emits an automaton built by package behavior, closure, or
// region as a graph-description-language (DOT/graphviz) document, or as a
// plain-text dump in the simple-automaton format (§6, "Output formats").
// Each automaton kind gets its own DOT function, following the original
// system's own one-renderer-per-automaton-kind split (RenderClosureAutomaton,
// RenderRegionAutomaton, Behavior2Dot — see DESIGN.md).
package render

import (
	"fmt"

	"github.com/dalzilio/tippi/autom"
)

// assignIDs gives every state of g a stable, small DOT node identifier, in
// the iteration order autom.Graph.States returns (sorted by key).
func assignIDs[K autom.Key[K], S any, E any](g *autom.Graph[K, S, E]) map[autom.Handle]string {
	ids := make(map[autom.Handle]string, g.Len())
	for i, h := range g.States() {
		ids[h] = fmt.Sprintf("s%d", i)
	}
	return ids
}

// quote renders s as a DOT-safe quoted string. Go's %q escaping (backslash
// and double-quote escapes, same delimiter) is accepted DOT syntax.
func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

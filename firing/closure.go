// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package firing

import (
	"sort"

	"github.com/dalzilio/tippi/nets"
)

// Closure is the set of states reachable from a seed state by firing zero or
// more internal (tau) transitions — transitions touching no interface place
// (IsInternal), regardless of their Net.Label string, which defaults to the
// transition's own name rather than "" (see nets.Net.LabelOf). It is the
// unit of abstraction the closure automaton (package closure) groups states
// into before exposing only interface-visible transitions.
type Closure struct {
	Seed   nets.NetState
	States []nets.NetState

	// ContainsLoop is true when the tau-exploration reached a state it had
	// already visited. A tau cycle sets it, but so do two tau paths that
	// converge on the same state, or a seed listed twice.
	ContainsLoop bool

	// ContainsBoundViolation is true when some state reachable from the seed
	// by tau moves assigns more tokens to a place than its static safety
	// bound allows.
	ContainsBoundViolation bool
}

// BuildClosure computes the tau-closure of seed in net, following §4.2.1's
// pop/check/explore worklist directly: a state that violates a bound is
// recorded (ContainsBoundViolation) but neither added to the closure nor
// explored further; a state already visited sets ContainsLoop instead of
// being re-added. Only internal transitions (IsInternal) are fired — the
// interface-visible ones are exactly the edges the behavior/closure automata
// expose instead of hiding. The worklist is an explicit slice-backed stack
// rather than recursion, per §5 ("Recursion" — construction must defend
// against stack overflow on deeply nested closures).
func BuildClosure(net *nets.Net, seed nets.NetState) Closure {
	return BuildClosureSet(net, []nets.NetState{seed})
}

// BuildClosureSet computes the tau-closure reachable from a *set* of seed
// states at once: the closure automaton (package closure) needs this to
// build the successor closure of an observable transition, which may fire
// from more than one state of the source ClosureState (§4.4: "Successors =
// { fire(t, s) : s ∈ S.states, t fireable in s }", then "build the
// tau-closure of Successors"). A single-seed BuildClosure is the special
// case where the set has one element; Seed is left at the zero value when
// called with more than one (or zero) seeds, since it has no single
// canonical seed to report.
func BuildClosureSet(net *nets.Net, seeds []nets.NetState) Closure {
	var cl Closure
	if len(seeds) == 1 {
		cl.Seed = seeds[0]
	}
	visited := map[string]bool{}
	stack := append([]nets.NetState(nil), seeds...)

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ViolatesBound(net, s) {
			cl.ContainsBoundViolation = true
			continue
		}
		key := s.String()
		if visited[key] {
			cl.ContainsLoop = true
			continue
		}
		visited[key] = true
		cl.States = append(cl.States, s)

		for t := range net.Tr {
			if !IsInternal(net, t) || !IsFireable(net, s, t) {
				continue
			}
			stack = append(stack, Fire(net, s, t))
		}
	}
	// Canonical order: a Closure is an *ordered set* of NetStates (§3), so two
	// closures reached by different exploration orders but containing the
	// same states must compare and print identically.
	sort.Slice(cl.States, func(i, j int) bool {
		return cl.States[i].Compare(cl.States[j]) < 0
	})
	return cl
}

// ContainsState reports whether s belongs to the closure.
func (c Closure) ContainsState(s nets.NetState) bool {
	for _, st := range c.States {
		if st.Equal(s) {
			return true
		}
	}
	return false
}

// Fireable returns the set of transition indices with a visible interface
// action (!IsInternal) fireable from some state in the closure, i.e. the
// interface actions the closure can perform once its internal churn settles.
func (c Closure) Fireable(net *nets.Net) map[int]bool {
	out := map[int]bool{}
	for _, s := range c.States {
		for t := range net.Tr {
			if IsInternal(net, t) {
				continue
			}
			if IsFireable(net, s, t) {
				out[t] = true
			}
		}
	}
	return out
}

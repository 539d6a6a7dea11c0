// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package firing implements the firing rule of interval-timed open workflow
// nets (nets.Net): place-enabledness, time-enabledness, fireability, firing
// itself, and the discrete time step. Every operation here is a free
// function over a *nets.Net and a nets.NetState — the firing rule holds no
// state of its own, matching the teacher's own separation between the Net
// data type and the functions in marking.go that operate over it.
package firing

import "github.com/dalzilio/tippi/nets"

// IsPlaceEnabled reports whether transition t has enough tokens in m to
// consume its preset, independently of time.
func IsPlaceEnabled(net *nets.Net, m nets.Marking, t int) bool {
	for _, a := range net.Pre[t] {
		if m.Get(a.Pl) < a.Mult {
			return false
		}
	}
	return true
}

// IsTimeEnabled reports whether transition t's clock has reached its earliest
// firing time. A disabled clock is never time-enabled.
func IsTimeEnabled(net *nets.Net, c nets.TimeMarking, t int) bool {
	if c[t].Disabled {
		return false
	}
	return c[t].Value >= net.Interval[t].EFT
}

// IsFireable reports whether transition t may fire from state s: it must be
// both place-enabled and time-enabled.
func IsFireable(net *nets.Net, s nets.NetState, t int) bool {
	return IsPlaceEnabled(net, s.M, t) && IsTimeEnabled(net, s.C, t)
}

// IsInternal reports whether transition t touches no interface place at all,
// either as consumer or producer — i.e. whether it is a tau action that
// BuildClosure may fire while computing a tau-closure. A transition that
// reads an input place, writes an output place, or (after Maximalize) plays
// the role of a companion transition for either, is never internal: package
// closure refines this same structural test into the four-way
// InputRead/InputSend/OutputRead/OutputSend classification.
func IsInternal(net *nets.Net, t int) bool {
	for _, a := range net.Pre[t] {
		if net.IsInput[a.Pl] || net.IsOutput[a.Pl] {
			return false
		}
	}
	for _, a := range net.Post[t] {
		if net.IsInput[a.Pl] || net.IsOutput[a.Pl] {
			return false
		}
	}
	return true
}

// Fireable returns the sorted list of transitions fireable from s.
func Fireable(net *nets.Net, s nets.NetState) []int {
	var ts []int
	for t := range net.Tr {
		if IsFireable(net, s, t) {
			ts = append(ts, t)
		}
	}
	return ts
}

// Fire returns the state reached by firing transition t from s. It panics if
// t is not fireable at s: firing a disabled transition denotes a programming
// bug in the caller, never a data error (see nets.ParseError for the latter).
//
// Clock reset follows the touch-the-preset discipline: a transition's clock
// is reset to 0 whenever t consumes from or produces into one of its preset
// places (even when the place's token count ends up unchanged), whenever it
// is t itself, or whenever it was not enabled before firing and becomes
// enabled after; otherwise its clock carries over unchanged. A transition not
// place-enabled in the resulting state has its clock marked Disabled.
func Fire(net *nets.Net, s nets.NetState, t int) nets.NetState {
	if !IsFireable(net, s, t) {
		panic("firing: transition " + net.Tr[t] + " is not fireable")
	}
	newM := s.M.Sub(net.Pre[t]).Add(net.Post[t])
	touched := touchedPlaces(net, t)

	newC := make(nets.TimeMarking, len(s.C))
	for t2 := range net.Tr {
		nowEnabled := IsPlaceEnabled(net, newM, t2)
		switch {
		case !nowEnabled:
			newC[t2] = nets.Clock{Disabled: true}
		// t2 == t always resets: t just fired, and presetTouches(net, t,
		// touched) is false whenever t has an empty preset (a source
		// transition), which would otherwise carry its clock over firing
		// itself.
		case t2 == t || presetTouches(net, t2, touched) || s.C[t2].Disabled:
			newC[t2] = nets.Clock{Value: 0}
		default:
			newC[t2] = s.C[t2]
		}
	}
	return nets.NetState{M: newM, C: newC}
}

// CanStep reports whether a unit time step may elapse from s: every enabled
// transition's clock must still admit a step without leaving its firing
// interval.
func CanStep(net *nets.Net, s nets.NetState) bool {
	for t := range net.Tr {
		if s.C[t].Disabled {
			continue
		}
		if !net.Interval[t].AdmitsStep(s.C[t].Value) {
			return false
		}
	}
	return true
}

// Step returns the state reached by letting one unit of time elapse from s.
// It panics if CanStep(net, s) is false. The marking never changes; every
// enabled clock advances by one, disabled clocks stay disabled. The clock of
// a transition with a right-infinite interval stops at its EFT once it has
// reached it: larger values fire and step exactly alike, and stopping there
// keeps the set of reachable states finite.
func Step(net *nets.Net, s nets.NetState) nets.NetState {
	if !CanStep(net, s) {
		panic("firing: time step violates a firing interval")
	}
	newC := make(nets.TimeMarking, len(s.C))
	for t := range net.Tr {
		if s.C[t].Disabled {
			newC[t] = s.C[t]
			continue
		}
		if iv := net.Interval[t]; iv.Infinite && s.C[t].Value >= iv.EFT {
			newC[t] = s.C[t]
			continue
		}
		newC[t] = nets.Clock{Value: s.C[t].Value + 1}
	}
	return nets.NetState{M: s.M.Clone(), C: newC}
}

// Initial returns the state of net before any transition has fired: the
// initial marking, with every place-enabled transition's clock at 0 and
// every other transition's clock Disabled.
func Initial(net *nets.Net) nets.NetState {
	m := net.Initial.Clone()
	c := make(nets.TimeMarking, len(net.Tr))
	for t := range net.Tr {
		if IsPlaceEnabled(net, m, t) {
			c[t] = nets.Clock{Value: 0}
		} else {
			c[t] = nets.Clock{Disabled: true}
		}
	}
	return nets.NetState{M: m, C: c}
}

// ViolatesBound reports whether s assigns more tokens to some place than its
// static safety bound allows (a place with Bound 0 is unbounded and can never
// be violated).
func ViolatesBound(net *nets.Net, s nets.NetState) bool {
	for p, b := range net.Bound {
		if b == 0 {
			continue
		}
		if s.M.Get(p) > b {
			return true
		}
	}
	return false
}

func touchedPlaces(net *nets.Net, t int) map[int]bool {
	touched := map[int]bool{}
	for _, a := range net.Pre[t] {
		touched[a.Pl] = true
	}
	for _, a := range net.Post[t] {
		touched[a.Pl] = true
	}
	return touched
}

func presetTouches(net *nets.Net, t2 int, touched map[int]bool) bool {
	for _, a := range net.Pre[t2] {
		if touched[a.Pl] {
			return true
		}
	}
	return false
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"bytes"
	"fmt"
)

// Clock is the value of a transition's local clock. The zero value Disabled
// is false and Value is 0, which is the clock of a transition that just
// became enabled — not a sentinel; a transition that is not place-enabled is
// represented by Disabled, never by a distinguished large Value. This is the
// tagged-sum alternative to a max-int "disabled" sentinel: arithmetic on a
// disabled clock can never be mistaken for a very large but real elapsed
// time.
type Clock struct {
	Value    int
	Disabled bool
}

func (c Clock) String() string {
	if c.Disabled {
		return "-"
	}
	return fmt.Sprintf("%d", c.Value)
}

// TimeMarking is the vector of transition clocks of a NetState, dense and
// indexed directly by transition index (unlike Marking, which is a sparse
// representation over places: the clock vector has exactly one entry per
// transition in the net, so there is no sparsity to exploit).
type TimeMarking []Clock

// Clone returns a copy of tm.
func (tm TimeMarking) Clone() TimeMarking {
	c := make(TimeMarking, len(tm))
	copy(c, tm)
	return c
}

// Equal reports whether tm and tm2 agree on every transition's clock.
func (tm TimeMarking) Equal(tm2 TimeMarking) bool {
	if len(tm) != len(tm2) {
		return false
	}
	for i := range tm {
		if tm[i] != tm2[i] {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing tm and tm2 lexicographically by
// transition index: negative if tm < tm2, positive if tm > tm2, 0 if equal. A
// disabled clock sorts after any enabled value, a choice with no particular
// significance beyond giving TimeMarking a fixed total order.
func (tm TimeMarking) Compare(tm2 TimeMarking) int {
	n := len(tm)
	if len(tm2) < n {
		n = len(tm2)
	}
	for i := 0; i < n; i++ {
		a, b := tm[i], tm2[i]
		if a.Disabled != b.Disabled {
			if a.Disabled {
				return +1
			}
			return -1
		}
		if a.Value != b.Value {
			if a.Value < b.Value {
				return -1
			}
			return +1
		}
	}
	switch {
	case len(tm) < len(tm2):
		return -1
	case len(tm) > len(tm2):
		return +1
	default:
		return 0
	}
}

func (tm TimeMarking) String() string {
	var buf bytes.Buffer
	for k, c := range tm {
		if k > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(c.String())
	}
	return buf.String()
}

// NetState is the dynamic state of a net during exploration: a marking
// together with the clock vector it gives rise to. NetState is the key type
// shared by every automaton built on top of it (behavior, closure, region),
// so it satisfies the self-referential autom.Key constraint used by the
// generic automaton arena: Compare orders states lexicographically, first by
// marking, then by clock vector, and String gives the canonical string form
// used to intern states in that arena.
type NetState struct {
	M Marking
	C TimeMarking
}

// Compare returns an integer comparing s and s2: negative if s < s2, positive
// if s > s2, 0 if equal.
func (s NetState) Compare(s2 NetState) int {
	if c := s.M.Compare(s2.M); c != 0 {
		return c
	}
	return s.C.Compare(s2.C)
}

// Equal reports whether s and s2 have the same marking and clock vector.
func (s NetState) Equal(s2 NetState) bool {
	return s.M.Equal(s2.M) && s.C.Equal(s2.C)
}

func (s NetState) String() string {
	return s.M.String() + " | " + s.C.String()
}

// Clone returns a deep copy of s.
func (s NetState) Clone() NetState {
	return NetState{M: s.M.Clone(), C: s.C.Clone()}
}

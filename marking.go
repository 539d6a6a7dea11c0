// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package nets

import (
	"bytes"
	"fmt"
)

// Atom is a pair of a place index and a (strictly nonzero) multiplicity.
type Atom struct{ Pl, Mult int }

// Marking is the type of place markings: a set of Atoms sorted in increasing
// order of place index.
//
// Conventions
//
//   - Items are of the form {place, count}.
//   - Items with count 0 never appear (that is the default/implicit count).
//   - Items are ordered in increasing order of place index.
//
// Enablement and firing are defined in package firing, not here: Marking is a
// pure data type, following the separation the teacher already applies
// between nets (data) and the operations in marking.go that only inspect or
// rebuild markings.
type Marking []Atom

// AddToPlace returns the Marking obtained from m by adding mult tokens to
// place pl. The result may share m's storage, and m's own atoms may be
// modified in place.
func (m Marking) AddToPlace(pl int, mult int) Marking {
	if mult == 0 {
		return m
	}
	if m == nil {
		return Marking{Atom{pl, mult}}
	}
	for i := range m {
		if m[i].Pl == pl {
			m[i].Mult += mult
			if m[i].Mult == 0 {
				return append(m[:i], m[i+1:]...)
			}
			return m
		}
		if m[i].Pl > pl {
			return append(m[:i], append(Marking{Atom{pl, mult}}, m[i:]...)...)
		}
	}
	return append(m, Atom{pl, mult})
}

// Add returns the pointwise sum of two markings, m and m2.
func (m Marking) Add(m2 Marking) Marking {
	res := []Atom{}
	k1, k2 := 0, 0
	for {
		switch {
		case k1 == len(m):
			res = append(res, m2[k2:]...)
			return res
		case k2 == len(m2):
			res = append(res, m[k1:]...)
			return res
		case m[k1].Pl == m2[k2].Pl:
			if mult := m[k1].Mult + m2[k2].Mult; mult != 0 {
				res = append(res, Atom{Pl: m[k1].Pl, Mult: mult})
			}
			k1++
			k2++
		case m[k1].Pl < m2[k2].Pl:
			res = append(res, m[k1])
			k1++
		default:
			res = append(res, m2[k2])
			k2++
		}
	}
}

// Sub returns the pointwise difference m - m2; it panics if the result would
// carry a negative multiplicity, since a negative token count can never arise
// from legal firing-rule arithmetic over enabled preconditions.
func (m Marking) Sub(m2 Marking) Marking {
	res := []Atom{}
	k1, k2 := 0, 0
	for {
		switch {
		case k1 == len(m) && k2 == len(m2):
			return res
		case k2 == len(m2):
			res = append(res, m[k1:]...)
			return res
		case k1 == len(m):
			panic("nets: Marking.Sub produced a negative multiplicity")
		case m[k1].Pl == m2[k2].Pl:
			if mult := m[k1].Mult - m2[k2].Mult; mult != 0 {
				if mult < 0 {
					panic("nets: Marking.Sub produced a negative multiplicity")
				}
				res = append(res, Atom{Pl: m[k1].Pl, Mult: mult})
			}
			k1++
			k2++
		case m[k1].Pl < m2[k2].Pl:
			res = append(res, m[k1])
			k1++
		default:
			panic("nets: Marking.Sub produced a negative multiplicity")
		}
	}
}

// Get returns the multiplicity associated with place pl. The returned value is
// 0 if pl is not in m.
func (m Marking) Get(pl int) int {
	for _, a := range m {
		if a.Pl == pl {
			return a.Mult
		}
		if a.Pl > pl {
			return 0
		}
	}
	return 0
}

// Clone returns a copy of m.
func (m Marking) Clone() Marking {
	mc := make(Marking, len(m))
	copy(mc, m)
	return mc
}

// Equal reports whether Marking m2 is equal to m.
func (m Marking) Equal(m2 Marking) bool {
	if len(m) != len(m2) {
		return false
	}
	for k := range m {
		if m[k] != m2[k] {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing m and m2 by increasing place index,
// treating a missing atom as multiplicity 0: negative if m < m2, positive if
// m > m2, zero if equal. It gives Marking the shape required by autom.Key, so
// markings (and the NetStates built from them) can be used directly as keys
// in the generic automaton arena.
func (m Marking) Compare(m2 Marking) int {
	i, j := 0, 0
	for i < len(m) || j < len(m2) {
		switch {
		case j == len(m2) || (i < len(m) && m[i].Pl < m2[j].Pl):
			return +1
		case i == len(m) || m2[j].Pl < m[i].Pl:
			return -1
		case m[i].Mult != m2[j].Mult:
			if m[i].Mult < m2[j].Mult {
				return -1
			}
			return +1
		default:
			i++
			j++
		}
	}
	return 0
}

// String renders m as a space-separated list of "place:count" pairs using
// bare place indices; callers with a *Net should prefer Net.Mtoa for
// name-qualified output.
func (m Marking) String() string {
	var buf bytes.Buffer
	for k, a := range m {
		if k > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d:%d", a.Pl, a.Mult)
	}
	return buf.String()
}

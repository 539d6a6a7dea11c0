// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package firing

import "bytes"

// Compare returns an integer comparing c and c2 lexicographically over their
// (canonically sorted, see BuildClosure) contained NetStates, giving Closure
// the total order autom.Key requires. Shorter-but-a-prefix sorts first.
func (c Closure) Compare(c2 Closure) int {
	n := len(c.States)
	if len(c2.States) < n {
		n = len(c2.States)
	}
	for i := 0; i < n; i++ {
		if d := c.States[i].Compare(c2.States[i]); d != 0 {
			return d
		}
	}
	switch {
	case len(c.States) < len(c2.States):
		return -1
	case len(c.States) > len(c2.States):
		return +1
	default:
		return 0
	}
}

// Equal reports whether c and c2 contain the same set of NetStates.
func (c Closure) Equal(c2 Closure) bool {
	return c.Compare(c2) == 0
}

// String renders c as the interning key consumed by autom.Graph.FindOrCreate:
// the canonical concatenation of its (sorted) member states. It deliberately
// ignores ContainsLoop/ContainsBoundViolation and Seed — two closures with the
// same member states are the same automaton node regardless of which seed or
// exploration path produced them.
func (c Closure) String() string {
	var buf bytes.Buffer
	for i, s := range c.States {
		if i > 0 {
			buf.WriteByte(';')
		}
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

// Maximalize returns the maximal net derived from net: a copy of net extended
// with one companion transition per interface place, so that the firing rule
// never needs to special-case interface places as "always available" or
// "always willing to accept". A companion transition models the (unspecified)
// behavior of the external partner:
//
//   - for an output place p (the net produces into p, the partner reads from
//     it), the companion consumes from p — it is how the partner's read
//     shows up as an ordinary transition in the net;
//   - for an input place p (the partner produces into p, the net reads from
//     it), the companion produces into p — it is how the partner's send
//     shows up as an ordinary transition.
//
// Every companion transition carries the fixed interval [0,Infinity[: this
// specification does not model the partner's own timing, so its actions must
// never constrain when they may occur.
//
// Maximalize never mutates its receiver; nets are populate-once (see the Net
// doc comment), and the maximal net is a new, derived value.
func (net *Net) Maximalize() (*Net, error) {
	m := &Net{
		Name:  net.Name,
		plidx: map[string]int{},
		tridx: map[string]int{},
	}

	m.Pl = append([]string(nil), net.Pl...)
	m.Bound = append([]int(nil), net.Bound...)
	m.IsInput = append([]bool(nil), net.IsInput...)
	m.IsOutput = append([]bool(nil), net.IsOutput...)
	for i, s := range m.Pl {
		m.plidx[s] = i
	}

	m.Tr = append([]string(nil), net.Tr...)
	m.Interval = append([]Interval(nil), net.Interval...)
	m.Label = make([]string, len(net.Tr))
	m.Pre = make([]Marking, len(net.Pre))
	m.Post = make([]Marking, len(net.Post))
	for i := range net.Tr {
		m.Pre[i] = net.Pre[i].Clone()
		m.Post[i] = net.Post[i].Clone()
		m.tridx[net.Tr[i]] = i
	}
	// §4.1: every original transition gets its interface label now, from the
	// same Classify test the companion transitions below are built from, so
	// "t1 reads in1" and "in1$send sends in1" share one labeling rule instead of
	// two independently-maintained ones.
	for i := range net.Tr {
		label, err := m.LabelOf(i)
		if err != nil {
			return nil, err
		}
		m.Label[i] = label
	}

	m.Initial = net.Initial.Clone()
	m.Final = append([]Marking(nil), net.Final...)

	unbounded := Interval{EFT: 0, Infinite: true}
	for p, name := range net.Pl {
		switch {
		case net.IsOutput[p]:
			idx, err := m.CreateTransition(companionName(name, "recv"), unbounded)
			if err != nil {
				return nil, err
			}
			m.Pre[idx] = m.Pre[idx].AddToPlace(p, 1)
			if m.Label[idx], err = m.LabelOf(idx); err != nil {
				return nil, err
			}
		case net.IsInput[p]:
			idx, err := m.CreateTransition(companionName(name, "send"), unbounded)
			if err != nil {
				return nil, err
			}
			m.Post[idx] = m.Post[idx].AddToPlace(p, 1)
			if m.Label[idx], err = m.LabelOf(idx); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func companionName(place, suffix string) string {
	return place + "$" + suffix
}

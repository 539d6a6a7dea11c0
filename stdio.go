// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"bytes"
	"fmt"
	"io"
)

// Fprint writes net to w in the TIMENET format described in doc.go. Names are
// written unchanged and an empty final marking as an empty atom list, so Parse
// reads the output back only under the conditions listed in doc.go.
func (net *Net) Fprint(w io.Writer) {
	fmt.Fprintf(w, "{ %d places, %d transitions }\n", len(net.Pl), len(net.Tr))
	fmt.Fprintln(w, "TIMENET")

	free := []string{}
	bySafeBound := map[int][]string{}
	for p, name := range net.Pl {
		if net.Bound[p] == 0 {
			free = append(free, name)
		} else {
			bySafeBound[net.Bound[p]] = append(bySafeBound[net.Bound[p]], name)
		}
	}
	if len(free) != 0 || len(bySafeBound) != 0 {
		fmt.Fprintln(w, "PLACE")
		for bound, names := range bySafeBound {
			fmt.Fprintf(w, "  SAFE %d: %s;\n", bound, joinNames(names))
		}
		if len(free) != 0 {
			fmt.Fprintf(w, "  %s;\n", joinNames(free))
		}
	}

	inputs, outputs := []string{}, []string{}
	for p, name := range net.Pl {
		if net.IsInput[p] {
			inputs = append(inputs, name)
		}
		if net.IsOutput[p] {
			outputs = append(outputs, name)
		}
	}
	if len(inputs) != 0 {
		fmt.Fprintf(w, "INPUT %s;\n", joinNames(inputs))
	}
	if len(outputs) != 0 {
		fmt.Fprintf(w, "OUTPUT %s;\n", joinNames(outputs))
	}
	if len(net.Initial) != 0 {
		fmt.Fprintf(w, "MARKING %s;\n", net.atomsToAtoms(net.Initial))
	}

	for t, name := range net.Tr {
		fmt.Fprintf(w, "TRANSITION %s\n", name)
		if !net.Interval[t].Trivial() {
			fmt.Fprintf(w, "  TIME %s;\n", net.Interval[t].timeClause())
		}
		if len(net.Pre[t]) != 0 {
			fmt.Fprintf(w, "  CONSUME %s;\n", net.atomsToAtoms(net.Pre[t]))
		}
		if len(net.Post[t]) != 0 {
			fmt.Fprintf(w, "  PRODUCE %s;\n", net.atomsToAtoms(net.Post[t]))
		}
	}

	for _, m := range net.Final {
		fmt.Fprintf(w, "FINALMARKING %s;\n", net.atomsToAtoms(m))
	}
}

// timeClause renders i the way a TIME clause expects it: "eft,lft" or
// "eft,*".
func (i Interval) timeClause() string {
	if i.Infinite {
		return fmt.Sprintf("%d,*", i.EFT)
	}
	return fmt.Sprintf("%d,%d", i.EFT, i.LFT)
}

func (net *Net) atomsToAtoms(m Marking) string {
	s := ""
	for k, a := range m {
		if k > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s:%d", net.Pl[a.Pl], a.Mult)
	}
	return s
}

func joinNames(names []string) string {
	s := ""
	for k, n := range names {
		if k > 0 {
			s += ", "
		}
		s += n
	}
	return s
}

// String returns a textual representation of net in the TIMENET format.
func (net *Net) String() string {
	var buf bytes.Buffer
	net.Fprint(&buf)
	return buf.String()
}

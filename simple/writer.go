// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package simple

import (
	"bufio"
	"io"
)

// Write prints a in the simple-automaton textual format (§6), in a shape
// Parse can read back unchanged (§8's round-trip property): a STATES
// section listing every state in a's own order, one TRANSITION line per
// edge, then INITIALSTATE and FINALSTATES if set.
func Write(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("AUTOMATON\n"); err != nil {
		return err
	}
	if len(a.States) > 0 {
		if _, err := bw.WriteString("STATES "); err != nil {
			return err
		}
		for i, s := range a.States {
			if i > 0 {
				if _, err := bw.WriteString(", "); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(";\n"); err != nil {
			return err
		}
	}
	for _, e := range a.Transitions {
		if _, err := bw.WriteString("TRANSITION "); err != nil {
			return err
		}
		if _, err := bw.WriteString(e.Label); err != nil {
			return err
		}
		if _, err := bw.WriteString("; FROM "); err != nil {
			return err
		}
		if _, err := bw.WriteString(e.From); err != nil {
			return err
		}
		if _, err := bw.WriteString("; TO "); err != nil {
			return err
		}
		if _, err := bw.WriteString(e.To); err != nil {
			return err
		}
		if _, err := bw.WriteString(";\n"); err != nil {
			return err
		}
	}
	if a.HasInitial {
		if _, err := bw.WriteString("INITIALSTATE " + a.Initial + ";\n"); err != nil {
			return err
		}
	}
	if len(a.Final) > 0 {
		if _, err := bw.WriteString("FINALSTATES "); err != nil {
			return err
		}
		first := true
		for _, s := range a.States {
			if !a.Final[s] {
				continue
			}
			if !first {
				if _, err := bw.WriteString(", "); err != nil {
					return err
				}
			}
			first = false
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(";\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"os"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tables := []struct {
		file   string
		pl, tr int
	}{
		{"sample.timenet", 6, 2},
		{"abp.timenet", 6, 4},
	}
	for _, v := range tables {
		file, err := os.Open("testdata/" + v.file)
		if err != nil {
			t.Errorf("Error opening file %s; %s", v.file, err)
			continue
		}
		net, err := Parse(file)
		if err != nil {
			t.Errorf("Error parsing file %s; %s", v.file, err)
			continue
		}
		if pl := len(net.Pl); pl != v.pl {
			t.Errorf("Wrong number of places in %s, expected %d, actual %d", v.file, v.pl, pl)
		}
		if tr := len(net.Tr); tr != v.tr {
			t.Errorf("Wrong number of transitions in %s, expected %d, actual %d", v.file, v.tr, tr)
		}
	}
}

func TestParseInterfacePlaces(t *testing.T) {
	file, err := os.Open("testdata/sample.timenet")
	if err != nil {
		t.Fatalf("Error opening file; %s", err)
	}
	net, err := Parse(file)
	if err != nil {
		t.Fatalf("Error parsing file; %s", err)
	}
	in, ok := net.FindPlace("in1")
	if !ok || !net.IsInput[in] {
		t.Errorf("expected in1 to be an input place")
	}
	out, ok := net.FindPlace("out1")
	if !ok || !net.IsOutput[out] {
		t.Errorf("expected out1 to be an output place")
	}
	if len(net.Final) != 1 {
		t.Errorf("expected one final marking, got %d", len(net.Final))
	}
}

func TestParseErrors(t *testing.T) {
	tables := []string{
		"TIMENET\nTRANSITION t\n  CONSUME p:1;\n",                   // p never declared
		"TIMENET\n",                                                 // no transitions
		"TIMENET\nTRANSITION t\n  TIME 5,2;\n",                      // invalid interval
		"TIMENET\nPLACE\n  SAFE p;\nTRANSITION t\n  CONSUME p:2;\n", // arc multiplicity > 1
	}
	for _, src := range tables {
		_, err := Parse(strings.NewReader(src))
		if err == nil {
			t.Errorf("expected a parse error for input %q", src)
			continue
		}
		if _, ok := err.(*ParseError); !ok {
			t.Errorf("expected a *ParseError, got %T (%v)", err, err)
		}
	}
}

// TestParseSafeZeroIsUnbounded checks that "SAFE 0: p;" is accepted (spec.md
// §6: a SAFE bound of 0 denotes an unbounded place).
func TestParseSafeZeroIsUnbounded(t *testing.T) {
	src := "TIMENET\nPLACE\n  SAFE 0: p;\nTRANSITION t\n  CONSUME p:1;\n"
	net, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}
	idx, ok := net.FindPlace("p")
	if !ok {
		t.Fatalf("place p not found")
	}
	if net.Bound[idx] != 0 {
		t.Errorf("expected bound 0 for p, got %d", net.Bound[idx])
	}
}

package nets

import (
	"os"
	"testing"
)

func TestMarkingAddToPlace(t *testing.T) {
	tables := []struct {
		Marking
		pl       int
		mult     int
		expected Marking
	}{
		{Marking{}, 2, 6, Marking{Atom{2, 6}}},
		{Marking{Atom{3, 4}}, 3, 6, Marking{Atom{3, 10}}},
		{Marking{Atom{4, 4}}, 3, 0, Marking{Atom{4, 4}}},
		{Marking{Atom{4, 4}}, 4, -4, Marking{}},
		{Marking{Atom{4, 4}}, 3, 2, Marking{Atom{3, 2}, Atom{4, 4}}},
		{Marking{Atom{0, -1}, Atom{5, 4}}, 5, -1, Marking{Atom{0, -1}, Atom{5, 3}}},
		{Marking{Atom{6, 7}, Atom{8, 7}, Atom{10, 4}}, 8, -7, Marking{Atom{6, 7}, Atom{10, 4}}},
	}

	for _, tt := range tables {
		actual := tt.Marking.AddToPlace(tt.pl, tt.mult)
		if !actual.Equal(tt.expected) {
			t.Errorf("%v .AddToPlace(%d, %d): expected %v, actual %v", tt.Marking, tt.pl, tt.mult, tt.expected, actual)
		}
	}
}

func TestMarkingCompare(t *testing.T) {
	tables := []struct {
		a, b Marking
		want int
	}{
		{Marking{}, Marking{}, 0},
		{Marking{Atom{1, 1}}, Marking{Atom{1, 1}}, 0},
		{Marking{}, Marking{Atom{1, 1}}, -1},
		{Marking{Atom{1, 1}}, Marking{}, +1},
		{Marking{Atom{1, 1}}, Marking{Atom{2, 1}}, +1},
		{Marking{Atom{1, 2}}, Marking{Atom{1, 1}}, +1},
	}
	for _, tt := range tables {
		if got := tt.a.Compare(tt.b); sign(got) != sign(tt.want) {
			t.Errorf("%v.Compare(%v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return +1
	default:
		return 0
	}
}

func TestMtoa(t *testing.T) {
	file, err := os.Open("testdata/sample.timenet")
	if err != nil {
		t.Fatalf("Error opening file testdata/sample.timenet; %s", err)
	}
	net, err := Parse(file)
	if err != nil {
		t.Fatalf("Error parsing file testdata/sample.timenet; %s", err)
	}

	p1, _ := net.FindPlace("p1")
	p2, _ := net.FindPlace("p2")

	tables := []struct {
		Marking
		expected string
	}{
		{Marking{}, ""},
		{Marking{Atom{p1, 1}}, "p1:1"},
		{Marking{Atom{p1, 1}, Atom{p2, 3}}, "p1:1, p2:3"},
	}

	for _, tt := range tables {
		actual := net.Mtoa(tt.Marking)
		if actual != tt.expected {
			t.Errorf("net.Mtoa(%v): expected %q, actual %q", tt.Marking, tt.expected, actual)
		}
	}
}

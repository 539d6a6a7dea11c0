// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package simple

import "fmt"

// textPos tracks a scanning position for error reporting, the same
// ahead/line/col bookkeeping as package nets' own scanner.
type textPos struct {
	line  int
	col   int
	ahead int
}

func (t *textPos) String() string {
	return fmt.Sprintf("line: %d column: %d", t.line+1, t.col-t.ahead)
}

type tokenKind int

// tokenKind enumerates the tokens of the simple-automaton grammar (§6).
// Unlike the TIMENET grammar, an identifier is "any non-whitespace,
// non-delimiter token" rather than a letter-led word, so the scanner has no
// separate number/letter token classes.
const (
	tokEOF tokenKind = iota
	tokILLEGAL
	tokIDENT
	tokSEMI
	tokCOMMA
	tokAUTOMATON
	tokSTATES
	tokTRANSITION
	tokFROM
	tokTO
	tokINITIALSTATE
	tokFINALSTATES
)

var keywords = map[string]tokenKind{
	"AUTOMATON":    tokAUTOMATON,
	"STATES":       tokSTATES,
	"TRANSITION":   tokTRANSITION,
	"FROM":         tokFROM,
	"TO":           tokTO,
	"INITIALSTATE": tokINITIALSTATE,
	"FINALSTATES":  tokFINALSTATES,
}

type token struct {
	tok tokenKind
	pos textPos
	s   string
}

func (tok token) String() string {
	return fmt.Sprintf("token (%d) %s %v", tok.tok, tok.s, tok.pos)
}

var eof = rune(0)

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// isDelim reports whether ch terminates an identifier on its own, as a
// single-character token, rather than being part of it.
func isDelim(ch rune) bool {
	return ch == ';' || ch == ','
}

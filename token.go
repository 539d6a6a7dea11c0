// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

//go:generate stringer -type=tokenKind

import "fmt"

// textPos tracks a scanning position for error reporting, following the
// teacher's own ahead/line/col bookkeeping in its Tina-grammar scanner.
type textPos struct {
	line  int
	col   int
	ahead int
}

func (t *textPos) String() string {
	return fmt.Sprintf("line: %d column: %d", t.line+1, t.col-t.ahead)
}

type tokenKind int

// tokenKind enumerates the tokens of the TIMENET grammar (see doc.go).
const (
	tokEOF      tokenKind = iota // '\0'
	tokILLEGAL                   // used to report errors
	tokIDENT                     // identifier: letter (letter|digit|'_')*
	tokINT                       // integer literal
	tokSTAR                      // '*', used as the infinite right bound of a TIME clause
	tokCOLON                     // ':'
	tokSEMI                      // ';'
	tokCOMMA                     // ','
	tokTIMENET                   // 'TIMENET'
	tokPLACE                     // 'PLACE'
	tokSAFE                      // 'SAFE'
	tokINPUT                     // 'INPUT'
	tokOUTPUT                    // 'OUTPUT'
	tokMARKING                   // 'MARKING'
	tokTRANSITION                // 'TRANSITION'
	tokTIME                      // 'TIME'
	tokCONSUME                   // 'CONSUME'
	tokPRODUCE                   // 'PRODUCE'
	tokFINALMARKING              // 'FINALMARKING'
)

var keywords = map[string]tokenKind{
	"TIMENET":      tokTIMENET,
	"PLACE":        tokPLACE,
	"SAFE":         tokSAFE,
	"INPUT":        tokINPUT,
	"OUTPUT":       tokOUTPUT,
	"MARKING":      tokMARKING,
	"TRANSITION":   tokTRANSITION,
	"TIME":         tokTIME,
	"CONSUME":      tokCONSUME,
	"PRODUCE":      tokPRODUCE,
	"FINALMARKING": tokFINALMARKING,
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

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch rune) bool {
	return ch == '_'
}

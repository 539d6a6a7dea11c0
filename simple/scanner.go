// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package simple

import (
	"bufio"
	"bytes"
	"strings"
)

// scanner is the simple-automaton counterpart of package nets' scanner,
// adapted to a grammar where an identifier is any run of non-whitespace,
// non-delimiter runes rather than a letter-led word.
type scanner struct {
	r   *bufio.Reader
	pos *textPos
}

func (s *scanner) read() rune {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return eof
	}
	if s.pos.ahead != 0 {
		s.pos.ahead--
	} else {
		if ch == '\n' {
			s.pos.line++
			s.pos.col = 0
		} else {
			s.pos.col++
		}
	}
	return ch
}

func (s *scanner) unread() {
	_ = s.r.UnreadRune()
	s.pos.ahead++
}

func (s *scanner) position(t tokenKind, lit string) token {
	return token{tok: t, pos: *s.pos, s: lit}
}

// scan returns the next token, skipping whitespace. There is no comment
// syntax in the simple-automaton grammar (§6 does not define one).
func (s *scanner) scan() token {
	ch := s.read()
	for isWhitespace(ch) {
		ch = s.read()
	}

	switch {
	case ch == eof:
		return s.position(tokEOF, "EOF")
	case ch == ';':
		return s.position(tokSEMI, ";")
	case ch == ',':
		return s.position(tokCOMMA, ",")
	default:
		s.unread()
		return s.scanIdent()
	}
}

// scanIdent reads a maximal run of runes that are neither whitespace nor a
// delimiter, then classifies it as a keyword or a plain identifier — an
// empty run (only possible at eof) is reported as tokILLEGAL, since the
// grammar always expects an identifier where scanIdent is called from.
func (s *scanner) scanIdent() token {
	var buf bytes.Buffer
	ch := s.read()
	for ch != eof && !isWhitespace(ch) && !isDelim(ch) {
		buf.WriteRune(ch)
		ch = s.read()
	}
	s.unread()
	lit := buf.String()
	if lit == "" {
		return s.position(tokILLEGAL, "")
	}
	if k, ok := keywords[strings.ToUpper(lit)]; ok {
		return s.position(k, lit)
	}
	return s.position(tokIDENT, lit)
}

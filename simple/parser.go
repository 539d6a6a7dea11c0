// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package simple

import (
	"bufio"
	"fmt"
	"io"
)

// ParseError reports a syntax error in a simple-automaton description, with
// the position at which it was detected — the same shape as nets.ParseError.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

func newParseError(pos textPos, format string, args ...any) *ParseError {
	return &ParseError{Line: pos.line + 1, Col: pos.col - pos.ahead, Msg: fmt.Sprintf(format, args...)}
}

type parser struct {
	s     *scanner
	a     *Automaton
	tok   token
	ahead bool
}

// Parse reads exactly one AUTOMATON section from r.
func Parse(r io.Reader) (*Automaton, error) {
	all, err := ParseAll(r)
	if err != nil {
		return nil, err
	}
	if len(all) != 1 {
		return nil, fmt.Errorf("expected exactly one AUTOMATON section, found %d", len(all))
	}
	return all[0], nil
}

// ParseAll reads every AUTOMATON section from r in sequence — chksim uses
// this to read its two operands from a single stream separated by a second
// AUTOMATON marker (§6).
func ParseAll(r io.Reader) ([]*Automaton, error) {
	p := &parser{s: &scanner{r: bufio.NewReader(r), pos: &textPos{}}}
	var out []*Automaton
	for {
		tok := p.scan()
		if tok.tok == tokEOF {
			return out, nil
		}
		if tok.tok != tokAUTOMATON {
			return nil, newParseError(tok.pos, "found %q, expected AUTOMATON", tok.s)
		}
		a, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
}

func (p *parser) scan() token {
	if p.ahead {
		p.ahead = false
	} else {
		p.tok = p.s.scan()
	}
	return p.tok
}

func (p *parser) unscan() {
	p.ahead = true
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	tok := p.scan()
	if tok.tok != k {
		return tok, newParseError(tok.pos, "found %q, expected %s", tok.s, what)
	}
	return tok, nil
}

// parseBody parses everything after an AUTOMATON keyword up to (but not
// including) the next AUTOMATON marker or end of file.
func (p *parser) parseBody() (*Automaton, error) {
	p.a = New()
	if tok := p.scan(); tok.tok == tokSTATES {
		if err := p.parseStates(); err != nil {
			return nil, err
		}
	} else {
		p.unscan()
	}
	for {
		tok := p.scan()
		if tok.tok != tokTRANSITION {
			p.unscan()
			break
		}
		if err := p.parseTransition(); err != nil {
			return nil, err
		}
	}
	if tok := p.scan(); tok.tok == tokINITIALSTATE {
		if err := p.parseInitialState(); err != nil {
			return nil, err
		}
	} else {
		p.unscan()
	}
	if tok := p.scan(); tok.tok == tokFINALSTATES {
		if err := p.parseFinalStates(); err != nil {
			return nil, err
		}
	} else {
		p.unscan()
	}
	return p.a, nil
}

// parseStates parses "STATES" already consumed by the caller, followed by a
// comma-separated name list ended by ';'.
func (p *parser) parseStates() error {
	return p.parseNameList(p.a.AddState)
}

// parseFinalStates parses "FINALSTATES" already consumed, followed by a
// comma-separated name list ended by ';'.
func (p *parser) parseFinalStates() error {
	return p.parseNameList(p.a.AddFinal)
}

// parseInitialState parses "INITIALSTATE" already consumed, a single name,
// then ';'.
func (p *parser) parseInitialState() error {
	name, err := p.expect(tokIDENT, "a state name")
	if err != nil {
		return err
	}
	if _, err := p.expect(tokSEMI, "';' after INITIALSTATE"); err != nil {
		return err
	}
	p.a.SetInitial(name.s)
	return nil
}

// parseTransition parses "TRANSITION" already consumed:
// "label ';' FROM src ';' TO dst ';'", where an empty label (the ';'
// appearing immediately) denotes tau (§6).
func (p *parser) parseTransition() error {
	label := ""
	tok := p.scan()
	switch tok.tok {
	case tokIDENT:
		label = tok.s
		if _, err := p.expect(tokSEMI, "';' after transition label"); err != nil {
			return err
		}
	case tokSEMI:
		// empty (tau) label; the ';' is already consumed.
	default:
		return newParseError(tok.pos, "found %q, expected a transition label or ';'", tok.s)
	}
	if _, err := p.expect(tokFROM, "FROM"); err != nil {
		return err
	}
	from, err := p.expect(tokIDENT, "a source state name")
	if err != nil {
		return err
	}
	if _, err := p.expect(tokSEMI, "';' after FROM state"); err != nil {
		return err
	}
	if _, err := p.expect(tokTO, "TO"); err != nil {
		return err
	}
	to, err := p.expect(tokIDENT, "a destination state name")
	if err != nil {
		return err
	}
	if _, err := p.expect(tokSEMI, "';' after TO state"); err != nil {
		return err
	}
	p.a.AddEdge(label, from.s, to.s)
	return nil
}

// parseNameList parses "<name> (',' <name>)* ';'", calling add for each name.
func (p *parser) parseNameList(add func(name string)) error {
	for {
		tok, err := p.expect(tokIDENT, "a name")
		if err != nil {
			return err
		}
		add(tok.s)
		switch sep := p.scan(); sep.tok {
		case tokCOMMA:
			continue
		case tokSEMI:
			return nil
		default:
			return newParseError(sep.pos, "found %q, expected ',' or ';'", sep.s)
		}
	}
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

//
// code inspired by: http://blog.gopheracademy.com/advent-2014/parsers-lexers/
//

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseError reports a syntax error in a TIMENET description, with the
// position at which it was detected.
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

// parser represents a TIMENET parser.
type parser struct {
	s     *scanner
	net   *Net
	tok   token
	ahead bool
}

// Parse returns a *Net built from a TIMENET description read from r. It
// returns a *ParseError wrapped as error if the input is not well-formed.
func Parse(r io.Reader) (*Net, error) {
	p := &parser{
		s:   &scanner{r: bufio.NewReader(r), pos: &textPos{}},
		net: NewNet(""),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.net, nil
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

func (p *parser) parse() error {
	if _, err := p.expect(tokTIMENET, "TIMENET"); err != nil {
		return err
	}
	if tok := p.scan(); tok.tok == tokPLACE {
		if err := p.parsePlaces(); err != nil {
			return err
		}
	} else {
		p.unscan()
	}
	if tok := p.scan(); tok.tok == tokINPUT {
		if err := p.parseInterfaceNames(true); err != nil {
			return err
		}
	} else {
		p.unscan()
	}
	if tok := p.scan(); tok.tok == tokOUTPUT {
		if err := p.parseInterfaceNames(false); err != nil {
			return err
		}
	} else {
		p.unscan()
	}
	if tok := p.scan(); tok.tok == tokMARKING {
		if err := p.parseMarking(); err != nil {
			return err
		}
	} else {
		p.unscan()
	}
	nt := 0
	for {
		tok := p.scan()
		if tok.tok != tokTRANSITION {
			p.unscan()
			break
		}
		if err := p.parseTransition(); err != nil {
			return err
		}
		nt++
	}
	if nt == 0 {
		tok := p.scan()
		return newParseError(tok.pos, "found %q, expected at least one TRANSITION declaration", tok.s)
	}
	for {
		tok := p.scan()
		if tok.tok != tokFINALMARKING {
			p.unscan()
			break
		}
		if err := p.parseFinal(); err != nil {
			return err
		}
	}
	if tok := p.scan(); tok.tok != tokEOF {
		return newParseError(tok.pos, "found %q, expected end of file", tok.s)
	}
	return nil
}

// parsePlaces parses a PLACE section: an arbitrary mix of SAFE and plain
// (unbounded) place declarations, each ending in ';'.
func (p *parser) parsePlaces() error {
	for {
		tok := p.scan()
		switch tok.tok {
		case tokSAFE:
			bound := 1
			next := p.scan()
			if next.tok == tokINT {
				v, err := strconv.Atoi(next.s)
				if err != nil || v < 0 {
					return newParseError(next.pos, "invalid SAFE bound %q", next.s)
				}
				bound = v
				if _, err := p.expect(tokCOLON, "':' after SAFE bound"); err != nil {
					return err
				}
			} else {
				p.unscan()
			}
			if err := p.parseNameList(func(name string) error {
				_, err := p.net.CreatePlace(name, bound, false, false)
				return err
			}); err != nil {
				return err
			}
		case tokIDENT:
			p.unscan()
			if err := p.parseNameList(func(name string) error {
				_, err := p.net.CreatePlace(name, 0, false, false)
				return err
			}); err != nil {
				return err
			}
		default:
			p.unscan()
			return nil
		}
	}
}

// parseInterfaceNames parses an INPUT or OUTPUT section: a single
// comma-separated list of already-declared (or freshly declared, if the
// PLACE section omitted them) place names, ended by ';'.
func (p *parser) parseInterfaceNames(isInput bool) error {
	return p.parseNameList(func(name string) error {
		idx, ok := p.net.FindPlace(name)
		if !ok {
			var err error
			idx, err = p.net.CreatePlace(name, 0, false, false)
			if err != nil {
				return err
			}
		}
		if isInput {
			p.net.IsInput[idx] = true
		} else {
			p.net.IsOutput[idx] = true
		}
		return nil
	})
}

// parseMarking parses a MARKING section: a comma-separated list of atoms.
func (p *parser) parseMarking() error {
	return p.parseAtomList(func(name string, mult int) error {
		idx, ok := p.net.FindPlace(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlace, name)
		}
		return p.net.SetInitialMarking(idx, mult)
	})
}

// parseFinal parses a FINALMARKING section, appending one accepting marking.
func (p *parser) parseFinal() error {
	m := Marking(nil)
	err := p.parseAtomList(func(name string, mult int) error {
		idx, ok := p.net.FindPlace(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlace, name)
		}
		m = m.AddToPlace(idx, mult)
		return nil
	})
	if err != nil {
		return err
	}
	p.net.AddFinalMarking(m)
	return nil
}

// parseTransition parses a single TRANSITION declaration, including its
// optional TIME, CONSUME and PRODUCE clauses.
func (p *parser) parseTransition() error {
	tok, err := p.expect(tokIDENT, "a transition name")
	if err != nil {
		return err
	}
	iv := Interval{EFT: 0, Infinite: true}
	idx, err := p.net.CreateTransition(tok.s, iv)
	if err != nil {
		return err
	}
	hasTime, hasCons, hasProd := false, false, false
	for {
		switch next := p.scan(); next.tok {
		case tokTIME:
			if hasTime || hasCons || hasProd {
				return newParseError(next.pos, "misplaced TIME clause")
			}
			hasTime = true
			eft, err := p.expect(tokINT, "the lower bound of a TIME clause")
			if err != nil {
				return err
			}
			iv.EFT, _ = strconv.Atoi(eft.s)
			if _, err := p.expect(tokCOMMA, "',' in TIME clause"); err != nil {
				return err
			}
			ub := p.scan()
			switch ub.tok {
			case tokSTAR:
				iv.Infinite = true
			case tokINT:
				iv.Infinite = false
				iv.LFT, _ = strconv.Atoi(ub.s)
			default:
				return newParseError(ub.pos, "found %q, expected an integer or '*' upper bound", ub.s)
			}
			if !iv.Valid() {
				return newParseError(ub.pos, "%v: invalid interval for transition %s", ErrInvalidInterval, tok.s)
			}
			p.net.Interval[idx] = iv
			if _, err := p.expect(tokSEMI, "';' after TIME clause"); err != nil {
				return err
			}
		case tokCONSUME:
			if hasCons {
				return newParseError(next.pos, "duplicate CONSUME clause")
			}
			if hasProd {
				return newParseError(next.pos, "misplaced CONSUME clause")
			}
			hasCons = true
			if err := p.parseAtomList(func(name string, mult int) error {
				if mult != 1 {
					return fmt.Errorf("arc multiplicity must be 1, found %d", mult)
				}
				pidx, ok := p.net.FindPlace(name)
				if !ok {
					return fmt.Errorf("%w: %s", ErrUnknownPlace, name)
				}
				return p.net.Connect(idx, pidx, ArcConsume, mult)
			}); err != nil {
				return err
			}
		case tokPRODUCE:
			if hasProd {
				return newParseError(next.pos, "duplicate PRODUCE clause")
			}
			hasProd = true
			if err := p.parseAtomList(func(name string, mult int) error {
				if mult != 1 {
					return fmt.Errorf("arc multiplicity must be 1, found %d", mult)
				}
				pidx, ok := p.net.FindPlace(name)
				if !ok {
					return fmt.Errorf("%w: %s", ErrUnknownPlace, name)
				}
				return p.net.Connect(idx, pidx, ArcProduce, mult)
			}); err != nil {
				return err
			}
		default:
			p.unscan()
			return nil
		}
	}
}

// parseNameList parses "<name> (',' <name>)* ';'", calling add for each name.
func (p *parser) parseNameList(add func(name string) error) error {
	for {
		tok, err := p.expect(tokIDENT, "a name")
		if err != nil {
			return err
		}
		if err := add(tok.s); err != nil {
			return newParseError(tok.pos, "%s", err)
		}
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

// parseAtomList parses "<atom> (',' <atom>)* ';'", where atom is
// <name> ':' INT, calling add for each atom.
func (p *parser) parseAtomList(add func(name string, mult int) error) error {
	for {
		name, err := p.expect(tokIDENT, "a place name")
		if err != nil {
			return err
		}
		if _, err := p.expect(tokCOLON, "':' in atom"); err != nil {
			return err
		}
		val, err := p.expect(tokINT, "an integer multiplicity")
		if err != nil {
			return err
		}
		mult, convErr := strconv.Atoi(val.s)
		if convErr != nil {
			return newParseError(val.pos, "invalid multiplicity %q", val.s)
		}
		if err := add(name.s, mult); err != nil {
			return newParseError(name.pos, "%s", err)
		}
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

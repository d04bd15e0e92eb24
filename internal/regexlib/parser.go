package regexlib

import "fmt"

// Grammar, lowest precedence first:
//
//	Alternative := Unary ('|' Unary)*
//	Unary       := StarredAtom*
//	StarredAtom := Atom '*'*
//	Atom        := '(' Alternative ')' | literal
//
// One token of lookahead, no backtracking.
type parser struct {
	sc   *scanner
	look token
}

// Parse reads text into a raw (not yet normalized) tree. It fails with a
// *SyntaxError on unbalanced parentheses, a '*' with nothing to repeat, or
// end of input inside a group.
func Parse(text string) (*Node, error) {
	sc, err := newScanner(text)
	if err != nil {
		return nil, err
	}
	p := &parser{sc: sc}
	if err := p.scan(); err != nil {
		return nil, err
	}
	n, err := p.parseAlternative()
	if err != nil {
		return nil, err
	}
	// an alternative stops only at ')' or the end
	if p.look.typ != tEOF {
		return nil, p.errorf("unbalanced ')'")
	}
	return n, nil
}

// MustParse is Parse for expressions known to be valid.
func MustParse(text string) *Node {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) scan() error {
	t, err := p.sc.next()
	if err != nil {
		return err
	}
	p.look = t
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Column: p.look.col, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) parseAlternative() (*Node, error) {
	var branches []*Node
	for {
		u, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		branches = append(branches, u)
		if p.look.typ != tUnion {
			break
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
	}
	return Alt(branches...), nil
}

// parseUnary may match nothing: an empty branch is ε.
func (p *parser) parseUnary() (*Node, error) {
	var factors []*Node
	for {
		switch p.look.typ {
		case tEOF, tRParen, tUnion:
			return Concat(factors...), nil
		case tStar:
			return nil, p.errorf("expected something before '*'")
		}
		f, err := p.parseStarredAtom()
		if err != nil {
			return nil, err
		}
		factors = append(factors, f)
	}
}

// parseStarredAtom binds '*' to the atom right before it. Any run of stars
// folds into one.
func (p *parser) parseStarredAtom() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	starred := false
	for p.look.typ == tStar {
		starred = true
		if err := p.scan(); err != nil {
			return nil, err
		}
	}
	if starred {
		atom = Star(atom)
	}
	return atom, nil
}

func (p *parser) parseAtom() (*Node, error) {
	switch p.look.typ {
	case tChar:
		n := Literal(p.look.ch)
		if err := p.scan(); err != nil {
			return nil, err
		}
		return n, nil
	case tLParen:
		if err := p.scan(); err != nil {
			return nil, err
		}
		inner, err := p.parseAlternative()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, p.errorf("unexpected end of input, expected ')'")
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return inner, nil
	}
	invariant(false, "atom cannot start with %s", p.look.typ)
	return nil, nil
}

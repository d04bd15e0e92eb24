// Package interpreter runs regcanon scripts: one statement per line (or
// separated by ';'), each printing one line of output.
//
//	let e = "(a|b)*abb"
//	canon  "aqb|arb|ab"
//	derive e "ab"
//	match  e "aabb"
//	equiv  "(a*b*)*" "(a|b)*"
package interpreter

import (
	"context"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regcanon/internal/regexlib"
)

type Program struct {
	Statements []*Statement `parser:"Sep* ( @@ ( Sep+ @@? )* )?"`
}

type Statement struct {
	Pos lexer.Position

	Let    *Let    `parser:"  'let' @@"`
	Canon  *Canon  `parser:"| 'canon' @@"`
	Derive *Derive `parser:"| 'derive' @@"`
	Match  *Match  `parser:"| 'match' @@"`
	Equiv  *Equiv  `parser:"| 'equiv' @@"`
}

type Let struct {
	Name string   `parser:"@Ident '='"`
	Expr *Operand `parser:"@@"`
}

type Canon struct {
	Expr *Operand `parser:"@@"`
}

type Derive struct {
	Expr *Operand `parser:"@@"`
	Word string   `parser:"@String"`
}

type Match struct {
	Expr *Operand `parser:"@@"`
	Word string   `parser:"@String"`
}

type Equiv struct {
	Left  *Operand `parser:"@@"`
	Right *Operand `parser:"@@"`
}

// Operand is a quoted expression or the name of a let binding.
type Operand struct {
	Pos lexer.Position

	Text *string `parser:"  @String"`
	Ref  *string `parser:"| @Ident"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `=`},
	{Name: "Sep", Pattern: `[;\n]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Unquote("String"),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a script. name is used in error positions.
func Parse(name, data string) (*Program, error) {
	return parser.ParseString(name, data)
}

// Exec runs every statement in order and stops at the first error.
func (p *Program) Exec(ctx context.Context, rt *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx, rt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx context.Context, rt *Context) error {
	switch {
	case s.Let != nil:
		n, err := s.Let.Expr.Eval(rt)
		if err != nil {
			return err
		}
		rt.env().Set(s.Let.Name, n)
		return nil
	case s.Canon != nil:
		n, err := s.Canon.Expr.Eval(rt)
		if err != nil {
			return err
		}
		return rt.println(regexlib.Serialize(regexlib.Reduce(n)))
	case s.Derive != nil:
		n, err := s.Derive.Expr.Eval(rt)
		if err != nil {
			return err
		}
		d := regexlib.DeriveWord(n, s.Derive.Word)
		if d == nil {
			return rt.println("∅")
		}
		return rt.println(regexlib.Serialize(d))
	case s.Match != nil:
		n, err := s.Match.Expr.Eval(rt)
		if err != nil {
			return err
		}
		return rt.println(fmt.Sprint(regexlib.Matches(n, s.Match.Word)))
	case s.Equiv != nil:
		a, err := s.Equiv.Left.Eval(rt)
		if err != nil {
			return err
		}
		b, err := s.Equiv.Right.Eval(rt)
		if err != nil {
			return err
		}
		res, err := rt.checker().Check(ctx, a, b)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Pos, err)
		}
		if res.Equivalent {
			return rt.println("equivalent")
		}
		return rt.println(fmt.Sprintf("not equivalent (witness %q)", res.Witness))
	}
	return fmt.Errorf("%s: invalid statement", s.Pos)
}

// Eval parses a quoted operand or looks up a bound one.
func (o *Operand) Eval(rt *Context) (*regexlib.Node, error) {
	switch {
	case o.Text != nil:
		n, err := regexlib.Parse(*o.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.Pos, err)
		}
		return n, nil
	case o.Ref != nil:
		n, ok := rt.env().Get(*o.Ref)
		if !ok {
			return nil, fmt.Errorf("%s: undefined expression %s", o.Pos, *o.Ref)
		}
		return n, nil
	}
	return nil, fmt.Errorf("%s: invalid operand", o.Pos)
}

func (c *Context) println(s string) error {
	_, err := fmt.Fprintln(c.Out, s)
	return err
}

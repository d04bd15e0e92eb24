package regexlib

import (
	"errors"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tLParen           // (
	tRParen           // )
	tStar             // *
	tUnion            // |
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "end of input"
	case tChar:
		return "literal"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tUnion:
		return "'|'"
	default:
		return "unknown token"
	}
}

type token struct {
	typ tokenType
	ch  rune // for tChar
	col int  // 1-based
}

// Every rune that is not an operator is a literal, newline included.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Union", Pattern: `\|`},
	{Name: "Char", Pattern: `(?s:.)`},
})

var tokenTypes = func() map[lexer.TokenType]tokenType {
	sym := exprLexer.Symbols()
	return map[lexer.TokenType]tokenType{
		sym["LParen"]: tLParen,
		sym["RParen"]: tRParen,
		sym["Star"]:   tStar,
		sym["Union"]:  tUnion,
		sym["Char"]:   tChar,
	}
}()

type scanner struct {
	lex lexer.Lexer
}

func newScanner(text string) (*scanner, error) {
	lex, err := exprLexer.LexString("", text)
	if err != nil {
		return nil, lexError(err)
	}
	return &scanner{lex: lex}, nil
}

func (s *scanner) next() (token, error) {
	t, err := s.lex.Next()
	if err != nil {
		return token{}, lexError(err)
	}
	if t.EOF() {
		return token{typ: tEOF, col: t.Pos.Column}, nil
	}
	r, _ := utf8.DecodeRuneInString(t.Value)
	return token{typ: tokenTypes[t.Type], ch: r, col: t.Pos.Column}, nil
}

func lexError(err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &SyntaxError{Column: lerr.Pos.Column, Message: lerr.Msg}
	}
	return &SyntaxError{Column: 1, Message: err.Error()}
}

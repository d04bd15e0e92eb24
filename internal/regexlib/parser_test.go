package regexlib

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func mustParse(t *testing.T, text string) *Node {
	t.Helper()
	n, err := Parse(text)
	require.NoError(t, err, "parse %q", text)
	return n
}

func sameTree(t *testing.T, want, got *Node) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Node{})); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

// ------------------------------------------------------------------- Lexer

func TestScannerTokens(t *testing.T) {
	sc, err := newScanner("a(*)|é")
	require.NoError(t, err)
	want := []token{
		{typ: tChar, ch: 'a', col: 1},
		{typ: tLParen, ch: '(', col: 2},
		{typ: tStar, ch: '*', col: 3},
		{typ: tRParen, ch: ')', col: 4},
		{typ: tUnion, ch: '|', col: 5},
		{typ: tChar, ch: 'é', col: 6},
	}
	for i, w := range want {
		tok, err := sc.next()
		require.NoError(t, err)
		if tok != w {
			t.Fatalf("tok %d want %+v got %+v", i, w, tok)
		}
	}
	tok, err := sc.next()
	require.NoError(t, err)
	assert.Equal(t, tEOF, tok.typ)
	assert.Equal(t, 7, tok.col)
}

// ------------------------------------------------------------------- Parser

func TestParseShapes(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		want string
	}{
		{"", KindConcat, ""},
		{"a", KindLiteral, "a"},
		{"abc", KindConcat, "abc"},
		{"abc|cde", KindAlt, "abc|cde"},
		{"ab(cd)ef", KindConcat, "abcdef"},
		{"(abc)*", KindStar, "(abc)*"},
		{"(abc)*(cde)", KindConcat, "(abc)*cde"},
		{"(ab)*(ed)*", KindConcat, "(ab)*(ed)*"},
		{"(cd)qa*", KindConcat, "cdq(a)*"},
		{"(a|(b|(c|d)))", KindAlt, "a|b|c|d"},
		{"a*abc(q)r", KindConcat, "(a)*abcqr"},
		{"(abc)*((cde)|(edf))**|(qrp)", KindAlt, "(abc)*(cde|edf)*|qrp"},
		{"a|", KindAlt, "a|"},
		{"()", KindConcat, ""},
		{"()*", KindStar, "()*"},
		{"x(a|b)y", KindConcat, "x(a|b)y"},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.in)
		assert.Equal(t, tt.kind, n.Kind(), "kind of %q", tt.in)
		assert.Equal(t, tt.want, Serialize(n), "serialize %q", tt.in)
	}
}

func TestParseStarBindsToAtom(t *testing.T) {
	sameTree(t, Concat(Literal('a'), Star(Literal('b'))), mustParse(t, "ab*"))
}

func TestParseRepeatedStar(t *testing.T) {
	sameTree(t, mustParse(t, "a*"), mustParse(t, "a**"))
	sameTree(t, mustParse(t, "(abc)*"), mustParse(t, "(abc)***"))
	sameTree(t, mustParse(t, "a*"), mustParse(t, "(a*)*"))
}

func TestParseEmptyBranches(t *testing.T) {
	n := mustParse(t, "|a|")
	require.Equal(t, KindAlt, n.Kind())
	br := n.Branches()
	require.Len(t, br, 3)
	assert.True(t, br[0].IsEmpty())
	assert.True(t, br[2].IsEmpty())
	assert.True(t, n.Nullable())
}

func TestNullable(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", false},
		{"a*", true},
		{"(ab)*", true},
		{"ab", false},
		{"a|b", false},
		{"a|b*", true},
		{"a*b*", true},
		{"a*b", false},
		{"(a|)b*", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParse(t, tt.in).Nullable(), "nullable(%q)", tt.in)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		col int
		msg string
	}{
		{"*a", 1, "expected something before '*'"},
		{"a|*", 3, "expected something before '*'"},
		{"(*)", 2, "expected something before '*'"},
		{"(a", 3, "unexpected end of input, expected ')'"},
		{"((a)", 5, "unexpected end of input, expected ')'"},
		{"(", 2, "unexpected end of input, expected ')'"},
		{"a)", 2, "unbalanced ')'"},
		{"ab**)c", 5, "unbalanced ')'"},
		{")", 1, "unbalanced ')'"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		require.Error(t, err, "parse %q", tt.in)
		var serr *SyntaxError
		require.True(t, errors.As(err, &serr), "want *SyntaxError for %q, got %T", tt.in, err)
		assert.Equal(t, tt.col, serr.Column, "column for %q", tt.in)
		assert.Equal(t, tt.msg, serr.Message, "message for %q", tt.in)
	}
}

func TestSyntaxErrorFormat(t *testing.T) {
	err := &SyntaxError{Column: 4, Message: "unbalanced ')'"}
	assert.Equal(t, "[col 4] unbalanced ')'", err.Error())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("(") })
}

package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBaseCases(t *testing.T) {
	d := Derive(mustParse(t, "abc"), 'a')
	require.NotNil(t, d)
	assert.Equal(t, "bc", Serialize(d))

	d = Derive(mustParse(t, "a"), 'a')
	require.NotNil(t, d)
	assert.Equal(t, "", Serialize(d))
	assert.True(t, d.Nullable())

	assert.Nil(t, Derive(mustParse(t, "a"), 'b'))
	assert.Nil(t, Derive(mustParse(t, ""), 'a'))
}

func TestDeriveAlternation(t *testing.T) {
	d := Derive(mustParse(t, "a|b|ab"), 'a')
	require.NotNil(t, d)
	assert.True(t, d.Nullable())
	assert.Equal(t, reduced(t, "(|b)"), Serialize(Reduce(d)))

	assert.Nil(t, Derive(mustParse(t, "a|b"), 'c'))
	// one survivor comes back unwrapped
	d = Derive(mustParse(t, "ab|c"), 'a')
	require.NotNil(t, d)
	assert.Equal(t, KindLiteral, d.Kind())
}

func TestDerive(t *testing.T) {
	tests := []struct {
		in   string
		sym  rune
		want string // reduced; "∅" for the empty language
	}{
		{"(ab)*", 'a', "b(ab)*"},
		{"(ab)*", 'b', "∅"},
		{"a*b", 'a', "(a)*b"},
		{"a*b", 'b', ""},
		{"a*b*c", 'b', "(b)*c"},
		{"a*b*c", 'c', ""},
		{"a*bc*", 'c', "∅"},
		{"(a|b)*abb", 'a', "(|(a|b)*a)bb"},
		{"ab*", 'a', "(b)*"},
		{"(a|ab)c", 'a', "(|b)c"},
	}
	for _, tt := range tests {
		d := Derive(Reduce(mustParse(t, tt.in)), tt.sym)
		got := "∅"
		if d != nil {
			got = Serialize(Reduce(d))
		}
		assert.Equal(t, tt.want, got, "derive(%q, %q)", tt.in, tt.sym)
	}
}

func TestDeriveStarReattachesStar(t *testing.T) {
	s := mustParse(t, "(ab)*")
	d := Derive(s, 'a')
	require.NotNil(t, d)
	f := d.Factors()
	require.Len(t, f, 2)
	assert.Same(t, s, f[1])
}

func TestMatches(t *testing.T) {
	re := mustParse(t, "(a|b)*abb")
	for w, want := range map[string]bool{
		"abb":   true,
		"aabb":  true,
		"babb":  true,
		"abab":  false,
		"":      false,
		"abbc":  false,
		"bbabb": true,
	} {
		assert.Equal(t, want, Matches(re, w), "match %q", w)
	}
	assert.True(t, Matches(mustParse(t, ""), ""))
	assert.True(t, Matches(mustParse(t, "a*"), "aaaa"))
	assert.False(t, Matches(mustParse(t, "a*"), "ab"))
}

func TestDeriveWord(t *testing.T) {
	assert.Equal(t, "b", Serialize(DeriveWord(mustParse(t, "aab"), "aa")))
	assert.Nil(t, DeriveWord(mustParse(t, "aab"), "b"))
	assert.Equal(t, "aab", Serialize(DeriveWord(mustParse(t, "aab"), "")))
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, []rune{'a', 'b', 'c'}, Alphabet(mustParse(t, "(c|a)*b"), mustParse(t, "ab")))
	assert.Empty(t, Alphabet(mustParse(t, "()*")))
}

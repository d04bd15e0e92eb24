// Package reggen generates random regular expressions over a small alphabet
// of letters, for property tests and benchmarks.
package reggen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const maxAlphabetSize = 52

// ErrParams is returned for generator parameters out of range.
var ErrParams = errors.New("reggen: invalid parameters")

// Params shape the generated expressions.
type Params struct {
	AlphabetSize int    // letters a.. then A..; at most 52
	StarHeight   int    // maximum nesting of stars, plus one
	Letters      int    // upper bound on letters per expression
	Seed         uint64 // same seed, same sequence
}

// Generator produces expressions in the syntax regexlib.Parse reads.
type Generator struct {
	p   Params
	rnd *rand.Rand
}

func New(p Params) (*Generator, error) {
	if p.AlphabetSize < 1 || p.AlphabetSize > maxAlphabetSize {
		return nil, fmt.Errorf("%w: alphabet size must be in 1..%d, got %d", ErrParams, maxAlphabetSize, p.AlphabetSize)
	}
	if p.StarHeight < 1 {
		return nil, fmt.Errorf("%w: star height must be positive, got %d", ErrParams, p.StarHeight)
	}
	if p.Letters < 1 {
		return nil, fmt.Errorf("%w: letter count must be positive, got %d", ErrParams, p.Letters)
	}
	return &Generator{p: p, rnd: rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))}, nil
}

// Generate returns one non-empty expression.
func (g *Generator) Generate() string {
	for {
		if s := g.expr(g.p.Letters, g.p.StarHeight); s != "" {
			return s
		}
	}
}

// GenerateN returns n expressions.
func (g *Generator) GenerateN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = g.Generate()
	}
	return out
}

func (g *Generator) expr(length, height int) string {
	if length < 1 || height < 1 {
		return ""
	}
	if length == 1 {
		return g.letter()
	}
	switch g.rnd.IntN(4) {
	case 0:
		left := g.rnd.IntN(length)
		return g.expr(left, height) + g.expr(length-left, height)
	case 1:
		left := g.rnd.IntN(length)
		l, r := g.expr(left, height), g.expr(length-left, height)
		if l == "" || r == "" {
			return l + r
		}
		return "(" + l + "|" + r + ")"
	case 2:
		return g.letter()
	default:
		return star(g.expr(length-1, height-1))
	}
}

func (g *Generator) letter() string {
	i := g.rnd.IntN(g.p.AlphabetSize)
	if i < 26 {
		return string(rune('a' + i))
	}
	return string(rune('A' + i - 26))
}

func star(e string) string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e + "*"
	default:
		return "(" + e + ")*"
	}
}

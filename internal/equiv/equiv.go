// Package equiv decides whether two expressions denote the same language by
// exploring their derivatives in lockstep. Every derivative is reduced to
// canonical form before it is compared or remembered, so syntactically equal
// states are recognized as one.
package equiv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emirpasic/gods/sets/hashset"

	"regcanon/internal/regexlib"
)

// DefaultMaxStates bounds the number of state pairs a Checker visits.
const DefaultMaxStates = 10000

// ErrStateLimit is returned when the exploration exceeds MaxStates.
var ErrStateLimit = errors.New("equiv: state limit exceeded")

// Result of a Check.
type Result struct {
	Equivalent bool
	// Witness is a shortest word in exactly one of the two languages. Only
	// meaningful when Equivalent is false.
	Witness string
	// States is the number of state pairs visited.
	States int
}

// Checker holds the exploration settings. The zero value is usable.
type Checker struct {
	MaxStates int
	Logger    *slog.Logger
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func (c *Checker) maxStates() int {
	if c.MaxStates <= 0 {
		return DefaultMaxStates
	}
	return c.MaxStates
}

// pair is one joint state; a nil side is the empty language.
type pair struct {
	a, b *regexlib.Node
	word string
}

func stateKey(n *regexlib.Node) string {
	if n == nil {
		// not a valid serialization, so it cannot clash with a real key
		return ")"
	}
	return n.Key()
}

func nullable(n *regexlib.Node) bool { return n != nil && n.Nullable() }

func step(n *regexlib.Node, sym rune) *regexlib.Node {
	if n == nil {
		return nil
	}
	d := regexlib.Derive(n, sym)
	if d == nil {
		return nil
	}
	return regexlib.Reduce(d)
}

// Check compares the languages of a and b.
func (c *Checker) Check(ctx context.Context, a, b *regexlib.Node) (Result, error) {
	log := c.logger()
	limit := c.maxStates()
	alpha := regexlib.Alphabet(a, b)

	start := pair{a: regexlib.Reduce(a), b: regexlib.Reduce(b)}
	seen := hashset.New()
	seen.Add(stateKey(start.a) + "\x00" + stateKey(start.b))
	queue := []pair{start}

	var res Result
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		cur := queue[0]
		queue = queue[1:]
		res.States++

		if nullable(cur.a) != nullable(cur.b) {
			log.Debug("languages differ", "witness", cur.word, "states", res.States)
			res.Witness = cur.word
			return res, nil
		}
		if res.States > limit {
			return res, fmt.Errorf("%w: visited %d pairs", ErrStateLimit, res.States)
		}
		for _, sym := range alpha {
			next := pair{a: step(cur.a, sym), b: step(cur.b, sym), word: cur.word + string(sym)}
			if next.a == nil && next.b == nil {
				continue
			}
			k := stateKey(next.a) + "\x00" + stateKey(next.b)
			if seen.Contains(k) {
				continue
			}
			seen.Add(k)
			queue = append(queue, next)
		}
	}
	log.Debug("languages equal", "states", res.States)
	res.Equivalent = true
	return res, nil
}

// CheckStrings parses and compares two expressions.
func (c *Checker) CheckStrings(ctx context.Context, a, b string) (Result, error) {
	na, err := regexlib.Parse(a)
	if err != nil {
		return Result{}, fmt.Errorf("first expression: %w", err)
	}
	nb, err := regexlib.Parse(b)
	if err != nil {
		return Result{}, fmt.Errorf("second expression: %w", err)
	}
	return c.Check(ctx, na, nb)
}

package regexlib

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Canonicalize brings n into ACI canonical form: alternations are flattened,
// deduplicated and sorted by key, and common leading and trailing factors of
// their branches are pulled out. Canonicalize is idempotent.
//
// Equality of keys is syntactic. Branches that denote the same language but
// print differently survive; telling those apart is left to derivatives.
func Canonicalize(n *Node) *Node {
	switch n.kind {
	case KindLiteral:
		return n
	case KindConcat:
		if len(n.children) == 0 {
			return n
		}
		return Concat(mapNodes(n.children, Canonicalize)...)
	case KindStar:
		return Star(Canonicalize(n.Body()))
	case KindAlt:
		return canonicalAlt(mapNodes(n.children, Canonicalize))
	}
	invariant(false, "unknown node kind %d", n.kind)
	return nil
}

// Reduce is the normalization every tree goes through before it is compared
// or memoized: star normal form, then canonical form.
func Reduce(n *Node) *Node {
	return Canonicalize(NormalizeStars(n))
}

// Canonical parses text and reduces the result.
func Canonical(text string) (*Node, error) {
	n, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Reduce(n), nil
}

// canonicalAlt unions already canonical branches.
func canonicalAlt(branches []*Node) *Node {
	sorted := dedupSort(branches)
	if len(sorted) == 1 {
		// e|e == e, e*|e* == e* included
		return sorted[0]
	}
	if factored := factor(sorted); factored != nil {
		return factored
	}
	return Alt(sorted...)
}

// dedupSort flattens nested alternations and returns the distinct branches
// in key order.
func dedupSort(branches []*Node) []*Node {
	byKey := treemap.NewWithStringComparator()
	for _, b := range branches {
		if b.kind == KindAlt {
			for _, c := range b.children {
				byKey.Put(c.key, c)
			}
			continue
		}
		byKey.Put(b.key, b)
	}
	out := make([]*Node, 0, byKey.Size())
	for _, v := range byKey.Values() {
		out = append(out, v.(*Node))
	}
	return out
}

// factor rewrites p x1 s | p x2 s | … as p (x1|x2|…) s, where p and s are
// the longest runs of factors every branch starts and ends with. A branch
// with nothing left in the middle contributes ε. It returns nil when there
// is nothing to factor, or when a star branch makes head and tail alignment
// meaningless.
func factor(branches []*Node) *Node {
	seqs := make([][]*Node, len(branches))
	for i, b := range branches {
		if b.kind == KindStar {
			return nil
		}
		seqs[i] = b.Factors()
	}

	shortest := len(seqs[0])
	for _, s := range seqs[1:] {
		shortest = min(shortest, len(s))
	}

	head := 0
	for head < shortest && sameAt(seqs, func([]*Node) int { return head }) {
		head++
	}
	tail := 0
	for head+tail < shortest && sameAt(seqs, func(s []*Node) int { return len(s) - 1 - tail }) {
		tail++
	}
	if head == 0 && tail == 0 {
		return nil
	}

	first := seqs[0]
	middles := make([]*Node, len(seqs))
	for i, s := range seqs {
		middles[i] = Concat(s[head : len(s)-tail]...)
	}

	parts := make([]*Node, 0, head+tail+1)
	parts = append(parts, first[:head]...)
	parts = append(parts, canonicalAlt(middles))
	parts = append(parts, first[len(first)-tail:]...)
	return Concat(parts...)
}

// sameAt reports whether every sequence holds the same factor at the index
// chosen by at.
func sameAt(seqs [][]*Node, at func([]*Node) int) bool {
	want := seqs[0][at(seqs[0])].key
	for _, s := range seqs[1:] {
		if s[at(s)].key != want {
			return false
		}
	}
	return true
}

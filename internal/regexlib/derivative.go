package regexlib

// Derive returns the Brzozowski derivative of n by sym: the expression for
// every w such that sym·w is in the language of n. A nil result is the empty
// language. The result is not canonical; pass it through Reduce before
// comparing or memoizing it.
func Derive(n *Node, sym rune) *Node {
	switch n.kind {
	case KindLiteral:
		if n.sym == sym {
			return epsilon
		}
		return nil
	case KindAlt:
		return union(n.children, func(b *Node) *Node { return Derive(b, sym) })
	case KindConcat:
		return deriveConcat(n.children, sym)
	case KindStar:
		d := Derive(n.Body(), sym)
		if d == nil {
			return nil
		}
		// D(e*) = D(e) e*
		return Concat(d, n)
	}
	invariant(false, "unknown node kind %d", n.kind)
	return nil
}

// deriveConcat tries every position the symbol can be consumed at: the
// first factor, and each factor after an all-nullable prefix.
func deriveConcat(factors []*Node, sym rune) *Node {
	var parts []*Node
	for i, f := range factors {
		if d := Derive(f, sym); d != nil {
			parts = append(parts, Concat(append([]*Node{d}, factors[i+1:]...)...))
		}
		if !f.nullable {
			break
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return Alt(parts...)
}

// union keeps the non-empty results of f over nodes. nil when none survive.
func union(nodes []*Node, f func(*Node) *Node) *Node {
	var parts []*Node
	for _, c := range nodes {
		if d := f(c); d != nil {
			parts = append(parts, d)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return Alt(parts...)
}

// DeriveWord derives n by each symbol of word in turn, reducing after every
// step. It stops early with nil once the language becomes empty.
func DeriveWord(n *Node, word string) *Node {
	cur := Reduce(n)
	for _, c := range word {
		d := Derive(cur, c)
		if d == nil {
			return nil
		}
		cur = Reduce(d)
	}
	return cur
}

// Matches reports whether word belongs to the language of n.
func Matches(n *Node, word string) bool {
	d := DeriveWord(n, word)
	return d != nil && d.nullable
}

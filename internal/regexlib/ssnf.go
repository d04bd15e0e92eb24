package regexlib

// NormalizeStars rewrites n into star normal form: no star body can match
// the empty word through a route that repeats nothing. The rewrite is
// bottom-up and keeps the language unchanged.
func NormalizeStars(n *Node) *Node {
	switch n.kind {
	case KindLiteral:
		return n
	case KindConcat:
		if len(n.children) == 0 {
			return n
		}
		return Concat(mapNodes(n.children, NormalizeStars)...)
	case KindAlt:
		return Alt(mapNodes(n.children, NormalizeStars)...)
	case KindStar:
		body := strip(n.Body())
		if body.IsEmpty() {
			// ()* == ε
			return epsilon
		}
		return Star(body)
	}
	invariant(false, "unknown node kind %d", n.kind)
	return nil
}

// strip computes the body of a normalized star: once under a star, inner
// stars and fully nullable concatenations add nothing, so
//
//	(e*)*          -> (e)*
//	(e1 e2 … en)*  -> (e1|e2|…|en)*   when every ei is nullable
//	(ε|e)*         -> (e)*
//
// Non-nullable concatenations are normalized as usual.
func strip(n *Node) *Node {
	switch n.kind {
	case KindLiteral:
		return n
	case KindStar:
		return strip(n.Body())
	case KindAlt:
		return stripAll(n.children)
	case KindConcat:
		if !n.nullable {
			return NormalizeStars(n)
		}
		if len(n.children) == 0 {
			return n
		}
		return stripAll(n.children)
	}
	invariant(false, "unknown node kind %d", n.kind)
	return nil
}

// stripAll strips every node and unions the results, dropping ε branches
// while anything else is left.
func stripAll(nodes []*Node) *Node {
	branches := make([]*Node, 0, len(nodes))
	for _, c := range nodes {
		s := strip(c)
		switch {
		case s.IsEmpty():
			continue
		case s.kind == KindAlt:
			for _, b := range s.children {
				if !b.IsEmpty() {
					branches = append(branches, b)
				}
			}
		default:
			branches = append(branches, s)
		}
	}
	if len(branches) == 0 {
		return epsilon
	}
	return Alt(branches...)
}

func mapNodes(nodes []*Node, f func(*Node) *Node) []*Node {
	out := make([]*Node, len(nodes))
	for i, c := range nodes {
		out[i] = f(c)
	}
	return out
}

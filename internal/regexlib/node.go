package regexlib

import "strings"

// Kind tags the variant of a Node.
type Kind int

const (
	KindAlt     Kind = iota // b1 | b2 | ...
	KindConcat              // f1 f2 ... (zero factors is ε)
	KindStar                // (body)*
	KindLiteral             // single symbol
)

func (k Kind) String() string {
	switch k {
	case KindAlt:
		return "alt"
	case KindConcat:
		return "concat"
	case KindStar:
		return "star"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Node is an immutable regular expression tree. Nodes are only built through
// the constructors below, which keep the shape invariant: an alternation
// never holds an alternation, a concatenation never holds a concatenation and
// a star never wraps a star. Nullability and the canonical key are computed
// once, bottom-up, when the node is built.
type Node struct {
	kind     Kind
	children []*Node
	sym      rune
	nullable bool
	key      string
}

var epsilon = &Node{kind: KindConcat, nullable: true}

// Empty returns ε, the zero-factor concatenation.
func Empty() *Node { return epsilon }

// Literal returns the single-symbol expression c.
func Literal(c rune) *Node {
	return &Node{kind: KindLiteral, sym: c, key: string(c)}
}

// Concat joins factors left to right. Nested concatenations are spliced in,
// ε factors vanish and a single remaining factor is returned as is.
func Concat(factors ...*Node) *Node {
	flat := make([]*Node, 0, len(factors))
	for _, f := range factors {
		if f.kind == KindConcat {
			flat = append(flat, f.children...)
			continue
		}
		flat = append(flat, f)
	}
	switch len(flat) {
	case 0:
		return epsilon
	case 1:
		return flat[0]
	}
	n := &Node{kind: KindConcat, children: flat, nullable: true}
	var sb strings.Builder
	for _, f := range flat {
		n.nullable = n.nullable && f.nullable
		sb.WriteString(f.factorKey())
	}
	n.key = sb.String()
	return n
}

// Alt builds the union of branches in the given order. Nested alternations
// are flattened into the branch list and a single branch is returned as is.
// Alt does not dedup or sort; that is Canonicalize's job.
func Alt(branches ...*Node) *Node {
	flat := make([]*Node, 0, len(branches))
	for _, b := range branches {
		if b.kind == KindAlt {
			flat = append(flat, b.children...)
			continue
		}
		flat = append(flat, b)
	}
	invariant(len(flat) > 0, "alternation with no branches")
	if len(flat) == 1 {
		return flat[0]
	}
	n := &Node{kind: KindAlt, children: flat}
	keys := make([]string, len(flat))
	for i, b := range flat {
		n.nullable = n.nullable || b.nullable
		keys[i] = b.key
	}
	n.key = strings.Join(keys, "|")
	return n
}

// Star wraps body in a Kleene star. Starring a star returns it unchanged.
func Star(body *Node) *Node {
	if body.kind == KindStar {
		return body
	}
	return &Node{
		kind:     KindStar,
		children: []*Node{body},
		nullable: true,
		key:      "(" + body.key + ")*",
	}
}

func (n *Node) Kind() Kind { return n.kind }

// Nullable reports whether the language of n contains the empty string.
func (n *Node) Nullable() bool { return n.nullable }

// Key is the serialized form of n, used as the dedup and sort key.
func (n *Node) Key() string { return n.key }

// IsEmpty reports whether n is ε.
func (n *Node) IsEmpty() bool { return n.kind == KindConcat && len(n.children) == 0 }

// Branches returns the branches of an alternation.
func (n *Node) Branches() []*Node {
	invariant(n.kind == KindAlt, "Branches on %s", n.kind)
	return n.children
}

// Factors returns the factors of a concatenation, or n alone for any other
// non-ε node. Canonicalize aligns prefixes and suffixes over this view.
func (n *Node) Factors() []*Node {
	switch n.kind {
	case KindConcat:
		return n.children
	case KindAlt:
		invariant(false, "Factors on alternation")
	}
	return []*Node{n}
}

// Body returns the operand of a star.
func (n *Node) Body() *Node {
	invariant(n.kind == KindStar, "Body on %s", n.kind)
	return n.children[0]
}

// Symbol returns the rune of a literal.
func (n *Node) Symbol() rune {
	invariant(n.kind == KindLiteral, "Symbol on %s", n.kind)
	return n.sym
}

// factorKey is the key of n when written as a concatenation factor:
// alternations need parentheses there, everything else stands alone.
func (n *Node) factorKey() string {
	if n.kind == KindAlt {
		return "(" + n.key + ")"
	}
	return n.key
}

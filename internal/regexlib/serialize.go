package regexlib

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Serialize renders n in the textual form Parse reads back: juxtaposition
// for concatenation, '|' between branches (parenthesized when the
// alternation is a factor), and "(body)*" for a star. ε renders as "".
func Serialize(n *Node) string { return n.key }

func (n *Node) String() string { return n.key }

// Alphabet returns the distinct symbols used in n, in ascending order.
func Alphabet(nodes ...*Node) []rune {
	set := treeset.NewWith(utils.RuneComparator)
	for _, n := range nodes {
		collect(n, set)
	}
	out := make([]rune, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(rune))
	}
	return out
}

func collect(n *Node, set *treeset.Set) {
	if n == nil {
		return
	}
	if n.kind == KindLiteral {
		set.Add(n.sym)
		return
	}
	for _, c := range n.children {
		collect(c, set)
	}
}

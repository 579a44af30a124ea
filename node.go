package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman code tree.  It is either a *Leaf or an
// *Internal; no other implementations exist.
type Node interface {
	// Weight is the frequency of a leaf's Symbol, or the sum of the
	// weights of an internal node's children.
	Weight() uint64

	isNode()
}

// Leaf is a tree node that holds exactly one Symbol.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// NewLeaf constructs a Leaf.
func NewLeaf(sym Symbol, weight uint64) *Leaf {
	return &Leaf{symbol: sym, weight: weight}
}

// Symbol returns the Symbol held by this Leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight implements Node.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (*Leaf) isNode() {}

// Internal is a tree node with exactly two children.
type Internal struct {
	left   Node
	right  Node
	weight uint64
}

// NewInternal constructs an Internal node whose weight is the sum of its
// children's weights.
func NewInternal(left, right Node) *Internal {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")

	sum := left.Weight() + right.Weight()
	assert.Assertf(sum >= left.Weight(), "weight overflow: %d + %d", left.Weight(), right.Weight())

	return &Internal{left: left, right: right, weight: sum}
}

// Left returns the child reached by a 0 bit.
func (node *Internal) Left() Node {
	return node.left
}

// Right returns the child reached by a 1 bit.
func (node *Internal) Right() Node {
	return node.right
}

// Weight implements Node.
func (node *Internal) Weight() uint64 {
	return node.weight
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Walk visits every node of the tree rooted at root in pre-order, left
// before right, passing each node's path from the root.  If fn returns
// false, the children of that node are skipped.
func Walk(root Node, fn func(node Node, path Code) bool) {
	if root == nil {
		return
	}
	walk(root, Code{}, fn)
}

func walk(node Node, path Code, fn func(Node, Code) bool) {
	if !fn(node, path) {
		return
	}
	if in, ok := node.(*Internal); ok {
		walk(in.left, path.Append(0), fn)
		walk(in.right, path.Append(1), fn)
	}
}

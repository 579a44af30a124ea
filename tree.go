package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds the Huffman code tree for the given frequency table.
//
// Leaves enter the queue in the table's order.  On each step the two
// lightest nodes are removed, the first one extracted becoming the left
// child of a new Internal node and the second the right, and the new node
// goes back into the queue.  The last remaining node is the root.  A table
// with a single Symbol yields a root that is itself a *Leaf.
//
func BuildTree(freqs Frequencies) (Node, error) {
	if freqs.Len() == 0 {
		return nil, fmt.Errorf("%w: no symbols to build a tree from", ErrInvalidInput)
	}

	var q nodeQueue
	for _, entry := range freqs.entries {
		q.Insert(NewLeaf(entry.Symbol, entry.Count))
	}

	var merges int
	for q.Len() > 1 {
		a := q.ExtractMin()
		b := q.ExtractMin()
		q.Insert(NewInternal(a, b))
		merges++
	}

	root := q.ExtractMin()
	assert.Assertf(root.Weight() == freqs.Total(), "root weight %d != total count %d", root.Weight(), freqs.Total())

	log.Debugf("built tree: %d leaves, %d merges, weight %d", freqs.Len(), merges, root.Weight())
	return root, nil
}

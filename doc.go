// Package huffman builds Huffman codes for text from its symbol frequencies,
// encodes the text into a bit stream, and decodes the stream back using the
// code tree.
//
// Trees are built greedily with a min-ordered priority queue.  Nodes of equal
// weight leave the queue in the order they entered it, and leaves enter it in
// order of each symbol's first appearance in the text, so the same text
// always yields the same tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

import (
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

package huffman

import (
	"fmt"
	"strings"
)

// Decode walks the tree rooted at root bit by bit against s: 0 moves to the
// left child, 1 to the right, and reaching a *Leaf emits its Symbol and
// returns to the root.
//
// If root is itself a *Leaf, every bit decodes to its Symbol.
//
// If s ends in the middle of a code, Decode returns a *TruncatedStreamError
// and no text.
//
func Decode(s Stream, root Node) (string, error) {
	if root == nil {
		return "", fmt.Errorf("%w: nil tree", ErrInvalidInput)
	}

	var sb strings.Builder

	if leaf, ok := root.(*Leaf); ok && leaf != nil {
		for i := 0; i < s.Len(); i++ {
			sb.WriteRune(rune(leaf.symbol))
		}
		return sb.String(), nil
	}

	var (
		cursor = root
		start  int
	)
	for i := 0; i < s.Len(); i++ {
		if cursor == root {
			start = i
		}

		in, ok := cursor.(*Internal)
		if !ok || in == nil {
			return "", fmt.Errorf("%w: malformed tree at bit %d", ErrInvalidInput, i)
		}
		if s.Bit(i) == 0 {
			cursor = in.left
		} else {
			cursor = in.right
		}

		switch x := cursor.(type) {
		case *Leaf:
			if x == nil {
				return "", fmt.Errorf("%w: nil leaf at bit %d", ErrInvalidInput, i)
			}
			sb.WriteRune(rune(x.symbol))
			cursor = root
		case nil:
			return "", fmt.Errorf("%w: missing child at bit %d", ErrInvalidInput, i)
		}
	}

	if cursor != root {
		return "", &TruncatedStreamError{Offset: start, Pending: s.Slice(start, s.Len())}
	}
	return sb.String(), nil
}

// DecodeString is like Decode, but takes the stream as a string of '0' and
// '1' characters.
func DecodeString(bits string, root Node) (string, error) {
	s, err := ParseStream(bits)
	if err != nil {
		return "", err
	}
	return Decode(s, root)
}

package huffman

import (
	"fmt"
	"unicode/utf8"
)

// Encoding is the result of encoding a text: the encoded bit stream, plus
// the tree (and its derived code table) needed to decode it.
type Encoding struct {
	Stream Stream
	Root   Node
	Table  CodeTable
}

// Encode counts the Symbols of text, builds a Huffman tree and code table
// from those counts, and encodes text with them.  An empty text, or one that
// is not valid UTF-8, returns ErrInvalidInput.
func Encode(text string) (Encoding, error) {
	if text == "" {
		return Encoding{}, fmt.Errorf("%w: empty source text", ErrInvalidInput)
	}
	if err := checkUTF8(text); err != nil {
		return Encoding{}, err
	}

	root, err := BuildTree(CountFrequencies(text))
	if err != nil {
		return Encoding{}, err
	}

	table := BuildTable(root)
	stream, err := EncodeWith(text, table)
	if err != nil {
		return Encoding{}, err
	}

	log.Debugf("encoded %d bytes (%d distinct symbols) into %d bits", len(text), table.Len(), stream.Len())
	return Encoding{Stream: stream, Root: root, Table: table}, nil
}

// EncodeWith encodes text using an existing code table.  If text contains a
// Symbol missing from the table, EncodeWith returns a *SymbolNotFoundError
// and no Stream.  Text that is not valid UTF-8 returns ErrInvalidInput.
func EncodeWith(text string, table CodeTable) (Stream, error) {
	if err := checkUTF8(text); err != nil {
		return Stream{}, err
	}

	var s Stream
	for offset, ch := range text {
		hc, found := table.Lookup(Symbol(ch))
		if !found {
			return Stream{}, &SymbolNotFoundError{Symbol: Symbol(ch), Offset: offset}
		}
		s.AppendCode(hc)
	}
	return s, nil
}

func checkUTF8(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	for offset, ch := range text {
		if ch == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[offset:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at offset %d", ErrInvalidInput, offset)
			}
		}
	}
	return fmt.Errorf("%w: invalid UTF-8", ErrInvalidInput)
}

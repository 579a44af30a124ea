package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when there is nothing to build a tree
	// from, e.g. an empty source text.
	ErrInvalidInput = errors.New("huffman: invalid input")

	// ErrSymbolNotFound is matched by *SymbolNotFoundError.
	ErrSymbolNotFound = errors.New("huffman: symbol not found in code table")

	// ErrTruncatedStream is matched by *TruncatedStreamError.
	ErrTruncatedStream = errors.New("huffman: truncated stream")
)

// SymbolNotFoundError is returned when the text being encoded contains a
// Symbol that has no entry in the CodeTable.
type SymbolNotFoundError struct {
	Symbol Symbol

	// Offset is the byte offset of the Symbol within the text.
	Offset int
}

func (err *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("huffman: symbol %v at offset %d not found in code table", err.Symbol, err.Offset)
}

func (err *SymbolNotFoundError) Is(target error) bool {
	return target == ErrSymbolNotFound
}

// TruncatedStreamError is returned when a Stream ends in the middle of a
// code.
type TruncatedStreamError struct {
	// Offset is the bit offset at which the unfinished code began.
	Offset int

	// Pending holds the bits of the unfinished code.
	Pending Stream
}

func (err *TruncatedStreamError) Error() string {
	return fmt.Sprintf("huffman: stream ends inside a code: %d bits %q pending from bit %d", err.Pending.Len(), err.Pending, err.Offset)
}

func (err *TruncatedStreamError) Is(target error) bool {
	return target == ErrTruncatedStream
}

var (
	_ error = (*SymbolNotFoundError)(nil)
	_ error = (*TruncatedStreamError)(nil)
)

package huffman

import (
	"fmt"
	"strconv"
)

// Symbol represents one Unicode code point of the source text.
type Symbol rune

// String returns the Go-quoted representation of this Symbol.
func (sym Symbol) String() string {
	return strconv.QuoteRune(rune(sym))
}

var _ fmt.Stringer = Symbol(0)

package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of a tree to its Code.  It is immutable once
// built.
type CodeTable struct {
	codes   map[Symbol]Code
	minSize byte
	maxSize byte
}

// BuildTable walks the tree rooted at root once and records the path to each
// leaf as that leaf's Code.
//
// If root is itself a *Leaf, its Symbol is assigned the one-bit code "0",
// since an empty code could not be decoded.
//
func BuildTable(root Node) CodeTable {
	assert.Assertf(root != nil, "root is nil")

	t := CodeTable{codes: make(map[Symbol]Code)}
	Walk(root, func(node Node, path Code) bool {
		leaf, ok := node.(*Leaf)
		if !ok {
			return true
		}
		if path.Size == 0 {
			path = path.Append(0)
		}
		_, dupe := t.codes[leaf.symbol]
		assert.Assertf(!dupe, "symbol %v appears in more than one leaf", leaf.symbol)
		t.codes[leaf.symbol] = path
		if len(t.codes) == 1 || t.minSize > path.Size {
			t.minSize = path.Size
		}
		if t.maxSize < path.Size {
			t.maxSize = path.Size
		}
		return false
	})
	return t
}

// Lookup returns the Code for sym.  The second return value is false if sym
// is not in the table.
func (t CodeTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := t.codes[sym]
	return hc, found
}

// Len returns the number of Symbols in the table.
func (t CodeTable) Len() int {
	return len(t.codes)
}

// MinSize is the bit length of the shortest code.
func (t CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t CodeTable) MaxSize() byte {
	return t.maxSize
}

// Symbols returns the Symbols in the table in ascending order.
func (t CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(t.codes))
	for sym := range t.codes {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// EncodedSize returns the number of bits needed to encode a text with the
// given frequencies, or false if some Symbol of freqs is missing from the
// table.
func (t CodeTable) EncodedSize(freqs Frequencies) (uint64, bool) {
	var total uint64
	for _, entry := range freqs.entries {
		hc, found := t.codes[entry.Symbol]
		if !found {
			return 0, false
		}
		total += entry.Count * uint64(hc.Size)
	}
	return total, true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, sym := range t.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", sym, t.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}

package huffman

// SymbolCount pairs a Symbol with its number of occurrences.
type SymbolCount struct {
	Symbol Symbol
	Count  uint64
}

// Frequencies is a frequency table: one entry per distinct Symbol of a text,
// kept in order of each Symbol's first appearance.
type Frequencies struct {
	entries []SymbolCount
	index   map[Symbol]int
	total   uint64
}

// CountFrequencies scans text once and tallies each Symbol.  Invalid UTF-8
// bytes are counted as utf8.RuneError; Encode rejects such texts before
// counting.
func CountFrequencies(text string) Frequencies {
	f := Frequencies{index: make(map[Symbol]int)}
	for _, ch := range text {
		f.Add(Symbol(ch), 1)
	}
	return f
}

// Add increases the count for sym by n.  Adding a count of zero does not
// create an entry.
func (f *Frequencies) Add(sym Symbol, n uint64) {
	if n == 0 {
		return
	}
	if f.index == nil {
		f.index = make(map[Symbol]int)
	}
	if i, found := f.index[sym]; found {
		f.entries[i].Count += n
	} else {
		f.index[sym] = len(f.entries)
		f.entries = append(f.entries, SymbolCount{sym, n})
	}
	f.total += n
}

// Len returns the number of distinct Symbols.
func (f Frequencies) Len() int {
	return len(f.entries)
}

// Count returns the number of occurrences of sym, or 0 if it never occurs.
func (f Frequencies) Count(sym Symbol) uint64 {
	if i, found := f.index[sym]; found {
		return f.entries[i].Count
	}
	return 0
}

// Total returns the sum of all counts, i.e. the length of the text in
// Symbols.
func (f Frequencies) Total() uint64 {
	return f.total
}

// Entries returns a copy of the table in first-appearance order.
func (f Frequencies) Entries() []SymbolCount {
	out := make([]SymbolCount, len(f.entries))
	copy(out, f.entries)
	return out
}

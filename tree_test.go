package huffman

import (
	"errors"
	"strings"
	"testing"
)

// textFromCounts returns a text containing count[i] copies of symbols[i],
// with the symbols first appearing in the order given.
func textFromCounts(symbols string, counts ...int) string {
	var sb strings.Builder
	for i, ch := range []rune(symbols) {
		sb.WriteString(strings.Repeat(string(ch), counts[i]))
	}
	return sb.String()
}

func mustBuildTree(t *testing.T, text string) Node {
	t.Helper()
	root, err := BuildTree(CountFrequencies(text))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return root
}

func TestCountFrequencies(t *testing.T) {
	f := CountFrequencies("nhoj elttil pus")

	if f.Len() != 12 {
		t.Errorf("expected 12 distinct symbols, got %d", f.Len())
	}
	if f.Total() != 15 {
		t.Errorf("expected total 15, got %d", f.Total())
	}

	expectCounts := map[Symbol]uint64{' ': 2, 'l': 2, 't': 2, 'n': 1, 'p': 1, 'z': 0}
	for sym, expect := range expectCounts {
		if actual := f.Count(sym); actual != expect {
			t.Errorf("Count(%v): expected %d, got %d", sym, expect, actual)
		}
	}

	entries := f.Entries()
	var order strings.Builder
	for _, entry := range entries {
		order.WriteRune(rune(entry.Symbol))
	}
	if expect, actual := "nhoj eltipus", order.String(); expect != actual {
		t.Errorf("wrong order:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	root, err := BuildTree(Frequencies{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if root != nil {
		t.Errorf("expected nil root, got %#v", root)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root := mustBuildTree(t, "aaaa")

	leaf, ok := root.(*Leaf)
	if !ok {
		t.Fatalf("expected *Leaf root, got %T", root)
	}
	if leaf.Symbol() != 'a' {
		t.Errorf("expected symbol 'a', got %v", leaf.Symbol())
	}
	if leaf.Weight() != 4 {
		t.Errorf("expected weight 4, got %d", leaf.Weight())
	}
}

func TestBuildTree_Weights(t *testing.T) {
	texts := []string{
		"nhoj elttil pus",
		"abracadabra",
		textFromCounts("abcdef", 5, 9, 12, 13, 16, 45),
		"héllo wörld ✓",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			root := mustBuildTree(t, text)

			expect := uint64(len([]rune(text)))
			if root.Weight() != expect {
				t.Errorf("root weight: expected %d, got %d", expect, root.Weight())
			}

			var leaves int
			Walk(root, func(node Node, path Code) bool {
				switch x := node.(type) {
				case *Internal:
					sum := x.Left().Weight() + x.Right().Weight()
					if x.Weight() != sum {
						t.Errorf("node %s: weight %d != %d + %d", path, x.Weight(), x.Left().Weight(), x.Right().Weight())
					}
				case *Leaf:
					leaves++
				}
				return true
			})

			if expect := CountFrequencies(text).Len(); leaves != expect {
				t.Errorf("expected %d leaves, got %d", expect, leaves)
			}
		})
	}
}

// Equal weights leave the queue in insertion order, so these shapes are
// fixed.
func TestBuildTree_TieBreaking(t *testing.T) {
	type testRow struct {
		text   string
		expect map[Symbol]string
	}

	testData := [...]testRow{
		{
			text:   "abcd",
			expect: map[Symbol]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"},
		},
		{
			text:   "aabc",
			expect: map[Symbol]string{'a': "0", 'b': "10", 'c': "11"},
		},
		{
			text:   "dcba",
			expect: map[Symbol]string{'d': "00", 'c': "01", 'b': "10", 'a': "11"},
		},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			table := BuildTable(mustBuildTree(t, row.text))
			for sym, expect := range row.expect {
				hc, found := table.Lookup(sym)
				if !found {
					t.Errorf("symbol %v missing from table", sym)
					continue
				}
				if actual := hc.String(); actual != `"`+expect+`"` {
					t.Errorf("symbol %v: expected %q, got %s", sym, expect, actual)
				}
			}
		})
	}
}

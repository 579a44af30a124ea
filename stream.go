package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Stream is an encoded bit stream: the concatenation of the Codes of a
// text's Symbols.  Its length need not be a multiple of 8.
//
// The zero value is an empty Stream.
type Stream struct {
	// words holds the bits, first bit in the most significant position.
	words []uint64
	size  int
}

// ParseStream parses a string of '0' and '1' characters into a Stream.
func ParseStream(str string) (Stream, error) {
	var s Stream
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			s.appendBit(0)
		case '1':
			s.appendBit(1)
		default:
			return Stream{}, fmt.Errorf("stream: invalid bit %q at index %d", str[i], i)
		}
	}
	return s, nil
}

// StreamFromBytes unpacks the first size bits of data, as packed by
// Stream.Bytes.
func StreamFromBytes(data []byte, size int) (Stream, error) {
	if size < 0 || size > 8*len(data) {
		return Stream{}, fmt.Errorf("stream: cannot read %d bits from %d bytes", size, len(data))
	}

	r := bitio.NewReader(bytes.NewReader(data))
	s := Stream{words: make([]uint64, 0, (size+63)/64)}
	for remaining := size; remaining > 0; {
		n := remaining
		if n > 64 {
			n = 64
		}
		word, err := r.ReadBits(uint8(n))
		if err != nil {
			return Stream{}, fmt.Errorf("stream: reading bit %d: %w", size-remaining, err)
		}
		s.words = append(s.words, word<<(64-uint(n)))
		s.size += n
		remaining -= n
	}
	return s, nil
}

// Len returns the number of bits in the Stream.
func (s Stream) Len() int {
	return s.size
}

// Bit returns the i'th bit of the Stream.
func (s Stream) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < s.size, "bit index %d out of range for %d-bit stream", i, s.size)
	return uint(s.words[i/64]>>(63-uint(i%64))) & 1
}

// Slice returns a new Stream holding bits [from, to) of this Stream.
func (s Stream) Slice(from, to int) Stream {
	assert.Assertf(from >= 0 && from <= to && to <= s.size, "slice [%d:%d] out of range for %d-bit stream", from, to, s.size)
	out := Stream{words: make([]uint64, 0, (to-from+63)/64)}
	for i := from; i < to; i++ {
		out.appendBit(s.Bit(i))
	}
	return out
}

// AppendCode appends the bits of hc to the end of the Stream.
func (s *Stream) AppendCode(hc Code) {
	for i := byte(0); i < hc.Size; i++ {
		s.appendBit(hc.Bit(i))
	}
}

func (s *Stream) appendBit(bit uint) {
	if s.size%64 == 0 {
		s.words = append(s.words, 0)
	}
	if bit&1 != 0 {
		s.words[s.size/64] |= uint64(1) << (63 - uint(s.size%64))
	}
	s.size++
}

// Bytes packs the Stream into bytes, first bit in the most significant
// position, padding the final byte with zeroes.  Stream.Len must be
// transmitted alongside the bytes to recover the Stream exactly.
func (s Stream) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow((s.size + 7) / 8)

	w := bitio.NewWriter(&buf)
	for i, word := range s.words {
		n := s.size - 64*i
		if n > 64 {
			n = 64
		}
		err := w.WriteBits(word>>(64-uint(n)), uint8(n))
		assert.Assertf(err == nil, "bitio.Writer.WriteBits: %v", err)
	}
	err := w.Close()
	assert.Assertf(err == nil, "bitio.Writer.Close: %v", err)
	return buf.Bytes()
}

// String returns the Stream as a string of '0' and '1' characters.
func (s Stream) String() string {
	var sb strings.Builder
	sb.Grow(s.size)
	for i := 0; i < s.size; i++ {
		sb.WriteByte('0' + byte(s.Bit(i)))
	}
	return sb.String()
}

var _ fmt.Stringer = Stream{}

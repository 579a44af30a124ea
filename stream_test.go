package huffman

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseStream(t *testing.T) {
	s, err := ParseStream("10110")
	if err != nil {
		t.Fatalf("ParseStream failed: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("expected 5 bits, got %d", s.Len())
	}
	if expect, actual := "10110", s.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	if _, err := ParseStream("0120"); err == nil {
		t.Errorf("ParseStream(%q) succeeded, expected an error", "0120")
	}
}

func TestStream_AppendCode(t *testing.T) {
	var s Stream
	s.AppendCode(MakeCode(3, 0x5))
	s.AppendCode(MakeCode(1, 0x0))
	s.AppendCode(MakeCode(2, 0x3))
	if expect, actual := "101011", s.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestStream_Bytes(t *testing.T) {
	s, err := ParseStream("10110")
	if err != nil {
		t.Fatalf("ParseStream failed: %v", err)
	}
	expect := []byte{0xb0}
	if actual := s.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}

	s2, err := StreamFromBytes(expect, 5)
	if err != nil {
		t.Fatalf("StreamFromBytes failed: %v", err)
	}
	if s2.String() != s.String() {
		t.Errorf("wrong stream:\n\texpect: %s\n\tactual: %s", s, s2)
	}
}

func TestStream_BytesAcrossWords(t *testing.T) {
	str := strings.Repeat("1100101", 19)

	s, err := ParseStream(str)
	if err != nil {
		t.Fatalf("ParseStream failed: %v", err)
	}
	packed := s.Bytes()
	if expect := (len(str) + 7) / 8; len(packed) != expect {
		t.Errorf("expected %d bytes, got %d", expect, len(packed))
	}

	s2, err := StreamFromBytes(packed, s.Len())
	if err != nil {
		t.Fatalf("StreamFromBytes failed: %v", err)
	}
	if s2.String() != str {
		t.Errorf("wrong stream:\n\texpect: %s\n\tactual: %s", str, s2)
	}
}

func TestStreamFromBytes_TooShort(t *testing.T) {
	if _, err := StreamFromBytes([]byte{0xff}, 9); err == nil {
		t.Errorf("StreamFromBytes succeeded, expected an error")
	}
}

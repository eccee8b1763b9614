package codec_test

import (
	"testing"

	"github.com/tdial/termcore/emu/codec"
)

func decodeAll(t *testing.T, b []byte) (rune, codec.DecodeStatus) {
	t.Helper()
	var d codec.Decoder
	var last codec.DecodeStatus
	var r rune
	for _, c := range b {
		r, last = d.Step(c)
	}
	return r, last
}

func TestUTF8RoundTrip(t *testing.T) {
	samples := []rune{0, 1, 0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF - 1,
		0x10000, 0x10FFFF, 0x2665, 0x1F600}
	for _, cp := range samples {
		enc := codec.Encode(nil, cp)
		got, status := decodeAll(t, enc)
		if status != codec.Accept {
			t.Fatalf("decode(encode(%#x)) did not accept: status=%v", cp, status)
		}
		if got != cp {
			t.Fatalf("decode(encode(%#x)) = %#x", cp, got)
		}
	}
}

func TestUTF8SurrogatesExcluded(t *testing.T) {
	enc := codec.Encode(nil, 0xD800)
	if enc[0] != 0xEF || enc[1] != 0xBF || enc[2] != 0xBD {
		t.Fatalf("surrogate should encode as replacement char, got % x", enc)
	}
}

func TestUTF8OverlongRejected(t *testing.T) {
	var d codec.Decoder
	if _, status := d.Step(0xC0); status != codec.Incomplete {
		t.Fatalf("expected Incomplete after lead byte, got %v", status)
	}
	if _, status := d.Step(0x80); status != codec.Reject {
		t.Fatalf("expected overlong sequence 0xC0 0x80 to be rejected, got %v", status)
	}
	// decoder must have reset and be ready for the next sequence
	if r, status := d.Step(0x41); status != codec.Accept || r != 'A' {
		t.Fatalf("decoder did not recover after reject: r=%v status=%v", r, status)
	}
}

package atascii_test

import (
	"testing"

	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/emu/atascii"
)

func newParser() (*atascii.Parser, *emu.Display) {
	disp := emu.NewDisplay(24, 80)
	return atascii.New(disp, nil), disp
}

// Scenario 1a: fallback disabled, 0x9B dumps as the codepage-mapped
// ESC-visible glyph (same cell as 0x1B).
func TestInverseEscFallbackDisabled(t *testing.T) {
	p, disp := newParser()
	disp.AtasciiAnsiFallback = false

	out := p.Feed(0x9B)
	if out.Kind != emu.OneChar {
		t.Fatalf("Feed(0x9B) = %+v, want OneChar", out)
	}
	if out.Char != 0x241B {
		t.Fatalf("Feed(0x9B) char = %#x, want U+241B", out.Char)
	}
}

// Scenario 1b: fallback enabled, 0x9B is handed to the ANSI sub-parser
// as its C1 CSI introducer and emits nothing.
func TestInverseEscFallbackEnabled(t *testing.T) {
	p, disp := newParser()
	disp.AtasciiAnsiFallback = true

	out := p.Feed(0x9B)
	if out.Kind != emu.NoCharYet {
		t.Fatalf("Feed(0x9B) = %+v, want NoCharYet", out)
	}
}

// Scenario 2: ESC [ 31 m with color-ext enabled sets foreground red
// and emits nothing.
func TestSGRColorExt(t *testing.T) {
	p, disp := newParser()
	disp.AtasciiColor = true

	seq := []byte{0x1B, '[', '3', '1', 'm'}
	for i, b := range seq {
		out := p.Feed(b)
		if out.Kind != emu.NoCharYet {
			t.Fatalf("byte %d (%#x): outcome = %+v, want NoCharYet", i, b, out)
		}
	}
	if disp.Color.Fg != 1 {
		t.Fatalf("Color.Fg = %d, want 1 (red)", disp.Color.Fg)
	}
}

// Printable bytes round-trip through the codepage table and advance
// the cursor.
func TestPrintableAdvancesCursor(t *testing.T) {
	p, disp := newParser()
	out := p.Feed('A')
	if out.Kind != emu.OneChar || out.Char != 'A' {
		t.Fatalf("Feed('A') = %+v, want OneChar('A')", out)
	}
	if disp.CursorCol != 1 {
		t.Fatalf("CursorCol = %d, want 1", disp.CursorCol)
	}
}

// An ESC interrupting a CSI sequence in progress restarts the parser.
func TestEscInterruptsCSI(t *testing.T) {
	p, disp := newParser()
	disp.AtasciiColor = true

	p.Feed(0x1B)
	p.Feed('[')
	p.Feed('3')
	// interrupt with a fresh ESC
	out := p.Feed(0x1B)
	if out.Kind != emu.NoCharYet {
		t.Fatalf("interrupting ESC outcome = %+v, want NoCharYet", out)
	}
	// the parser should accept a fresh CSI sequence from here
	for _, b := range []byte{'[', '3', '2', 'm'} {
		p.Feed(b)
	}
	if disp.Color.Fg != 2 {
		t.Fatalf("Color.Fg after restart = %d, want 2 (green)", disp.Color.Fg)
	}
}

// Bytes 0x80-0xFF outside the C1 control range (0x80-0xA0) surface the
// codepage-mapped glyph for the corresponding 0x00-0x7F byte, marked
// Reverse so a renderer paints it inverse-video.
func TestHighBitByteEmitsReverse(t *testing.T) {
	p, _ := newParser()
	out := p.Feed(0xC1) // 0xC1 & 0x7F == 0x41 == 'A'
	if out.Kind != emu.OneChar {
		t.Fatalf("Feed(0xC1) = %+v, want OneChar", out)
	}
	if !out.Reverse {
		t.Fatalf("Feed(0xC1) Reverse = false, want true")
	}
	if out.Char != 'A' {
		t.Fatalf("Feed(0xC1) char = %q, want 'A'", out.Char)
	}
}

// Bytes 0x80-0xA0 remain in the C1 control range and are consumed
// silently with no Reverse glyph emitted.
func TestC1RangeByteHasNoReverseChar(t *testing.T) {
	p, _ := newParser()
	out := p.Feed(0x8D)
	if out.Kind != emu.NoCharYet {
		t.Fatalf("Feed(0x8D) = %+v, want NoCharYet", out)
	}
}

func TestResetReturnsToGround(t *testing.T) {
	p, disp := newParser()
	disp.AtasciiColor = true
	p.Feed(0x1B)
	p.Feed('[')
	p.Reset()
	// after Reset, a plain byte is treated as Ground-state printable.
	out := p.Feed('x')
	if out.Kind != emu.OneChar || out.Char != 'x' {
		t.Fatalf("Feed('x') after Reset = %+v, want OneChar('x')", out)
	}
}

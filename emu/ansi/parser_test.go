package ansi_test

import (
	"testing"

	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/emu/ansi"
)

func feedString(p *ansi.Parser, s string) {
	for i := 0; i < len(s); i++ {
		p.Feed(s[i])
	}
}

func TestPrintableAdvancesCursor(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	out := p.Feed('A')
	if out.Kind != emu.OneChar || out.Char != 'A' {
		t.Fatalf("Feed('A') = %+v, want OneChar('A')", out)
	}
	if disp.CursorCol != 1 {
		t.Fatalf("CursorCol = %d, want 1", disp.CursorCol)
	}
}

func TestCSICursorForward(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[5C")
	if disp.CursorCol != 5 {
		t.Fatalf("CursorCol = %d, want 5", disp.CursorCol)
	}
	if p.State() != emu.Ground {
		t.Fatalf("state = %v, want Ground", p.State())
	}
}

func TestSGRSetsColor(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[31m")
	if disp.Color.Fg != 1 {
		t.Fatalf("Color.Fg = %d, want 1", disp.Color.Fg)
	}
}

func TestCursorPositionClampsToScreen(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[100;200H")
	if disp.CursorRow != 23 || disp.CursorCol != 79 {
		t.Fatalf("cursor = (%d,%d), want (23,79)", disp.CursorRow, disp.CursorCol)
	}
}

func TestC1CSIEquivalentToEscBracket(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	p.Feed(0x9B)
	if p.State() != emu.CSIEntry {
		t.Fatalf("state after 0x9B = %v, want CSIEntry", p.State())
	}
	feedString(p, "32m")
	if disp.Color.Fg != 2 {
		t.Fatalf("Color.Fg = %d, want 2", disp.Color.Fg)
	}
}

func TestEscInterruptsInProgressCSI(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[3")
	p.Feed(0x1B) // interrupt mid-CSI
	if p.State() != emu.Escape {
		t.Fatalf("state after interrupt = %v, want Escape", p.State())
	}
	feedString(p, "[32m")
	if disp.Color.Fg != 2 {
		t.Fatalf("Color.Fg after restart = %d, want 2", disp.Color.Fg)
	}
}

func TestInvalidCSIByteDumpsBufferedBytes(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[3")
	out := p.Feed(0x01) // not a valid CSI continuation byte
	if out.Kind != emu.OneChar {
		t.Fatalf("Feed(invalid CSI byte) = %+v, want OneChar (dump of buffered '3')", out)
	}
	if p.State() != emu.Ground {
		t.Fatalf("state = %v, want Ground", p.State())
	}
}

func TestInvalidCSIByteOnEmptyBufferReturnsToGround(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[")
	out := p.Feed(0x01)
	if out.Kind != emu.NoCharYet {
		t.Fatalf("Feed(invalid CSI byte, empty buf) = %+v, want NoCharYet", out)
	}
	if p.State() != emu.Ground {
		t.Fatalf("state = %v, want Ground", p.State())
	}
}

func TestResetReturnsToGround(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[3")
	p.Reset()
	if p.State() != emu.Ground {
		t.Fatalf("state after Reset = %v, want Ground", p.State())
	}
}

// A combining mark following a UTF-8-decoded base rune attaches to the
// previous cell instead of advancing the cursor.
func TestUTF8CombiningMarkDoesNotAdvanceCursor(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXtermUTF8, disp, nil)

	out := p.Feed('e')
	if out.Kind != emu.OneChar || out.Char != 'e' || out.Combine {
		t.Fatalf("Feed('e') = %+v, want OneChar('e') not Combine", out)
	}
	if disp.CursorCol != 1 {
		t.Fatalf("CursorCol after 'e' = %d, want 1", disp.CursorCol)
	}

	// U+0301 COMBINING ACUTE ACCENT, encoded as UTF-8: 0xCC 0x81.
	p.Feed(0xCC)
	out = p.Feed(0x81)
	if out.Kind != emu.OneChar || !out.Combine {
		t.Fatalf("Feed(combining mark) = %+v, want OneChar with Combine", out)
	}
	if disp.CursorCol != 1 {
		t.Fatalf("CursorCol after combining mark = %d, want still 1", disp.CursorCol)
	}
}

// An OSC string terminated by ST (ESC \) returns to Ground; the ESC
// byte is not treated as a generic interrupt while inside OSC.
func TestOSCTerminatesOnST(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b]0;title")
	if p.State() != emu.OSC {
		t.Fatalf("state = %v, want OSC", p.State())
	}
	out := p.Feed(0x1B)
	if out.Kind != emu.NoCharYet || p.State() != emu.OSC {
		t.Fatalf("after OSC ESC: outcome = %+v, state = %v, want NoCharYet/OSC (awaiting ST)", out, p.State())
	}
	out = p.Feed('\\')
	if out.Kind != emu.NoCharYet || p.State() != emu.Ground {
		t.Fatalf("after OSC ST: outcome = %+v, state = %v, want NoCharYet/Ground", out, p.State())
	}
}

// BEL also terminates an OSC string.
func TestOSCTerminatesOnBEL(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b]0;title")
	p.Feed(0x07)
	if p.State() != emu.Ground {
		t.Fatalf("state after BEL = %v, want Ground", p.State())
	}
}

func TestEncodeKeyArrowUsesApplicationPrefix(t *testing.T) {
	disp := emu.NewDisplay(24, 80)
	p := ansi.New(emu.KindXterm, disp, nil)

	feedString(p, "\x1b[?1h") // DECCKM on
	seq, ok := p.EncodeKey(emu.KeyEvent{Key: emu.KeyArrowUp})
	if !ok {
		t.Fatal("EncodeKey(ArrowUp) ok = false")
	}
	if string(seq) != "\x1bOA" {
		t.Fatalf("seq = %q, want \\x1bOA", seq)
	}
}

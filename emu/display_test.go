package emu_test

import (
	"testing"
	"time"

	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/emu/attr"
)

func TestDisplayResetRestoresDefaults(t *testing.T) {
	d := emu.NewDisplay(24, 80)
	d.CursorRow, d.CursorCol = 5, 5
	d.Attr = attr.Bold
	d.ReverseScreen = true

	d.Reset()

	if d.CursorRow != 0 || d.CursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", d.CursorRow, d.CursorCol)
	}
	if d.Attr != attr.Plain || d.ReverseScreen {
		t.Fatal("Reset did not restore rendition defaults")
	}
}

func TestDisplayClampBounds(t *testing.T) {
	d := emu.NewDisplay(24, 80)
	d.CursorRow, d.CursorCol = 100, -5
	d.Clamp()
	if d.CursorRow != 23 || d.CursorCol != 0 {
		t.Fatalf("Clamp = (%d,%d), want (23,0)", d.CursorRow, d.CursorCol)
	}
}

func TestDisplaySaveRestoreCursor(t *testing.T) {
	d := emu.NewDisplay(24, 80)
	d.CursorRow, d.CursorCol = 3, 7
	d.SaveCursor()
	d.CursorRow, d.CursorCol = 10, 10
	d.RestoreCursor()
	if d.CursorRow != 3 || d.CursorCol != 7 {
		t.Fatalf("cursor after restore = (%d,%d), want (3,7)", d.CursorRow, d.CursorCol)
	}
}

func TestShouldBeepThrottles(t *testing.T) {
	d := emu.NewDisplay(24, 80)
	now := time.Unix(1000, 0)
	if !d.ShouldBeep(now) {
		t.Fatal("first beep should be let through")
	}
	if d.ShouldBeep(now.Add(500 * time.Millisecond)) {
		t.Fatal("beep within 1s should be throttled")
	}
	if !d.ShouldBeep(now.Add(2 * time.Second)) {
		t.Fatal("beep after 1s should be let through")
	}
}

func TestCellRGBDefaultColorFallsBack(t *testing.T) {
	d := emu.NewDisplay(24, 80)
	resolved, fr, fg, fb, br, bg, bb := d.CellRGB(emu.KindXterm)
	if resolved != attr.Plain {
		t.Fatalf("resolved attr = %v, want Plain", resolved)
	}
	if fr != 0xc0 || fg != 0xc0 || fb != 0xc0 {
		t.Fatalf("default fg = %d,%d,%d, want light gray", fr, fg, fb)
	}
	if br != 0 || bg != 0 || bb != 0 {
		t.Fatalf("default bg = %d,%d,%d, want black", br, bg, bb)
	}
}

func TestCellRGBReverseSwapsColors(t *testing.T) {
	d := emu.NewDisplay(24, 80)
	d.Attr = attr.Reverse
	d.Color = attr.ColorPair{Fg: 1, Bg: 2}
	_, fr, _, _, br, _, _ := d.CellRGB(emu.KindXterm)
	wantFgR, _, _ := attr.PaletteRGB(2)
	wantBgR, _, _ := attr.PaletteRGB(1)
	if fr != wantFgR || br != wantBgR {
		t.Fatalf("reverse did not swap: fg=%d bg=%d", fr, br)
	}
}

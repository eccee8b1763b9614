package session_test

import (
	"testing"

	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/options"
	"github.com/tdial/termcore/session"
)

func TestSwitchEmulatorResetsDisplay(t *testing.T) {
	s := session.New(24, 80, emu.KindAtascii, options.New(nil))
	s.Display.CursorRow, s.Display.CursorCol = 10, 40

	s.SwitchEmulator(emu.KindXterm)

	if s.Display.CursorRow != 0 || s.Display.CursorCol != 0 {
		t.Fatalf("cursor after switch = (%d,%d), want (0,0)", s.Display.CursorRow, s.Display.CursorCol)
	}
	if s.Kind() != emu.KindXterm {
		t.Fatalf("Kind() = %v, want KindXterm", s.Kind())
	}
	if s.Emulator.Kind() != emu.KindXterm {
		t.Fatalf("Emulator.Kind() = %v, want KindXterm", s.Emulator.Kind())
	}
}

func TestFeedRemoteEmitsAndAdvances(t *testing.T) {
	s := session.New(24, 80, emu.KindAtascii, options.New(nil))
	out := s.FeedRemote('A')
	if out.Kind != emu.OneChar || out.Char != 'A' {
		t.Fatalf("FeedRemote('A') = %+v, want OneChar('A')", out)
	}
	if s.Display.CursorCol != 1 {
		t.Fatalf("CursorCol = %d, want 1", s.Display.CursorCol)
	}
}

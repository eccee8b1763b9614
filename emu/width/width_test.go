package width_test

import (
	"testing"

	"github.com/tdial/termcore/emu/width"
)

func TestRuneWidthASCII(t *testing.T) {
	if got := width.RuneWidth('A'); got != 1 {
		t.Fatalf("RuneWidth('A') = %d, want 1", got)
	}
}

func TestIsWideCJK(t *testing.T) {
	if !width.IsWide('漢') {
		t.Fatal("IsWide('漢') = false, want true")
	}
	if width.IsWide('A') {
		t.Fatal("IsWide('A') = true, want false")
	}
}

func TestCombinesWithPreviousCombiningMark(t *testing.T) {
	// U+0301 COMBINING ACUTE ACCENT attaches to a preceding base letter.
	if !width.CombinesWithPrevious('e', '\u0301') {
		t.Fatal("CombinesWithPrevious('e', COMBINING ACUTE) = false, want true")
	}
}

func TestCombinesWithPreviousIndependentLetters(t *testing.T) {
	if width.CombinesWithPrevious('a', 'b') {
		t.Fatal("CombinesWithPrevious('a', 'b') = true, want false")
	}
}

func TestCombinesWithPreviousNoPriorRune(t *testing.T) {
	if width.CombinesWithPrevious(0, 'a') {
		t.Fatal("CombinesWithPrevious(0, 'a') = true, want false")
	}
}

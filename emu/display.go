// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emu

import (
	"time"

	"github.com/tdial/termcore/emu/attr"
)

// KeypadMode selects whether the numeric keypad sends application or
// numeric sequences.
type KeypadMode int

const (
	KeypadNumeric KeypadMode = iota
	KeypadApplication
)

// ArrowKeyMode selects cursor-key reporting style (DECCKM).
type ArrowKeyMode int

const (
	ArrowKeysNormal ArrowKeyMode = iota
	ArrowKeysApplication
)

// Display is the process-wide display state for the active emulator: a
// single ownership root a Session holds by reference and passes to
// whichever Emulator is active, replacing the source's file-scope
// global with an explicit value. It is mutated only by the event-loop
// thread and reset on emulator switch.
type Display struct {
	Rows, Cols int

	CursorRow, CursorCol int
	ScrollTop, ScrollBottom int

	Attr  attr.Attr
	Color attr.ColorPair

	OriginMode    bool
	WrapPending   bool
	NewLineMode   bool
	ReverseScreen bool // DECSCNM

	ArrowKeys ArrowKeyMode
	Keypad    KeypadMode

	// Per-emulation booleans from spec DATA MODEL.
	AtasciiColor        bool
	AtasciiAnsiFallback bool

	savedRow, savedCol int
	lastBeep           time.Time
}

// NewDisplay creates a Display sized rows x cols with the scrolling
// region spanning the whole screen.
func NewDisplay(rows, cols int) *Display {
	d := &Display{Rows: rows, Cols: cols}
	d.Reset()
	return d
}

// Reset restores cursor, scrolling region, and rendition to their
// power-on defaults; it does not alter Rows/Cols.
func (d *Display) Reset() {
	d.CursorRow, d.CursorCol = 0, 0
	d.ScrollTop, d.ScrollBottom = 0, d.Rows-1
	d.Attr = attr.Plain
	d.Color = attr.DefaultPair
	d.OriginMode = false
	d.WrapPending = false
	d.NewLineMode = false
	d.ReverseScreen = false
	d.ArrowKeys = ArrowKeysNormal
	d.Keypad = KeypadNumeric
	d.savedRow, d.savedCol = 0, 0
}

// SaveCursor implements DECSC: remember the current position.
func (d *Display) SaveCursor() {
	d.savedRow, d.savedCol = d.CursorRow, d.CursorCol
}

// RestoreCursor implements DECRC: recall the previously saved position.
func (d *Display) RestoreCursor() {
	d.CursorRow, d.CursorCol = d.savedRow, d.savedCol
	d.WrapPending = false
}

// Clamp keeps the cursor within the current screen bounds.
func (d *Display) Clamp() {
	if d.CursorRow < 0 {
		d.CursorRow = 0
	}
	if d.CursorRow > d.Rows-1 {
		d.CursorRow = d.Rows - 1
	}
	if d.CursorCol < 0 {
		d.CursorCol = 0
	}
	if d.CursorCol > d.Cols-1 {
		d.CursorCol = d.Cols - 1
	}
}

// ShouldBeep applies the 1-beep-per-wall-clock-second throttle and
// records that a beep was let through when it returns true.
func (d *Display) ShouldBeep(now time.Time) bool {
	if now.Sub(d.lastBeep) < time.Second {
		return false
	}
	d.lastBeep = now
	return true
}

// defaultFgRGB/defaultBgRGB are what a UI paints for attr.DefaultColor:
// light gray (0xc0) on black, close to the ANSI base palette's own 7/0
// entries (PaletteRGB(7) is 0xbf gray).
var (
	defaultFgRGB = [3]uint8{0xc0, 0xc0, 0xc0}
	defaultBgRGB = [3]uint8{0x00, 0x00, 0x00}
)

// CellRGB resolves the current Attr/Color against kind's reverse-video
// and palette rules, returning actual RGB triples a UI can paint
// directly rather than a terminal-native palette index.
func (d *Display) CellRGB(kind Kind) (resolved attr.Attr, fgR, fgG, fgB, bgR, bgG, bgB uint8) {
	resolved, pair := attr.Resolve(d.Attr, d.Color, d.ReverseScreen, kind.XORCapable())
	fgR, fgG, fgB = colorRGB(pair.Fg, defaultFgRGB)
	bgR, bgG, bgB = colorRGB(pair.Bg, defaultBgRGB)
	return resolved, fgR, fgG, fgB, bgR, bgG, bgB
}

func colorRGB(index int, fallback [3]uint8) (r, g, b uint8) {
	if index == attr.DefaultColor {
		return fallback[0], fallback[1], fallback[2]
	}
	return attr.PaletteRGB(index)
}

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

// Package ansi implements the ANSI-family byte-stream parser: the same
// nested state machine pattern the spec calls out as governing ANSI,
// AVATAR, PETSCII, VT52/VT100/VT102/VT220, LINUX, and XTERM (in both
// 8-bit and UTF-8 flavors). It also serves as the fallback target the
// ATASCII parser delegates to for sequences it does not itself handle.
package ansi

import (
	"strconv"
	"strings"

	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/emu/attr"
	"github.com/tdial/termcore/emu/codec"
	"github.com/tdial/termcore/emu/keymap"
	"github.com/tdial/termcore/emu/width"
	"github.com/tdial/termcore/log"
)

const bufCap = 256

// Parser implements emu.Emulator for the ANSI-derived terminal dialects.
type Parser struct {
	kind    emu.Kind
	disp    *emu.Display
	buf     *emu.ParseBuffer
	state   emu.ScanState
	utf8    codec.Decoder
	logger  *log.Logger
	prefix   byte // CSI private-mode prefix byte, e.g. '?'
	oscTerm  bool // true once an OSC sequence has seen its first ESC of ST
	lastRune rune // last putChar'd rune, for grapheme-cluster continuation (UTF-8 dialects only)
}

// New creates an ANSI-family parser for the given dialect, driving the
// shared Display. logger may be nil.
func New(kind emu.Kind, disp *emu.Display, logger *log.Logger) *Parser {
	p := &Parser{kind: kind, disp: disp, buf: emu.NewParseBuffer(bufCap), logger: logger}
	p.Reset()
	return p
}

func (p *Parser) Kind() emu.Kind { return p.kind }

// State reports the parser's current scan state. Exported so the
// ATASCII parser's fallback delegation can tell when this sub-parser
// has returned to Ground.
func (p *Parser) State() emu.ScanState { return p.state }

// Reset restores Ground state; it does not touch Display attributes
// (those reset via Display.Reset on emulator switch).
func (p *Parser) Reset() {
	p.state = emu.Ground
	p.buf.Reset()
	p.utf8.Reset()
	p.lastRune = 0
	p.oscTerm = false
}

// Feed implements emu.Emulator.
func (p *Parser) Feed(b byte) emu.Outcome {
	// An ESC interrupting an in-progress sequence restarts the parser
	// rather than discarding silently. OSC is exempted: its own
	// terminator is ESC \ (ST), so its ESC byte is handled by feedOSC.
	if b == 0x1B && p.state != emu.Ground && p.state != emu.DumpUnknown && p.state != emu.OSC {
		p.state = emu.Escape
		p.buf.Reset()
		return emu.NoChar()
	}

	switch p.state {
	case emu.Ground:
		return p.feedGround(b)
	case emu.Escape:
		return p.feedEscape(b)
	case emu.CSIEntry, emu.CSIParam:
		return p.feedCSI(b)
	case emu.OSC:
		return p.feedOSC(b)
	case emu.DumpUnknown:
		return p.drain()
	default:
		p.state = emu.Ground
		return emu.NoChar()
	}
}

func (p *Parser) feedGround(b byte) emu.Outcome {
	if p.kind.UTF8() {
		r, status := p.utf8.Step(b)
		switch status {
		case codec.Incomplete:
			return emu.NoChar()
		case codec.Reject:
			return emu.NoChar()
		default:
			if r == 0x1B {
				p.state = emu.Escape
				p.buf.Reset()
				p.lastRune = 0
				return emu.NoChar()
			}
			if r < 0x20 {
				p.handleControl(r)
				p.lastRune = 0
				return emu.NoChar()
			}
			if width.CombinesWithPrevious(p.lastRune, r) {
				return emu.CharCombine(r)
			}
			p.putChar(r)
			p.lastRune = r
			return emu.Char(r)
		}
	}

	if b == 0x1B {
		p.state = emu.Escape
		p.buf.Reset()
		return emu.NoChar()
	}
	if b == 0x9B { // C1 CSI, 8-bit equivalent of ESC [
		p.state = emu.CSIEntry
		p.buf.Reset()
		p.prefix = 0
		return emu.NoChar()
	}
	if b < 0x20 || b == 0x7F {
		p.handleControl(rune(b))
		return emu.NoChar()
	}
	r := rune(b)
	p.putChar(r)
	return emu.Char(r)
}

func (p *Parser) handleControl(r rune) {
	switch r {
	case 0x07: // BEL
		// beep throttling is applied by the caller via Display.ShouldBeep
	case 0x08: // BS
		if p.disp.CursorCol > 0 {
			p.disp.CursorCol--
		}
	case 0x09: // TAB
		next := (p.disp.CursorCol/8 + 1) * 8
		if next >= p.disp.Cols {
			next = p.disp.Cols - 1
		}
		p.disp.CursorCol = next
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		p.nextLine()
	case 0x0D: // CR
		p.disp.CursorCol = 0
		p.disp.WrapPending = false
	}
}

func (p *Parser) feedEscape(b byte) emu.Outcome {
	p.state = emu.Ground
	switch b {
	case '[':
		p.state = emu.CSIEntry
		p.buf.Reset()
		p.prefix = 0
	case ']':
		p.state = emu.OSC
		p.buf.Reset()
	case 'D':
		p.nextLine()
	case 'E':
		p.disp.CursorCol = 0
		p.nextLine()
	case 'M':
		p.reverseLine()
	case 'c':
		p.disp.Reset()
	case '7':
		p.disp.SaveCursor()
	case '8':
		p.disp.RestoreCursor()
	default:
		// unrecognized single-byte escape: ignored, ground resumed
	}
	return emu.NoChar()
}

func (p *Parser) feedCSI(b byte) emu.Outcome {
	switch {
	case b >= 0x30 && b <= 0x3F:
		if b == '?' && p.buf.Len() == 0 {
			p.prefix = '?'
			return emu.NoChar()
		}
		if !p.buf.Write(b) {
			if p.logger != nil {
				p.logger.Printf("PARSER", "CSI parameter truncated at buffer bound")
			}
		}
		return emu.NoChar()
	case b >= 0x20 && b <= 0x2F:
		p.buf.Write(b)
		return emu.NoChar()
	case b >= 0x40 && b <= 0x7E:
		p.processCSI(b)
		p.state = emu.Ground
		return emu.NoChar()
	default:
		// invalid byte inside a CSI sequence: fall back to dump-unknown
		return p.enterDumpUnknown()
	}
}

func (p *Parser) feedOSC(b byte) emu.Outcome {
	if p.oscTerm {
		// Second byte of the ST (ESC \) terminator: whatever it is,
		// the OSC string ends here.
		p.oscTerm = false
		p.state = emu.Ground
		p.buf.Reset()
		return emu.NoChar()
	}
	if b == 0x07 {
		p.state = emu.Ground
		p.buf.Reset()
		return emu.NoChar()
	}
	if b == 0x1B {
		p.oscTerm = true
		return emu.NoChar()
	}
	p.buf.Write(b)
	return emu.NoChar()
}

func (p *Parser) enterDumpUnknown() emu.Outcome {
	p.state = emu.DumpUnknown
	return p.drain()
}

func (p *Parser) drain() emu.Outcome {
	b, last, ok := p.buf.Drain()
	if !ok {
		p.state = emu.Ground
		p.buf.Reset()
		return emu.NoChar()
	}
	r := codec.ATASCIIRune(b)
	if last {
		p.state = emu.Ground
		p.buf.Reset()
		return emu.Char(r)
	}
	return emu.Many()
}

func (p *Parser) processCSI(final byte) {
	str := p.buf.String()
	switch {
	case p.prefix == '?' && final == 'h':
		p.applyPrivateModes(str, true)
	case p.prefix == '?' && final == 'l':
		p.applyPrivateModes(str, false)
	case final == 'm':
		p.disp.Attr, p.disp.Color = attr.Apply(attr.ParseParams(str), p.disp.Attr, p.disp.Color, p.kind.Supports256Color())
	case final == 'A':
		p.moveCursor(-numericParam(str, 1), 0)
	case final == 'B':
		p.moveCursor(numericParam(str, 1), 0)
	case final == 'C':
		p.moveCursor(0, numericParam(str, 1))
	case final == 'D':
		p.moveCursor(0, -numericParam(str, 1))
	case final == 'E':
		p.moveCursor(numericParam(str, 1), 0)
		p.disp.CursorCol = 0
	case final == 'F':
		p.moveCursor(-numericParam(str, 1), 0)
		p.disp.CursorCol = 0
	case final == 'G':
		p.disp.CursorCol = clamp(numericParam(str, 1)-1, 0, p.disp.Cols-1)
	case final == 'H' || final == 'f':
		row, col := numericParams2(str)
		p.disp.CursorRow = clamp(row-1, 0, p.disp.Rows-1)
		p.disp.CursorCol = clamp(col-1, 0, p.disp.Cols-1)
		p.disp.WrapPending = false
	case final == 'J':
		p.eraseDisplay(numericParam(str, 0))
	case final == 'K':
		p.eraseLine(numericParam(str, 0))
	}
}

func (p *Parser) applyPrivateModes(str string, on bool) {
	for _, pm := range attr.ParseParams(str) {
		switch pm {
		case 6: // DECOM origin mode
			p.disp.OriginMode = on
		case 1: // DECCKM application cursor keys
			if on {
				p.disp.ArrowKeys = emu.ArrowKeysApplication
			} else {
				p.disp.ArrowKeys = emu.ArrowKeysNormal
			}
		case 5: // DECSCNM screen reverse
			p.disp.ReverseScreen = on
		}
	}
}

func (p *Parser) moveCursor(dRow, dCol int) {
	p.disp.CursorRow = clamp(p.disp.CursorRow+dRow, 0, p.disp.Rows-1)
	p.disp.CursorCol = clamp(p.disp.CursorCol+dCol, 0, p.disp.Cols-1)
	p.disp.WrapPending = false
}

func (p *Parser) nextLine() {
	if p.disp.CursorRow >= p.disp.ScrollBottom {
		// scrolling the buffer is an external display-layer concern;
		// the core only tracks where the cursor logically sits.
		return
	}
	p.disp.CursorRow++
	p.disp.WrapPending = false
}

func (p *Parser) reverseLine() {
	if p.disp.CursorRow <= p.disp.ScrollTop {
		return
	}
	p.disp.CursorRow--
	p.disp.WrapPending = false
}

func (p *Parser) eraseDisplay(mode int) {
	// Actual cell erasure is performed by the external display layer;
	// the core does not act on mode.
	_ = mode
}

func (p *Parser) eraseLine(mode int) {
	_ = mode
}

func (p *Parser) putChar(r rune) {
	if p.disp.WrapPending {
		p.disp.CursorCol = 0
		if p.disp.CursorRow < p.disp.ScrollBottom {
			p.disp.CursorRow++
		}
		p.disp.WrapPending = false
	}
	if p.disp.CursorCol >= p.disp.Cols-1 {
		p.disp.WrapPending = true
	} else {
		p.disp.CursorCol++
	}
}

// EncodeKey implements emu.Emulator using the shared ANSI/VT mapping.
func (p *Parser) EncodeKey(ev emu.KeyEvent) ([]byte, bool) {
	return keymap.EncodeANSI(ev, p.disp.ArrowKeys == emu.ArrowKeysApplication)
}

func numericParam(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return def
	}
	return n
}

func numericParams2(s string) (int, int) {
	parts := strings.SplitN(s, ";", 2)
	row, col := 1, 1
	if len(parts) > 0 && parts[0] != "" {
		if n, err := strconv.Atoi(parts[0]); err == nil {
			row = n
		}
	}
	if len(parts) > 1 && parts[1] != "" {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			col = n
		}
	}
	return row, col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

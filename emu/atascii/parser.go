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

// Package atascii implements the ATASCII byte-stream parser: the
// representative emulation contract, a nested state machine that falls
// back to the ANSI parser for sequences it does not itself recognize.
package atascii

import (
	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/emu/ansi"
	"github.com/tdial/termcore/emu/attr"
	"github.com/tdial/termcore/emu/codec"
	"github.com/tdial/termcore/emu/keymap"
	"github.com/tdial/termcore/emu/width"
	"github.com/tdial/termcore/log"
)

const bufCap = 64

// C1 CSI introducer, the 8-bit equivalent of ESC [.
const c1CSI = 0x9B

// Parser implements emu.Emulator for the ATASCII dialect, delegating
// sequences it does not recognize to an embedded ANSI parser sharing
// the same Display.
type Parser struct {
	disp   *emu.Display
	ansi   *ansi.Parser
	buf    *emu.ParseBuffer
	state  emu.ScanState
	logger *log.Logger

	// WideFontHook, if set, is invoked once at the start of every Feed
	// call while Display.AtasciiColor is false, so the display layer can
	// switch to its double-width font. No switch state is tracked here.
	WideFontHook func()
}

// New creates an ATASCII parser driving the given Display. logger may
// be nil.
func New(disp *emu.Display, logger *log.Logger) *Parser {
	p := &Parser{
		disp:   disp,
		ansi:   ansi.New(emu.KindAnsi, disp, logger),
		buf:    emu.NewParseBuffer(bufCap),
		logger: logger,
	}
	p.Reset()
	return p
}

func (p *Parser) Kind() emu.Kind { return emu.KindAtascii }

// Reset restores Ground state in both this parser and its embedded
// ANSI fallback.
func (p *Parser) Reset() {
	p.state = emu.Ground
	p.buf.Reset()
	p.ansi.Reset()
}

// Feed implements emu.Emulator.
func (p *Parser) Feed(b byte) emu.Outcome {
	if !p.disp.AtasciiColor && p.WideFontHook != nil {
		p.WideFontHook()
	}

	// An Esc or Csi* sequence interrupted by another C_ESC restarts the
	// parser rather than discarding silently.
	if b == 0x1B && (p.state == emu.Escape || p.state == emu.CSIEntry || p.state == emu.CSIParam) {
		p.state = emu.Escape
		p.buf.Reset()
		p.buf.Write(b)
		return emu.NoChar()
	}

	switch p.state {
	case emu.Ground:
		return p.feedGround(b)
	case emu.Escape:
		return p.feedEscape(b)
	case emu.CSIEntry:
		return p.feedCSIEntry(b)
	case emu.CSIParam:
		return p.feedCSIParam(b)
	case emu.AnsiFallback:
		return p.driveAnsi(b)
	case emu.DumpUnknown:
		return p.drain()
	default:
		p.state = emu.Ground
		return emu.NoChar()
	}
}

func (p *Parser) feedGround(b byte) emu.Outcome {
	if b == c1CSI {
		return p.enterFallback(b, true)
	}
	if b == 0x1B && (p.disp.AtasciiColor || p.disp.AtasciiAnsiFallback) {
		p.state = emu.Escape
		p.buf.Reset()
		p.buf.Write(b)
		return emu.NoChar()
	}
	if b < 0x20 || (b >= 0x80 && b <= 0xA0) {
		p.controlChar(b)
		return emu.NoChar()
	}
	r := codec.ATASCIITable[b&0x7F]
	p.advance(r)
	if b >= 0x80 {
		return emu.CharReverse(r)
	}
	return emu.Char(r)
}

func (p *Parser) controlChar(b byte) {
	switch b {
	case 0x0D:
		p.disp.CursorCol = 0
		p.disp.WrapPending = false
	case 0x0A:
		if p.disp.CursorRow < p.disp.ScrollBottom {
			p.disp.CursorRow++
		}
	case 0x08:
		if p.disp.CursorCol > 0 {
			p.disp.CursorCol--
		}
	case 0x09:
		next := (p.disp.CursorCol/8 + 1) * 8
		if next >= p.disp.Cols {
			next = p.disp.Cols - 1
		}
		p.disp.CursorCol = next
	default:
		// remaining C0/C1 controls have no display effect in this
		// dialect and are consumed silently.
	}
}

func (p *Parser) feedEscape(b byte) emu.Outcome {
	if b == '[' && p.disp.AtasciiColor {
		p.buf.Write(b)
		p.state = emu.CSIEntry
		return emu.NoChar()
	}
	return p.enterFallback(b, false)
}

func (p *Parser) feedCSIEntry(b byte) emu.Outcome {
	if isDigit(b) {
		p.buf.Write(b)
		p.state = emu.CSIParam
		return emu.NoChar()
	}
	if b == 'm' {
		p.disp.Attr = attr.Plain
		p.disp.Color = attr.DefaultPair
		p.buf.Reset()
		p.state = emu.Ground
		return emu.NoChar()
	}
	return p.enterFallback(b, false)
}

func (p *Parser) feedCSIParam(b byte) emu.Outcome {
	if isDigit(b) || b == ';' {
		if !p.buf.Write(b) && p.logger != nil {
			p.logger.Printf("ATASCII", "CSI parameter truncated at buffer bound")
		}
		return emu.NoChar()
	}
	if b == 'm' {
		params := atasciiParams(p.buf.Bytes())
		p.disp.Attr, p.disp.Color = attr.Apply(params, p.disp.Attr, p.disp.Color, p.disp.AtasciiColor)
		p.buf.Reset()
		p.state = emu.Ground
		return emu.NoChar()
	}
	return p.enterFallback(b, false)
}

// enterFallback applies the fallback rule: if ANSI fallback is enabled,
// the parser's own buffered bytes are replayed into the embedded ANSI
// parser and the triggering byte is re-driven through it; otherwise
// this parser enters DumpUnknown directly, surfacing its own buffer
// (plus the triggering byte) codepage-mapped.
//
// direct is true when the trigger is the bare C1 CSI introducer, which
// carries no buffered prefix of its own.
func (p *Parser) enterFallback(trigger byte, direct bool) emu.Outcome {
	if !p.disp.AtasciiAnsiFallback {
		p.state = emu.DumpUnknown
		if !direct {
			p.buf.Write(trigger)
		} else {
			p.buf.Reset()
			p.buf.Write(trigger)
		}
		return p.drain()
	}

	p.state = emu.AnsiFallback
	if direct {
		p.ansi.Feed(0x1B)
		p.buf.Reset()
		return p.driveAnsi('[')
	}
	for _, rb := range p.buf.Bytes() {
		p.ansi.Feed(rb)
	}
	p.buf.Reset()
	return p.driveAnsi(trigger)
}

func (p *Parser) driveAnsi(b byte) emu.Outcome {
	outcome := p.ansi.Feed(b)
	if p.ansi.State() == emu.Ground {
		p.state = emu.Ground
	}
	return outcome
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

func (p *Parser) advance(r rune) {
	if p.disp.WrapPending {
		p.disp.CursorCol = 0
		if p.disp.CursorRow < p.disp.ScrollBottom {
			p.disp.CursorRow++
		}
		p.disp.WrapPending = false
	}
	w := width.RuneWidth(r)
	if w <= 0 {
		w = 1
	}
	if p.disp.CursorCol+w >= p.disp.Cols {
		p.disp.WrapPending = true
	} else {
		p.disp.CursorCol += w
	}
}

// EncodeKey implements emu.Emulator using the ATASCII literal-byte
// mapping.
func (p *Parser) EncodeKey(ev emu.KeyEvent) ([]byte, bool) {
	return keymap.EncodeATASCII(ev)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// atasciiParams parses the SGR parameter list out of a buffer holding
// the ESC byte and "[" followed by digits and ";" separators; leading
// ESC and "[" bytes are skipped.
func atasciiParams(buf []byte) []int {
	start := 0
	for start < len(buf) && (buf[start] == 0x1B || buf[start] == '[') {
		start++
	}
	return attr.ParseParams(string(buf[start:]))
}

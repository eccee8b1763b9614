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

// Package emu holds the types shared by every emulation parser: the
// per-byte emission protocol, the scan-state enumeration, the bounded
// parse buffer, the display state a parser mutates, and the Emulator
// interface each dialect implements.
package emu

// EmitKind distinguishes the four shapes a single Feed call can return.
type EmitKind int

const (
	// NoCharYet means the byte was consumed as part of an in-progress
	// sequence; no display character resulted.
	NoCharYet EmitKind = iota
	// OneChar means exactly one display character is ready.
	OneChar
	// ManyChars means the caller must re-invoke Feed with a sentinel
	// byte to continue draining buffered output; the final call in the
	// drain reports OneChar instead.
	ManyChars
	// RepeatChar means the same rune should be placed Count times.
	RepeatChar
)

// Outcome is the result of one Emulator.Feed call.
type Outcome struct {
	Kind  EmitKind
	Char  rune
	Count int

	// Reverse marks this one character as inverse-video regardless of
	// the parser's persistent Display.Attr pen state, e.g. ATASCII's
	// high-bit (0xA1-0xFF) glyphs.
	Reverse bool

	// Combine marks this one character as a grapheme-cluster
	// continuation of the previously emitted character (a combining
	// mark or similar non-spacing addition): the cursor did not
	// advance, and the caller should attach Char to the prior cell
	// instead of opening a new one.
	Combine bool
}

// NoChar reports that the byte produced no displayable character yet.
func NoChar() Outcome { return Outcome{Kind: NoCharYet} }

// Char reports a single ready display character.
func Char(r rune) Outcome { return Outcome{Kind: OneChar, Char: r} }

// CharReverse reports a single ready display character that should
// render inverse-video independent of the current attribute state.
func CharReverse(r rune) Outcome { return Outcome{Kind: OneChar, Char: r, Reverse: true} }

// CharCombine reports a single ready display character that continues
// the previous character's grapheme cluster rather than occupying a
// new cell.
func CharCombine(r rune) Outcome { return Outcome{Kind: OneChar, Char: r, Combine: true} }

// Many reports that more buffered output follows; the caller must keep
// calling Feed with DrainByte until it sees OneChar.
func Many() Outcome { return Outcome{Kind: ManyChars} }

// Repeat reports that r should be placed n times.
func Repeat(r rune, n int) Outcome { return Outcome{Kind: RepeatChar, Char: r, Count: n} }

// DrainByte is the sentinel byte fed back to a parser that returned
// ManyChars, so it can continue surfacing buffered output.
const DrainByte byte = 0

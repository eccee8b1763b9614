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

// Kind names a supported terminal dialect. ATASCII is the
// representative of the family this core specifies in full; the same
// nested-state-machine-with-fallback pattern governs the rest.
type Kind int

const (
	KindAtascii Kind = iota
	KindAnsi
	KindAvatar
	KindPetscii
	KindVT52
	KindVT100
	KindVT102
	KindVT220
	KindLinux
	KindLinuxUTF8
	KindXterm
	KindXtermUTF8
	KindTTY
	KindDebug
)

// String names the dialect, also used as its TERM-like identity string.
func (k Kind) String() string {
	switch k {
	case KindAtascii:
		return "ATASCII"
	case KindAnsi:
		return "ANSI"
	case KindAvatar:
		return "AVATAR"
	case KindPetscii:
		return "PETSCII"
	case KindVT52:
		return "VT52"
	case KindVT100:
		return "VT100"
	case KindVT102:
		return "VT102"
	case KindVT220:
		return "VT220"
	case KindLinux:
		return "LINUX"
	case KindLinuxUTF8:
		return "LINUX_UTF8"
	case KindXterm:
		return "XTERM"
	case KindXtermUTF8:
		return "XTERM_UTF8"
	case KindTTY:
		return "TTY"
	case KindDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// XORCapable reports whether this dialect combines its local Reverse
// attribute bit with the global DECSCNM flag via XOR (attr.Resolve),
// per spec's reverse-video resolution rule. TTY/VT52/DEBUG pass
// through unchanged.
func (k Kind) XORCapable() bool {
	switch k {
	case KindTTY, KindVT52, KindDebug:
		return false
	default:
		return true
	}
}

// UTF8 reports whether this dialect decodes its input as UTF-8 rather
// than through the 7-bit-clean codepage table.
func (k Kind) UTF8() bool {
	switch k {
	case KindLinuxUTF8, KindXtermUTF8:
		return true
	default:
		return false
	}
}

// Supports256Color reports whether this dialect honors the extended
// 38;5;n / 48;5;n SGR forms.
func (k Kind) Supports256Color() bool {
	switch k {
	case KindXterm, KindXtermUTF8, KindLinux, KindLinuxUTF8, KindAtascii:
		return true
	default:
		return false
	}
}

// Emulator is the per-dialect byte-stream parser and keystroke encoder
// contract every emulation implements.
type Emulator interface {
	// Kind reports which dialect this instance implements.
	Kind() Kind

	// Reset restores the initial scan state and any display-state
	// booleans owned by this emulator.
	Reset()

	// Feed consumes one byte, returning the emission outcome. Feed must
	// never panic on any byte value, and must make forward progress:
	// after any finite run of bytes the parser is left in a
	// well-defined state having emitted some number of characters.
	Feed(b byte) Outcome

	// EncodeKey returns the outbound byte sequence for a logical key
	// event, or ok=false if this dialect has no mapping for it.
	EncodeKey(ev KeyEvent) (seq []byte, ok bool)
}

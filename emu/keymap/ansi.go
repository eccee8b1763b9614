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

// Package keymap holds the keystroke encoders shared across dialects:
// translating a logical emu.KeyEvent into the byte sequence a given
// terminal dialect expects the host to receive on keydown.
package keymap

import "github.com/tdial/termcore/emu"

// EncodeANSI maps a logical key event to its VT100/ANSI/XTerm wire
// encoding. application selects DECCKM cursor-key reporting.
func EncodeANSI(ev emu.KeyEvent, application bool) ([]byte, bool) {
	if ev.Key == emu.KeyRune {
		return []byte(string(ev.Rune)), true
	}

	cursorPrefix := "\x1b["
	if application {
		cursorPrefix = "\x1bO"
	}

	switch ev.Key {
	case emu.KeyEscape:
		return []byte{0x1b}, true
	case emu.KeyTab:
		return []byte{0x09}, true
	case emu.KeyBacktab:
		return []byte("\x1b[Z"), true
	case emu.KeyBackspace:
		return []byte{0x7f}, true
	case emu.KeyEnter:
		return []byte{0x0d}, true
	case emu.KeyHome:
		return []byte("\x1b[H"), true
	case emu.KeyEnd:
		return []byte("\x1b[F"), true
	case emu.KeyInsert:
		return []byte("\x1b[2~"), true
	case emu.KeyDelete:
		return []byte("\x1b[3~"), true
	case emu.KeyPageUp:
		return []byte("\x1b[5~"), true
	case emu.KeyPageDown:
		return []byte("\x1b[6~"), true
	case emu.KeyArrowUp:
		return append([]byte(cursorPrefix), 'A'), true
	case emu.KeyArrowDown:
		return append([]byte(cursorPrefix), 'B'), true
	case emu.KeyArrowRight:
		return append([]byte(cursorPrefix), 'C'), true
	case emu.KeyArrowLeft:
		return append([]byte(cursorPrefix), 'D'), true
	case emu.KeyF1, emu.KeyF2, emu.KeyF3, emu.KeyF4:
		return []byte{0x1b, 'O', byte('P' + int(ev.Key-emu.KeyF1))}, true
	case emu.KeyF5:
		return []byte("\x1b[15~"), true
	case emu.KeyF6:
		return []byte("\x1b[17~"), true
	case emu.KeyF7:
		return []byte("\x1b[18~"), true
	case emu.KeyF8:
		return []byte("\x1b[19~"), true
	case emu.KeyF9:
		return []byte("\x1b[20~"), true
	case emu.KeyF10:
		return []byte("\x1b[21~"), true
	case emu.KeyF11:
		return []byte("\x1b[23~"), true
	case emu.KeyF12:
		return []byte("\x1b[24~"), true
	}
	return nil, false
}

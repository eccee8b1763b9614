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

package keymap

import "github.com/tdial/termcore/emu"

// atasciiSpecial holds the literal single-byte encodings the ATASCII
// dialect sends for non-rune keys. Values are the Atari's own
// single-keystroke byte, not an escape sequence.
var atasciiSpecial = map[emu.Key]byte{
	emu.KeyEscape:      0033,
	emu.KeyTab:         0011,
	emu.KeyBackspace:   0024,
	emu.KeyArrowUp:     0221,
	emu.KeyArrowDown:   0021,
	emu.KeyArrowLeft:   0235,
	emu.KeyArrowRight:  0035,
	emu.KeyInsert:      0224,
	emu.KeyDelete:      0024,
	emu.KeyHome:        0023,
	emu.KeyEnter:       0015,
	emu.KeyF1:          0205,
	emu.KeyF2:          0211,
	emu.KeyF3:          0206,
	emu.KeyF4:          0212,
	emu.KeyF5:          0207,
	emu.KeyF6:          0213,
	emu.KeyF7:          0210,
	emu.KeyF8:          0214,
}

// EncodeATASCII maps a logical key event to the single byte an ATASCII
// dialect emits for it.
func EncodeATASCII(ev emu.KeyEvent) ([]byte, bool) {
	if ev.Key == emu.KeyRune {
		if ev.Rune >= 0 && ev.Rune < 0x80 {
			return []byte{byte(ev.Rune)}, true
		}
		return nil, false
	}
	if b, ok := atasciiSpecial[ev.Key]; ok {
		return []byte{b}, true
	}
	return nil, false
}

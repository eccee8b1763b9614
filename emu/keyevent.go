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

// Key names the logical keys a keystroke encoder maps, independent of
// any specific keyboard layout or host input library.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // the event carries a Unicode code point in KeyEvent.Rune
	KeyEscape
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyEnter
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Mod is a bitmask of keyboard modifiers.
type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << (iota - 1)
	ModAlt
	ModCtrl
)

// KeyEvent is a single logical key press handed to an Emulator's
// EncodeKey. For KeyRune, Rune carries the code point; modifiers are
// best-effort, since terminal programs generally cannot observe them
// reliably.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

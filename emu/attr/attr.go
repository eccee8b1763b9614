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

// Package attr holds the graphic-rendition attribute bitmask shared by
// every emulation parser, SGR parameter-list handling, and the
// reverse-video resolution rule invoked by the (external) display layer.
package attr

// Attr is a synthetic combination of display attributes for a cell,
// apart from color which is tracked separately as a ColorPair.
type Attr uint16

const (
	Plain     Attr = 0
	Bold      Attr = 1 << 0
	Blink     Attr = 1 << 1
	Reverse   Attr = 1 << 2
	Protect   Attr = 1 << 3
	Underline Attr = 1 << 4
)

// DefaultColor is the sentinel color index meaning "use the terminal's
// default foreground or background", set by SGR 39/49.
const DefaultColor = -1

// ColorPair is the foreground/background color state tracked alongside
// Attr. Indices 0-7 are the base ANSI colors, 0-255 under 256-color SGR,
// or DefaultColor.
type ColorPair struct {
	Fg int
	Bg int
}

// DefaultPair is the pair used by SGR 0 (reset).
var DefaultPair = ColorPair{Fg: DefaultColor, Bg: DefaultColor}

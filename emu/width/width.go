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

// Package width resolves the "has_wide_font" edge case from the ATASCII
// parser contract: when the backend lacks a double-width font, glyphs
// that would otherwise render in one double-wide cell must be measured
// so the parser can request the fallback cell layout.
package width

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth reports the terminal cell width of r: 0, 1, or 2.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// IsWide reports whether r occupies two terminal cells under the
// East-Asian-width rules go-runewidth implements.
func IsWide(r rune) bool {
	return RuneWidth(r) == 2
}

// CombinesWithPrevious reports whether next forms a single grapheme
// cluster together with prev — a combining mark, variation selector,
// or other non-spacing addition — and so should attach to prev's cell
// rather than advance the cursor to a new one. prev of 0 (no previous
// rune yet, or the previous byte was a control code) never combines.
func CombinesWithPrevious(prev, next rune) bool {
	if prev == 0 {
		return false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(prev)+string(next), -1)
	return len([]rune(cluster)) > 1
}

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

package attr

// Resolve computes the final on-screen attribute/color pair for a cell,
// combining the cell's local Reverse bit with the global DECSCNM
// screen-reverse flag. xorCapable should be true for emulations in
// {ANSI, AVATAR, PETSCII, VT100, VT102, VT220, LINUX, LINUX_UTF8, XTERM,
// XTERM_UTF8}; for TTY/VT52/DEBUG it should be false and the attribute
// passes through unchanged. The resolved Attr never has Reverse set;
// instead Fg/Bg are swapped when the XOR is true.
func Resolve(a Attr, c ColorPair, screenReverse bool, xorCapable bool) (Attr, ColorPair) {
	if !xorCapable {
		return a, c
	}
	local := a&Reverse != 0
	xor := local != screenReverse
	a &^= Reverse
	if xor {
		c.Fg, c.Bg = c.Bg, c.Fg
	}
	return a, c
}

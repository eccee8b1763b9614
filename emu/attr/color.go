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

import "github.com/lucasb-eyer/go-colorful"

// paletteCache holds the 256-entry xterm-compatible palette, computed
// once at package initialization: the 16 ANSI colors, a 6x6x6 color cube, and a
// 24-step grayscale ramp.
var paletteCache [256]colorful.Color

var ansiBase = [16][3]float64{
	{0, 0, 0}, {0.5, 0, 0}, {0, 0.5, 0}, {0.5, 0.5, 0},
	{0, 0, 0.5}, {0.5, 0, 0.5}, {0, 0.5, 0.5}, {0.75, 0.75, 0.75},
	{0.5, 0.5, 0.5}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

func init() {
	for i := 0; i < 16; i++ {
		c := ansiBase[i]
		paletteCache[i] = colorful.Color{R: c[0], G: c[1], B: c[2]}
	}
	cube := []float64{0, 95.0 / 255, 135.0 / 255, 175.0 / 255, 215.0 / 255, 255.0 / 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				paletteCache[idx] = colorful.Color{R: cube[r], G: cube[g], B: cube[b]}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := (8.0 + float64(i)*10.0) / 255.0
		paletteCache[232+i] = colorful.Color{R: v, G: v, B: v}
	}
}

// PaletteRGB resolves an 8- or 256-color index to an RGB triple in the
// 0-255 range, for a display layer that wants to render actual color
// rather than a terminal-native palette index. Out-of-range indices
// resolve to white.
func PaletteRGB(index int) (r, g, b uint8) {
	if index < 0 || index > 255 {
		return 0xff, 0xff, 0xff
	}
	c := paletteCache[index]
	ri, gi, bi := c.RGB255()
	return ri, gi, bi
}

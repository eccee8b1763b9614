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

// Package session wires the emulation, protocol, and script layers
// together behind a single ownership root, replacing the source's
// file-scope globals (spec design note 9).
package session

import (
	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/emu/ansi"
	"github.com/tdial/termcore/emu/atascii"
	"github.com/tdial/termcore/log"
)

// NewEmulator constructs the Emulator for a dialect. This lives in
// session, not emu, because emu/ansi and emu/atascii both import emu
// for its shared primitives (Display, Outcome, ParseBuffer, KeyEvent) —
// a constructor that imports them back into emu would cycle.
func NewEmulator(kind emu.Kind, disp *emu.Display, logger *log.Logger) emu.Emulator {
	if kind == emu.KindAtascii {
		return atascii.New(disp, logger)
	}
	return ansi.New(kind, disp, logger)
}

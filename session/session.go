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

package session

import (
	"github.com/tdial/termcore/emu"
	"github.com/tdial/termcore/log"
	"github.com/tdial/termcore/options"
	"github.com/tdial/termcore/protocol"
	"github.com/tdial/termcore/script"
)

// Session is the single ownership root a program built on this core
// holds by reference and passes through all operations; the UI
// obtains a read-only view via the accessor methods.
type Session struct {
	Display    *emu.Display
	Emulator   emu.Emulator
	Dispatcher *protocol.Dispatcher
	Script     *script.Bridge
	Logger     *log.Logger
	Options    *options.Store

	kind emu.Kind
}

// New creates a Session with the given screen geometry and starting
// dialect, and a ring logger with a reasonable default capacity.
func New(rows, cols int, kind emu.Kind, opts *options.Store) *Session {
	logger := log.New(512)
	disp := emu.NewDisplay(rows, cols)
	s := &Session{
		Display:    disp,
		Logger:     logger,
		Options:    opts,
		Dispatcher: protocol.NewDispatcher(logger),
		Script:     script.New(logger, cols),
	}
	s.SwitchEmulator(kind)
	return s
}

// Kind reports the active dialect.
func (s *Session) Kind() emu.Kind { return s.kind }

// SwitchEmulator resets the Display and installs a fresh Emulator for
// kind, per spec 3 ("reset on emulator switch").
func (s *Session) SwitchEmulator(kind emu.Kind) {
	s.kind = kind
	s.Display.Reset()
	s.Emulator = NewEmulator(kind, s.Display, s.Logger)
}

// FeedRemote drives one byte from the remote through the active
// emulator, additionally teeing printable output into the script
// bridge's print buffer when a script is running.
func (s *Session) FeedRemote(b byte) emu.Outcome {
	out := s.Emulator.Feed(b)
	if !s.Script.Dead() && (out.Kind == emu.OneChar || out.Kind == emu.RepeatChar) {
		s.Script.PrintCharacter(out.Char)
	}
	return out
}

// EncodeKey delegates to the active emulator's keystroke encoder.
func (s *Session) EncodeKey(ev emu.KeyEvent) ([]byte, bool) {
	return s.Emulator.EncodeKey(ev)
}

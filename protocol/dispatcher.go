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

package protocol

import (
	"fmt"

	"github.com/tdial/termcore/log"
	"github.com/tdial/termcore/protocol/engine"
)

// Dispatcher multiplexes the bidirectional remote byte stream between
// console input, the active transfer protocol, and screen updates,
// tracking a remaining-byte count across calls for engines that do
// not consume their whole input in one tick.
type Dispatcher struct {
	Stats     *Stats
	Ascii     *AsciiEngine
	Direction Direction
	Engine    engine.Engine // nil unless Stats.Kind needs an external engine

	logger        *log.Logger
	remaining     int
	consoleEcho   []byte
	lastFrameName string
}

// ConsoleEcho returns the raw input bytes (before translation and CRLF
// handling) that an ASCII download received and wrote on the last
// ProcessData call, so the caller can forward them to
// console processing (the active emulator) per 4.3 ("user sees the
// data as it is written"). It is never outbound protocol traffic and
// must not be sent back to the remote.
func (d *Dispatcher) ConsoleEcho() []byte { return d.consoleEcho }

// NewDispatcher creates a dispatcher in the console (Init/None) state.
func NewDispatcher(logger *log.Logger) *Dispatcher {
	return &Dispatcher{Stats: NewStats(), logger: logger}
}

// Remaining reports the unconsumed input byte count an Xmodem/Ymodem
// family engine reported on its last call.
func (d *Dispatcher) Remaining() int { return d.remaining }

// ProcessData drives one tick. It returns how many bytes of input
// were consumed and how many bytes of output were written.
func (d *Dispatcher) ProcessData(input []byte, output []byte) (consumed, written int) {
	if d.Stats.Phase.Terminal() {
		return 0, 0
	}

	switch {
	case d.Stats.Kind == KindAscii:
		return d.processAscii(input, output)
	case d.Stats.Kind == KindNone:
		return 0, 0
	default:
		return d.processEngine(input, output)
	}
}

func (d *Dispatcher) processAscii(input []byte, output []byte) (int, int) {
	if d.Ascii == nil {
		return 0, 0
	}
	if d.Direction == DirectionUpload {
		written, err := d.Ascii.Upload(d.Stats, output)
		if err != nil {
			d.logAbort(err.Error())
		}
		return 0, written
	}
	d.consoleEcho = nil
	echo, err := d.Ascii.Download(d.Stats, input)
	if err != nil {
		d.logAbort(err.Error())
		return len(input), 0
	}
	// Downloaded bytes are forwarded to console processing, not back
	// out to the remote: ProcessData's output is outbound protocol
	// traffic only, and an ASCII download produces none.
	d.consoleEcho = echo
	return len(input), 0
}

func (d *Dispatcher) processEngine(input []byte, output []byte) (int, int) {
	if d.Engine == nil {
		return 0, 0
	}
	d.logFrame(input)
	consumed, written, remaining, result := d.Engine.ProcessData(input, output)
	if d.Stats.Kind.ForcesRemainingZero() {
		remaining = 0
	}
	d.remaining = remaining
	d.applyResult(result)
	return consumed, written
}

// logFrame identifies the frame a leading input byte introduces, per
// the active protocol family, and logs it once per distinct frame type
// in a row (re-sent identical bytes on a retry do not re-log).
func (d *Dispatcher) logFrame(input []byte) {
	if len(input) == 0 {
		return
	}
	b := input[0]

	var name string
	var ok bool
	switch d.Stats.Kind {
	case KindXmodemChecksum, KindXmodemCRC, KindXmodem1K, KindXmodem1KG, KindYmodemBatch, KindYmodemG:
		name, ok = engine.DescribeXmodemFrame(b)
	case KindZmodem:
		name, ok = engine.DescribeZmodemFrame(b)
		if !ok {
			name, ok = engine.DescribeZmodemType(b)
		}
	case KindKermit:
		name, ok = engine.DescribeKermitFrame(b)
	}
	if !ok || name == d.lastFrameName {
		return
	}
	d.lastFrameName = name
	d.logf("FRAME: protocol %s, type %s", d.Stats.ProtocolName, name)
}

// applyResult moves the phase on an engine event. A completed file
// sets the phase directly to Transfer (batch continues) or End;
// PhaseFileDone is never entered.
func (d *Dispatcher) applyResult(result engine.Result) {
	switch result.Event {
	case engine.EventFileComplete:
		d.logf("UPLOAD FILE COMPLETE: protocol %s, filename %s, filesize %d",
			d.Stats.ProtocolName, d.Stats.Filename, d.Stats.BytesTotal)
		if d.Stats.Kind.IsBatch() && d.Stats.BatchBytesTransfer < d.Stats.BatchBytesTotal {
			d.Stats.Phase = PhaseTransfer
		} else {
			d.Stats.Phase = PhaseEnd
		}
	case engine.EventBatchComplete:
		d.Stats.Phase = PhaseEnd
	case engine.EventFatalError:
		d.logAbort(result.Message)
	}
}

func (d *Dispatcher) logAbort(msg string) {
	d.Stats.Phase = PhaseAbort
	d.Stats.SetLastMessage(msg)
	d.Stats.ErrorCount++
	d.logf("TRANSFER ABORT: protocol %s, filename %s, error %s",
		d.Stats.ProtocolName, d.Stats.Filename, msg)
}

// BeginDownload transitions the dispatcher into a download, logging
// the standard begin line.
func (d *Dispatcher) BeginDownload(kind Kind, protocolName, filename string) {
	d.Stats.ResetToConsole()
	d.Stats.Kind = kind
	d.Stats.Phase = PhaseFileInfo
	d.Stats.SetProtocolName(protocolName)
	d.Stats.SetFilename(filename)
	d.lastFrameName = ""
	d.logf("DOWNLOAD BEGIN: protocol %s, filename %s", protocolName, filename)
}

// Cancel handles a user-initiated cancel from the transfer UI: the
// transfer moves to Abort and the engine's stop function is invoked
// with the save-partial flag.
func (d *Dispatcher) Cancel(savePartial bool) error {
	d.Stats.Phase = PhaseAbort
	if d.Engine != nil {
		return d.Engine.Stop(savePartial)
	}
	return nil
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Log("PROTOCOL", fmt.Sprintf(format, args...))
}

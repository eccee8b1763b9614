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

// Package engine defines the invocation contract the dispatcher drives
// external file-transfer protocol implementations (Xmodem family,
// Ymodem family, Zmodem, Kermit) through. Per the core's scope, the
// protocols themselves are external collaborators; this package names
// only how the core calls into them, plus the wire constants needed to
// identify and log frame types.
package engine

// EventKind reports what, if anything, happened to transfer state as
// a result of an engine's ProcessData call.
type EventKind int

const (
	EventNone EventKind = iota
	EventFileComplete
	EventBatchComplete
	EventFatalError
)

// Result communicates phase-relevant engine outcomes back to the
// dispatcher without the engine needing to know about protocol.Stats.
type Result struct {
	Event   EventKind
	Message string
}

// Engine is implemented by each external protocol driver the
// dispatcher can multiplex to. ProcessData consumes as much of input
// as it wants, reports how many input bytes remain unconsumed
// (meaningful only for Xmodem/Ymodem family engines; Zmodem and Kermit
// always report zero, since they buffer internally), and writes up to
// len(output) bytes of outbound protocol traffic.
type Engine interface {
	// Name identifies the engine for logging and the protocol-name
	// field of the transfer-stats record.
	Name() string

	// Start begins a transfer. direction is "upload" or "download".
	Start(direction, filename string) error

	// ProcessData drives one tick of protocol traffic.
	ProcessData(input []byte, output []byte) (consumed, written, remaining int, result Result)

	// Stop requests the engine cease, optionally preserving a
	// partially-received file ("save-partial" on user cancel).
	Stop(savePartial bool) error
}

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

// Package protocol implements the dispatcher that multiplexes the
// bidirectional remote byte stream between console input, an active
// file-transfer protocol, and screen updates, plus the ASCII inline
// transfer engine and the transfer-stats lifecycle record.
package protocol

// Kind names the active transfer protocol, including family variants.
type Kind int

const (
	KindNone Kind = iota
	KindAscii
	KindXmodemChecksum
	KindXmodemCRC
	KindXmodem1K
	KindXmodem1KG
	KindYmodemBatch
	KindYmodemG
	KindZmodem
	KindKermit
)

// String names the protocol the way the exposed record's
// protocol-name string presents it.
func (k Kind) String() string {
	switch k {
	case KindAscii:
		return "ASCII"
	case KindXmodemChecksum:
		return "Xmodem"
	case KindXmodemCRC:
		return "Xmodem-CRC"
	case KindXmodem1K:
		return "Xmodem-1K"
	case KindXmodem1KG:
		return "Xmodem-1K/G"
	case KindYmodemBatch:
		return "Ymodem"
	case KindYmodemG:
		return "Ymodem-G"
	case KindZmodem:
		return "Zmodem"
	case KindKermit:
		return "Kermit"
	default:
		return "None"
	}
}

// IsBatch reports whether this protocol can carry more than one file
// per session.
func (k Kind) IsBatch() bool {
	switch k {
	case KindYmodemBatch, KindYmodemG, KindZmodem, KindKermit:
		return true
	default:
		return false
	}
}

// ForcesRemainingZero reports whether the protocol's external engine
// always consumes the whole input buffer, so the dispatcher does not
// need to preserve a remaining-byte count across calls.
func (k Kind) ForcesRemainingZero() bool {
	switch k {
	case KindZmodem, KindKermit:
		return true
	default:
		return false
	}
}

// Phase is a transfer's lifecycle state. Transitions are monotone
// except that End and Abort are terminal.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseFileInfo
	PhaseTransfer
	PhaseFileDone
	PhaseEnd
	PhaseAbort
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseFileInfo:
		return "FileInfo"
	case PhaseTransfer:
		return "Transfer"
	case PhaseFileDone:
		return "FileDone"
	case PhaseEnd:
		return "End"
	case PhaseAbort:
		return "Abort"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further tick should drive this transfer.
func (p Phase) Terminal() bool {
	return p == PhaseEnd || p == PhaseAbort
}

// Direction distinguishes an upload (local file to remote) from a
// download (remote to local file).
type Direction int

const (
	DirectionUpload Direction = iota
	DirectionDownload
)

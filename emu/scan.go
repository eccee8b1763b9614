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

// ScanState names the state of a byte-driven parser's state machine.
// Each dialect's parser codes its transitions as a switch on the
// current state; there is no transition table.
type ScanState int

const (
	Ground ScanState = iota
	Escape
	CSIEntry
	CSIParam
	CSIIntermediate
	DCS
	OSC
	AnsiFallback
	DumpUnknown
)

func (s ScanState) String() string {
	switch s {
	case Ground:
		return "Ground"
	case Escape:
		return "Escape"
	case CSIEntry:
		return "CSIEntry"
	case CSIParam:
		return "CSIParam"
	case CSIIntermediate:
		return "CSIIntermediate"
	case DCS:
		return "DCS"
	case OSC:
		return "OSC"
	case AnsiFallback:
		return "AnsiFallback"
	case DumpUnknown:
		return "DumpUnknown"
	default:
		return "Unknown"
	}
}

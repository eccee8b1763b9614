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

package engine

// Xmodem/Ymodem control bytes (Ward Christensen protocol family).
const (
	XmodemSOH = 0x01 // start of 128-byte block
	XmodemSTX = 0x02 // start of 1024-byte block (Xmodem-1K/Ymodem)
	XmodemEOT = 0x04 // end of transmission
	XmodemACK = 0x06
	XmodemNAK = 0x15
	XmodemCAN = 0x18
	XmodemENQ = 0x05
	XmodemC   = 'C' // CRC-mode receiver-ready byte
)

// Zmodem frame types, the subset the dispatcher needs to recognize
// enough of a ZMODEM session to log phase transitions and cancel
// cleanly. A full ZMODEM implementation is an external collaborator.
const (
	ZRQInit = 0x00
	ZRInit  = 0x01
	ZFile   = 0x04
	ZData   = 0x0a
	ZEof    = 0x0b
	ZFin    = 0x08
	ZAbort  = 0x07
	ZNak    = 0x06
)

// ZPad begins a ZMODEM frame header; ZDLE is the data-link escape.
const (
	ZPad = 0x2a
	ZDLE = 0x18
)

// Kermit packet-type marker bytes for the packets the dispatcher's
// log lines reference.
const (
	KermitSend = 'S'
	KermitFile = 'F'
	KermitData = 'D'
	KermitEOF  = 'Z'
	KermitBrk  = 'B'
)

// DescribeXmodemFrame names the Xmodem/Ymodem-family frame a leading
// input byte introduces, for the dispatcher's log lines. ok is false
// for a byte that starts no recognized frame (ordinary block data).
func DescribeXmodemFrame(b byte) (name string, ok bool) {
	switch b {
	case XmodemSOH:
		return "SOH (128-byte block)", true
	case XmodemSTX:
		return "STX (1024-byte block)", true
	case XmodemEOT:
		return "EOT", true
	case XmodemACK:
		return "ACK", true
	case XmodemNAK:
		return "NAK", true
	case XmodemCAN:
		return "CAN", true
	case XmodemENQ:
		return "ENQ", true
	case XmodemC:
		return "C (CRC-mode ready)", true
	default:
		return "", false
	}
}

// DescribeZmodemFrame names the ZMODEM frame a leading input byte
// introduces.
func DescribeZmodemFrame(b byte) (name string, ok bool) {
	switch b {
	case ZPad:
		return "ZPAD (frame header)", true
	case ZDLE:
		return "ZDLE (data-link escape)", true
	default:
		return "", false
	}
}

// DescribeZmodemType names a ZMODEM frame-type byte (the byte
// following a ZPAD/ZDLE header, once unescaped).
func DescribeZmodemType(b byte) (name string, ok bool) {
	switch b {
	case ZRQInit:
		return "ZRQINIT", true
	case ZRInit:
		return "ZRINIT", true
	case ZFile:
		return "ZFILE", true
	case ZData:
		return "ZDATA", true
	case ZEof:
		return "ZEOF", true
	case ZFin:
		return "ZFIN", true
	case ZAbort:
		return "ZABORT", true
	case ZNak:
		return "ZNAK", true
	default:
		return "", false
	}
}

// DescribeKermitFrame names the Kermit packet type a leading input
// byte introduces.
func DescribeKermitFrame(b byte) (name string, ok bool) {
	switch b {
	case KermitSend:
		return "Send-Init", true
	case KermitFile:
		return "File-Header", true
	case KermitData:
		return "Data", true
	case KermitEOF:
		return "EOF", true
	case KermitBrk:
		return "Break", true
	default:
		return "", false
	}
}

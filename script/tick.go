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

package script

import (
	"errors"
	"io"
	"syscall"

	"github.com/tdial/termcore/emu/codec"
)

// ConsoleFeeder is how the bridge hands bytes it did not itself
// consume back to the console path, which may feed the emulator and
// thus refill the print buffer. It mirrors the active Emulator's Feed
// method without creating a package dependency on emu.
type ConsoleFeeder func(b byte)

// Tick drives one iteration of the four-step per-tick operation from
// spec 4.4: drain print buffer to stdin, run remote bytes through the
// console path when eligible, frame stderr into scroll lines, and
// forward stdout to the remote outbound buffer.
//
// feedConsole is nil-safe; utf8 selects whether stdout is re-encoded
// as UTF-8 (true) or truncated to 8-bit (false) on the way out.
func (b *Bridge) Tick(remoteIn []byte, outbound []byte, feedConsole ConsoleFeeder, utf8 bool, outTranslate *[256]byte) (consoleConsumed, outboundWritten int) {
	if b.dead {
		return 0, 0
	}

	b.drainPrintBuffer()

	if (b.paused || b.dead || !b.printBufFull) && feedConsole != nil {
		for _, rb := range remoteIn {
			feedConsole(rb)
		}
		consoleConsumed = len(remoteIn)
	}

	b.pollStderr()

	outboundWritten = b.pollStdout(outbound, utf8, outTranslate)

	return consoleConsumed, outboundWritten
}

func (b *Bridge) drainPrintBuffer() {
	if len(b.printBuf) == 0 {
		return
	}
	n, err := b.ptmx.Write(b.printBuf)
	if n > 0 {
		b.printBuf = b.printBuf[n:]
		codePtsSent := n // best-effort: ASCII scripts dominate, multi-byte runes undercount slightly
		b.printCodePts -= codePtsSent
		if b.printCodePts < 0 {
			b.printCodePts = 0
		}
		if b.printCodePts < printBufferCapacity {
			b.printBufFull = false
		}
	}
	if err != nil && !isRetryable(err) {
		b.logger.Printf("SCRIPT", "stdin write error: %v", err)
	}
}

func (b *Bridge) pollStderr() {
	buf := make([]byte, 256)
	n, err := b.stderrR.Read(buf)
	chunk := buf[:n]
	if b.localeEnc != nil {
		if utf8, decErr := codec.DecodeLocaleBytes(b.localeEnc, chunk); decErr == nil {
			chunk = utf8
		}
	}
	for i := 0; i < len(chunk); i++ {
		r, status := b.stderrDecoder.Step(chunk[i])
		switch status {
		case codec.Accept:
			b.appendStderrRune(r)
		case codec.Reject:
			b.stderrDecoder.Reset()
		}
	}
	if err != nil && !isRetryable(err) && err != io.EOF {
		b.logger.Printf("SCRIPT", "stderr read error: %v", err)
	}
	// EOF on stderr is informational, not fatal.
}

func (b *Bridge) appendStderrRune(r rune) {
	if r == '\r' {
		return
	}
	if r == '\n' {
		b.completeLine()
		return
	}
	b.currentLine.Runes = append(b.currentLine.Runes, r)
	if len(b.currentLine.Runes) >= b.maxLineWidth {
		b.completeLine()
	}
}

func (b *Bridge) completeLine() {
	line := b.currentLine
	if len(b.lines) > 0 {
		prev := b.lines[len(b.lines)-1]
		prev.Next = line
		line.Prev = prev
	}
	b.lines = append(b.lines, line)
	b.logger.Printf("SCRIPT", "Script message: %s", string(line.Runes))
	b.currentLine = &ScrollLine{}
}

func (b *Bridge) flushCurrentLine() {
	if b.currentLine != nil && len(b.currentLine.Runes) > 0 {
		b.completeLine()
	}
}

// Lines returns the completed stderr scroll lines, oldest first.
func (b *Bridge) Lines() []*ScrollLine { return b.lines }

func (b *Bridge) pollStdout(outbound []byte, utf8Mode bool, translate *[256]byte) int {
	buf := make([]byte, 256)
	n, err := b.ptmx.Read(buf)
	written := 0
	for i := 0; i < n; i++ {
		r, status := b.stdoutDecoder.Step(buf[i])
		if status != codec.Accept {
			if status == codec.Reject {
				b.stdoutDecoder.Reset()
			}
			continue
		}
		if len(outbound)-written < 4 {
			break
		}
		if r <= 0x7F && translate != nil {
			r = rune(translate[byte(r)])
		}
		if utf8Mode {
			var tmp [4]byte
			enc := codec.Encode(tmp[:0], r)
			written += copy(outbound[written:], enc)
		} else {
			outbound[written] = byte(r)
			written++
		}
	}
	if err == io.EOF {
		b.dead = true
	} else if err != nil && !isRetryable(err) {
		b.logger.Printf("SCRIPT", "stdout read error: %v", err)
	}
	return written
}

func isRetryable(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK)
}

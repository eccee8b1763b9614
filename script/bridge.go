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

// Package script implements the subprocess bridge: a co-process that
// receives printable characters decoded by the emulator on its
// standard input, whose standard output is re-encoded and forwarded
// to the remote, and whose standard error is framed into scroll lines
// for UI display.
package script

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
	"golang.org/x/text/encoding"

	"github.com/tdial/termcore/emu/codec"
	"github.com/tdial/termcore/log"
)

const printBufferCapacity = 128 // code points, per spec scenario 5

// Env describes the environment the child process is spawned with.
type Env struct {
	Term          string // current emulation's terminal-type string; unset if empty
	Lines         int    // screen height minus status height
	Columns       int    // width, or 80 under BBS-class 80-column emulations
	Lang          string // UTF-8 locale configured in options
	ScriptsDir    string // prepended to PATH, POSIX only
}

// Bridge owns the script child process lifecycle and its three
// plumbed streams.
type Bridge struct {
	logger *log.Logger

	cmd       *exec.Cmd
	ptmx      *os.File   // pty master, doubles as child stdin/stdout
	stderrR   *os.File   // read end of the stderr pipe
	stderrW   *os.File   // write end, handed to the child
	restore   *term.State

	paused bool
	dead   bool

	printBuf      []byte // UTF-8 bytes queued for the child's stdin
	printBufFull  bool
	printCodePts  int

	stderrDecoder codec.Decoder
	stdoutDecoder codec.Decoder
	localeEnc     encoding.Encoding // non-nil when the script's locale is an 8-bit codeset, not UTF-8
	currentLine   *ScrollLine
	lines         []*ScrollLine
	maxLineWidth  int

	scriptStartTime time.Time
	scriptRC        int
}

// ScrollLine is a wide-character line of at most maxLineWidth runes
// produced by the stderr framer, kept in a doubly-linked chain. Runes
// holds only the received characters; it is not padded with blanks.
type ScrollLine struct {
	Runes []rune
	Prev  *ScrollLine
	Next  *ScrollLine
}

// New creates an idle bridge. maxLineWidth bounds stderr scroll lines
// (spec 3, "length ≤ maxLineWidth").
func New(logger *log.Logger, maxLineWidth int) *Bridge {
	if maxLineWidth <= 0 {
		maxLineWidth = 80
	}
	return &Bridge{logger: logger, maxLineWidth: maxLineWidth, dead: true}
}

// Start spawns the named script with stdin/stdout plumbed through a
// pty and a separate stderr pipe, per spec 4.4 and design note 9
// ("POSIX uses pty + FIFO for stderr").
func (b *Bridge) Start(path string, env Env) error {
	b.reset()

	b.cmd = exec.Command(path)
	b.cmd.Env = buildEnv(env)

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("script: stderr pipe: %w", err)
	}
	b.cmd.Stderr = stderrW

	ptmx, err := pty.Start(b.cmd)
	if err != nil {
		stderrR.Close()
		stderrW.Close()
		return fmt.Errorf("script: spawn failure: %w", err)
	}

	if err := unix.SetNonblock(int(ptmx.Fd()), true); err != nil {
		b.logger.Printf("SCRIPT", "could not set stdio non-blocking: %v", err)
	}
	if err := unix.SetNonblock(int(stderrR.Fd()), true); err != nil {
		b.logger.Printf("SCRIPT", "could not set stderr non-blocking: %v", err)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		if restore, rerr := term.MakeRaw(int(os.Stdin.Fd())); rerr == nil {
			b.restore = restore
		} else {
			b.logger.Printf("SCRIPT", "could not enter raw mode: %v", rerr)
		}
	}

	b.ptmx = ptmx
	b.stderrR = stderrR
	b.stderrW = stderrW
	b.dead = false
	b.paused = false
	b.scriptStartTime = time.Now()
	b.currentLine = &ScrollLine{}
	b.localeEnc = resolveLocaleEncoding(env.Lang)
	return nil
}

// resolveLocaleEncoding honors LC_ALL/LC_CTYPE over the session's own
// Lang setting (POSIX precedence), returning nil when the resolved
// codeset is UTF-8 or unrecognized.
func resolveLocaleEncoding(lang string) encoding.Encoding {
	codeset := codec.ResolveLocale(os.Getenv("LC_ALL"), os.Getenv("LC_CTYPE"), lang)
	enc, ok := codec.LookupLocale(codeset)
	if !ok {
		return nil
	}
	return enc
}

func buildEnv(env Env) []string {
	base := os.Environ()
	out := make([]string, 0, len(base)+4)
	for _, kv := range base {
		if strings.HasPrefix(kv, "TERM=") || strings.HasPrefix(kv, "LINES=") ||
			strings.HasPrefix(kv, "COLUMNS=") || strings.HasPrefix(kv, "LANG=") ||
			strings.HasPrefix(kv, "PATH=") {
			continue
		}
		out = append(out, kv)
	}
	if env.Term != "" {
		out = append(out, "TERM="+env.Term)
	}
	out = append(out, "LINES="+strconv.Itoa(env.Lines))
	cols := env.Columns
	if cols <= 0 {
		cols = 80
	}
	out = append(out, "COLUMNS="+strconv.Itoa(cols))
	if env.Lang != "" {
		out = append(out, "LANG="+env.Lang)
	}
	path := os.Getenv("PATH")
	if env.ScriptsDir != "" {
		path = env.ScriptsDir + string(os.PathListSeparator) + path
	}
	out = append(out, "PATH="+path)
	return out
}

// Dead reports whether the script has already terminated (or never
// started).
func (b *Bridge) Dead() bool { return b.dead }

// PrintBufferFull is exposed to the emulator; when true the emulator
// is expected to drop further printable characters rather than block.
func (b *Bridge) PrintBufferFull() bool { return b.printBufFull }

// PrintCharacter queues a decoded printable character for the child's
// stdin, enforcing the 128-code-point print buffer capacity.
func (b *Bridge) PrintCharacter(r rune) {
	if b.paused {
		return
	}
	if b.printCodePts >= printBufferCapacity {
		b.printBufFull = true
		return
	}
	var tmp [4]byte
	n := len(codec.Encode(tmp[:0], r))
	b.printBuf = append(b.printBuf, tmp[:n]...)
	b.printCodePts++
}

// Pause suspends stdin teeing and stdout reads.
func (b *Bridge) Pause() { b.paused = true }

// Resume reverses Pause.
func (b *Bridge) Resume() { b.paused = false }

func (b *Bridge) reset() {
	b.printBuf = nil
	b.printBufFull = false
	b.printCodePts = 0
	b.stderrDecoder.Reset()
	b.stdoutDecoder.Reset()
	b.lines = nil
	b.scriptRC = 0
}

// Stop attempts graceful termination (SIGHUP), escalating to SIGKILL
// if the process does not exit within the given grace period, then
// reaps it and logs total elapsed time.
func (b *Bridge) Stop(grace time.Duration) error {
	if b.dead {
		return nil
	}
	b.flushCurrentLine()

	if b.cmd.Process != nil {
		_ = b.cmd.Process.Signal(unix.SIGHUP)
	}

	done := make(chan error, 1)
	go func() { done <- b.cmd.Wait() }()

	select {
	case err := <-done:
		b.finish(err)
	case <-time.After(grace):
		if b.cmd.Process != nil {
			_ = b.cmd.Process.Kill()
		}
		b.finish(<-done)
	}

	if b.ptmx != nil {
		b.ptmx.Close()
	}
	if b.stderrR != nil {
		b.stderrR.Close()
	}
	if b.stderrW != nil {
		b.stderrW.Close()
	}
	if b.restore != nil {
		_ = term.Restore(int(os.Stdin.Fd()), b.restore)
		b.restore = nil
	}
	b.dead = true

	elapsed := time.Since(b.scriptStartTime)
	b.logger.Printf("SCRIPT", "Script exiting, total script time: %s", log.FormatDuration(elapsed))
	b.logger.Printf("SCRIPT", "Script exited with RC=%d", b.scriptRC)
	return nil
}

func (b *Bridge) finish(err error) {
	if err == nil {
		b.scriptRC = 0
		return
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() {
				b.scriptRC = int(status.Signal()) + 128
				return
			}
			b.scriptRC = status.ExitStatus()
			return
		}
	}
	b.scriptRC = -1
}

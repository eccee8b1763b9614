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

// Package log holds the tagged, timestamped line log shared by the
// protocol dispatcher, the ASCII transfer engine, and the script bridge.
// Each phase transition and protocol start/stop emits one line through
// this package in the form "TAG: message".
package log

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Entry is a single logged line.
type Entry struct {
	When time.Time
	Tag  string
	Msg  string
}

// String renders the entry the way it is written to the log file:
// "TAG: message".
func (e Entry) String() string {
	return e.Tag + ": " + e.Msg
}

// Logger is a bounded ring of Entry values. The zero value is not usable;
// use New. A Logger is safe for concurrent use, although the core only
// ever logs from the single event-loop thread.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
	now     func() time.Time
}

// New creates a Logger that retains at most capacity lines, discarding the
// oldest entry once full. A non-positive capacity means unbounded.
func New(capacity int) *Logger {
	return &Logger{cap: capacity, now: time.Now}
}

// Printf formats a message under the given tag and appends it.
func (l *Logger) Printf(tag, format string, args ...any) {
	l.append(tag, fmt.Sprintf(format, args...))
}

// Log appends a pre-formatted message under the given tag.
func (l *Logger) Log(tag, msg string) {
	l.append(tag, msg)
}

func (l *Logger) append(tag, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{When: l.now(), Tag: tag, Msg: msg})
	if l.cap > 0 && len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Entries returns a copy of the currently retained log lines, oldest first.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recently logged entry and true, or the zero Entry
// and false if nothing has been logged yet.
func (l *Logger) Last() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Dump renders every retained entry, one per line, as its RFC 3339
// timestamp, a space, and the "TAG: message" form.
func (l *Logger) Dump() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.When.Format(time.RFC3339))
		b.WriteByte(' ')
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatDuration renders a duration as HH:MM:SS, matching the form spec
// uses for "Script exiting, total script time: HH:MM:SS".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

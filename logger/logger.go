// This file is part of scopeview.
//
// scopeview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// scopeview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with scopeview.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a small central log used for non-fatal
// conditions encountered while building and resolving a scope tree (unknown
// DWARF tags, unresolved references, ambiguous names, and so on). Unlike an
// error, a logged condition never aborts the pipeline.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission decides whether a log entry is recorded at all. The treebuilder
// package always logs with Allow; the type exists so that
// callers that want to rate-limit or silence a class of message can supply
// their own Permission.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool { return true }

// Allow is the Permission used by every call site in this repository; it
// never suppresses a log entry.
var Allow Permission = allow{}

// entry is a single logged line, already formatted as "tag: detail".
type entry string

// Logger is a central, ring-buffered log. Only the most recent entries, up
// to the configured capacity, are retained.
type Logger struct {
	mu      sync.Mutex
	entries []entry
	cap     int
}

// NewLogger creates a Logger that retains at most capacity entries.
func NewLogger(capacity int) *Logger {
	if capacity <= 0 {
		capacity = 1
	}
	return &Logger{cap: capacity}
}

// central is the package-level logger used by the free functions Log, Logf,
// Write, Tail and Clear.
var central = NewLogger(1000)

func format(tag string, detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return fmt.Sprintf("%s: %s", tag, d.Error())
	case fmt.Stringer:
		return fmt.Sprintf("%s: %s", tag, d.String())
	case string:
		return fmt.Sprintf("%s: %s", tag, d)
	default:
		return fmt.Sprintf("%s: %v", tag, d)
	}
}

// Log records detail under tag, provided permission allows it. detail may be
// an error, a fmt.Stringer, a string, or any other value (formatted with the
// %v verb).
func (l *Logger) Log(permission Permission, tag string, detail interface{}) {
	if permission != nil && !permission.AllowLogging() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry(format(tag, detail)))
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Logf is Log with a format string and arguments in place of a single
// detail value.
func (l *Logger) Logf(permission Permission, tag string, format string, args ...interface{}) {
	l.Log(permission, tag, fmt.Sprintf(format, args...))
}

// Write prints every retained entry, one per line, to w.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s strings.Builder
	for _, e := range l.entries {
		s.WriteString(string(e))
		s.WriteRune('\n')
	}
	io.WriteString(w, s.String())
}

// Tail prints the most recent n entries, one per line, to w. Asking for more
// entries than are available is not an error; everything retained is
// printed.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}

	var s strings.Builder
	for _, e := range l.entries[len(l.entries)-n:] {
		s.WriteString(string(e))
		s.WriteRune('\n')
	}
	io.WriteString(w, s.String())
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Log records detail under tag in the central, package-level log.
func Log(permission Permission, tag string, detail interface{}) {
	central.Log(permission, tag, detail)
}

// Logf is Log with a format string and arguments.
func Logf(permission Permission, tag string, format string, args ...interface{}) {
	central.Logf(permission, tag, format, args...)
}

// Write prints the central log to w.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail prints the most recent n entries of the central log to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the central log. The driver calls it at the start of each
// run.
func Clear() {
	central.Clear()
}

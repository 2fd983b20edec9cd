// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logsink provides deck backends that render wutoggle messages to a
// log file, a stream, or a channel read by an interactive front end.
package logsink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/deck"
)

// TimeLayout is the timestamp layout prefixed to every rendered message.
const TimeLayout = "15:04:05.000"

var now = time.Now

// Entry is a single log message.
type Entry struct {
	Time    time.Time
	Level   deck.Level
	Message string
}

// IsError reports whether the entry should be rendered as an error.
func (e Entry) IsError() bool {
	return e.Level >= deck.ERROR
}

// String renders the entry as "[HH:mm:ss.fff] message".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Time.Format(TimeLayout), e.Message)
}

func newEntry(lvl deck.Level, msg string) Entry {
	return Entry{Time: now(), Level: lvl, Message: strings.TrimRight(msg, "\r\n")}
}

// File is a deck backend that appends every message as a line to a file.
// The file is opened for each message so concurrent writers and external
// readers always see complete lines.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a File backend writing to path.
func NewFile(path string) *File {
	return &File{path: path}
}

// New implements deck.Backend.
func (f *File) New(lvl deck.Level, msg string) deck.Composer {
	return &fileMsg{f: f, e: newEntry(lvl, msg)}
}

// Close implements deck.Backend.
func (f *File) Close() error {
	return nil
}

// Append writes a single rendered line to the file.
func (f *File) Append(e Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file %q: %w", f.path, err)
	}
	if _, err := fmt.Fprintln(fh, e.String()); err != nil {
		fh.Close()
		return fmt.Errorf("write log file %q: %w", f.path, err)
	}
	return fh.Close()
}

type fileMsg struct {
	f *File
	e Entry
}

func (m *fileMsg) Compose(*deck.AttribStore) error { return nil }
func (m *fileMsg) Write() error                    { return m.f.Append(m.e) }

// Stream is a deck backend rendering messages to an io.Writer.
type Stream struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStream returns a Stream backend writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// New implements deck.Backend.
func (s *Stream) New(lvl deck.Level, msg string) deck.Composer {
	return &streamMsg{s: s, e: newEntry(lvl, msg)}
}

// Close implements deck.Backend.
func (s *Stream) Close() error {
	return nil
}

type streamMsg struct {
	s *Stream
	e Entry
}

func (m *streamMsg) Compose(*deck.AttribStore) error { return nil }
func (m *streamMsg) Write() error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	_, err := fmt.Fprintln(m.s.w, m.e.String())
	return err
}

// Channel is a deck backend that hands every message to a single reader.
// Writes block while the buffer is full, so a reader must be draining the
// channel for as long as messages can be produced.
type Channel struct {
	c chan Entry
}

// NewChannel returns a Channel backend buffering up to size entries.
func NewChannel(size int) *Channel {
	return &Channel{c: make(chan Entry, size)}
}

// Entries returns the receive side of the channel.
func (c *Channel) Entries() <-chan Entry {
	return c.c
}

// New implements deck.Backend.
func (c *Channel) New(lvl deck.Level, msg string) deck.Composer {
	return &channelMsg{c: c.c, e: newEntry(lvl, msg)}
}

// Close implements deck.Backend. The channel is left open; pending writers
// would otherwise panic.
func (c *Channel) Close() error {
	return nil
}

type channelMsg struct {
	c chan<- Entry
	e Entry
}

func (m *channelMsg) Compose(*deck.AttribStore) error { return nil }
func (m *channelMsg) Write() error {
	m.c <- m.e
	return nil
}

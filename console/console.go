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

// Package console renders wutoggle log output in an interactive terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/wutoggle/logsink"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ErrBusy is returned when a toggle is requested while another is running.
var ErrBusy = errors.New("a toggle is already in progress")

const (
	red   = "\x1b[31m"
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

// Session runs one action at a time on a worker goroutine and renders the log
// entries it produces. The session is the only reader of entries.
type Session struct {
	entries <-chan logsink.Entry
	out     io.Writer
	color   bool

	mu   sync.Mutex
	busy bool
}

// New returns a Session rendering entries to out.
func New(entries <-chan logsink.Entry, out io.Writer, color bool) *Session {
	return &Session{entries: entries, out: out, color: color}
}

// NewTerminal returns a Session rendering to standard output, with colour
// when standard output is a terminal.
func NewTerminal(entries <-chan logsink.Entry) *Session {
	fd := os.Stdout.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return New(entries, colorable.NewColorableStdout(), color)
}

// Busy reports whether an action is running.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Run executes action on a worker goroutine, rendering log entries until it
// returns. The busy flag is cleared whatever the outcome.
func (s *Session) Run(action func() error) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	done := make(chan error, 1)
	go func() {
		done <- action()
	}()
	for {
		select {
		case e := <-s.entries:
			s.render(e)
		case err := <-done:
			s.Drain()
			return err
		}
	}
}

// Drain renders every pending entry without blocking.
func (s *Session) Drain() {
	for {
		select {
		case e := <-s.entries:
			s.render(e)
		default:
			return
		}
	}
}

func (s *Session) render(e logsink.Entry) {
	line := e.String()
	if s.color {
		c := green
		if e.IsError() {
			c = red
		}
		line = c + line + reset
	}
	fmt.Fprintln(s.out, line)
}

// Confirm prints prompt and reports whether the answer read from in is yes.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [s/N]: ", prompt)
	l, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && l == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

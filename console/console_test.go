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

package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/deck"
	"github.com/google/go-cmp/cmp"
	"github.com/google/wutoggle/logsink"
)

func lines(buf *bytes.Buffer) []string {
	var out []string
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		// Strip the timestamp.
		if i := strings.Index(l, "] "); i >= 0 {
			l = l[:strings.Index(l, "[")] + l[i+2:]
		}
		out = append(out, l)
	}
	return out
}

func TestRunRendersEntries(t *testing.T) {
	ch := logsink.NewChannel(1)
	var buf bytes.Buffer
	s := New(ch.Entries(), &buf, false)

	err := s.Run(func() error {
		ch.New(deck.INFO, "Parando o serviço Windows Update...").Write()
		ch.New(deck.ERROR, "Erro: acesso negado").Write()
		ch.New(deck.INFO, "Windows Update foi desabilitado com sucesso!").Write()
		return nil
	})
	if err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}
	want := []string{
		"Parando o serviço Windows Update...",
		"Erro: acesso negado",
		"Windows Update foi desabilitado com sucesso!",
	}
	if diff := cmp.Diff(want, lines(&buf)); diff != "" {
		t.Errorf("Run() rendered unexpected diff (-want +got):\n%s", diff)
	}
	if s.Busy() {
		t.Error("Busy() = true after Run() returned")
	}
}

func TestRunColor(t *testing.T) {
	ch := logsink.NewChannel(4)
	var buf bytes.Buffer
	s := New(ch.Entries(), &buf, true)
	s.Run(func() error {
		ch.New(deck.ERROR, "falhou").Write()
		ch.New(deck.INFO, "ok").Write()
		return nil
	})
	out := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(out) != 2 {
		t.Fatalf("Run() rendered %d lines, want 2: %q", len(out), out)
	}
	if !strings.HasPrefix(out[0], red) || !strings.HasSuffix(out[0], "falhou"+reset) {
		t.Errorf("error line = %q, want red", out[0])
	}
	if !strings.HasPrefix(out[1], green) || !strings.HasSuffix(out[1], "ok"+reset) {
		t.Errorf("info line = %q, want green", out[1])
	}
}

func TestRunReturnsActionError(t *testing.T) {
	ch := logsink.NewChannel(1)
	s := New(ch.Entries(), &bytes.Buffer{}, false)
	want := errors.New("timeout")
	if err := s.Run(func() error { return want }); err != want {
		t.Errorf("Run() = %v, want %v", err, want)
	}
	if s.Busy() {
		t.Error("Busy() = true after a failed Run()")
	}
}

func TestRunBusy(t *testing.T) {
	ch := logsink.NewChannel(1)
	s := New(ch.Entries(), &bytes.Buffer{}, false)
	started := make(chan struct{})
	release := make(chan struct{})
	first := make(chan error, 1)
	go func() {
		first <- s.Run(func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	if err := s.Run(func() error { return nil }); err != ErrBusy {
		t.Errorf("second Run() = %v, want %v", err, ErrBusy)
	}
	close(release)
	select {
	case err := <-first:
		if err != nil {
			t.Errorf("first Run() returned unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first Run() did not return")
	}
	if err := s.Run(func() error { return nil }); err != nil {
		t.Errorf("Run() after completion = %v, want nil", err)
	}
}

func TestConfirm(t *testing.T) {
	for _, tt := range []struct {
		in  string
		out bool
	}{
		{"s\n", true},
		{"Sim\r\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	} {
		var out bytes.Buffer
		if o := Confirm(strings.NewReader(tt.in), &out, "Desabilitar o Windows Update?"); o != tt.out {
			t.Errorf("Confirm(%q) = %t, want %t", tt.in, o, tt.out)
		}
		if !strings.HasPrefix(out.String(), "Desabilitar o Windows Update?") {
			t.Errorf("Confirm(%q) printed %q", tt.in, out.String())
		}
	}
}

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

package logsink

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/deck"
	"github.com/google/go-cmp/cmp"
)

var fakeTimeNow = func() time.Time {
	return time.Date(2009, 11, 17, 20, 34, 58, 651387237, time.UTC)
}

func TestEntryString(t *testing.T) {
	for _, tt := range []struct {
		in  Entry
		out string
	}{
		{Entry{Time: fakeTimeNow(), Message: "Windows Update foi desabilitado com sucesso!"}, "[20:34:58.651] Windows Update foi desabilitado com sucesso!"},
		{Entry{Time: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), Message: ""}, "[03:04:05.000] "},
	} {
		if o := tt.in.String(); o != tt.out {
			t.Errorf("Entry.String() = %q, want %q", o, tt.out)
		}
	}
}

func TestEntryIsError(t *testing.T) {
	for _, tt := range []struct {
		lvl deck.Level
		out bool
	}{
		{deck.INFO, false},
		{deck.WARNING, false},
		{deck.ERROR, true},
		{deck.FATAL, true},
	} {
		if o := (Entry{Level: tt.lvl}).IsError(); o != tt.out {
			t.Errorf("Entry{Level: %v}.IsError() = %t, want %t", tt.lvl, o, tt.out)
		}
	}
}

func TestFileAppends(t *testing.T) {
	now = fakeTimeNow
	path := filepath.Join(t.TempDir(), "UpdateManager.log")
	f := NewFile(path)

	for _, msg := range []string{"first", "second\n"} {
		c := f.New(deck.INFO, msg)
		if err := c.Compose(nil); err != nil {
			t.Fatalf("Compose() returned unexpected error: %v", err)
		}
		if err := c.Write(); err != nil {
			t.Fatalf("Write() returned unexpected error: %v", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile(%s): %v", path, err)
	}
	want := []string{"[20:34:58.651] first", "[20:34:58.651] second"}
	got := strings.Split(strings.TrimSpace(string(b)), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log file returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestFileMissingDirectory(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing", "UpdateManager.log"))
	if err := f.New(deck.ERROR, "boom").Write(); err == nil {
		t.Error("Write() to a missing directory returned nil, want error")
	}
}

func TestStream(t *testing.T) {
	now = fakeTimeNow
	var buf bytes.Buffer
	s := NewStream(&buf)
	if err := s.New(deck.ERROR, "Erro: falhou").Write(); err != nil {
		t.Fatalf("Write() returned unexpected error: %v", err)
	}
	if got, want := buf.String(), "[20:34:58.651] Erro: falhou\n"; got != want {
		t.Errorf("Stream wrote %q, want %q", got, want)
	}
}

func TestChannel(t *testing.T) {
	now = fakeTimeNow
	c := NewChannel(2)
	c.New(deck.INFO, "one").Write()
	c.New(deck.ERROR, "two").Write()

	want := []Entry{
		{Time: fakeTimeNow(), Level: deck.INFO, Message: "one"},
		{Time: fakeTimeNow(), Level: deck.ERROR, Message: "two"},
	}
	var got []Entry
	for i := 0; i < len(want); i++ {
		got = append(got, <-c.Entries())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Channel entries returned unexpected diff (-want +got):\n%s", diff)
	}
}

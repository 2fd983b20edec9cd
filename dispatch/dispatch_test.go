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

package dispatch

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"testing"

	"golang.org/x/net/context"

	"github.com/google/deck"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) New(lvl deck.Level, msg string) deck.Composer {
	return &recorded{r: r, line: fmt.Sprintf("%v %s", lvl, msg)}
}
func (r *recorder) Close() error { return nil }

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

func (r *recorder) contains(s string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

type recorded struct {
	r    *recorder
	line string
}

func (m *recorded) Compose(*deck.AttribStore) error { return nil }
func (m *recorded) Write() error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.lines = append(m.r.lines, m.line)
	return nil
}

var logs = &recorder{}

func TestMain(m *testing.M) {
	deck.Add(logs)
	os.Exit(m.Run())
}

// fakeExecCommand reruns the test binary as TestHelperProcess, which writes
// the given raw bytes and exits with code.
func fakeExecCommand(code int, stdout, stderr []byte) func(context.Context, string, ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(),
			"GO_WANT_HELPER_PROCESS=1",
			"HELPER_EXIT="+strconv.Itoa(code),
			"HELPER_STDOUT="+hex.EncodeToString(stdout),
			"HELPER_STDERR="+hex.EncodeToString(stderr),
		)
		return cmd
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	out, _ := hex.DecodeString(os.Getenv("HELPER_STDOUT"))
	errOut, _ := hex.DecodeString(os.Getenv("HELPER_STDERR"))
	os.Stdout.Write(out)
	os.Stderr.Write(errOut)
	code, _ := strconv.Atoi(os.Getenv("HELPER_EXIT"))
	os.Exit(code)
}

func TestFailed(t *testing.T) {
	for _, tt := range []struct {
		cmd  Command
		code int
		out  bool
	}{
		{SC("wuauserv", "start=", "auto"), 0, false},
		{SC("wuauserv", "start=", "auto"), 1056, false},
		{SC("wuauserv", "start=", "auto"), 1060, true},
		{SC("bits", "start=", "auto"), 5, true},
		{SC("bits", "start=", "auto"), -1, true},
		{GPUpdate(), 0, false},
		{GPUpdate(), 1, false},
		{Command{Name: `C:\Windows\System32\GPUpdate.exe`}, 87, false},
		{Command{Name: "cmd.exe", Args: []string{"/c", "exit", "1"}}, 1, true},
	} {
		if o := Failed(tt.cmd, tt.code); o != tt.out {
			t.Errorf("Failed(%q, %d) = %t, want %t", tt.cmd, tt.code, o, tt.out)
		}
	}
}

func TestCommandString(t *testing.T) {
	for _, tt := range []struct {
		in  Command
		out string
	}{
		{SC("wuauserv", "start=", "disabled"), "sc.exe config wuauserv start= disabled"},
		{GPUpdate(), "gpupdate.exe /force"},
		{Command{Name: "whoami"}, "whoami"},
	} {
		if o := tt.in.String(); o != tt.out {
			t.Errorf("%#v.String() = %q, want %q", tt.in, o, tt.out)
		}
	}
}

func TestRun(t *testing.T) {
	defer func() { execCommand = exec.CommandContext }()

	for _, tt := range []struct {
		desc      string
		cmd       Command
		code      int
		stdout    []byte
		stderr    []byte
		wantLogs  []string
		wantNot   []string
		wantFails []int
	}{
		{
			desc:     "success decodes cp850",
			cmd:      SC("wuauserv", "start=", "auto"),
			stdout:   []byte("[SC] ChangeServiceConfig SUCESSO\r\n\r\na\x87\xc6o conclu\xa1da\r\n"),
			wantLogs: []string{"Executando comando: sc.exe config wuauserv start= auto", "Saída: [SC] ChangeServiceConfig SUCESSO", "Saída: ação concluída"},
			wantNot:  []string{"Comando falhou"},
		},
		{
			desc:      "stderr and failing exit code",
			cmd:       SC("wuauserv", "start=", "auto"),
			code:      3,
			stderr:    []byte("acesso negado\n"),
			wantLogs:  []string{"Erro: acesso negado", "Comando falhou com o código de saída: 3"},
			wantFails: []int{3},
		},
		{
			desc:    "policy refresh exit code ignored",
			cmd:     Command{Name: "gpupdate.exe", Args: []string{"/force"}},
			code:    2,
			stdout:  []byte("Atualizando a política...\r\n"),
			wantNot: []string{"Comando falhou"},
		},
		{
			desc:    "quiet discards output",
			cmd:     GPUpdate(),
			stdout:  []byte("Atualizando a política...\r\n"),
			wantNot: []string{"Saída:"},
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			logs.reset()
			execCommand = fakeExecCommand(tt.code, tt.stdout, tt.stderr)
			var fails []int
			d := &Dispatcher{OnFailure: func(_ Command, code int) { fails = append(fails, code) }}

			code, err := d.Run(context.Background(), tt.cmd)
			if err != nil {
				t.Fatalf("Run(%q) returned unexpected error: %v", tt.cmd, err)
			}
			if code != tt.code {
				t.Errorf("Run(%q) = %d, want %d", tt.cmd, code, tt.code)
			}
			for _, l := range tt.wantLogs {
				if !logs.contains(l) {
					t.Errorf("Run(%q) did not log %q; got %q", tt.cmd, l, logs.lines)
				}
			}
			for _, l := range tt.wantNot {
				if logs.contains(l) {
					t.Errorf("Run(%q) logged %q, want absent", tt.cmd, l)
				}
			}
			if diff := cmp.Diff(tt.wantFails, fails); diff != "" {
				t.Errorf("Run(%q) failure callbacks returned unexpected diff (-want +got):\n%s", tt.cmd, diff)
			}
		})
	}
}

func TestRunLaunchFailure(t *testing.T) {
	defer func() { execCommand = exec.CommandContext }()
	logs.reset()
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "wutoggle-command-that-does-not-exist", args...)
	}

	c := SC("wuauserv", "start=", "disabled")
	if _, err := (&Dispatcher{}).Run(context.Background(), c); err == nil {
		t.Errorf("Run(%q) = nil, want launch error", c)
	}
	if !logs.contains("Falha ao executar comando: sc.exe config wuauserv start= disabled") {
		t.Errorf("Run(%q) did not log the launch failure; got %q", c, logs.lines)
	}
}

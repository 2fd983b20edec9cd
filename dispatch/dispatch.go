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

// Package dispatch runs external commands and forwards their output to the log.
package dispatch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/net/context"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/google/deck"
	syserr "github.com/google/wutoggle/errors"
	"github.com/google/wutoggle/wulib"
)

var execCommand = exec.CommandContext

// policyRefresh identifies the group policy refresh command, whose exit code
// is never treated as a failure.
const policyRefresh = "gpupdate"

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	// Quiet discards the command output instead of logging it.
	Quiet bool
}

// SC returns a Service Control Manager configuration command.
func SC(args ...string) Command {
	return Command{Name: "sc.exe", Args: append([]string{"config"}, args...)}
}

// GPUpdate returns a forced group policy refresh with output discarded.
func GPUpdate() Command {
	return Command{Name: "gpupdate.exe", Args: []string{"/force"}, Quiet: true}
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// IsPolicyRefresh reports whether c refreshes group policy.
func (c Command) IsPolicyRefresh() bool {
	return strings.Contains(strings.ToLower(c.Name), policyRefresh)
}

// Failed reports whether an exit code of c should be reported as a failure.
func Failed(c Command, code int) bool {
	switch {
	case code == 0:
		return false
	case code == int(syserr.ERROR_SERVICE_ALREADY_RUNNING):
		return false
	case c.IsPolicyRefresh():
		return false
	}
	return true
}

// Dispatcher runs commands and logs their output line by line.
type Dispatcher struct {
	// OnFailure, when set, is called for every exit code that Failed reports.
	OnFailure func(Command, int)
}

// Run starts c, waits for it to exit and returns its exit code. A non-nil
// error is returned only when the command could not be run at all; non-zero
// exit codes are logged.
func (d *Dispatcher) Run(ctx context.Context, c Command) (int, error) {
	deck.InfofA("Executando comando: %s", c).With(wulib.EventID(wulib.EvtCommand)).Go()

	cmd := execCommand(ctx, c.Name, c.Args...)
	hideWindow(cmd)

	var wg sync.WaitGroup
	if !c.Quiet {
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return -1, d.launchErr(c, err)
		}
		stderr, err := cmd.StderrPipe()
		if err != nil {
			return -1, d.launchErr(c, err)
		}
		wg.Add(2)
		go forward(&wg, stdout, func(l string) {
			deck.InfofA("Saída: %s", l).With(wulib.EventID(wulib.EvtCommand)).Go()
		})
		go forward(&wg, stderr, func(l string) {
			deck.ErrorfA("Erro: %s", l).With(wulib.EventID(wulib.EvtErrCommand)).Go()
		})
	}

	if err := cmd.Start(); err != nil {
		return -1, d.launchErr(c, err)
	}
	// Pipes must be drained before Wait closes them.
	wg.Wait()
	err := cmd.Wait()

	code := 0
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			return -1, d.launchErr(c, err)
		}
		code = ee.ExitCode()
	}

	if Failed(c, code) {
		deck.ErrorfA("Comando falhou com o código de saída: %d %s", code, syserr.SystemError(code)).With(wulib.EventID(wulib.EvtErrCommand)).Go()
		if d.OnFailure != nil {
			d.OnFailure(c, code)
		}
	}
	return code, nil
}

func (d *Dispatcher) launchErr(c Command, err error) error {
	deck.ErrorfA("Falha ao executar comando: %s\n%v", c, err).With(wulib.EventID(wulib.EvtErrCommand)).Go()
	return fmt.Errorf("running %q: %w", c, err)
}

// forward decodes r from the OEM code page and calls fn for every non-empty line.
func forward(wg *sync.WaitGroup, r io.Reader, fn func(string)) {
	defer wg.Done()
	s := bufio.NewScanner(transform.NewReader(r, charmap.CodePage850.NewDecoder()))
	for s.Scan() {
		l := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		fn(l)
	}
	// Drain whatever the scanner refused so the child never blocks on a full pipe.
	io.Copy(io.Discard, r)
}

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

//go:build windows
// +build windows

package main

import (
	"golang.org/x/net/context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"flag"
	"github.com/google/deck"
	"github.com/google/subcommands"
	"github.com/google/wutoggle/toggler"
	"github.com/google/wutoggle/winsys"
	"github.com/google/wutoggle/wuagent"
	"github.com/google/wutoggle/wulib"
)

// Available flags
type statusCmd struct {
	agent bool
}

func (statusCmd) Name() string     { return "status" }
func (statusCmd) Synopsis() string { return "report the Windows Update service, policy and agent state." }
func (statusCmd) Usage() string {
	return fmt.Sprintf("%s status [--agent=false]\n", filepath.Base(os.Args[0]))
}
func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.agent, "agent", true, "also query the Windows Update Agent.")
}

func (c *statusCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	rc := subcommands.ExitSuccess
	t := newToggler()
	var r toggler.Report
	if err := ui.Run(func() error {
		var err error
		r, err = t.GetStatus()
		return err
	}); err != nil {
		rc = subcommands.ExitFailure
	}

	svcs := winsys.Services{}
	bits, err := svcs.Query(wulib.BITSSvc)
	if err != nil {
		deck.ErrorfA("Failed to query %s: %v", wulib.BITSSvc, err).With(wulib.EventID(wulib.EvtErrStatus)).Go()
	}
	bitsStart, _ := svcs.StartType(wulib.BITSSvc)

	var info *wuagent.Info
	if c.agent {
		i, err := wuagent.Query()
		if err != nil {
			deck.ErrorfA("Failed to query the Windows Update Agent: %v", err).With(wulib.EventID(wulib.EvtErrStatus)).Go()
		} else {
			info = &i
		}
	}

	last, err := wulib.LastToggle()
	if err != nil {
		deck.ErrorfA("Failed to read the last toggle: %v", err).With(wulib.EventID(wulib.EvtErrStatus)).Go()
	}
	ui.Drain()

	printStatus(os.Stdout, statusView{
		report:    r,
		bits:      bits,
		bitsStart: bitsStart,
		agent:     info,
		last:      last,
		success:   toggleSuccess.Get(),
		failures:  commandFailures.Get(),
		status:    lastStatus.Get(),
	})
	return rc
}

type statusView struct {
	report    toggler.Report
	bits      toggler.State
	bitsStart toggler.StartType
	agent     *wuagent.Info
	last      wulib.Toggle
	success   bool
	failures  int64
	status    string
}

func printStatus(w io.Writer, v statusView) {
	fmt.Fprintf(w, "Windows Update:              %s\n", v.report.Status)
	fmt.Fprintf(w, "Serviço %-20s %s (%s)\n", wulib.UpdateSvc+":", v.report.Service, v.report.StartType)
	fmt.Fprintf(w, "Serviço %-20s %s (%s)\n", wulib.BITSSvc+":", v.bits, v.bitsStart)
	fmt.Fprintf(w, "%-28s %s\n", wulib.NoAutoUpdate+":", v.report.NoAutoUpdate)
	fmt.Fprintf(w, "%-28s %s\n", wulib.AUOptions+":", v.report.AUOptions)
	if v.agent != nil {
		fmt.Fprintf(w, "Agente habilitado:           %t\n", v.agent.ServiceEnabled)
		fmt.Fprintf(w, "Nível de notificação:        %s\n", v.agent.Level)
		fmt.Fprintf(w, "Reinicialização pendente:    %t\n", v.agent.RebootRequired)
		fmt.Fprintf(w, "Microsoft Update registrado: %t\n", v.agent.MicrosoftUpdate)
	}
	if v.last.IsZero() {
		fmt.Fprintln(w, "Última alteração:            nenhuma")
	} else {
		fmt.Fprintf(w, "Última alteração:            %s em %s\n", v.last.Action, v.last.Time.Local().Format(time.DateTime))
	}
	fmt.Fprintf(w, "Última execução com sucesso: %t\n", v.success)
	fmt.Fprintf(w, "Falhas de comando:           %d\n", v.failures)
	if v.status != "" {
		fmt.Fprintf(w, "Último estado aplicado:      %s\n", v.status)
	}
}

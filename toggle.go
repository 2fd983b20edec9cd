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
	"os"
	"path/filepath"

	"flag"
	"github.com/google/deck"
	"github.com/google/subcommands"
	"github.com/google/wutoggle/console"
	"github.com/google/wutoggle/notification"
	"github.com/google/wutoggle/toggler"
	"github.com/google/wutoggle/wulib"
)

// Available flags
type toggleCmd struct {
	yes bool
	to  string
}

func (toggleCmd) Name() string     { return "toggle" }
func (toggleCmd) Synopsis() string { return "show the Windows Update state and flip it." }
func (toggleCmd) Usage() string {
	return fmt.Sprintf("%s toggle [--yes] [--to=enable|disable]\n", filepath.Base(os.Args[0]))
}
func (c *toggleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "do not ask for confirmation.")
	f.StringVar(&c.to, "to", "", "apply this action instead of flipping the current state.")
}

func (c *toggleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	var target wulib.Action
	if c.to != "" {
		a, ok := wulib.ParseAction(c.to)
		if !ok {
			fmt.Printf("ERRO: Acao invalida '%s'. Use 'enable' ou 'disable'.\nUsage: %s\n", c.to, c.Usage())
			return subcommands.ExitUsageError
		}
		target = a
	}
	if err := interactiveToggle(ctx, newToggler(), target, c.yes); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// interactiveToggle reports the current state, confirms and applies the
// transition on the console session. An empty target flips the current state.
func interactiveToggle(ctx context.Context, t togglerAPI, target wulib.Action, yes bool) error {
	var r toggler.Report
	err := ui.Run(func() error {
		deck.InfoA("Aplicação inicializada. Checando o status do Windows Update atual...").With(wulib.EventID(wulib.EvtStartup)).Go()
		var err error
		r, err = t.GetStatus()
		return err
	})
	if err != nil {
		notify(notification.NewStatusErrorMessage(err))
	}
	if r.Status == toggler.Disabled {
		notify(notification.NewAlreadyDisabledMessage())
	}

	if target == "" {
		target = toggler.Target(r.Status)
	}
	if !yes && !console.Confirm(os.Stdin, os.Stdout, prompt(target)) {
		fmt.Println("Operação cancelada.")
		return nil
	}

	err = ui.Run(func() error { return t.Apply(ctx, target) })
	recordToggle(target, err)
	if err != nil {
		notify(notification.NewErrorMessage(err))
		return err
	}
	if target == wulib.ActionDisable {
		notify(notification.NewDisabledMessage())
	} else {
		notify(notification.NewEnabledMessage())
	}
	return nil
}

func prompt(a wulib.Action) string {
	if a == wulib.ActionEnable {
		return "Habilitar o Windows Update?"
	}
	return "Desabilitar o Windows Update?"
}

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
	"github.com/google/wutoggle/wulib"
	"golang.org/x/sys/windows/svc/eventlog"
)

// Test Stubs
var (
	installSource = func(name string) error {
		return eventlog.InstallAsEventCreate(name, eventlog.Error|eventlog.Warning|eventlog.Info)
	}
	removeSource = eventlog.Remove
)

// Available flags.
type eventlogCmd struct {
	install   bool
	uninstall bool
}

func (eventlogCmd) Name() string { return "eventlog" }
func (eventlogCmd) Synopsis() string {
	return "Manage the registration of the wutoggle event log source."
}
func (eventlogCmd) Usage() string {
	return fmt.Sprintf("%s eventlog [--install | --uninstall]\n", filepath.Base(os.Args[0]))
}
func (c *eventlogCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.install, "install", false, "Register the event log source.")
	f.BoolVar(&c.uninstall, "uninstall", false, "Remove the event log source.")
}

func (c eventlogCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.install && c.uninstall {
		fmt.Println("Install and Uninstall flags can not be passed at the same time.")
		return subcommands.ExitFailure
	}

	switch {
	case c.install:
		if err := installSource(wulib.LogSrcName); err != nil {
			msg := fmt.Sprintf("Failed to register event log source %q: %v", wulib.LogSrcName, err)
			deck.ErrorA(msg).With(wulib.EventID(wulib.EvtErrEventSource)).Go()
			fmt.Println(msg)
			return subcommands.ExitFailure
		}
		deck.InfofA("Registered event log source %q.", wulib.LogSrcName).With(wulib.EventID(wulib.EvtEventSource)).Go()
	case c.uninstall:
		if err := removeSource(wulib.LogSrcName); err != nil {
			msg := fmt.Sprintf("Failed to remove event log source %q: %v", wulib.LogSrcName, err)
			deck.ErrorA(msg).With(wulib.EventID(wulib.EvtErrEventSource)).Go()
			fmt.Println(msg)
			return subcommands.ExitFailure
		}
		deck.InfofA("Removed event log source %q.", wulib.LogSrcName).With(wulib.EventID(wulib.EvtEventSource)).Go()
	default:
		fmt.Printf("%s\nUsage: %s\n", c.Synopsis(), c.Usage())
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

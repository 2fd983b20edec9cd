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

// The wutoggle binary enables and disables Windows Update.
package main

import (
	"golang.org/x/net/context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flag"
	"github.com/google/deck"
	"github.com/google/deck/backends/eventlog"
	"github.com/google/glazier/go/helpers"
	"github.com/google/subcommands"
	"github.com/google/wutoggle/console"
	"github.com/google/wutoggle/dispatch"
	"github.com/google/wutoggle/elevation"
	"github.com/google/wutoggle/logsink"
	"github.com/google/wutoggle/metrics"
	"github.com/google/wutoggle/notification"
	"github.com/google/wutoggle/toggler"
	"github.com/google/wutoggle/winsys"
	"github.com/google/wutoggle/wulib"
	"github.com/scjalliance/comshim"
	"golang.org/x/sys/windows/registry"
)

var (
	silent     = flag.Bool("silent", false, "Run without interaction, appending log messages to the log file")
	silently   = flag.Bool("silently", false, "Same as -silent")
	action     = flag.String("action", "", "Transition to apply in silent mode: enable or disable")
	runInDebug = flag.Bool("debug", false, "Also write log messages to stderr")
	config     = new(Settings)
	ui         *console.Session

	// Metrics
	toggleSuccess   = metrics.NewBool("toggleSuccess")
	commandFailures = metrics.NewCounter("commandFailures")
	lastStatus      = metrics.NewString("lastStatus")

	// Test Stubs
	newSystem      = winsys.New
	newMetricStore = metrics.NewStore
	recordToggle   = record
	isElevated     = elevation.IsElevated
	relaunch       = elevation.Relaunch
)

// Settings contains configurable options.
type Settings struct {
	LogFile               string
	Notify, PolicyRefresh uint64
	ServiceTimeout        time.Duration
}

func newSettings() *Settings {
	// Set non-Zero defaults.
	return &Settings{
		LogFile:        wulib.LogFile,
		Notify:         1,
		PolicyRefresh:  1,
		ServiceTimeout: toggler.DefaultTimeout,
	}
}

func (s *Settings) regLoad(path string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if v, _, err := k.GetStringValue("LogFile"); err == nil && v != "" {
		s.LogFile = v
	} else {
		deck.InfofA("LogFile not found in registry, using default log file:\n%v", s.LogFile).With(wulib.EventID(wulib.EvtErrConfig)).Go()
	}
	if i, _, err := k.GetIntegerValue("Notify"); err == nil {
		s.Notify = i
	}
	if i, _, err := k.GetIntegerValue("PolicyRefresh"); err == nil {
		s.PolicyRefresh = i
	}
	if i, _, err := k.GetIntegerValue("ServiceTimeout"); err == nil && i > 0 {
		s.ServiceTimeout = time.Duration(i) * time.Second
	}

	return nil
}

// logFile resolves the configured log file, falling back to the default
// in the working directory when its directory does not exist.
func logFile(path string) string {
	exist, err := helpers.PathExists(filepath.Dir(path))
	if err != nil || !exist {
		return wulib.LogFile
	}
	return path
}

// initEventLog attaches the Windows event log, and stderr in debug mode.
func initEventLog() {
	if evt, err := eventlog.Init(wulib.LogSrcName); err == nil {
		deck.Add(evt)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to open event log: %v\n", err)
	}
	if *runInDebug {
		deck.Add(logsink.NewStream(os.Stderr))
	}
}

// loadMetrics reads the persisted metrics. It must run before any command is
// dispatched so that failures counted in this run add to the stored total.
func loadMetrics() {
	if err := newMetricStore().Load(toggleSuccess, commandFailures, lastStatus); err != nil {
		deck.ErrorfA("Failed to load metrics: %v", err).With(wulib.EventID(wulib.EvtErrMetricReport)).Go()
	}
}

func newToggler() *toggler.Toggler {
	loadMetrics()
	t := toggler.New(newSystem(func(dispatch.Command, int) { commandFailures.Increment() }))
	t.Timeout = config.ServiceTimeout
	t.PolicyRefresh = config.PolicyRefresh != 0
	return t
}

// notify pushes n unless notifications are turned off.
func notify(n notification.Notification) {
	if config.Notify == 0 {
		return
	}
	if err := n.Push(); err != nil {
		deck.ErrorfA("Failed to push notification: %v", err).With(wulib.EventID(wulib.EvtErrNotifications)).Go()
	}
}

// record persists the outcome of a toggle.
func record(a wulib.Action, err error) {
	toggleSuccess.Set(err == nil)
	if err == nil {
		s := toggler.Enabled
		if a == wulib.ActionDisable {
			s = toggler.Disabled
		}
		lastStatus.Set(s.String())
		if err := wulib.SetLastToggle(a); err != nil {
			deck.ErrorfA("Failed to record last toggle: %v", err).With(wulib.EventID(wulib.EvtErrMetricReport)).Go()
		}
	}
	if err := newMetricStore().Save(toggleSuccess, commandFailures, lastStatus); err != nil {
		deck.ErrorfA("Failed to save metrics: %v", err).With(wulib.EventID(wulib.EvtErrMetricReport)).Go()
	}
}

func main() {
	flag.Parse()
	os.Exit(run())
}

// silentRequested reports whether headless operation was asked for, including
// switches given after the first positional argument.
func silentRequested(args []string) bool {
	return *silent || *silently || wulib.StringInSlice("-silent", args) || wulib.StringInSlice("-silently", args)
}

func run() int {
	silentMode := silentRequested(flag.Args())

	initEventLog()
	defer deck.Close()

	// Load wutoggle config settings.
	config = newSettings()
	if err := config.regLoad(wulib.RegPath); err != nil {
		deck.InfofA("Failed to load wutoggle config, using defaults:\n%+v\nError: %v", *config, err).With(wulib.EventID(wulib.EvtErrConfig)).Go()
	}

	if silentMode {
		deck.Add(logsink.NewFile(logFile(config.LogFile)))
	} else {
		ch := logsink.NewChannel(256)
		deck.Add(ch)
		ui = console.NewTerminal(ch.Entries())
		defer ui.Drain()
	}

	return execute(context.Background(), os.Args[1:], silentMode)
}

// execute performs the requested operation when the process holds
// administrative rights and relaunches it elevated otherwise. No toggler is
// built by an unelevated process.
func execute(ctx context.Context, args []string, silentMode bool) int {
	if !isElevated() {
		return elevate(args, silentMode)
	}

	comshim.Add(1)
	defer comshim.Done()

	if silentMode {
		return runSilent(ctx, newToggler(), *action)
	}
	return runInteractive(ctx)
}

func runInteractive(ctx context.Context) int {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&toggleCmd{}, "Windows Update management")
	subcommands.Register(&statusCmd{}, "Windows Update management")
	subcommands.Register(&eventlogCmd{}, "Event log source management")
	subcommands.Register(&aboutCmd{}, "")

	// Without a subcommand the interactive toggle runs.
	if flag.NArg() == 0 {
		return int((&toggleCmd{}).Execute(ctx, flag.CommandLine))
	}
	return int(subcommands.Execute(ctx))
}

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

// Package toggler sequences the service, registry and command operations that
// turn Windows Update on and off.
package toggler

import (
	"errors"
	"strconv"
	"time"

	"golang.org/x/net/context"

	"github.com/google/deck"
	"github.com/google/wutoggle/dispatch"
	"github.com/google/wutoggle/wulib"
)

// DefaultTimeout bounds every wait for a service state change.
const DefaultTimeout = 30 * time.Second

// ErrTimeout is returned when a service does not reach the requested state in time.
var ErrTimeout = errors.New("timed out waiting for service state")

// Status is the Windows Update state as seen by the policy registry.
type Status int

const (
	// Enabled means automatic updates are not blocked by policy.
	Enabled Status = iota
	// Disabled means NoAutoUpdate is set to 1.
	Disabled
)

func (s Status) String() string {
	if s == Disabled {
		return "DESABILITADO"
	}
	return "HABILITADO"
}

// State is the run state of a service.
type State int

// Service run states.
const (
	StateUnknown State = iota
	Stopped
	Running
	Pending
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Pending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// StartType is the startup type of a service.
type StartType int

// Service startup types.
const (
	StartUnknown StartType = iota
	StartAuto
	StartManual
	StartDisabled
)

func (s StartType) String() string {
	switch s {
	case StartAuto:
		return "auto"
	case StartManual:
		return "demand"
	case StartDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Services controls system services.
type Services interface {
	Query(name string) (State, error)
	StartType(name string) (StartType, error)
	Stop(name string) error
	Start(name string) error
	// Wait blocks until the service reaches want, returning an error wrapping
	// ErrTimeout if it does not do so within timeout.
	Wait(name string, want State, timeout time.Duration) error
}

// Policy edits the automatic update policy key.
type Policy interface {
	// Exists reports whether the policy key is present.
	Exists() (bool, error)
	// Value reads an integer value. ok is false when the key or value is absent.
	Value(name string) (v uint64, ok bool, err error)
	// Create opens the key, creating it when absent, and reports whether it
	// already existed.
	Create() (existed bool, err error)
	SetDWord(name string, v uint32) error
	// DeleteValue removes a value. Absent values are not an error.
	DeleteValue(name string) error
}

// Runner executes external commands and returns their exit code.
type Runner interface {
	Run(ctx context.Context, c dispatch.Command) (int, error)
}

// System is the operating system facade used by a Toggler.
type System struct {
	Services Services
	Policy   Policy
	Runner   Runner
}

// Toggler enables and disables Windows Update.
type Toggler struct {
	// Timeout bounds each service wait.
	Timeout time.Duration
	// PolicyRefresh forces a group policy refresh after registry changes.
	PolicyRefresh bool

	sys System
}

// New returns a Toggler operating on sys.
func New(sys System) *Toggler {
	return &Toggler{
		Timeout:       DefaultTimeout,
		PolicyRefresh: true,
		sys:           sys,
	}
}

// PolicyValue is an optional registry value.
type PolicyValue struct {
	Value uint64
	Set   bool
}

func (v PolicyValue) String() string {
	if !v.Set {
		return "Não Configurado"
	}
	return strconv.FormatUint(v.Value, 10)
}

// Report describes the observed Windows Update state.
type Report struct {
	Status       Status
	Service      State
	StartType    StartType
	Configured   bool
	NoAutoUpdate PolicyValue
	AUOptions    PolicyValue
}

func info(id uint32, msg string) {
	deck.InfoA(msg).With(wulib.EventID(id)).Go()
}

func infof(id uint32, format string, v ...interface{}) {
	deck.InfofA(format, v...).With(wulib.EventID(id)).Go()
}

func errorf(id uint32, format string, v ...interface{}) {
	deck.ErrorfA(format, v...).With(wulib.EventID(id)).Go()
}

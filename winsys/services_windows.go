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

package winsys

import (
	"fmt"
	"time"

	"github.com/google/wutoggle/toggler"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

// Services controls local system services through the Service Control Manager.
type Services struct{}

// open connects to the service manager and opens the named service. Callers
// must close both handles.
func open(name string) (*mgr.Mgr, *mgr.Service, error) {
	m, err := mgr.Connect()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to service manager: %w", err)
	}
	s, err := m.OpenService(name)
	if err != nil {
		m.Disconnect()
		return nil, nil, fmt.Errorf("failed to open service (%s): %w", name, err)
	}
	return m, s, nil
}

func toState(s svc.State) toggler.State {
	switch s {
	case svc.Stopped:
		return toggler.Stopped
	case svc.Running:
		return toggler.Running
	case svc.StartPending, svc.StopPending, svc.ContinuePending, svc.PausePending:
		return toggler.Pending
	default:
		return toggler.StateUnknown
	}
}

func toStartType(t uint32) toggler.StartType {
	switch t {
	case mgr.StartAutomatic:
		return toggler.StartAuto
	case mgr.StartManual:
		return toggler.StartManual
	case mgr.StartDisabled:
		return toggler.StartDisabled
	default:
		return toggler.StartUnknown
	}
}

// Query returns the run state of a service.
func (Services) Query(name string) (toggler.State, error) {
	m, s, err := open(name)
	if err != nil {
		return toggler.StateUnknown, err
	}
	defer m.Disconnect()
	defer s.Close()
	stat, err := s.Query()
	if err != nil {
		return toggler.StateUnknown, fmt.Errorf("failed to query service (%s): %w", name, err)
	}
	return toState(stat.State), nil
}

// StartType returns the configured startup type of a service.
func (Services) StartType(name string) (toggler.StartType, error) {
	m, s, err := open(name)
	if err != nil {
		return toggler.StartUnknown, err
	}
	defer m.Disconnect()
	defer s.Close()
	c, err := s.Config()
	if err != nil {
		return toggler.StartUnknown, fmt.Errorf("failed to read service config (%s): %w", name, err)
	}
	return toStartType(c.StartType), nil
}

// Stop sends a stop control to a service. Stopped services are left alone.
func (Services) Stop(name string) error {
	m, s, err := open(name)
	if err != nil {
		return err
	}
	defer m.Disconnect()
	defer s.Close()
	// Although s.Control returns stat, if the service is already stopped it returns an error.
	stat, err := s.Query()
	if err != nil {
		return fmt.Errorf("failed to query service (%s): %w", name, err)
	}
	if stat.State == svc.Stopped {
		return nil
	}
	if _, err := s.Control(svc.Stop); err != nil {
		return fmt.Errorf("failed to send control message (%s): %w", name, err)
	}
	return nil
}

// Start starts a service unless it is already running.
func (Services) Start(name string) error {
	m, s, err := open(name)
	if err != nil {
		return err
	}
	defer m.Disconnect()
	defer s.Close()
	stat, err := s.Query()
	if err != nil {
		return fmt.Errorf("failed to query service (%s): %w", name, err)
	}
	if stat.State == svc.Running {
		return nil
	}
	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to start service (%s): %w", name, err)
	}
	return nil
}

// Wait polls a service until it reaches want or timeout elapses.
func (Services) Wait(name string, want toggler.State, timeout time.Duration) error {
	m, s, err := open(name)
	if err != nil {
		return err
	}
	defer m.Disconnect()
	defer s.Close()

	deadline := time.Now().Add(timeout)
	for {
		stat, err := s.Query()
		if err != nil {
			return fmt.Errorf("failed to query service (%s): %w", name, err)
		}
		got := toState(stat.State)
		if got == want {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("service %s is %s after %v, want %s: %w", name, got, timeout, want, toggler.ErrTimeout)
		}
		time.Sleep(pollInterval)
	}
}

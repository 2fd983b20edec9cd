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

package wuagent

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/google/wutoggle/wulib"
)

// Query reads the agent state. COM must be initialized by the caller.
func Query() (Info, error) {
	var i Info
	var err error
	if i.ServiceEnabled, i.Level, err = autoUpdate(); err != nil {
		return i, err
	}
	if i.RebootRequired, err = rebootRequired(); err != nil {
		return i, err
	}
	i.MicrosoftUpdate, err = serviceRegistered(microsoftUpdate)
	return i, err
}

func autoUpdate() (bool, NotificationLevel, error) {
	au, err := wulib.NewCOMObject("Microsoft.Update.AutoUpdate")
	if err != nil {
		return false, 0, err
	}
	defer au.Release()

	enabled, err := oleutil.GetProperty(au, "ServiceEnabled")
	if err != nil {
		return false, 0, fmt.Errorf("failed to get ServiceEnabled property: %v", err)
	}
	defer enabled.Clear()

	s, err := oleutil.GetProperty(au, "Settings")
	if err != nil {
		return false, 0, fmt.Errorf("failed to get Settings property: %v", err)
	}
	sd := s.ToIDispatch()
	defer sd.Release()

	lvl, err := oleutil.GetProperty(sd, "NotificationLevel")
	if err != nil {
		return false, 0, fmt.Errorf("failed to get NotificationLevel property: %v", err)
	}
	defer lvl.Clear()

	return boolValue(enabled), NotificationLevel(lvl.Val), nil
}

func rebootRequired() (bool, error) {
	sysinfo, err := wulib.NewCOMObject("Microsoft.Update.SystemInfo")
	if err != nil {
		return false, err
	}
	defer sysinfo.Release()

	r, err := oleutil.GetProperty(sysinfo, "RebootRequired")
	if err != nil {
		return false, fmt.Errorf("failed to get RebootRequired property: %v", err)
	}
	defer r.Clear()

	return boolValue(r), nil
}

// serviceRegistered verifies if a service ID has been registered with the agent.
func serviceRegistered(id string) (bool, error) {
	m, err := wulib.NewCOMObject("Microsoft.Update.ServiceManager")
	if err != nil {
		return false, err
	}
	defer m.Release()

	sr, err := oleutil.CallMethod(m, "QueryServiceRegistration", id)
	if err != nil {
		return false, err
	}
	srd := sr.ToIDispatch()
	defer srd.Release()

	state, err := oleutil.GetProperty(srd, "RegistrationState")
	if err != nil {
		return false, err
	}
	defer state.Clear()

	return state.Val == registered, nil
}

func boolValue(v *ole.VARIANT) bool {
	b, ok := v.Value().(bool)
	return ok && b
}

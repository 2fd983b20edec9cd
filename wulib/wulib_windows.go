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

package wulib

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"golang.org/x/sys/windows/registry"
)

// SetLastToggle records a successful transition under the settings key.
func SetLastToggle(a Action) error {
	k, _, err := registry.CreateKey(registry.LOCAL_MACHINE, RegPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	b, err := now().MarshalBinary()
	if err != nil {
		return err
	}
	if err := k.SetStringValue(lastActionValue, string(a)); err != nil {
		return err
	}
	return k.SetBinaryValue(lastTimeValue, b)
}

// LastToggle gets the last recorded transition. A zero Toggle is returned
// when nothing has been recorded yet.
func LastToggle() (Toggle, error) {
	var t Toggle
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, RegPath, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return t, nil
		}
		return t, err
	}
	defer k.Close()

	a, _, err := k.GetStringValue(lastActionValue)
	if err != nil {
		if err == registry.ErrNotExist {
			return t, nil
		}
		return t, fmt.Errorf("unable to get last toggle action: %v", err)
	}
	t.Action = Action(a)

	b, _, err := k.GetBinaryValue(lastTimeValue)
	if err != nil {
		if err == registry.ErrNotExist {
			return t, nil
		}
		return t, fmt.Errorf("unable to get last toggle time: %v", err)
	}
	if err := t.Time.UnmarshalBinary(b); err != nil {
		return t, fmt.Errorf("unable to Unmarshal binary data: %v", err)
	}
	return t, nil
}

// NewCOMObject creates a new COM object for the specifed ProgramID.
func NewCOMObject(id string) (*ole.IDispatch, error) {
	unknown, err := oleutil.CreateObject(id)
	if err != nil {
		return nil, fmt.Errorf("unable to create initial unknown object: %v", err)
	}
	defer unknown.Release()

	obj, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("unable to create query interface: %v", err)
	}

	return obj, nil
}

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
	"strconv"
	"strings"

	"github.com/google/wutoggle/wulib"
	"golang.org/x/sys/windows/registry"
)

// PolicyKey edits a policy key under HKEY_LOCAL_MACHINE.
type PolicyKey struct {
	Path string
}

// NewPolicyKey returns the automatic update policy key.
func NewPolicyKey() *PolicyKey {
	return &PolicyKey{Path: wulib.AUReg}
}

// Exists reports whether the key is present.
func (p *PolicyKey) Exists() (bool, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, p.Path, registry.QUERY_VALUE)
	if err == registry.ErrNotExist {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	k.Close()
	return true, nil
}

// Value reads an integer value. String values holding a number are accepted.
func (p *PolicyKey) Value(name string) (uint64, bool, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, p.Path, registry.QUERY_VALUE)
	if err == registry.ErrNotExist {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	switch err {
	case nil:
		return v, true, nil
	case registry.ErrNotExist:
		return 0, false, nil
	case registry.ErrUnexpectedType:
		s, _, err := k.GetStringValue(name)
		if err != nil {
			return 0, false, fmt.Errorf("reading %s: %w", name, err)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("value %s=%q is not a number", name, s)
		}
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("reading %s: %w", name, err)
	}
}

// Create opens the key, creating it when absent.
func (p *PolicyKey) Create() (bool, error) {
	k, existed, err := registry.CreateKey(registry.LOCAL_MACHINE, p.Path, registry.ALL_ACCESS)
	if err != nil {
		return false, err
	}
	return existed, k.Close()
}

// SetDWord writes a DWORD value.
func (p *PolicyKey) SetDWord(name string, v uint32) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, p.Path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	return k.SetDWordValue(name, v)
}

// DeleteValue removes a value. Missing keys and values are ignored.
func (p *PolicyKey) DeleteValue(name string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, p.Path, registry.SET_VALUE)
	if err == registry.ErrNotExist {
		return nil
	}
	if err != nil {
		return err
	}
	defer k.Close()
	if err := k.DeleteValue(name); err != nil && err != registry.ErrNotExist {
		return err
	}
	return nil
}

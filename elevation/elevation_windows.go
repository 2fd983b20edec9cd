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

package elevation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// Test Stubs
var (
	executable   = os.Executable
	shellExecute = windows.ShellExecute
)

// IsElevated reports whether the process token holds administrative rights.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch starts the current executable with the runas verb, forwarding
// args and the working directory. The caller is expected to exit afterwards.
func Relaunch(args []string) error {
	exe, err := executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	verbPtr, _ := windows.UTF16PtrFromString("runas")
	exePtr, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	cwdPtr, err := windows.UTF16PtrFromString(cwd)
	if err != nil {
		return err
	}
	argPtr, err := windows.UTF16PtrFromString(joinArgs(args))
	if err != nil {
		return err
	}

	err = shellExecute(0, verbPtr, exePtr, argPtr, cwdPtr, windows.SW_NORMAL)
	if errors.Is(err, windows.ERROR_CANCELLED) {
		return ErrDeclined
	}
	if err != nil {
		return fmt.Errorf("failed to execute ShellExecute: %w", err)
	}
	return nil
}

// joinArgs quotes args for a Windows command line.
func joinArgs(args []string) string {
	q := make([]string, len(args))
	for i, a := range args {
		q[i] = windows.EscapeArg(a)
	}
	return strings.Join(q, " ")
}

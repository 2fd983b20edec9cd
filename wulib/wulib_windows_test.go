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
	"testing"
	"time"

	"golang.org/x/sys/windows/registry"
)

const testPath = `SOFTWARE\WUToggle_test`

var fakeTimeNow = func() time.Time {
	return time.Date(2009, 11, 17, 20, 34, 58, 651387237, time.UTC)
}

func cleanupTestKey() error {
	return registry.DeleteKey(registry.LOCAL_MACHINE, testPath)
}

func TestLastToggleMissingKey(t *testing.T) {
	RegPath = testPath
	cleanupTestKey()

	tt, err := LastToggle()
	if err != nil {
		t.Errorf("LastToggle() returned unexpected error: %v", err)
	}
	if !tt.IsZero() {
		t.Errorf("LastToggle() = %+v, want zero Toggle", tt)
	}
}

func TestSetLastToggle(t *testing.T) {
	now = fakeTimeNow
	RegPath = testPath
	defer cleanupTestKey()

	for _, a := range []Action{ActionDisable, ActionEnable} {
		if err := SetLastToggle(a); err != nil {
			t.Fatalf("SetLastToggle(%q) returned unexpected error: %v", a, err)
		}
		got, err := LastToggle()
		if err != nil {
			t.Fatalf("LastToggle() returned unexpected error: %v", err)
		}
		if got.Action != a || !got.Time.Equal(fakeTimeNow()) {
			t.Errorf("LastToggle() = %+v, want action %q at %v", got, a, fakeTimeNow())
		}
	}
}

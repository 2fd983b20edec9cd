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

package wulib

import (
	"testing"
)

func TestParseAction(t *testing.T) {
	for _, tt := range []struct {
		in     string
		out    Action
		wantOK bool
	}{
		{"enable", ActionEnable, true},
		{"DISABLE", ActionDisable, true},
		{" Disable ", ActionDisable, true},
		{"bogus", Action("bogus"), false},
		{"", Action(""), false},
	} {
		o, ok := ParseAction(tt.in)
		if o != tt.out || ok != tt.wantOK {
			t.Errorf("ParseAction(%q) = %q, %t, want %q, %t", tt.in, o, ok, tt.out, tt.wantOK)
		}
	}
}

func TestStringInSlice(t *testing.T) {
	for _, tt := range []struct {
		sl  []string
		st  string
		out bool
	}{
		{[]string{"-silent"}, "-silent", true},
		{[]string{"-Silent"}, "-silent", true},
		{[]string{"-silently"}, "-silent", false},
		{[]string{}, "-silent", false},
		{[]string{"-action", "disable", "-silently"}, "-silently", true},
	} {
		o := StringInSlice(tt.st, tt.sl)
		if o != tt.out {
			t.Errorf("StringInSlice(%q, %v) = %t, want %t", tt.st, tt.sl, o, tt.out)
		}
	}
}

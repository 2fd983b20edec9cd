// Copyright 2019 Google LLC
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

package errors

import (
	"testing"
)

func TestDesc(t *testing.T) {
	for _, tt := range []struct {
		in  SystemError
		out string
	}{
		{ERROR_SERVICE_ALREADY_RUNNING, `An instance of the service is already running.`},
		{ERROR_ACCESS_DENIED, `Access is denied.`},
		{ERROR_SERVICE_DOES_NOT_EXIST, `The specified service does not exist as an installed service.`},
		{255, `Unknown error: 0xFF`},
	} {
		o := tt.in.ErrorDesc()
		if o != tt.out {
			t.Errorf("got %q, want %q", o, tt.out)
		}
	}
}

func TestName(t *testing.T) {
	for _, tt := range []struct {
		in  SystemError
		out string
	}{
		{ERROR_SERVICE_ALREADY_RUNNING, `ERROR_SERVICE_ALREADY_RUNNING`},
		{ERROR_CANCELLED, `ERROR_CANCELLED`},
		{ERROR_SERVICE_DISABLED, `ERROR_SERVICE_DISABLED`},
		{255, ``},
	} {
		o := tt.in.ErrorName()
		if o != tt.out {
			t.Errorf("got %q, want %q", o, tt.out)
		}
	}
}

func TestString(t *testing.T) {
	for _, tt := range []struct {
		in  SystemError
		out string
	}{
		{ERROR_SERVICE_ALREADY_RUNNING, `[ERROR_SERVICE_ALREADY_RUNNING] An instance of the service is already running.`},
		{ERROR_SERVICE_NOT_ACTIVE, `[ERROR_SERVICE_NOT_ACTIVE] The service has not been started.`},
		{255, `[] Unknown error: 0xFF`},
	} {
		o := tt.in.String()
		if o != tt.out {
			t.Errorf("got %q, want %q", o, tt.out)
		}
	}
}

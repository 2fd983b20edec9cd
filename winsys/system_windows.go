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
	"github.com/google/wutoggle/dispatch"
	"github.com/google/wutoggle/toggler"
)

// New returns the live system facade. failures, when set, is notified of
// every failing command exit code.
func New(failures func(dispatch.Command, int)) toggler.System {
	return toggler.System{
		Services: Services{},
		Policy:   NewPolicyKey(),
		Runner:   &dispatch.Dispatcher{OnFailure: failures},
	}
}

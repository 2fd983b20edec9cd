// Copyright 2021 Google LLC
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

/*
 * System Events
 */
const (
	// EvtElevation indicates a change of process privilege.
	EvtElevation = iota + 1000
	// EvtEventSource indicates a change to the event log source registration.
	EvtEventSource
)

/*
 * Internal Events
 */
const (
	// EvtStatus indicates that wutoggle is reporting the Windows Update state.
	EvtStatus = iota + 2000
	// EvtDisable indicates that wutoggle is disabling Windows Update.
	EvtDisable
	// EvtEnable indicates that wutoggle is enabling Windows Update.
	EvtEnable
	// EvtService indicates a service control step.
	EvtService
	// EvtRegistry indicates a policy registry step.
	EvtRegistry
	// EvtCommand indicates an external command and its output.
	EvtCommand
	// EvtPolicyRefresh indicates a group policy refresh.
	EvtPolicyRefresh
	// EvtStartup indicates that wutoggle has started.
	EvtStartup
)

/*
 * Errors
 */
const (
	// EvtErrMetricReport indicates a problem reporting metric data.
	EvtErrMetricReport = iota + 4000
	// EvtErrNotifications indicates a problem displaying notifications.
	EvtErrNotifications
	// EvtErrStatus indicates a problem reading the Windows Update state.
	EvtErrStatus
	// EvtErrService indicates a problem controlling a system service.
	EvtErrService
	// EvtErrRegistry indicates a problem editing the policy registry key.
	EvtErrRegistry
	// EvtErrCommand indicates an external command failed or could not be started.
	EvtErrCommand
	// EvtErrToggle indicates that a toggle was aborted.
	EvtErrToggle
	// EvtErrAction indicates an invalid action request.
	EvtErrAction
	// EvtErrElevation indicates a failure to obtain administrative privileges.
	EvtErrElevation
	// EvtErrEventSource indicates a failure to register or remove the event log source.
	EvtErrEventSource
	// EvtErrConfig indicates a problem with wutoggle configuration.
	EvtErrConfig
)

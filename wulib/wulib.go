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

// Package wulib is a library of shared constants and functions.
package wulib

import (
	"strings"
	"time"
)

const (
	// LogSrcName is the name of event log source.
	LogSrcName = "WUToggle"
	// AppID is the application identity shown on notifications.
	AppID = "WUToggle"
	// Version is reported by the about subcommand.
	Version = "1.1.0"
	// LogFile is the default silent mode log file, relative to the working directory.
	LogFile = "UpdateManager.log"

	// UpdateSvc is the Windows Update Agent service.
	UpdateSvc = "wuauserv"
	// BITSSvc is the Background Intelligent Transfer Service.
	BITSSvc = "BITS"

	// AUReg is the registry path to the automatic update policy key.
	AUReg = `SOFTWARE\Policies\Microsoft\Windows\WindowsUpdate\AU`
	// NoAutoUpdate disables automatic updates when set to 1.
	NoAutoUpdate = "NoAutoUpdate"
	// AUOptions controls automatic update notification and download behavior.
	AUOptions = "AUOptions"

	// MetricRoot is the root path for a metric.
	MetricRoot = `metrics`

	lastActionValue = "LastToggleAction"
	lastTimeValue   = "LastToggleTime"
)

var (
	now = time.Now
	// RegPath is the registry path to the wutoggle settings.
	RegPath = `SOFTWARE\Google\WUToggle\`
)

// Action names a transition between update states.
type Action string

const (
	// ActionEnable turns Windows Update on.
	ActionEnable Action = "enable"
	// ActionDisable turns Windows Update off.
	ActionDisable Action = "disable"
)

// ParseAction normalizes a user supplied action name.
func ParseAction(s string) (Action, bool) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionEnable, ActionDisable:
		return a, true
	default:
		return a, false
	}
}

// Toggle records the last successful state transition.
type Toggle struct {
	Action Action
	Time   time.Time
}

// IsZero reports whether no toggle has been recorded.
func (t Toggle) IsZero() bool {
	return t.Action == "" && t.Time.IsZero()
}

// StringInSlice checks if a slice contains a string, ignoring case.
func StringInSlice(e string, s []string) bool {
	for _, a := range s {
		if strings.EqualFold(a, e) {
			return true
		}
	}
	return false
}

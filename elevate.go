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

package main

import (
	"errors"

	"github.com/google/deck"
	"github.com/google/wutoggle/elevation"
	"github.com/google/wutoggle/notification"
	"github.com/google/wutoggle/wulib"
)

// elevate relaunches the process with administrative rights and returns the
// exit code for the unelevated process.
func elevate(args []string, silentMode bool) int {
	deck.InfoA("Solicitando privilégios de administrador...").With(wulib.EventID(wulib.EvtElevation)).Go()
	err := relaunch(args)
	if err == nil {
		return 0
	}
	if errors.Is(err, elevation.ErrDeclined) {
		deck.ErrorA("ERRO: Falha ao conseguir privilegios administrativos").With(wulib.EventID(wulib.EvtErrElevation)).Go()
	} else {
		deck.ErrorfA("ERRO: Falha ao conseguir privilegios administrativos: %v", err).With(wulib.EventID(wulib.EvtErrElevation)).Go()
	}
	if !silentMode {
		notify(notification.NewElevationMessage())
	}
	return 1
}

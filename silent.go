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
	"golang.org/x/net/context"

	"github.com/google/deck"
	"github.com/google/wutoggle/toggler"
	"github.com/google/wutoggle/wulib"
)

// togglerAPI is the part of the toggler used by the front ends.
type togglerAPI interface {
	GetStatus() (toggler.Report, error)
	Apply(ctx context.Context, a wulib.Action) error
}

// runSilent applies the requested action without interaction and returns the
// process exit code.
func runSilent(ctx context.Context, t togglerAPI, raw string) int {
	if raw == "" {
		deck.ErrorA("ERRO: Nenhuma acao informada. Use -action enable ou -action disable.").With(wulib.EventID(wulib.EvtErrAction)).Go()
		return 1
	}
	a, ok := wulib.ParseAction(raw)
	if !ok {
		deck.ErrorfA("ERRO: Acao invalida '%s'. Use 'enable' ou 'disable'.", raw).With(wulib.EventID(wulib.EvtErrAction)).Go()
		return 1
	}
	err := t.Apply(ctx, a)
	recordToggle(a, err)
	if err != nil {
		deck.ErrorfA("ERRO: %v", err).With(wulib.EventID(wulib.EvtErrToggle)).Go()
		return 1
	}
	return 0
}

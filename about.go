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
	"fmt"
	"os"
	"path/filepath"

	"flag"
	"github.com/google/subcommands"
	"github.com/google/wutoggle/wulib"
)

type aboutCmd struct{}

func (aboutCmd) Name() string     { return "about" }
func (aboutCmd) Synopsis() string { return "show version information." }
func (aboutCmd) Usage() string {
	return fmt.Sprintf("%s about\n", filepath.Base(os.Args[0]))
}
func (aboutCmd) SetFlags(*flag.FlagSet) {}

func (aboutCmd) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	fmt.Print(aboutText())
	return subcommands.ExitSuccess
}

func aboutText() string {
	return fmt.Sprintf("Gerenciador do Windows Update\nVersão %s\n\n"+
		"Este aplicativo permite habilitar ou desabilitar as atualizações "+
		"automáticas do Windows de forma fácil e segura.\n", wulib.Version)
}

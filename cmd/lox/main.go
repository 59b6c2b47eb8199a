// Copyright 2026 The cpp-lox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lox runs Lox scripts: `lox` with no arguments is a REPL
// placeholder, `lox script.lox` scans, parses, and interprets the
// given file, exiting non-zero if any compile-time or runtime error
// was reported.
package main

import (
	"os"

	"github.com/ThoSe1990/cpp-lox/cmd"
)

func main() {
	os.Exit(run())
}

// run is split out from main so testscript's RunMain can register this
// binary's behavior under the "lox" command name: scripts that exec
// lox run the test binary, which dispatches to run. It takes its
// arguments from os.Args.
func run() int {
	c := cmd.New(os.Args[1:], os.Stdout, os.Stderr)
	return c.Execute()
}

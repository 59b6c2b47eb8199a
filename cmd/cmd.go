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

// Package cmd wires the scan -> parse -> interpret pipeline into a
// cobra command.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThoSe1990/cpp-lox/errors"
	"github.com/ThoSe1990/cpp-lox/interp"
	"github.com/ThoSe1990/cpp-lox/parser"
	"github.com/ThoSe1990/cpp-lox/scanner"
)

// Command wraps the root cobra.Command: a thin holder so Execute can
// be driven from main and from tests without re-parsing os.Args.
type Command struct {
	root     *cobra.Command
	reporter *errors.Reporter
}

// New builds the root command for args (typically os.Args[1:]). With
// no arguments it prints a REPL placeholder and does nothing further;
// an interactive REPL is not implemented. With exactly one argument it
// interprets that path as a Lox source file. Any other argument count
// is a usage error.
func New(args []string, stdout, stderr io.Writer) *Command {
	c := &Command{}
	c.root = &cobra.Command{
		Use:           "lox [script]",
		Short:         "lox runs Lox scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			return c.run(cmdArgs, stdout, stderr)
		},
	}
	c.root.SetArgs(args)
	c.root.SetOut(stdout)
	c.root.SetErr(stderr)
	return c
}

func (c *Command) run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stdout, "lox: REPL mode is not implemented; pass a script path")
		return nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("lox: %w", err)
	}

	c.reporter = errors.NewReporter(stderr)
	toks := scanner.ScanTokens(src, c.reporter.Handler())
	stmts := parser.Parse(toks, c.reporter.Handler())
	if c.reporter.HadError() {
		return errExit{code: c.reporter.ExitCode()}
	}

	interp.New(stdout, c.reporter).Interpret(stmts)
	if c.reporter.ExitCode() != 0 {
		return errExit{code: c.reporter.ExitCode()}
	}
	return nil
}

// errExit signals Execute's caller to exit with a specific non-zero
// code without printing an additional message: the scanner, parser,
// and interpreter have already written their own diagnostics to
// stderr via the Reporter.
type errExit struct{ code int }

func (e errExit) Error() string { return "" }

// Execute runs the command and returns the process exit code.
func (c *Command) Execute() int {
	err := c.root.Execute()
	if err == nil {
		return 0
	}
	if ee, ok := err.(errExit); ok {
		return ee.code
	}
	fmt.Fprintln(c.root.ErrOrStderr(), err)
	return 1
}

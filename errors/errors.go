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

// Package errors defines the shared error types reported by the
// scanner, parser, and interpreter, and the sink they are latched
// into.
//
// Two disjoint kinds are modeled: CompileError, raised by the scanner
// and parser and recovered from by synchronization, and RuntimeError,
// raised by the interpreter and fatal to the current program run. Both
// satisfy the Error interface so callers can print either uniformly.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ThoSe1990/cpp-lox/token"
)

// Error is the common interface implemented by CompileError and
// RuntimeError.
type Error interface {
	error
	Position() token.Pos
}

// CompileError is reported by the scanner or the parser. Its Where
// field is "" for scanner errors and the offending token's lexeme for
// parser errors ("end" when the offending token is EOF), and renders as
// "[REPORT] <where>:<line>: <message>".
type CompileError struct {
	Line  token.Pos
	Where string
	Msg   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("[REPORT] %s:%d: %s", e.Where, e.Line, e.Msg)
}

// Position implements Error.
func (e *CompileError) Position() token.Pos { return e.Line }

// RuntimeError is raised by the interpreter for type mismatches, arity
// mismatches, non-callable calls, and undefined variables. It renders
// as the offending token's description followed by the message.
type RuntimeError struct {
	Tok token.Token
	Msg string

	// Err, if non-nil, is a sentinel the caller can recover with
	// errors.Is/errors.As (e.g. ErrUndefinedVariable).
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s %s", e.Tok, e.Msg)
}

// Position implements Error.
func (e *RuntimeError) Position() token.Pos { return e.Tok.Line }

// Unwrap exposes the wrapped sentinel, if any.
func (e *RuntimeError) Unwrap() error { return e.Err }

// NewRuntimeError builds a RuntimeError for the given token and
// message.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Tok: tok, Msg: fmt.Sprintf(format, args...)}
}

// NewUndefinedVariable builds the RuntimeError raised by Environment.Get
// and Environment.Assign when a name is not bound in the chain.
func NewUndefinedVariable(tok token.Token, name string) *RuntimeError {
	return &RuntimeError{
		Tok: tok,
		Msg: fmt.Sprintf("Undefined variable '%s'.", name),
		Err: ErrUndefinedVariable,
	}
}

// Handler is called by the scanner and parser for every error
// encountered: a single hook the caller supplies so scanning or
// parsing can continue after an error (panic-mode synchronization)
// instead of aborting.
type Handler func(line token.Pos, where, msg string)

// Reporter is the error sink threaded through the scanner, parser, and
// interpreter: a value the caller owns and can inspect after a run,
// rather than a pair of package-level flags.
type Reporter struct {
	out          io.Writer
	compile      []*CompileError
	runtime      *RuntimeError
	hadError     bool
	hadRuntime   bool
	compileLimit int
}

// NewReporter creates a Reporter that writes formatted error lines to
// out. A nil out discards formatted output but still latches the
// has-error flags.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

// Handler returns the scanner/parser error hook bound to r.
func (r *Reporter) Handler() Handler {
	return func(line token.Pos, where, msg string) {
		r.ReportCompile(&CompileError{Line: line, Where: where, Msg: msg})
	}
}

// ReportCompile latches a compile-time error and writes it to the
// configured writer.
func (r *Reporter) ReportCompile(err *CompileError) {
	r.hadError = true
	r.compile = append(r.compile, err)
	fmt.Fprintln(r.out, err.Error())
}

// ReportRuntime latches a runtime error and writes it to the
// configured writer. Only the first runtime error of a run is kept: a
// RuntimeError aborts the remainder of the program.
func (r *Reporter) ReportRuntime(err *RuntimeError) {
	r.hadRuntime = true
	if r.runtime == nil {
		r.runtime = err
	}
	fmt.Fprintln(r.out, err.Error())
}

// HadError reports whether any CompileError was latched.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a RuntimeError was latched.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntime }

// ExitCode reports the process exit code for a run: 0 on success,
// non-zero if either flag was latched.
func (r *Reporter) ExitCode() int {
	if r.hadError || r.hadRuntime {
		return 1
	}
	return 0
}

// CompileErrors returns the compile errors latched so far, sorted by
// source line.
func (r *Reporter) CompileErrors() []*CompileError {
	sorted := append([]*CompileError(nil), r.compile...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Line < sorted[j].Line })
	return sorted
}

// Sentinel errors usable with the standard library's errors.Is/As,
// e.g. by hosts embedding the interpreter.
var (
	ErrUndefinedVariable = errors.New("undefined variable")
)

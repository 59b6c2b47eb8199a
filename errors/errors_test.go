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

package errors

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/ThoSe1990/cpp-lox/token"
)

func TestCompileErrorFormatting(t *testing.T) {
	err := &CompileError{Line: 3, Where: "", Msg: "Unexpected character."}
	qt.Assert(t, qt.Equals(err.Error(), "[REPORT] :3: Unexpected character."))
	qt.Assert(t, qt.Equals(err.Position(), token.Pos(3)))
}

func TestRuntimeErrorFormatting(t *testing.T) {
	tok := token.Token{Kind: token.PLUS, Lexeme: "+", Line: 7}
	err := NewRuntimeError(tok, "Operands must be two numbers or two strings.")
	qt.Assert(t, qt.Equals(err.Error(), "+ Operands must be two numbers or two strings."))
	qt.Assert(t, qt.Equals(err.Position(), token.Pos(7)))
}

func TestUndefinedVariableWrapsSentinel(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Lexeme: "x", Line: 1}
	err := NewUndefinedVariable(tok, "x")
	qt.Assert(t, qt.Equals(err.Error(), "x Undefined variable 'x'."))
	qt.Assert(t, qt.IsTrue(errors.Is(err, ErrUndefinedVariable)))
}

func TestReporterLatchesCompileErrors(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	qt.Assert(t, qt.IsFalse(r.HadError()))

	h := r.Handler()
	h(5, "", "Unexpected character.")
	h(2, "}", "Expect expression.")

	qt.Assert(t, qt.IsTrue(r.HadError()))
	qt.Assert(t, qt.IsFalse(r.HadRuntimeError()))
	qt.Assert(t, qt.Equals(r.ExitCode(), 1))

	sorted := r.CompileErrors()
	qt.Assert(t, qt.HasLen(sorted, 2))
	qt.Assert(t, qt.Equals(sorted[0].Line, token.Pos(2)))
	qt.Assert(t, qt.Equals(sorted[1].Line, token.Pos(5)))
	qt.Assert(t, qt.Not(qt.Equals(buf.Len(), 0)))
}

func TestReporterKeepsOnlyFirstRuntimeError(t *testing.T) {
	r := NewReporter(nil)
	tok := token.Token{Kind: token.SLASH, Lexeme: "/", Line: 1}

	r.ReportRuntime(NewRuntimeError(tok, "Operands must be numbers."))
	r.ReportRuntime(NewRuntimeError(tok, "Undefined variable 'y'."))

	qt.Assert(t, qt.IsTrue(r.HadRuntimeError()))
	qt.Assert(t, qt.Equals(r.ExitCode(), 1))
	qt.Assert(t, qt.Equals(r.runtime.Msg, "Operands must be numbers."))
}

func TestNewReporterNilWriterDiscards(t *testing.T) {
	r := NewReporter(nil)
	r.Handler()(1, "", "boom")
	qt.Assert(t, qt.IsTrue(r.HadError()))
}

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

package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ThoSe1990/cpp-lox/errors"
	"github.com/ThoSe1990/cpp-lox/parser"
	"github.com/ThoSe1990/cpp-lox/scanner"
	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, src string) (stdout string, reporter *errors.Reporter) {
	t.Helper()
	var out, errOut bytes.Buffer
	reporter = errors.NewReporter(&errOut)
	toks := scanner.ScanTokens([]byte(src), reporter.Handler())
	stmts := parser.Parse(toks, reporter.Handler())
	if reporter.HadError() {
		return out.String(), reporter
	}
	New(&out, reporter).Interpret(stmts)
	return out.String(), reporter
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"arithmetic precedence", `print 1 + 2 * 3;`, "7\n"},
		{"string concatenation", `print "foo" + "bar";`, "foobar\n"},
		{"variable arithmetic", `var a = 1; var b = 2; print a + b;`, "3\n"},
		{"shadowing and restoration", `var a = "outer"; { var a = "inner"; print a; } print a;`, "inner\nouter\n"},
		{"function call", `fun add(x, y) { return x + y; } print add(3, 4);`, "7\n"},
		{
			"lexical capture",
			`fun makeCounter() { var i = 0; fun count() { i = i + 1; return i; } return count; } var c = makeCounter(); print c(); print c();`,
			"1\n2\n",
		},
		{"if/else", `if (1 < 2) print "yes"; else print "no";`, "yes\n"},
		{"while loop", `var i = 0; while (i < 3) { print i; i = i + 1; }`, "0\n1\n2\n"},
		{"for loop", `for (var i = 0; i < 3; i = i + 1) print i;`, "0\n1\n2\n"},
		{"assignment is an expression", `var a = 1; print a = 5;`, "5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rep := run(t, tt.src)
			if rep.HadError() || rep.HadRuntimeError() {
				t.Fatalf("unexpected error for %q", tt.src)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShortCircuitNeverEvaluatesRHS(t *testing.T) {
	// If the RHS call were evaluated, "side effect" would also be
	// printed for both lines.
	src := `
fun sideEffect() { print "side effect"; return true; }
if (true or sideEffect()) print "or short-circuited";
if (false and sideEffect()) print "unreachable"; else print "and short-circuited";
`
	got, rep := run(t, src)
	if rep.HadError() || rep.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.Contains(got, "side effect") {
		t.Errorf("stdout = %q, short-circuit should have skipped the call", got)
	}
	want := "or short-circuited\nand short-circuited\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestEqualityAcrossKinds(t *testing.T) {
	got, rep := run(t, `print 1 == "1"; print 1 != "1"; print nil == false;`)
	if rep.HadError() || rep.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	want := "false\ntrue\nfalse\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	src := `var total = 0; for (var i = 0; i < 5; i = i + 1) { total = total + i; } print total;`
	first, _ := run(t, src)
	second, _ := run(t, src)
	if first != second {
		t.Errorf("program is not deterministic: %q vs %q", first, second)
	}
}

func TestTypeMismatchIsRuntimeErrorWithNoOutput(t *testing.T) {
	got, rep := run(t, `print "a" + 1;`)
	if !rep.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
	if got != "" {
		t.Errorf("stdout = %q, want no output before the failing statement runs", got)
	}
}

func TestDivisionByZeroIsNotAnError(t *testing.T) {
	got, rep := run(t, `print 1 / 0;`)
	if rep.HadRuntimeError() {
		t.Fatalf("division by zero must follow IEEE-754, not error")
	}
	if diff := cmp.Diff("+Inf\n", got); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := run(t, `print nope;`)
	if !rep.HadRuntimeError() {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
}

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
	"strconv"

	"github.com/ThoSe1990/cpp-lox/ast"
)

// Value holds a Lox runtime value: nil, bool, float64, string, or
// *Function. Go's interface{} plays the role of a closed sum type
// here, since those five concrete types are the only ones ever placed
// in it.
type Value = interface{}

// Function is a callable handle: a user-defined function paired with
// the environment in effect when it was declared, giving it lexical
// capture over that scope (a closure, per the glossary).
type Function struct {
	Decl    *ast.FunctionStmt
	Closure *Environment
}

// Arity is the number of parameters the function declares.
func (f *Function) Arity() int { return len(f.Decl.Params) }

// String is the callable's canonical stdout form.
func (f *Function) String() string { return "<fn " + f.Decl.Name.Lexeme + ">" }

// isTruthy implements the truthiness rule: nil is false, booleans are
// themselves, everything else (including 0 and "") is true.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements the equality rule: nil equals only nil; otherwise
// values are equal only when they share a concrete Go type and
// compare equal under it, with no cross-type coercion. Comparing two
// NaN float64s is false, matching host IEEE-754 equality.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	}
	return false
}

// stringify renders v in its canonical stdout form.
func stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		// FormatFloat with precision -1 uses the shortest decimal
		// representation that round-trips exactly, so integer-valued
		// doubles print as "2", not "2.000000".
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case *Function:
		return x.String()
	default:
		return "nil"
	}
}

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

// Package interp walks the AST produced by package parser, evaluating
// expressions to Values and executing statements for effect. It owns
// the current Environment and threads a non-local return signal
// through statement execution as an ordinary Go error value, instead
// of using host exceptions across the evaluator boundary.
package interp

import (
	"fmt"
	"io"

	"github.com/ThoSe1990/cpp-lox/ast"
	"github.com/ThoSe1990/cpp-lox/errors"
	"github.com/ThoSe1990/cpp-lox/token"
)

// returnSignal is the control-flow escape raised by a Return statement.
// It is distinguished from *errors.RuntimeError throughout the unwind
// path so that it is never reported as an error.
type returnSignal struct{ value Value }

func (returnSignal) Error() string { return "return" }

// Interpreter executes a parsed program. It owns the current
// environment (pushing and popping block/call frames as execution
// enters and leaves their scopes) and reports runtime errors through
// the same Reporter the scanner and parser use.
type Interpreter struct {
	globals  *Environment
	env      *Environment
	reporter *errors.Reporter
	stdout   io.Writer
}

// New creates an Interpreter that writes print output to stdout and
// reports runtime errors through reporter.
func New(stdout io.Writer, reporter *errors.Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{globals: globals, env: globals, reporter: reporter, stdout: stdout}
}

// Globals returns the outermost environment, useful for hosts that
// want to predefine bindings before Interpret runs.
func (it *Interpreter) Globals() *Environment { return it.globals }

// Interpret executes each top-level statement of the program in
// order. A RuntimeError aborts the remainder of the program and is
// reported once; a returnSignal escaping to this level (a Return
// outside of any function call, which the parser accepts) also aborts
// the program and is reported as a runtime error rather than panicking
// the host.
func (it *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			it.report(err)
			return
		}
	}
}

func (it *Interpreter) report(err error) {
	if rs, ok := err.(returnSignal); ok {
		it.reporter.ReportRuntime(errors.NewRuntimeError(token.Token{}, "return outside of a function call: %v", rs.value))
		return
	}
	if re, ok := err.(*errors.RuntimeError); ok {
		it.reporter.ReportRuntime(re)
		return
	}
	it.reporter.ReportRuntime(errors.NewRuntimeError(token.Token{}, "%v", err))
}

// --- statement execution -------------------------------------------------

func (it *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.stdout, stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value
		if s.Init != nil {
			v, err := it.evaluate(s.Init)
			if err != nil {
				return err
			}
			value = v
		}
		it.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return it.executeBlock(s.Stmts, NewEnvironment(it.env))

	case *ast.IfStmt:
		cond, err := it.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return it.executeList(s.Then)
		} else if s.Else != nil {
			return it.executeList(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := it.executeList(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Decl: s, Closure: it.env}
		it.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := it.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}
	}

	panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
}

// executeList runs an If/While branch or body list without pushing a
// new environment: those lists are not scopes of their own, only
// BlockStmt is. The parser flattens a braced branch into its statement
// list, so declarations inside such a branch are bound in the
// enclosing environment.
func (it *Interpreter) executeList(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeBlock pushes env as the current environment, executes stmts,
// and restores the previous environment on every exit path (normal
// completion, runtime error, or return signal).
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- expression evaluation ------------------------------------------------

func (it *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Variable:
		return it.env.Get(e.Name)

	case *ast.Assign:
		value, err := it.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.env.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Grouping:
		return it.evaluate(e.Inner)

	case *ast.Unary:
		right, err := it.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op.Kind {
		case token.MINUS:
			n, err := it.number(e.Op, right)
			if err != nil {
				return nil, err
			}
			return -n, nil
		case token.BANG:
			return !isTruthy(right), nil
		}
		panic("interp: unhandled unary operator " + e.Op.Kind.String())

	case *ast.Logical:
		left, err := it.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return it.evaluate(e.Right)

	case *ast.Binary:
		return it.evaluateBinary(e)

	case *ast.Call:
		return it.evaluateCall(e)
	}

	panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
}

func (it *Interpreter) number(op token.Token, v Value) (float64, error) {
	if n, ok := v.(float64); ok {
		return n, nil
	}
	return 0, errors.NewRuntimeError(op, "Operand must be a number.")
}

func (it *Interpreter) evaluateBinary(e *ast.Binary) (Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, errors.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")

	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, ok := left.(float64)
		if !ok {
			return nil, errors.NewRuntimeError(e.Op, "Operands must be numbers.")
		}
		rn, ok := right.(float64)
		if !ok {
			return nil, errors.NewRuntimeError(e.Op, "Operands must be numbers.")
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			// Divide-by-zero follows host IEEE-754 semantics (+/-Inf
			// or NaN), not a runtime error.
			return ln / rn, nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		}

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	}

	panic("interp: unhandled binary operator " + e.Op.Kind.String())
}

func (it *Interpreter) evaluateCall(e *ast.Call) (Value, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(*Function)
	if !ok {
		return nil, errors.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, errors.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return it.call(fn, args)
}

// call invokes fn with args, creating a fresh call environment
// enclosed by the environment captured at declaration time -- lexical
// scoping, not the caller's environment.
func (it *Interpreter) call(fn *Function, args []Value) (Value, error) {
	callEnv := NewEnvironment(fn.Closure)
	for i, param := range fn.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := it.executeBlock(fn.Decl.Body, callEnv)
	if err == nil {
		return nil, nil
	}
	if rs, ok := err.(returnSignal); ok {
		return rs.value, nil
	}
	return nil, err
}

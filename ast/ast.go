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

// Package ast declares the types used to represent the syntax tree of
// a Lox program: a tagged sum of expression nodes and a tagged sum of
// statement nodes, evaluated by pattern match rather than by a
// Visitor hierarchy.
package ast

import "github.com/ThoSe1990/cpp-lox/token"

// A Node is any node in the tree. Pos reports the position of the
// first token belonging to the node, for use in runtime error
// messages.
type Node interface {
	Pos() token.Pos
}

// An Expr is implemented by all expression nodes. The unexported
// exprNode method seals the interface to this package's own node
// types.
type Expr interface {
	Node
	exprNode()
}

// A Stmt is implemented by all statement nodes, sealed the same way
// as Expr.
type Stmt interface {
	Node
	stmtNode()
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}

// Literal is a nil, boolean, number, or string constant appearing
// directly in source.
type Literal struct {
	Line  token.Pos
	Value interface{} // nil | bool | float64 | string
}

func (e *Literal) Pos() token.Pos { return e.Line }

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

func (e *Variable) Pos() token.Pos { return e.Name.Line }

// Assign evaluates Value and stores it into Name, yielding the
// assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Pos() token.Pos { return e.Name.Line }

// Unary applies Op (MINUS or BANG) to Right.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) Pos() token.Pos { return e.Op.Line }

// Binary applies an arithmetic, comparison, or equality Op to Left and
// Right, both evaluated left-to-right.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Pos() token.Pos { return e.Op.Line }

// Logical applies AND or OR to Left and Right with short-circuit
// evaluation: Right is only evaluated if the result isn't already
// determined by Left.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) Pos() token.Pos { return e.Op.Line }

// Grouping is a parenthesized sub-expression; it exists only to
// capture explicit parentheses and has no effect on evaluation order
// beyond what the parser already encodes in the tree shape.
type Grouping struct {
	Lparen token.Pos
	Inner  Expr
}

func (e *Grouping) Pos() token.Pos { return e.Lparen }

// Call invokes Callee with Args, evaluated left-to-right.
type Call struct {
	Callee Expr
	Paren  token.Token // closing ')', used to report call-site errors
	Args   []Expr
}

func (e *Call) Pos() token.Pos { return e.Callee.Pos() }

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) Pos() token.Pos { return s.Expr.Pos() }

// PrintStmt evaluates Expr and writes its canonical string form
// followed by a newline.
type PrintStmt struct {
	Keyword token.Token
	Expr    Expr
}

func (s *PrintStmt) Pos() token.Pos { return s.Keyword.Line }

// VarStmt declares Name, optionally initialized by Init (nil if
// absent, in which case the bound value is nil).
type VarStmt struct {
	Name token.Token
	Init Expr // may be nil
}

func (s *VarStmt) Pos() token.Pos { return s.Name.Line }

// BlockStmt executes Stmts in a fresh environment scoped to the
// block.
type BlockStmt struct {
	Lbrace token.Pos
	Stmts  []Stmt
}

func (s *BlockStmt) Pos() token.Pos { return s.Lbrace }

// IfStmt executes Then if Cond is truthy, else Else. Both branches are
// statement lists (a bare, non-block branch is the one-element list
// holding it); Else is empty when absent.
type IfStmt struct {
	Keyword token.Pos
	Cond    Expr
	Then    []Stmt
	Else    []Stmt
}

func (s *IfStmt) Pos() token.Pos { return s.Keyword }

// WhileStmt repeatedly executes Body while Cond evaluates truthy. Body
// is a statement list for the same reason as IfStmt.Then.
type WhileStmt struct {
	Keyword token.Pos
	Cond    Expr
	Body    []Stmt
}

func (s *WhileStmt) Pos() token.Pos { return s.Keyword }

// FunctionStmt declares a named function. At the point this statement
// executes, a callable value capturing the current environment is
// bound to Name.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Pos() token.Pos { return s.Name.Line }

// ReturnStmt raises the interpreter's non-local return signal, carrying
// Value (nil literal if Value is nil in the tree) up to the nearest
// enclosing function-call frame.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // may be nil
}

func (s *ReturnStmt) Pos() token.Pos { return s.Keyword.Line }

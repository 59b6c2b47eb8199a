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

// Package parser implements a recursive-descent parser over the token
// stream produced by package scanner, turning it into the statement
// trees of package ast. Syntax errors are reported through an
// errors.Handler and recovered from by panic-mode synchronization so
// that a single pass can surface more than one error.
package parser

import (
	"github.com/ThoSe1990/cpp-lox/ast"
	"github.com/ThoSe1990/cpp-lox/errors"
	"github.com/ThoSe1990/cpp-lox/token"
)

const maxArgs = 255

// parser holds the lookahead state for one parse: the token slice and
// a cursor advanced by advance()/match(), with errors reported through
// errorAt/fail rather than returned from every call.
type parser struct {
	toks []token.Token
	pos  int // index of the current token in toks

	err errors.Handler
}

// Parse turns toks (as produced by scanner.ScanTokens, terminated by
// an EOF token) into the program's statement list. Parse errors are
// reported through err and do not stop the parse: panic-mode
// synchronization skips to the next statement boundary so later
// statements can still be parsed, letting callers surface more than
// one syntax error per run.
func Parse(toks []token.Token, err errors.Handler) []ast.Stmt {
	p := &parser{toks: toks, err: err}
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// --- token cursor -----------------------------------------------------

func (p *parser) cur() token.Token  { return p.toks[p.pos] }
func (p *parser) prev() token.Token { return p.toks[p.pos-1] }

func (p *parser) isAtEnd() bool { return p.cur().Kind == token.EOF }

func (p *parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.prev()
}

func (p *parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.cur().Kind == kind
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has kind; otherwise it
// reports msg and raises a parseError, unwinding to declaration's
// recovery boundary rather than merely reporting and continuing.
func (p *parser) expect(kind token.Kind, msg string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.cur(), msg)
	panic("unreachable")
}

// --- error reporting & synchronization --------------------------------

// parseError unwinds the recursive descent back to declaration()'s
// recovery boundary. It is never reported itself -- only errorAt's
// handler call is user-visible -- so a caller only ever sees the
// formatted diagnostics, never this internal control-flow value.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

func (p *parser) errorAt(tok token.Token, msg string) {
	if p.err != nil {
		where := tok.Lexeme
		if tok.Kind == token.EOF {
			where = "end"
		}
		p.err(tok.Line, where, msg)
	}
}

func (p *parser) fail(tok token.Token, msg string) {
	p.errorAt(tok, msg)
	panic(parseError{})
}

// synchronize recovers from a parse error by consuming tokens until
// the previously-consumed token was SEMI or the next token starts a
// new statement, so the next declaration can be parsed cleanly.
func (p *parser) synchronize() {
	for !p.isAtEnd() {
		if p.pos > 0 && p.prev().Kind == token.SEMI {
			return
		}
		switch p.cur().Kind {
		case token.CLASS, token.FOR, token.FUN, token.IF, token.PRINT, token.RETURN, token.VAR, token.WHILE:
			return
		}
		p.advance()
	}
}

// --- declarations & statements -----------------------------------------

func (p *parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	if p.match(token.FUN) {
		return p.function("function")
	}
	return p.statement()
}

func (p *parser) varDeclaration() ast.Stmt {
	name := p.expect(token.IDENT, "Expect variable name.")
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.expect(token.SEMI, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Init: init}
}

func (p *parser) function(kind string) *ast.FunctionStmt {
	name := p.expect(token.IDENT, "Expect "+kind+" name.")
	p.expect(token.LPAREN, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.cur(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "Expect ')' after parameters.")
	p.expect(token.LBRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.LBRACE):
		return &ast.BlockStmt{Lbrace: p.prev().Line, Stmts: p.block()}
	}
	return p.expressionStatement()
}

func (p *parser) printStatement() ast.Stmt {
	keyword := p.prev()
	value := p.expression()
	p.expect(token.SEMI, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: keyword, Expr: value}
}

func (p *parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMI, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

// block parses a brace-delimited list of declarations. The opening
// brace must already be consumed by the caller.
func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "Expect '}' after block.")
	return stmts
}

// asList turns a single parsed statement into the []ast.Stmt shape
// used by If/While branches and bodies: a block's own statement list
// is used directly, a bare statement becomes a one-element list.
func asList(s ast.Stmt) []ast.Stmt {
	if s == nil {
		return nil
	}
	if b, ok := s.(*ast.BlockStmt); ok {
		return b.Stmts
	}
	return []ast.Stmt{s}
}

func (p *parser) ifStatement() ast.Stmt {
	keyword := p.prev().Line
	p.expect(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after if condition.")

	then := asList(p.statement())
	var els []ast.Stmt
	if p.match(token.ELSE) {
		els = asList(p.statement())
	}
	return &ast.IfStmt{Keyword: keyword, Cond: cond, Then: then, Else: els}
}

func (p *parser) whileStatement() ast.Stmt {
	keyword := p.prev().Line
	p.expect(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after condition.")
	body := asList(p.statement())
	return &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}
}

// forStatement desugars `for (init; cond; update) body` into the
// equivalent while loop at parse time.
func (p *parser) forStatement() ast.Stmt {
	keyword := p.prev().Line
	p.expect(token.LPAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMI):
		init = nil
	case p.check(token.VAR):
		p.advance()
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.expect(token.SEMI, "Expect ';' after loop condition.")

	var update ast.Expr
	if !p.check(token.RPAREN) {
		update = p.expression()
	}
	p.expect(token.RPAREN, "Expect ')' after for clauses.")

	body := asList(p.statement())

	if update != nil {
		body = append(body, &ast.ExpressionStmt{Expr: update})
	}
	if cond == nil {
		cond = &ast.Literal{Line: keyword, Value: true}
	}
	loop := ast.Stmt(&ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body})

	if init == nil {
		return loop
	}
	return &ast.BlockStmt{Lbrace: keyword, Stmts: []ast.Stmt{init, loop}}
}

func (p *parser) returnStatement() ast.Stmt {
	keyword := p.prev()
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.expression()
	}
	p.expect(token.SEMI, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// --- expressions --------------------------------------------------------

func (p *parser) expression() ast.Expr { return p.assignment() }

func (p *parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.EQUAL) {
		equals := p.prev()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		op := p.prev()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.prev()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.prev()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.prev()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.prev()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.prev()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.prev()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

// call parses primary ( "(" args? ")" )*, allowing chained calls like
// makeCounter()().
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LPAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.cur(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Line: p.prev().Line, Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Line: p.prev().Line, Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Line: p.prev().Line, Value: nil}
	case p.match(token.NUMBER):
		tok := p.prev()
		return &ast.Literal{Line: tok.Line, Value: parseFloat(tok.Literal)}
	case p.match(token.STRING):
		tok := p.prev()
		return &ast.Literal{Line: tok.Line, Value: tok.Literal}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.prev()}
	case p.match(token.LPAREN):
		lparen := p.prev().Line
		expr := p.expression()
		p.expect(token.RPAREN, "Expect ')' after expression.")
		return &ast.Grouping{Lparen: lparen, Inner: expr}
	}

	p.fail(p.cur(), "Expect expression.")
	panic("unreachable")
}

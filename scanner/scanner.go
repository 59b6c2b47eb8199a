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

// Package scanner implements a scanner for Lox source text. It takes a
// []byte as source which can then be tokenized through repeated calls
// to Scan, or all at once through ScanTokens.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/ThoSe1990/cpp-lox/errors"
	"github.com/ThoSe1990/cpp-lox/token"
)

// A Scanner holds the scanner's internal state while processing a
// given source. It can be allocated as part of another data structure
// but must be initialized via Init before use.
type Scanner struct {
	src []byte         // source
	err errors.Handler // error reporting; or nil

	ch       rune // current character, -1 at EOF
	offset   int  // character offset of ch
	rdOffset int  // reading offset (position after ch)
	line     int  // current line, 1-based
}

const eof = -1

// Init prepares s to tokenize src, reporting errors via err. err may be
// nil, in which case errors are silently skipped and not recorded
// anywhere.
func (s *Scanner) Init(src []byte, err errors.Handler) {
	s.src = src
	s.err = err
	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.line = 1
	s.next()
}

// next reads the next Unicode code point into s.ch. s.ch is eof at
// end-of-file.
func (s *Scanner) next() {
	if s.rdOffset >= len(s.src) {
		s.offset = len(s.src)
		s.ch = eof
		return
	}
	s.offset = s.rdOffset
	r, w := rune(s.src[s.rdOffset]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.rdOffset:])
	}
	s.rdOffset += w
	s.ch = r
}

// peek returns the character after s.ch without consuming it.
func (s *Scanner) peek() rune {
	if s.rdOffset >= len(s.src) {
		return eof
	}
	return rune(s.src[s.rdOffset])
}

func (s *Scanner) error(msg string) {
	if s.err != nil {
		s.err(token.Pos(s.line), "", msg)
	}
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isAlpha(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isAlphaNumeric(ch rune) bool { return isAlpha(ch) || isDigit(ch) }

// Scan reads and returns the next token. At the end of the source, it
// returns an EOF token and can be called again indefinitely, always
// returning EOF.
func (s *Scanner) Scan() token.Token {
	for {
		switch ch := s.ch; {
		case ch == ' ' || ch == '\t' || ch == '\r':
			s.next()
			continue
		case ch == '\n':
			s.line++
			s.next()
			continue
		case ch == '#':
			for s.ch != '\n' && s.ch != eof {
				s.next()
			}
			continue
		}
		break
	}

	line := token.Pos(s.line)

	switch ch := s.ch; {
	case ch == eof:
		return token.Token{Kind: token.EOF, Lexeme: "", Line: line}
	case isDigit(ch):
		return s.scanNumber(line)
	case isAlpha(ch):
		return s.scanIdentifier(line)
	case ch == '"':
		return s.scanString(line)
	}

	ch := s.ch
	s.next()
	switch ch {
	case '(':
		return token.Token{Kind: token.LPAREN, Lexeme: "(", Line: line}
	case ')':
		return token.Token{Kind: token.RPAREN, Lexeme: ")", Line: line}
	case '{':
		return token.Token{Kind: token.LBRACE, Lexeme: "{", Line: line}
	case '}':
		return token.Token{Kind: token.RBRACE, Lexeme: "}", Line: line}
	case ',':
		return token.Token{Kind: token.COMMA, Lexeme: ",", Line: line}
	case '.':
		return token.Token{Kind: token.DOT, Lexeme: ".", Line: line}
	case '-':
		return token.Token{Kind: token.MINUS, Lexeme: "-", Line: line}
	case '+':
		return token.Token{Kind: token.PLUS, Lexeme: "+", Line: line}
	case ';':
		return token.Token{Kind: token.SEMI, Lexeme: ";", Line: line}
	case '*':
		return token.Token{Kind: token.STAR, Lexeme: "*", Line: line}
	case '/':
		return token.Token{Kind: token.SLASH, Lexeme: "/", Line: line}
	case '!':
		if s.ch == '=' {
			s.next()
			return token.Token{Kind: token.BANG_EQUAL, Lexeme: "!=", Line: line}
		}
		return token.Token{Kind: token.BANG, Lexeme: "!", Line: line}
	case '=':
		if s.ch == '=' {
			s.next()
			return token.Token{Kind: token.EQUAL_EQUAL, Lexeme: "==", Line: line}
		}
		return token.Token{Kind: token.EQUAL, Lexeme: "=", Line: line}
	case '<':
		if s.ch == '=' {
			s.next()
			return token.Token{Kind: token.LESS_EQUAL, Lexeme: "<=", Line: line}
		}
		return token.Token{Kind: token.LESS, Lexeme: "<", Line: line}
	case '>':
		if s.ch == '=' {
			s.next()
			return token.Token{Kind: token.GREATER_EQUAL, Lexeme: ">=", Line: line}
		}
		return token.Token{Kind: token.GREATER, Lexeme: ">", Line: line}
	}

	s.error("Unexpected character.")
	return s.Scan()
}

func (s *Scanner) scanNumber(line token.Pos) token.Token {
	var b strings.Builder
	for isDigit(s.ch) {
		b.WriteRune(s.ch)
		s.next()
	}
	if s.ch == '.' && isDigit(s.peek()) {
		b.WriteRune(s.ch)
		s.next()
		for isDigit(s.ch) {
			b.WriteRune(s.ch)
			s.next()
		}
	}
	lit := b.String()
	return token.Token{Kind: token.NUMBER, Lexeme: lit, Line: line, Literal: lit}
}

func (s *Scanner) scanIdentifier(line token.Pos) token.Token {
	var b strings.Builder
	for isAlphaNumeric(s.ch) {
		b.WriteRune(s.ch)
		s.next()
	}
	lit := b.String()
	return token.Token{Kind: token.Lookup(lit), Lexeme: lit, Line: line}
}

func (s *Scanner) scanString(line token.Pos) token.Token {
	s.next() // consume opening quote
	var b strings.Builder
	for s.ch != '"' && s.ch != eof {
		if s.ch == '\n' {
			s.line++
		}
		b.WriteRune(s.ch)
		s.next()
	}
	if s.ch == eof {
		s.error("Unterminated string.")
		return token.Token{Kind: token.STRING, Lexeme: b.String(), Line: line, Literal: b.String()}
	}
	s.next() // consume closing quote
	lit := b.String()
	return token.Token{Kind: token.STRING, Lexeme: `"` + lit + `"`, Line: line, Literal: lit}
}

// ScanTokens drives Scan to completion and returns the full, ordered
// token sequence, terminated by a single EOF token.
func ScanTokens(src []byte, err errors.Handler) []token.Token {
	var s Scanner
	s.Init(src, err)
	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

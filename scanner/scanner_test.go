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

package scanner

import (
	"testing"

	"github.com/ThoSe1990/cpp-lox/token"
	"github.com/google/go-cmp/cmp"
)

const (
	special = iota
	literal
	operator
	keyword
)

func tokenclass(k token.Kind) int {
	switch {
	case k.IsLiteral():
		return literal
	case k.IsOperator():
		return operator
	case k.IsKeyword():
		return keyword
	}
	return special
}

func TestScanClasses(t *testing.T) {
	tests := []struct {
		lit   string
		kind  token.Kind
		class int
	}{
		{"foobar", token.IDENT, literal},
		{"123", token.NUMBER, literal},
		{"3.14", token.NUMBER, literal},
		{`"foo"`, token.STRING, literal},
		{"(", token.LPAREN, operator},
		{"!=", token.BANG_EQUAL, operator},
		{"and", token.AND, keyword},
		{"while", token.WHILE, keyword},
	}
	for _, tt := range tests {
		toks := ScanTokens([]byte(tt.lit), nil)
		if len(toks) != 2 || toks[1].Kind != token.EOF {
			t.Fatalf("ScanTokens(%q) = %v, want single token + EOF", tt.lit, toks)
		}
		got := toks[0]
		if got.Kind != tt.kind {
			t.Errorf("ScanTokens(%q) kind = %v, want %v", tt.lit, got.Kind, tt.kind)
		}
		if tokenclass(got.Kind) != tt.class {
			t.Errorf("ScanTokens(%q) class = %d, want %d", tt.lit, tokenclass(got.Kind), tt.class)
		}
	}
}

func TestScanTokensProgram(t *testing.T) {
	src := "var a = 1; # comment\nprint a;"
	got := ScanTokens([]byte(src), nil)

	want := []token.Token{
		{Kind: token.VAR, Lexeme: "var", Line: 1},
		{Kind: token.IDENT, Lexeme: "a", Line: 1},
		{Kind: token.EQUAL, Lexeme: "=", Line: 1},
		{Kind: token.NUMBER, Lexeme: "1", Line: 1, Literal: "1"},
		{Kind: token.SEMI, Lexeme: ";", Line: 1},
		{Kind: token.PRINT, Lexeme: "print", Line: 2},
		{Kind: token.IDENT, Lexeme: "a", Line: 2},
		{Kind: token.SEMI, Lexeme: ";", Line: 2},
		{Kind: token.EOF, Line: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScanTokens(%q) mismatch (-want +got):\n%s", src, diff)
	}
}

func TestScanString(t *testing.T) {
	toks := ScanTokens([]byte(`"hello world"`), nil)
	if len(toks) != 2 {
		t.Fatalf("len = %d, want 2", len(toks))
	}
	if toks[0].Literal != "hello world" {
		t.Errorf("Literal = %q, want %q", toks[0].Literal, "hello world")
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	var gotMsg string
	ScanTokens([]byte(`"oops`), func(_ token.Pos, _ string, msg string) {
		gotMsg = msg
	})
	if gotMsg != "Unterminated string." {
		t.Errorf("error msg = %q, want %q", gotMsg, "Unterminated string.")
	}
}

func TestScanUnexpectedCharacterReportsError(t *testing.T) {
	var gotMsg string
	toks := ScanTokens([]byte("@"), func(_ token.Pos, _ string, msg string) {
		gotMsg = msg
	})
	if gotMsg != "Unexpected character." {
		t.Errorf("error msg = %q, want %q", gotMsg, "Unexpected character.")
	}
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Errorf("toks = %v, want just EOF", toks)
	}
}

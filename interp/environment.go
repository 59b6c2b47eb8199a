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
	"github.com/ThoSe1990/cpp-lox/errors"
	"github.com/ThoSe1990/cpp-lox/token"
)

// Environment is one lexical frame of name-to-value bindings, linked
// to its enclosing frame. The chain is acyclic: each frame is created
// either for a block, pointing at whichever frame was current at that
// moment, or for a function call, pointing at the environment the
// function captured when it was declared.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a frame enclosed by parent. parent is nil for
// the global frame.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: parent}
}

// Define unconditionally binds name to value in e. Redefinition is
// allowed and simply overwrites the previous binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks name up in e, falling back to enclosing frames. It fails
// with an UndefinedVariable runtime error if name is bound nowhere in
// the chain.
func (e *Environment) Get(name token.Token) (Value, error) {
	for frame := e; frame != nil; frame = frame.enclosing {
		if v, ok := frame.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, errors.NewUndefinedVariable(name, name.Lexeme)
}

// Assign overwrites an existing binding for name, searching e then its
// enclosing frames. It never creates a new binding: if name is bound
// nowhere in the chain, it fails with an UndefinedVariable runtime
// error.
func (e *Environment) Assign(name token.Token, value Value) error {
	for frame := e; frame != nil; frame = frame.enclosing {
		if _, ok := frame.values[name.Lexeme]; ok {
			frame.values[name.Lexeme] = value
			return nil
		}
	}
	return errors.NewUndefinedVariable(name, name.Lexeme)
}

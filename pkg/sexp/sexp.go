// Copyright The Starling Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package sexp is the opaque S-expression tree that pkg/expr.Lisp renders
// formulas into, so that a printer walking the tree never needs to know
// Starling's own Expr node kinds, only this one shape. pkg/cmd/render.go does
// not use it: it prints a term's formula through Expr's String method.
package sexp

// SExp is a node in the printed tree: either a List of zero or more SExp
// children, or a terminal Symbol.
type SExp interface {
	// IsList checks whether this S-Expression is a list.
	IsList() bool
	// IsSymbol checks whether this S-Expression is a symbol.
	IsSymbol() bool
	// String generates a string representation.
	String() string
}

// ===================================================================
// List
// ===================================================================

// List is a parenthesised application, e.g. the printed form of an Add
// node is a List whose first element is the Symbol "+".
type List struct {
	Elements []SExp
}

var _ SExp = (*List)(nil)

// IsList always returns true for a List.
func (l *List) IsList() bool { return true }

// IsSymbol always returns false for a List.
func (l *List) IsSymbol() bool { return false }

// Len returns the number of elements in this list, operator included.
func (l *List) Len() int { return len(l.Elements) }

func (l *List) String() string {
	var s = "("

	for i := 0; i < len(l.Elements); i++ {
		if i != 0 {
			s += ","
		}

		s += l.Elements[i].String()
	}

	s += ")"

	return s
}

// MatchSymbols reports whether this list starts with at least n elements,
// of which the first len(symbols) are Symbols equal to the given strings,
// recognising operator heads without a type switch back into pkg/expr.
func (l *List) MatchSymbols(n int, symbols ...string) bool {
	if len(l.Elements) < n || len(symbols) > n {
		return false
	}

	for i := 0; i < len(symbols); i++ {
		switch ith := l.Elements[i].(type) {
		case *Symbol:
			if ith.Value != symbols[i] {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol is a leaf: an operator, variable name, or literal already
// formatted as text by the caller.
type Symbol struct {
	Value string
}

var _ SExp = (*Symbol)(nil)

// IsList always returns false for a Symbol.
func (s *Symbol) IsList() bool { return false }

// IsSymbol always returns true for a Symbol.
func (s *Symbol) IsSymbol() bool { return true }

func (s *Symbol) String() string { return s.Value }

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
package expr

// Expr is the tagged union of §3: an integer, Boolean or array expression
// over a variable representation V.  V ranges, in practice, over
// pkg/expr.Variable (raw syntax), pkg/markvar.MarkedVar (post-marking) and
// pkg/markvar.Sym[MarkedVar] (post-symbolic-wrapping) as a command moves
// through the pipeline described in §4.7-§4.9.
//
// Following the teacher's convention (pkg/hir/term.go, pkg/ir/term.go) each
// concrete node is its own small struct implementing this interface; generic
// traversals (Vars, Simplify, Lisp) are explicit type switches rather than a
// virtual-dispatch tree, which keeps the switch exhaustive and easy to audit
// when a new node kind is added.
type Expr[V any] interface {
	// ExprType returns this expression's static type.
	ExprType() Type
	// String renders a debug form; Lisp (lisp.go) renders the diagnostic
	// S-expression form.
	String() string
}

// Var is a reference to a variable of representation V.
type Var[V any] struct {
	Name V
	T    Type
}

// NewVar constructs a variable reference with an explicit type.
func NewVar[V any](name V, t Type) *Var[V] { return &Var[V]{Name: name, T: t} }

// ExprType implements Expr.
func (v *Var[V]) ExprType() Type { return v.T }

func (v *Var[V]) String() string { return sprintVar(v.Name) }

// IntLit is an integer literal.
type IntLit[V any] struct {
	Value int64
}

// NewIntLit constructs an integer literal.
func NewIntLit[V any](value int64) *IntLit[V] { return &IntLit[V]{Value: value} }

// ExprType implements Expr.
func (l *IntLit[V]) ExprType() Type { return Int() }

func (l *IntLit[V]) String() string { return sprintInt(l.Value) }

// BoolLit is a Boolean literal (T or F in the simplifier's notation).
type BoolLit[V any] struct {
	Value bool
}

// NewBoolLit constructs a Boolean literal.
func NewBoolLit[V any](value bool) *BoolLit[V] { return &BoolLit[V]{Value: value} }

// True is the Boolean literal true.
func True[V any]() *BoolLit[V] { return &BoolLit[V]{Value: true} }

// False is the Boolean literal false.
func False[V any]() *BoolLit[V] { return &BoolLit[V]{Value: false} }

// ExprType implements Expr.
func (l *BoolLit[V]) ExprType() Type { return Bool() }

func (l *BoolLit[V]) String() string {
	if l.Value {
		return "T"
	}

	return "F"
}

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

import "strings"

// Add is n-ary integer addition.
type Add[V any] struct{ Args []Expr[V] }

// NewAdd constructs an n-ary addition.  All args must be Int-typed; this is
// an internal invariant maintained by callers (desugar/semantics), not
// re-validated here (see §4.1 invariant: "types match in every binary
// operator").
func NewAdd[V any](args ...Expr[V]) *Add[V] { return &Add[V]{Args: args} }

// ExprType implements Expr.
func (a *Add[V]) ExprType() Type { return Int() }
func (a *Add[V]) String() string { return parenJoin("+", exprStrings(a.Args)) }

// Sub is n-ary integer subtraction, left-associative: Sub(a,b,c) = a-b-c.
type Sub[V any] struct{ Args []Expr[V] }

// NewSub constructs an n-ary subtraction.
func NewSub[V any](args ...Expr[V]) *Sub[V] { return &Sub[V]{Args: args} }

// ExprType implements Expr.
func (s *Sub[V]) ExprType() Type { return Int() }
func (s *Sub[V]) String() string { return parenJoin("-", exprStrings(s.Args)) }

// Mul is n-ary integer multiplication.
type Mul[V any] struct{ Args []Expr[V] }

// NewMul constructs an n-ary multiplication.
func NewMul[V any](args ...Expr[V]) *Mul[V] { return &Mul[V]{Args: args} }

// ExprType implements Expr.
func (m *Mul[V]) ExprType() Type { return Int() }
func (m *Mul[V]) String() string { return parenJoin("*", exprStrings(m.Args)) }

// Div is binary integer division.
type Div[V any] struct{ Lhs, Rhs Expr[V] }

// NewDiv constructs a division.
func NewDiv[V any](lhs, rhs Expr[V]) *Div[V] { return &Div[V]{Lhs: lhs, Rhs: rhs} }

// ExprType implements Expr.
func (d *Div[V]) ExprType() Type { return Int() }
func (d *Div[V]) String() string { return parenJoin("/", []string{d.Lhs.String(), d.Rhs.String()}) }

func exprStrings[V any](es []Expr[V]) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.String()
	}

	return out
}

func parenJoin(op string, operands []string) string {
	return "(" + op + " " + strings.Join(operands, " ") + ")"
}

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

// Eq is an equality test, valid between two expressions of matching
// (sub)type per §3's invariant ("Eq over matching subtypes only").
type Eq[V any] struct{ Lhs, Rhs Expr[V] }

// NewEq constructs an equality.
func NewEq[V any](lhs, rhs Expr[V]) *Eq[V] { return &Eq[V]{Lhs: lhs, Rhs: rhs} }

// ExprType implements Expr.
func (e *Eq[V]) ExprType() Type { return Bool() }
func (e *Eq[V]) String() string { return parenJoin("=", []string{e.Lhs.String(), e.Rhs.String()}) }

// Gt is strictly-greater-than, over Int operands.
type Gt[V any] struct{ Lhs, Rhs Expr[V] }

// NewGt constructs a greater-than comparison.
func NewGt[V any](lhs, rhs Expr[V]) *Gt[V] { return &Gt[V]{Lhs: lhs, Rhs: rhs} }

// ExprType implements Expr.
func (g *Gt[V]) ExprType() Type { return Bool() }
func (g *Gt[V]) String() string { return parenJoin(">", []string{g.Lhs.String(), g.Rhs.String()}) }

// Ge is greater-than-or-equal, over Int operands.
type Ge[V any] struct{ Lhs, Rhs Expr[V] }

// NewGe constructs a greater-than-or-equal comparison.
func NewGe[V any](lhs, rhs Expr[V]) *Ge[V] { return &Ge[V]{Lhs: lhs, Rhs: rhs} }

// ExprType implements Expr.
func (g *Ge[V]) ExprType() Type { return Bool() }
func (g *Ge[V]) String() string { return parenJoin(">=", []string{g.Lhs.String(), g.Rhs.String()}) }

// Lt is strictly-less-than, over Int operands.
type Lt[V any] struct{ Lhs, Rhs Expr[V] }

// NewLt constructs a less-than comparison.
func NewLt[V any](lhs, rhs Expr[V]) *Lt[V] { return &Lt[V]{Lhs: lhs, Rhs: rhs} }

// ExprType implements Expr.
func (l *Lt[V]) ExprType() Type { return Bool() }
func (l *Lt[V]) String() string { return parenJoin("<", []string{l.Lhs.String(), l.Rhs.String()}) }

// Le is less-than-or-equal, over Int operands.
type Le[V any] struct{ Lhs, Rhs Expr[V] }

// NewLe constructs a less-than-or-equal comparison.
func NewLe[V any](lhs, rhs Expr[V]) *Le[V] { return &Le[V]{Lhs: lhs, Rhs: rhs} }

// ExprType implements Expr.
func (l *Le[V]) ExprType() Type { return Bool() }
func (l *Le[V]) String() string { return parenJoin("<=", []string{l.Lhs.String(), l.Rhs.String()}) }

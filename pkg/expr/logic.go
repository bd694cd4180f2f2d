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

// And is n-ary Boolean conjunction.
type And[V any] struct{ Args []Expr[V] }

// NewAnd constructs an n-ary conjunction.
func NewAnd[V any](args ...Expr[V]) *And[V] { return &And[V]{Args: args} }

// ExprType implements Expr.
func (a *And[V]) ExprType() Type { return Bool() }
func (a *And[V]) String() string { return parenJoin("and", exprStrings(a.Args)) }

// Or is n-ary Boolean disjunction.
type Or[V any] struct{ Args []Expr[V] }

// NewOr constructs an n-ary disjunction.
func NewOr[V any](args ...Expr[V]) *Or[V] { return &Or[V]{Args: args} }

// ExprType implements Expr.
func (o *Or[V]) ExprType() Type { return Bool() }
func (o *Or[V]) String() string { return parenJoin("or", exprStrings(o.Args)) }

// Not is Boolean negation.
type Not[V any] struct{ Arg Expr[V] }

// NewNot constructs a negation.
func NewNot[V any](arg Expr[V]) *Not[V] { return &Not[V]{Arg: arg} }

// ExprType implements Expr.
func (n *Not[V]) ExprType() Type { return Bool() }
func (n *Not[V]) String() string { return parenJoin("not", []string{n.Arg.String()}) }

// Implies is Boolean implication, Lhs ⇒ Rhs.
type Implies[V any] struct{ Lhs, Rhs Expr[V] }

// NewImplies constructs an implication.
func NewImplies[V any](lhs, rhs Expr[V]) *Implies[V] { return &Implies[V]{Lhs: lhs, Rhs: rhs} }

// ExprType implements Expr.
func (i *Implies[V]) ExprType() Type { return Bool() }
func (i *Implies[V]) String() string {
	return parenJoin("=>", []string{i.Lhs.String(), i.Rhs.String()})
}

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

// Package microcode implements the intermediate language a primitive's
// semantic schema body is written in (§3, §4.5): assignments, assumptions
// and branches over a generic variable representation V.
package microcode

import "github.com/starling-verify/starling/pkg/expr"

// Microcode is one instruction of a schema body.
type Microcode[V any] interface {
	isMicrocode()
}

// Assign writes RValue into LValue. RValue nil means havoc: the location's
// new value is unconstrained.
type Assign[V any] struct {
	LValue expr.Expr[V]
	RValue expr.Expr[V]
}

func (Assign[V]) isMicrocode() {}

// NewAssign constructs an assignment. Pass a nil rvalue for havoc.
func NewAssign[V any](lvalue, rvalue expr.Expr[V]) Assign[V] {
	return Assign[V]{LValue: lvalue, RValue: rvalue}
}

// Assume constrains the remaining computation to states satisfying Cond.
type Assume[V any] struct {
	Cond expr.Expr[V]
}

func (Assume[V]) isMicrocode() {}

// NewAssume constructs an assumption.
func NewAssume[V any](cond expr.Expr[V]) Assume[V] { return Assume[V]{Cond: cond} }

// Branch runs Then when Cond holds and Else otherwise.
type Branch[V any] struct {
	Cond       expr.Expr[V]
	Then, Else []Microcode[V]
}

func (Branch[V]) isMicrocode() {}

// NewBranch constructs a branch.
func NewBranch[V any](cond expr.Expr[V], then, els []Microcode[V]) Branch[V] {
	return Branch[V]{Cond: cond, Then: then, Else: els}
}

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
package script

import "github.com/starling-verify/starling/pkg/expr"

// PrimCommand is an invocation of a primitive operation with concrete
// argument and result expressions (§3).
type PrimCommand struct {
	Name    string
	Args    []expr.Expr[expr.Variable]
	Results []expr.Expr[expr.Variable]
}

// NewPrimCommand constructs a primitive invocation with no results.
func NewPrimCommand(name string, args ...expr.Expr[expr.Variable]) PrimCommand {
	return PrimCommand{Name: name, Args: args}
}

// WithResults attaches result expressions to a primitive invocation.
func (p PrimCommand) WithResults(results ...expr.Expr[expr.Variable]) PrimCommand {
	p.Results = results
	return p
}

// Atomic is a single atomic-block statement, one level below a primitive
// set (§4.3).
type Atomic interface {
	isAtomic()
}

// AAssert is an `assert(e)` statement.
type AAssert struct {
	Expr expr.Expr[expr.Variable]
}

func (AAssert) isAtomic() {}

// AError is an unconditional assertion failure, `error`.
type AError struct{}

func (AError) isAtomic() {}

// APrim passes a primitive invocation through unchanged.
type APrim struct {
	Prim PrimCommand
}

func (APrim) isAtomic() {}

// ACond is a conditional atomic statement; False defaults to empty when
// omitted upstream (§4.3).
type ACond struct {
	Cond  expr.Expr[expr.Variable]
	True  []Atomic
	False []Atomic
}

func (ACond) isAtomic() {}

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
package desugar

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/script"
)

// DesugaredAtomic is the result of lowering a surface atomic statement
// (§4.3): a primitive invocation, or a conditional still carrying two
// desugared branches.
type DesugaredAtomic interface {
	isDesugaredAtomic()
}

// DAPrim is a primitive invocation, possibly the synthesized ok-flag
// assignment an assert/error lowers to.
type DAPrim struct {
	Prim script.PrimCommand
}

func (DAPrim) isDesugaredAtomic() {}

// DACond is a conditional atomic statement.
type DACond struct {
	Cond        expr.Expr[expr.Variable]
	True, False []DesugaredAtomic
}

func (DACond) isDesugaredAtomic() {}

// AssignPrimName is the synthetic primitive name a bare assignment (as
// produced by desugaring assert/error) is recorded under. pkg/semantics
// never looks it up as a schema: pkg/term's routine flattener recognizes
// it directly and lowers it to a microcode.Assign instead of instantiating
// a primitive schema (§4.7).
const AssignPrimName = "__assign"

// Atomic lowers one surface atomic statement (§4.3). AError lowers via
// AAssert(False); AAssert allocates the context's ok-flag on first use.
func Atomic(ctx *Context, a script.Atomic) DesugaredAtomic {
	switch n := a.(type) {
	case script.AAssert:
		return assignOk(ctx, n.Expr)
	case script.AError:
		return assignOk(ctx, expr.False[expr.Variable]())
	case script.APrim:
		return DAPrim{Prim: n.Prim}
	case script.ACond:
		return DACond{Cond: n.Cond, True: atomicAll(ctx, n.True), False: atomicAll(ctx, n.False)}
	default:
		panic("desugar: unknown atomic node")
	}
}

func assignOk(ctx *Context, rhs expr.Expr[expr.Variable]) DAPrim {
	okVar := expr.NewVariable(ctx.ensureOkayBool(), expr.Bool())

	return DAPrim{Prim: script.PrimCommand{
		Name:    AssignPrimName,
		Args:    []expr.Expr[expr.Variable]{rhs},
		Results: []expr.Expr[expr.Variable]{expr.NewVar(okVar, expr.Bool())},
	}}
}

func atomicAll(ctx *Context, as []script.Atomic) []DesugaredAtomic {
	out := make([]DesugaredAtomic, len(as))
	for i, a := range as {
		out[i] = Atomic(ctx, a)
	}

	return out
}

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
	"github.com/starling-verify/starling/pkg/view"
)

// View lowers a syntactic view under guard suffix into a guarded view
// multiset, threading ctx for fresh-name generation (§4.2).
func View(ctx *Context, v script.View, suffix expr.Expr[expr.Variable]) view.GView[expr.Variable] {
	switch n := v.(type) {
	case script.ViewUnit:
		return view.Empty[expr.Variable]()
	case script.ViewFalsehood:
		return View(ctx, script.ViewLocal{Expr: expr.False[expr.Variable]()}, suffix)
	case script.ViewLocal:
		liftName := ctx.ensureLocalLift()
		return View(ctx, script.ViewFunc{Func: view.NewFunc(liftName, n.Expr)}, suffix)
	case script.ViewFunc:
		return view.NewGView(view.GFunc[expr.Variable]{Cond: suffix, Item: n.Func})
	case script.ViewJoin:
		return View(ctx, n.A, suffix).Join(View(ctx, n.B, suffix))
	case script.ViewIf:
		var thenSuffix, elseSuffix expr.Expr[expr.Variable]

		notCond := expr.NewNot[expr.Variable](n.Cond)

		if isTrueLiteral(suffix) {
			thenSuffix, elseSuffix = n.Cond, notCond
		} else {
			thenSuffix = expr.NewAnd[expr.Variable](suffix, n.Cond)
			elseSuffix = expr.NewAnd[expr.Variable](suffix, notCond)
		}

		elseBranch := n.Else
		if elseBranch == nil {
			elseBranch = script.ViewUnit{}
		}

		return View(ctx, n.Then, thenSuffix).Join(View(ctx, elseBranch, elseSuffix))
	default:
		panic("desugar: unknown view node")
	}
}

func isTrueLiteral(e expr.Expr[expr.Variable]) bool {
	lit, ok := e.(*expr.BoolLit[expr.Variable])
	return ok && lit.Value
}

// MarkedView is the result of desugaring a view annotation (§4.2): either
// Mandatory (an Unmarked or Questioned annotation) or Advisory (an Unknown
// annotation, backed by a freshly generated prototype).
type MarkedView struct {
	Mandatory bool
	View      view.GView[expr.Variable]
}

// Marked lowers a view annotation, handling the Unknown-marking case by
// generating a fresh `__unknown_N` prototype (§4.2).
func Marked(ctx *Context, mv script.MarkedView) MarkedView {
	switch mv.Marking {
	case script.Unmarked, script.Questioned:
		return MarkedView{Mandatory: true, View: View(ctx, mv.View, expr.True[expr.Variable]())}
	case script.UnknownMark:
		proto := ctx.freshUnknownProto()
		args := make([]expr.Expr[expr.Variable], len(ctx.ThreadVars))

		for i, v := range ctx.ThreadVars {
			args[i] = expr.NewVar(v, v.Type)
		}

		gf := view.GFunc[expr.Variable]{Cond: expr.True[expr.Variable](), Item: view.NewFunc(proto.Name, args...)}

		return MarkedView{Mandatory: false, View: view.NewGView(gf)}
	default:
		panic("desugar: unknown marking")
	}
}

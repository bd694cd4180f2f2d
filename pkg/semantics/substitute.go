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
package semantics

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/microcode"
	"github.com/starling-verify/starling/pkg/starerr"
)

// substExpr replaces every schema-parameter variable in e with its
// caller-side expression from sub. Unlike expr.Map, this can fail: a
// schema variable absent from sub is a FreeVarInSub error (§4.6 step 4),
// so this is a bespoke traversal rather than a reuse of expr.Map.
func substExpr(e expr.Expr[expr.Variable], sub map[string]expr.Expr[expr.Variable]) (expr.Expr[expr.Variable], error) {
	switch n := e.(type) {
	case *expr.Var[expr.Variable]:
		replacement, ok := sub[n.Name.Name]
		if !ok {
			return nil, starerr.FreeVarInSub(n.Name.Name)
		}

		return replacement, nil
	case *expr.IntLit[expr.Variable], *expr.BoolLit[expr.Variable]:
		return e, nil
	case *expr.Add[expr.Variable]:
		args, err := substAll(n.Args, sub)
		return exprOrNil(expr.NewAdd[expr.Variable](args...), err)
	case *expr.Sub[expr.Variable]:
		args, err := substAll(n.Args, sub)
		return exprOrNil(expr.NewSub[expr.Variable](args...), err)
	case *expr.Mul[expr.Variable]:
		args, err := substAll(n.Args, sub)
		return exprOrNil(expr.NewMul[expr.Variable](args...), err)
	case *expr.Div[expr.Variable]:
		lhs, rhs, err := substPair(n.Lhs, n.Rhs, sub)
		return exprOrNil(expr.NewDiv[expr.Variable](lhs, rhs), err)
	case *expr.And[expr.Variable]:
		args, err := substAll(n.Args, sub)
		return exprOrNil(expr.NewAnd[expr.Variable](args...), err)
	case *expr.Or[expr.Variable]:
		args, err := substAll(n.Args, sub)
		return exprOrNil(expr.NewOr[expr.Variable](args...), err)
	case *expr.Not[expr.Variable]:
		arg, err := substExpr(n.Arg, sub)
		return exprOrNil(expr.NewNot[expr.Variable](arg), err)
	case *expr.Implies[expr.Variable]:
		lhs, rhs, err := substPair(n.Lhs, n.Rhs, sub)
		return exprOrNil(expr.NewImplies[expr.Variable](lhs, rhs), err)
	case *expr.Eq[expr.Variable]:
		lhs, rhs, err := substPair(n.Lhs, n.Rhs, sub)
		return exprOrNil(expr.NewEq[expr.Variable](lhs, rhs), err)
	case *expr.Gt[expr.Variable]:
		lhs, rhs, err := substPair(n.Lhs, n.Rhs, sub)
		return exprOrNil(expr.NewGt[expr.Variable](lhs, rhs), err)
	case *expr.Ge[expr.Variable]:
		lhs, rhs, err := substPair(n.Lhs, n.Rhs, sub)
		return exprOrNil(expr.NewGe[expr.Variable](lhs, rhs), err)
	case *expr.Lt[expr.Variable]:
		lhs, rhs, err := substPair(n.Lhs, n.Rhs, sub)
		return exprOrNil(expr.NewLt[expr.Variable](lhs, rhs), err)
	case *expr.Le[expr.Variable]:
		lhs, rhs, err := substPair(n.Lhs, n.Rhs, sub)
		return exprOrNil(expr.NewLe[expr.Variable](lhs, rhs), err)
	case *expr.Idx[expr.Variable]:
		arr, index, err := substPair(n.Arr, n.Index, sub)
		return exprOrNil(expr.NewIdx[expr.Variable](n.ElemType, n.Length, arr, index), err)
	case *expr.Upd[expr.Variable]:
		arr, err := substExpr(n.Arr, sub)
		if err != nil {
			return nil, err
		}

		index, err := substExpr(n.Index, sub)
		if err != nil {
			return nil, err
		}

		val, err := substExpr(n.Val, sub)
		if err != nil {
			return nil, err
		}

		return expr.NewUpd[expr.Variable](n.ElemType, n.Length, arr, index, val), nil
	default:
		panic("semantics: unknown expression node")
	}
}

func exprOrNil(e expr.Expr[expr.Variable], err error) (expr.Expr[expr.Variable], error) {
	if err != nil {
		return nil, err
	}

	return e, nil
}

func substAll(es []expr.Expr[expr.Variable], sub map[string]expr.Expr[expr.Variable]) ([]expr.Expr[expr.Variable], error) {
	out := make([]expr.Expr[expr.Variable], len(es))

	for i, e := range es {
		r, err := substExpr(e, sub)
		if err != nil {
			return nil, err
		}

		out[i] = r
	}

	return out, nil
}

func substPair(
	a, b expr.Expr[expr.Variable],
	sub map[string]expr.Expr[expr.Variable],
) (expr.Expr[expr.Variable], expr.Expr[expr.Variable], error) {
	ra, err := substExpr(a, sub)
	if err != nil {
		return nil, nil, err
	}

	rb, err := substExpr(b, sub)
	if err != nil {
		return nil, nil, err
	}

	return ra, rb, nil
}

// substMicrocode rewrites a schema-body microcode listing under sub.
func substMicrocode(
	listing []microcode.Microcode[expr.Variable],
	sub map[string]expr.Expr[expr.Variable],
) ([]microcode.Microcode[expr.Variable], error) {
	out := make([]microcode.Microcode[expr.Variable], len(listing))

	for i, m := range listing {
		r, err := substOne(m, sub)
		if err != nil {
			return nil, err
		}

		out[i] = r
	}

	return out, nil
}

func substOne(
	m microcode.Microcode[expr.Variable],
	sub map[string]expr.Expr[expr.Variable],
) (microcode.Microcode[expr.Variable], error) {
	switch n := m.(type) {
	case microcode.Assign[expr.Variable]:
		lv, err := substExpr(n.LValue, sub)
		if err != nil {
			return nil, err
		}

		var rv expr.Expr[expr.Variable]

		if n.RValue != nil {
			rv, err = substExpr(n.RValue, sub)
			if err != nil {
				return nil, err
			}
		}

		return microcode.NewAssign[expr.Variable](lv, rv), nil
	case microcode.Assume[expr.Variable]:
		cond, err := substExpr(n.Cond, sub)
		if err != nil {
			return nil, err
		}

		return microcode.NewAssume[expr.Variable](cond), nil
	case microcode.Branch[expr.Variable]:
		cond, err := substExpr(n.Cond, sub)
		if err != nil {
			return nil, err
		}

		then, err := substMicrocode(n.Then, sub)
		if err != nil {
			return nil, err
		}

		els, err := substMicrocode(n.Else, sub)
		if err != nil {
			return nil, err
		}

		return microcode.NewBranch(cond, then, els), nil
	default:
		panic("semantics: unknown microcode node")
	}
}

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
package view

import "github.com/starling-verify/starling/pkg/expr"

// Sign tracks which side of a Boolean connective a subterm sits on (§4.8):
// positive position should be rewritten with an over-approximation, negative
// with an under-approximation.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// Flip swaps the sign, used when descending under Not or an implication's
// antecedent.
func (s Sign) Flip() Sign {
	if s == Positive {
		return Negative
	}

	return Positive
}

func (s Sign) String() string {
	if s == Positive {
		return "+"
	}

	return "-"
}

// SubCtx is the context threaded through a position-aware substitution.
type SubCtx struct {
	Sign Sign
}

// TopSubCtx is the starting context for a substitution applied to a whole
// formula (no enclosing negation yet).
func TopSubCtx() SubCtx { return SubCtx{Sign: Positive} }

// SubstituteExpr rewrites every Var leaf of e via leaf, threading ctx so that
// leaf can choose an over- or under-approximation depending on polarity
// (§4.8). Not flips sign on its argument; Implies flips sign on its
// antecedent only; every other connective, comparison and arithmetic
// operator holds the parent's sign on all of its operands.
func SubstituteExpr[V any](e expr.Expr[V], ctx SubCtx, leaf func(V, expr.Type, SubCtx) expr.Expr[V]) expr.Expr[V] {
	switch n := e.(type) {
	case *expr.Var[V]:
		return leaf(n.Name, n.T, ctx)
	case *expr.IntLit[V], *expr.BoolLit[V]:
		return e
	case *expr.Add[V]:
		return &expr.Add[V]{Args: substAll(n.Args, ctx, leaf)}
	case *expr.Sub[V]:
		return &expr.Sub[V]{Args: substAll(n.Args, ctx, leaf)}
	case *expr.Mul[V]:
		return &expr.Mul[V]{Args: substAll(n.Args, ctx, leaf)}
	case *expr.Div[V]:
		return &expr.Div[V]{Lhs: SubstituteExpr(n.Lhs, ctx, leaf), Rhs: SubstituteExpr(n.Rhs, ctx, leaf)}
	case *expr.And[V]:
		return &expr.And[V]{Args: substAll(n.Args, ctx, leaf)}
	case *expr.Or[V]:
		return &expr.Or[V]{Args: substAll(n.Args, ctx, leaf)}
	case *expr.Not[V]:
		return &expr.Not[V]{Arg: SubstituteExpr(n.Arg, SubCtx{ctx.Sign.Flip()}, leaf)}
	case *expr.Implies[V]:
		return &expr.Implies[V]{
			Lhs: SubstituteExpr(n.Lhs, SubCtx{ctx.Sign.Flip()}, leaf),
			Rhs: SubstituteExpr(n.Rhs, ctx, leaf),
		}
	case *expr.Eq[V]:
		return &expr.Eq[V]{Lhs: SubstituteExpr(n.Lhs, ctx, leaf), Rhs: SubstituteExpr(n.Rhs, ctx, leaf)}
	case *expr.Gt[V]:
		return &expr.Gt[V]{Lhs: SubstituteExpr(n.Lhs, ctx, leaf), Rhs: SubstituteExpr(n.Rhs, ctx, leaf)}
	case *expr.Ge[V]:
		return &expr.Ge[V]{Lhs: SubstituteExpr(n.Lhs, ctx, leaf), Rhs: SubstituteExpr(n.Rhs, ctx, leaf)}
	case *expr.Lt[V]:
		return &expr.Lt[V]{Lhs: SubstituteExpr(n.Lhs, ctx, leaf), Rhs: SubstituteExpr(n.Rhs, ctx, leaf)}
	case *expr.Le[V]:
		return &expr.Le[V]{Lhs: SubstituteExpr(n.Lhs, ctx, leaf), Rhs: SubstituteExpr(n.Rhs, ctx, leaf)}
	case *expr.Idx[V]:
		return &expr.Idx[V]{
			ElemType: n.ElemType,
			Length:   n.Length,
			Arr:      SubstituteExpr(n.Arr, ctx, leaf),
			Index:    SubstituteExpr(n.Index, ctx, leaf),
		}
	case *expr.Upd[V]:
		return &expr.Upd[V]{
			ElemType: n.ElemType,
			Length:   n.Length,
			Arr:      SubstituteExpr(n.Arr, ctx, leaf),
			Index:    SubstituteExpr(n.Index, ctx, leaf),
			Val:      SubstituteExpr(n.Val, ctx, leaf),
		}
	default:
		panic("view: unknown expression node in SubstituteExpr")
	}
}

func substAll[V any](es []expr.Expr[V], ctx SubCtx, leaf func(V, expr.Type, SubCtx) expr.Expr[V]) []expr.Expr[V] {
	out := make([]expr.Expr[V], len(es))
	for i, e := range es {
		out[i] = SubstituteExpr(e, ctx, leaf)
	}

	return out
}

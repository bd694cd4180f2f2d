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

import (
	"github.com/starling-verify/starling/pkg/sexp"
)

// Lisp renders e as an S-expression, the "opaque" pretty-printing
// capability §1 says the core may call when producing diagnostics.
func Lisp[V any](e Expr[V]) sexp.SExp {
	switch n := e.(type) {
	case *Var[V]:
		return sym(sprintVar(n.Name))
	case *IntLit[V]:
		return sym(sprintInt(n.Value))
	case *BoolLit[V]:
		return sym(n.String())
	case *Add[V]:
		return list("+", n.Args)
	case *Sub[V]:
		return list("-", n.Args)
	case *Mul[V]:
		return list("*", n.Args)
	case *Div[V]:
		return list("/", []Expr[V]{n.Lhs, n.Rhs})
	case *And[V]:
		return list("and", n.Args)
	case *Or[V]:
		return list("or", n.Args)
	case *Not[V]:
		return list("not", []Expr[V]{n.Arg})
	case *Implies[V]:
		return list("=>", []Expr[V]{n.Lhs, n.Rhs})
	case *Eq[V]:
		return list("=", []Expr[V]{n.Lhs, n.Rhs})
	case *Gt[V]:
		return list(">", []Expr[V]{n.Lhs, n.Rhs})
	case *Ge[V]:
		return list(">=", []Expr[V]{n.Lhs, n.Rhs})
	case *Lt[V]:
		return list("<", []Expr[V]{n.Lhs, n.Rhs})
	case *Le[V]:
		return list("<=", []Expr[V]{n.Lhs, n.Rhs})
	case *Idx[V]:
		return list("idx", []Expr[V]{n.Arr, n.Index})
	case *Upd[V]:
		return list("upd", []Expr[V]{n.Arr, n.Index, n.Val})
	default:
		panic(unknownNode[V](e))
	}
}

func sym(s string) sexp.SExp { return &sexp.Symbol{Value: s} }

func list[V any](op string, args []Expr[V]) sexp.SExp {
	elems := make([]sexp.SExp, 0, len(args)+1)
	elems = append(elems, sym(op))

	for _, a := range args {
		elems = append(elems, Lisp[V](a))
	}

	return &sexp.List{Elements: elems}
}

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

// Map rebuilds e, replacing every variable occurrence v with f(v, t) where t
// is that occurrence's declared type.  This is the workhorse underneath
// marking (§4.7 step 3b: rewrite every rvalue variable to its latest
// marker) and semantic instantiation (§4.6 step 4: substitute schema
// parameter names for caller expressions).
func Map[V, W any](e Expr[V], f func(V, Type) Expr[W]) Expr[W] {
	switch n := e.(type) {
	case *Var[V]:
		return f(n.Name, n.T)
	case *IntLit[V]:
		return &IntLit[W]{Value: n.Value}
	case *BoolLit[V]:
		return &BoolLit[W]{Value: n.Value}
	case *Add[V]:
		return &Add[W]{Args: mapAll[V, W](n.Args, f)}
	case *Sub[V]:
		return &Sub[W]{Args: mapAll[V, W](n.Args, f)}
	case *Mul[V]:
		return &Mul[W]{Args: mapAll[V, W](n.Args, f)}
	case *Div[V]:
		return &Div[W]{Lhs: Map[V, W](n.Lhs, f), Rhs: Map[V, W](n.Rhs, f)}
	case *And[V]:
		return &And[W]{Args: mapAll[V, W](n.Args, f)}
	case *Or[V]:
		return &Or[W]{Args: mapAll[V, W](n.Args, f)}
	case *Not[V]:
		return &Not[W]{Arg: Map[V, W](n.Arg, f)}
	case *Implies[V]:
		return &Implies[W]{Lhs: Map[V, W](n.Lhs, f), Rhs: Map[V, W](n.Rhs, f)}
	case *Eq[V]:
		return &Eq[W]{Lhs: Map[V, W](n.Lhs, f), Rhs: Map[V, W](n.Rhs, f)}
	case *Gt[V]:
		return &Gt[W]{Lhs: Map[V, W](n.Lhs, f), Rhs: Map[V, W](n.Rhs, f)}
	case *Ge[V]:
		return &Ge[W]{Lhs: Map[V, W](n.Lhs, f), Rhs: Map[V, W](n.Rhs, f)}
	case *Lt[V]:
		return &Lt[W]{Lhs: Map[V, W](n.Lhs, f), Rhs: Map[V, W](n.Rhs, f)}
	case *Le[V]:
		return &Le[W]{Lhs: Map[V, W](n.Lhs, f), Rhs: Map[V, W](n.Rhs, f)}
	case *Idx[V]:
		return &Idx[W]{
			ElemType: n.ElemType,
			Length:   n.Length,
			Arr:      Map[V, W](n.Arr, f),
			Index:    Map[V, W](n.Index, f),
		}
	case *Upd[V]:
		return &Upd[W]{
			ElemType: n.ElemType,
			Length:   n.Length,
			Arr:      Map[V, W](n.Arr, f),
			Index:    Map[V, W](n.Index, f),
			Val:      Map[V, W](n.Val, f),
		}
	default:
		panic(unknownNode[V](e))
	}
}

func mapAll[V, W any](es []Expr[V], f func(V, Type) Expr[W]) []Expr[W] {
	out := make([]Expr[W], len(es))
	for i, e := range es {
		out[i] = Map[V, W](e, f)
	}

	return out
}

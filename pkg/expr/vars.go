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

// Vars collects every variable occurrence in e, in left-to-right order,
// with duplicates (callers wanting a set should dedupe explicitly; §5's
// ordering guarantee depends on traversal order being preserved here).
func Vars[V any](e Expr[V]) []V {
	var out []V
	walkVars(e, &out)

	return out
}

func walkVars[V any](e Expr[V], out *[]V) {
	switch n := e.(type) {
	case *Var[V]:
		*out = append(*out, n.Name)
	case *IntLit[V], *BoolLit[V]:
		// no variables
	case *Add[V]:
		walkVarsAll(n.Args, out)
	case *Sub[V]:
		walkVarsAll(n.Args, out)
	case *Mul[V]:
		walkVarsAll(n.Args, out)
	case *Div[V]:
		walkVars(n.Lhs, out)
		walkVars(n.Rhs, out)
	case *And[V]:
		walkVarsAll(n.Args, out)
	case *Or[V]:
		walkVarsAll(n.Args, out)
	case *Not[V]:
		walkVars(n.Arg, out)
	case *Implies[V]:
		walkVars(n.Lhs, out)
		walkVars(n.Rhs, out)
	case *Eq[V]:
		walkVars(n.Lhs, out)
		walkVars(n.Rhs, out)
	case *Gt[V]:
		walkVars(n.Lhs, out)
		walkVars(n.Rhs, out)
	case *Ge[V]:
		walkVars(n.Lhs, out)
		walkVars(n.Rhs, out)
	case *Lt[V]:
		walkVars(n.Lhs, out)
		walkVars(n.Rhs, out)
	case *Le[V]:
		walkVars(n.Lhs, out)
		walkVars(n.Rhs, out)
	case *Idx[V]:
		walkVars(n.Arr, out)
		walkVars(n.Index, out)
	case *Upd[V]:
		walkVars(n.Arr, out)
		walkVars(n.Index, out)
		walkVars(n.Val, out)
	default:
		panic(unknownNode[V](e))
	}
}

func walkVarsAll[V any](es []Expr[V], out *[]V) {
	for _, e := range es {
		walkVars(e, out)
	}
}

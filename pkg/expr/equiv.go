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

// StructEqual tests two expressions for plain structural (syntactic)
// equality.  This is the base case of the trivial-equivalence relation ≡
// used by the simplifier's duplicate-removal rule (§4.1 rule 6).
func StructEqual[V comparable](a, b Expr[V]) bool {
	switch x := a.(type) {
	case *Var[V]:
		y, ok := b.(*Var[V])
		return ok && x.Name == y.Name && x.T.Equals(y.T)
	case *IntLit[V]:
		y, ok := b.(*IntLit[V])
		return ok && x.Value == y.Value
	case *BoolLit[V]:
		y, ok := b.(*BoolLit[V])
		return ok && x.Value == y.Value
	case *Add[V]:
		y, ok := b.(*Add[V])
		return ok && structEqualAll(x.Args, y.Args)
	case *Sub[V]:
		y, ok := b.(*Sub[V])
		return ok && structEqualAll(x.Args, y.Args)
	case *Mul[V]:
		y, ok := b.(*Mul[V])
		return ok && structEqualAll(x.Args, y.Args)
	case *Div[V]:
		y, ok := b.(*Div[V])
		return ok && StructEqual[V](x.Lhs, y.Lhs) && StructEqual[V](x.Rhs, y.Rhs)
	case *And[V]:
		y, ok := b.(*And[V])
		return ok && structEqualAll(x.Args, y.Args)
	case *Or[V]:
		y, ok := b.(*Or[V])
		return ok && structEqualAll(x.Args, y.Args)
	case *Not[V]:
		y, ok := b.(*Not[V])
		return ok && StructEqual[V](x.Arg, y.Arg)
	case *Implies[V]:
		y, ok := b.(*Implies[V])
		return ok && StructEqual[V](x.Lhs, y.Lhs) && StructEqual[V](x.Rhs, y.Rhs)
	case *Eq[V]:
		y, ok := b.(*Eq[V])
		return ok && StructEqual[V](x.Lhs, y.Lhs) && StructEqual[V](x.Rhs, y.Rhs)
	case *Gt[V]:
		y, ok := b.(*Gt[V])
		return ok && StructEqual[V](x.Lhs, y.Lhs) && StructEqual[V](x.Rhs, y.Rhs)
	case *Ge[V]:
		y, ok := b.(*Ge[V])
		return ok && StructEqual[V](x.Lhs, y.Lhs) && StructEqual[V](x.Rhs, y.Rhs)
	case *Lt[V]:
		y, ok := b.(*Lt[V])
		return ok && StructEqual[V](x.Lhs, y.Lhs) && StructEqual[V](x.Rhs, y.Rhs)
	case *Le[V]:
		y, ok := b.(*Le[V])
		return ok && StructEqual[V](x.Lhs, y.Lhs) && StructEqual[V](x.Rhs, y.Rhs)
	case *Idx[V]:
		y, ok := b.(*Idx[V])
		return ok && StructEqual[V](x.Arr, y.Arr) && StructEqual[V](x.Index, y.Index)
	case *Upd[V]:
		y, ok := b.(*Upd[V])
		return ok && StructEqual[V](x.Arr, y.Arr) && StructEqual[V](x.Index, y.Index) && StructEqual[V](x.Val, y.Val)
	default:
		panic(unknownNode[V](a))
	}
}

func structEqualAll[V comparable](as, bs []Expr[V]) bool {
	if len(as) != len(bs) {
		return false
	}

	for i := range as {
		if !StructEqual[V](as[i], bs[i]) {
			return false
		}
	}

	return true
}

// Equiv is the trivial-equivalence relation ≡ of §4.1 rule 6: structural
// equality, plus symmetry of equality (a=b ≡ b=a) and congruence under
// negation (¬a ≡ ¬b iff a ≡ b).  It is intentionally shallow: it is used
// only to collapse syntactically-redundant duplicates inside a single
// And/Or, not as a general equivalence prover.
func Equiv[V comparable](a, b Expr[V]) bool {
	if StructEqual[V](a, b) {
		return true
	}

	if ae, ok := a.(*Eq[V]); ok {
		if be, ok := b.(*Eq[V]); ok {
			return StructEqual[V](ae.Lhs, be.Rhs) && StructEqual[V](ae.Rhs, be.Lhs)
		}
	}

	if an, ok := a.(*Not[V]); ok {
		if bn, ok := b.(*Not[V]); ok {
			return Equiv[V](an.Arg, bn.Arg)
		}
	}

	return false
}

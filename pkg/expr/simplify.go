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

// Simplify rewrites e to an equivalent but (no larger, usually smaller)
// expression, per the rules of §4.1.  It is sound but not complete: it
// never fails (there is no error return), and idempotent
// (Simplify[V](Simplify[V](e)) == Simplify[V](e)) because every rule's right-hand
// side is itself already in simplified form.
//
// Only the Boolean connectives (And/Or/Not/Implies/Eq/Gt/Ge/Lt/Le) carry
// dedicated rewrite rules; Int and Array nodes are simplified structurally
// (their children are simplified, the node itself is rebuilt unchanged) so
// that Boolean subexpressions nested inside e.g. an array index are still
// reached.
func Simplify[V comparable](e Expr[V]) Expr[V] {
	switch n := e.(type) {
	case *Var[V], *IntLit[V], *BoolLit[V]:
		return e
	case *Add[V]:
		return &Add[V]{Args: simplifyAll[V](n.Args)}
	case *Sub[V]:
		return &Sub[V]{Args: simplifyAll[V](n.Args)}
	case *Mul[V]:
		return &Mul[V]{Args: simplifyAll[V](n.Args)}
	case *Div[V]:
		return &Div[V]{Lhs: Simplify[V](n.Lhs), Rhs: Simplify[V](n.Rhs)}
	case *Idx[V]:
		return &Idx[V]{ElemType: n.ElemType, Length: n.Length, Arr: Simplify[V](n.Arr), Index: Simplify[V](n.Index)}
	case *Upd[V]:
		return &Upd[V]{
			ElemType: n.ElemType,
			Length:   n.Length,
			Arr:      Simplify[V](n.Arr),
			Index:    Simplify[V](n.Index),
			Val:      Simplify[V](n.Val),
		}
	case *Not[V]:
		return simplifyNot[V](Simplify[V](n.Arg))
	case *Implies[V]:
		return simplifyImplies[V](Simplify[V](n.Lhs), Simplify[V](n.Rhs))
	case *And[V]:
		return simplifyAnd[V](simplifyAll[V](n.Args))
	case *Or[V]:
		return simplifyOr[V](simplifyAll[V](n.Args))
	case *Eq[V]:
		return simplifyEq[V](Simplify[V](n.Lhs), Simplify[V](n.Rhs))
	case *Gt[V]:
		return &Gt[V]{Lhs: Simplify[V](n.Lhs), Rhs: Simplify[V](n.Rhs)}
	case *Ge[V]:
		return simplifyReflexiveGe[V](Simplify[V](n.Lhs), Simplify[V](n.Rhs))
	case *Lt[V]:
		return &Lt[V]{Lhs: Simplify[V](n.Lhs), Rhs: Simplify[V](n.Rhs)}
	case *Le[V]:
		return simplifyReflexiveLe[V](Simplify[V](n.Lhs), Simplify[V](n.Rhs))
	default:
		panic(unknownNode[V](e))
	}
}

func simplifyAll[V comparable](es []Expr[V]) []Expr[V] {
	out := make([]Expr[V], len(es))
	for i, e := range es {
		out[i] = Simplify[V](e)
	}

	return out
}

func isTrue[V any](e Expr[V]) bool {
	l, ok := e.(*BoolLit[V])
	return ok && l.Value
}

func isFalse[V any](e Expr[V]) bool {
	l, ok := e.(*BoolLit[V])
	return ok && !l.Value
}

// simplifyNot implements rule 1: push-and-eliminate Not.  arg is assumed
// already simplified.
func simplifyNot[V comparable](arg Expr[V]) Expr[V] {
	switch a := arg.(type) {
	case *BoolLit[V]:
		return &BoolLit[V]{Value: !a.Value}
	case *Not[V]:
		return a.Arg // ¬¬x → x
	case *And[V]:
		return simplifyOr[V](negateAll[V](a.Args)) // De Morgan
	case *Or[V]:
		return simplifyAnd[V](negateAll[V](a.Args)) // De Morgan
	case *Implies[V]:
		return simplifyAnd[V]([]Expr[V]{a.Lhs, simplifyNot[V](a.Rhs)}) // ¬(p⇒q) → p∧¬q
	case *Gt[V]:
		return simplifyReflexiveLe[V](a.Lhs, a.Rhs)
	case *Ge[V]:
		return &Lt[V]{Lhs: a.Lhs, Rhs: a.Rhs}
	case *Lt[V]:
		return simplifyReflexiveGe[V](a.Lhs, a.Rhs)
	case *Le[V]:
		return &Gt[V]{Lhs: a.Lhs, Rhs: a.Rhs}
	default:
		return &Not[V]{Arg: arg}
	}
}

func negateAll[V comparable](es []Expr[V]) []Expr[V] {
	out := make([]Expr[V], len(es))
	for i, e := range es {
		out[i] = simplifyNot[V](e)
	}

	return out
}

// simplifyImplies implements rule 3.  lhs and rhs are assumed simplified.
func simplifyImplies[V comparable](lhs, rhs Expr[V]) Expr[V] {
	switch {
	case isFalse[V](lhs):
		return True[V]() // F ⇒ _ → T
	case isTrue[V](rhs):
		return True[V]() // _ ⇒ T → T
	case isTrue[V](lhs):
		return rhs // T ⇒ y → y
	case isFalse[V](rhs):
		return simplifyNot[V](lhs) // x ⇒ F → ¬x
	default:
		return &Implies[V]{Lhs: lhs, Rhs: rhs}
	}
}

// simplifyOr implements rule 4 (short-circuiting n-ary Or) and rule 6
// (duplicate removal).  args are assumed already simplified.
func simplifyOr[V comparable](args []Expr[V]) Expr[V] {
	flat := flattenOr[V](args)
	if foldFastOr[V](flat) {
		return True[V]()
	}

	kept := make([]Expr[V], 0, len(flat))

	for _, a := range flat {
		if !isFalse[V](a) {
			kept = append(kept, a)
		}
	}

	kept = dedup[V](kept)

	switch len(kept) {
	case 0:
		return False[V]() // empty Or → F
	case 1:
		return kept[0] // singleton Or → its sole operand
	default:
		return &Or[V]{Args: kept}
	}
}

// simplifyAnd implements rule 4 (short-circuiting n-ary And, dual of Or)
// and rule 6.
func simplifyAnd[V comparable](args []Expr[V]) Expr[V] {
	flat := flattenAnd[V](args)
	if foldFastAnd[V](flat) {
		return False[V]()
	}

	kept := make([]Expr[V], 0, len(flat))

	for _, a := range flat {
		if !isTrue[V](a) {
			kept = append(kept, a)
		}
	}

	kept = dedup[V](kept)

	switch len(kept) {
	case 0:
		return True[V]() // empty And → T
	case 1:
		return kept[0] // singleton And → its sole operand
	default:
		return &And[V]{Args: kept}
	}
}

func flattenOr[V comparable](args []Expr[V]) []Expr[V] {
	var out []Expr[V]

	for _, a := range args {
		if inner, ok := a.(*Or[V]); ok {
			out = append(out, flattenOr[V](inner.Args)...)
		} else {
			out = append(out, a)
		}
	}

	return out
}

func flattenAnd[V comparable](args []Expr[V]) []Expr[V] {
	var out []Expr[V]

	for _, a := range args {
		if inner, ok := a.(*And[V]); ok {
			out = append(out, flattenAnd[V](inner.Args)...)
		} else {
			out = append(out, a)
		}
	}

	return out
}

// foldFastOr is the "fold-fast" of rule 4: it short-circuits with true as
// soon as it finds a T operand, without inspecting the remainder.
func foldFastOr[V any](args []Expr[V]) bool {
	for _, a := range args {
		if isTrue[V](a) {
			return true
		}
	}

	return false
}

// foldFastAnd is foldFastOr's dual.
func foldFastAnd[V any](args []Expr[V]) bool {
	for _, a := range args {
		if isFalse[V](a) {
			return true
		}
	}

	return false
}

// dedup removes duplicate sub-expressions under the trivial-equivalence
// relation ≡ (rule 6), preserving the relative order of the first
// occurrence of each equivalence class.
func dedup[V comparable](args []Expr[V]) []Expr[V] {
	kept := make([]Expr[V], 0, len(args))

	for _, a := range args {
		found := false

		for _, k := range kept {
			if Equiv[V](a, k) {
				found = true
				break
			}
		}

		if !found {
			kept = append(kept, a)
		}
	}

	return kept
}

// simplifyEq implements rule 2 (x=x→T) and rule 5 (Boolean equality
// collapse).  lhs and rhs are assumed already simplified.
func simplifyEq[V comparable](lhs, rhs Expr[V]) Expr[V] {
	if StructEqual[V](lhs, rhs) {
		return True[V]() // x = x → T
	}

	if bl, ok := lhs.(*BoolLit[V]); ok {
		if br, ok := rhs.(*BoolLit[V]); ok {
			return &BoolLit[V]{Value: bl.Value == br.Value}
		}

		if bl.Value {
			return rhs // T = x → x
		}

		return simplifyNot[V](rhs) // F = x → ¬x
	}

	if br, ok := rhs.(*BoolLit[V]); ok {
		if br.Value {
			return lhs // x = T → x
		}

		return simplifyNot[V](lhs) // x = F → ¬x
	}

	return &Eq[V]{Lhs: lhs, Rhs: rhs}
}

// simplifyReflexiveGe implements rule 2 (x≥x→T) for Ge.
func simplifyReflexiveGe[V comparable](lhs, rhs Expr[V]) Expr[V] {
	if StructEqual[V](lhs, rhs) {
		return True[V]()
	}

	return &Ge[V]{Lhs: lhs, Rhs: rhs}
}

// simplifyReflexiveLe implements rule 2 (x≤x→T) for Le.
func simplifyReflexiveLe[V comparable](lhs, rhs Expr[V]) Expr[V] {
	if StructEqual[V](lhs, rhs) {
		return True[V]()
	}

	return &Le[V]{Lhs: lhs, Rhs: rhs}
}

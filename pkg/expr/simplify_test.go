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

import "testing"

func v(name string) *Var[string] { return NewVar(name, Bool()) }

func Test_Simplify_NotLiterals(t *testing.T) {
	if !isTrue[string](Simplify[string](NewNot[string](False[string]()))) {
		t.Errorf("¬F should simplify to T")
	}

	if !isFalse[string](Simplify[string](NewNot[string](True[string]()))) {
		t.Errorf("¬T should simplify to F")
	}
}

func Test_Simplify_DoubleNegation(t *testing.T) {
	x := v("x")
	got := Simplify[string](NewNot[string](NewNot[string](x)))

	if !StructEqual[string](got, x) {
		t.Errorf("¬¬x should simplify to x, got %s", got)
	}
}

func Test_Simplify_DeMorgan(t *testing.T) {
	x, y := v("x"), v("y")
	// ¬(x ∧ y) → ¬x ∨ ¬y
	got := Simplify[string](NewNot[string](NewAnd[string](x, y)))

	want := &Or[string]{Args: []Expr[string]{&Not[string]{Arg: x}, &Not[string]{Arg: y}}}
	if !StructEqual[string](got, want) {
		t.Errorf("De Morgan (and) mismatch: got %s", got)
	}

	got2 := Simplify[string](NewNot[string](NewOr[string](x, y)))
	want2 := &And[string]{Args: []Expr[string]{&Not[string]{Arg: x}, &Not[string]{Arg: y}}}

	if !StructEqual[string](got2, want2) {
		t.Errorf("De Morgan (or) mismatch: got %s", got2)
	}
}

func Test_Simplify_NotImplies(t *testing.T) {
	x, y := v("x"), v("y")
	got := Simplify[string](NewNot[string](NewImplies[string](x, y)))
	want := &And[string]{Args: []Expr[string]{x, &Not[string]{Arg: y}}}

	if !StructEqual[string](got, want) {
		t.Errorf("¬(p⇒q) should be p∧¬q, got %s", got)
	}
}

func Test_Simplify_NotComparisons(t *testing.T) {
	a, b := NewIntLit[string](1), NewIntLit[string](2)

	cases := []struct {
		in   Expr[string]
		want Expr[string]
	}{
		{NewNot[string](NewGt[string](a, b)), &Le[string]{Lhs: a, Rhs: b}},
		{NewNot[string](NewGe[string](a, b)), &Lt[string]{Lhs: a, Rhs: b}},
		{NewNot[string](NewLt[string](a, b)), &Ge[string]{Lhs: a, Rhs: b}},
		{NewNot[string](NewLe[string](a, b)), &Gt[string]{Lhs: a, Rhs: b}},
	}

	for _, c := range cases {
		got := Simplify[string](c.in)
		if !StructEqual[string](got, c.want) {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func Test_Simplify_Reflexivity(t *testing.T) {
	x := NewIntLit[string](7)

	if !isTrue[string](Simplify[string](NewEq[string](x, x))) {
		t.Errorf("x=x should simplify to T")
	}

	if !isTrue[string](Simplify[string](NewGe[string](x, x))) {
		t.Errorf("x>=x should simplify to T")
	}

	if !isTrue[string](Simplify[string](NewLe[string](x, x))) {
		t.Errorf("x<=x should simplify to T")
	}
}

func Test_Simplify_Implication(t *testing.T) {
	x := v("x")

	if !isTrue[string](Simplify[string](NewImplies[string](False[string](), x))) {
		t.Errorf("F=>_ should simplify to T")
	}

	if !isTrue[string](Simplify[string](NewImplies[string](x, True[string]()))) {
		t.Errorf("_=>T should simplify to T")
	}

	got := Simplify[string](NewImplies[string](True[string](), x))
	if !StructEqual[string](got, x) {
		t.Errorf("T=>y should simplify to y, got %s", got)
	}

	got2 := Simplify[string](NewImplies[string](x, False[string]()))
	if !StructEqual[string](got2, &Not[string]{Arg: x}) {
		t.Errorf("x=>F should simplify to ¬x, got %s", got2)
	}
}

func Test_Simplify_ShortCircuitOr(t *testing.T) {
	x := v("x")
	got := Simplify[string](NewOr[string](x, True[string](), v("y")))

	if !isTrue[string](got) {
		t.Errorf("Or containing T should simplify to T, got %s", got)
	}
}

func Test_Simplify_ShortCircuitAnd(t *testing.T) {
	x := v("x")
	got := Simplify[string](NewAnd[string](x, False[string](), v("y")))

	if !isFalse[string](got) {
		t.Errorf("And containing F should simplify to F, got %s", got)
	}
}

func Test_Simplify_DropIdentities(t *testing.T) {
	x := v("x")
	got := Simplify[string](NewOr[string](x, False[string]()))

	if !StructEqual[string](got, x) {
		t.Errorf("Or(x, F) should simplify to x, got %s", got)
	}

	got2 := Simplify[string](NewAnd[string](x, True[string]()))
	if !StructEqual[string](got2, x) {
		t.Errorf("And(x, T) should simplify to x, got %s", got2)
	}
}

func Test_Simplify_EmptyAndOr(t *testing.T) {
	if !isFalse[string](simplifyOr[string](nil)) {
		t.Errorf("empty Or should simplify to F")
	}

	if !isTrue[string](simplifyAnd[string](nil)) {
		t.Errorf("empty And should simplify to T")
	}
}

func Test_Simplify_Flattening(t *testing.T) {
	x, y, z := v("x"), v("y"), v("z")
	got := Simplify[string](NewOr[string](NewOr[string](x, y), z))

	want := &Or[string]{Args: []Expr[string]{x, y, z}}
	if !StructEqual[string](got, want) {
		t.Errorf("nested Or should flatten, got %s", got)
	}
}

func Test_Simplify_DuplicateRemoval(t *testing.T) {
	x, y := v("x"), v("y")
	got := Simplify[string](NewAnd[string](x, y, x))

	want := &And[string]{Args: []Expr[string]{x, y}}
	if !StructEqual[string](got, want) {
		t.Errorf("duplicate conjunct should be removed, got %s", got)
	}
}

func Test_Simplify_DuplicateRemovalViaEquiv(t *testing.T) {
	x, y := v("x"), v("y")
	eqXY := NewEq[string](x, y)
	eqYX := NewEq[string](y, x)
	got := Simplify[string](NewAnd[string](eqXY, eqYX))

	if !StructEqual[string](got, eqXY) {
		t.Errorf("x=y and y=x should be treated as equivalent, got %s", got)
	}
}

func Test_Simplify_BooleanEqualityCollapse(t *testing.T) {
	x := v("x")

	got := Simplify[string](NewEq[string](x, True[string]()))
	if !StructEqual[string](got, x) {
		t.Errorf("x=T should simplify to x, got %s", got)
	}

	got2 := Simplify[string](NewEq[string](x, False[string]()))
	if !StructEqual[string](got2, &Not[string]{Arg: x}) {
		t.Errorf("x=F should simplify to ¬x, got %s", got2)
	}
}

func Test_Simplify_Idempotent(t *testing.T) {
	x, y, z := v("x"), v("y"), v("z")
	e := NewNot[string](NewAnd[string](NewOr[string](x, False[string]()), NewImplies[string](y, z)))

	once := Simplify[string](e)
	twice := Simplify[string](once)

	if !StructEqual[string](once, twice) {
		t.Errorf("simplify should be idempotent: once=%s twice=%s", once, twice)
	}
}

func Test_Vars_CollectsInOrder(t *testing.T) {
	x, y, z := v("x"), v("y"), v("z")
	e := NewAdd[string](x, y, z)

	got := Vars[string](e)
	want := []string{"x", "y", "z"}

	if len(got) != len(want) {
		t.Fatalf("expected %d vars, got %d", len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s want %s", i, got[i], want[i])
		}
	}
}

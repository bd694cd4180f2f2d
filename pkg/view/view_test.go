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

import (
	"testing"

	"github.com/starling-verify/starling/pkg/expr"
)

func v(name string) *expr.Var[string] { return expr.NewVar(name, expr.Int()) }

func Test_GView_00_JoinIsMultiplicityAdditive(t *testing.T) {
	a := NewGView(NewGFunc[string](expr.True[string](), "has", v("t"), v("n")))
	b := NewGView(NewGFunc[string](expr.True[string](), "has", v("t"), v("n")))

	joined := a.Join(b)
	if joined.Len() != 2 {
		t.Errorf("expected join to have multiplicity 2, got %d", joined.Len())
	}
}

func Test_GView_01_OrderIndependentEquality(t *testing.T) {
	a := NewGView(
		NewGFunc[string](expr.True[string](), "has", v("t"), v("n")),
		NewGFunc[string](expr.True[string](), "ticket", v("t")),
	)
	b := NewGView(
		NewGFunc[string](expr.True[string](), "ticket", v("t")),
		NewGFunc[string](expr.True[string](), "has", v("t"), v("n")),
	)

	if !a.Equal(b) {
		t.Errorf("views with the same guarded functions in different order should be equal")
	}
}

func Test_GView_02_PruneDropsFalseGuardedFuncs(t *testing.T) {
	view := NewGView(
		NewGFunc[string](expr.False[string](), "dead", v("t")),
		NewGFunc[string](expr.True[string](), "alive", v("t")),
	)

	pruned := view.Prune(func(e expr.Expr[string]) bool {
		lit, ok := e.(*expr.BoolLit[string])
		return ok && !lit.Value
	})

	if pruned.Len() != 1 {
		t.Fatalf("expected 1 guarded function to survive pruning, got %d", pruned.Len())
	}

	if pruned.Funcs()[0].Item.Name != "alive" {
		t.Errorf("expected the surviving function to be 'alive', got %s", pruned.Funcs()[0].Item.Name)
	}
}

func Test_GView_03_SubstituteFlipsSignOnGuard(t *testing.T) {
	cond := expr.NewEq[string](v("n"), expr.NewIntLit[string](0))
	g := NewGFunc[string](cond, "has", v("t"), v("n"))

	var seenSigns []Sign
	leaf := func(name string, t expr.Type, ctx SubCtx) expr.Expr[string] {
		seenSigns = append(seenSigns, ctx.Sign)
		return expr.NewVar(name, t)
	}

	SubstituteGFunc(g, TopSubCtx(), leaf)

	if len(seenSigns) != 3 {
		t.Fatalf("expected 3 leaf visits (2 params + 1 guard variable; the literal 0 is not a leaf), got %d", len(seenSigns))
	}
	// The guard's leaves (n) must see the flipped sign; the first two
	// (the function parameters t, n) must see the unchanged sign.
	if seenSigns[0] != Positive || seenSigns[1] != Positive {
		t.Errorf("expected parameters to keep the unchanged (positive) sign, got %v", seenSigns[:2])
	}

	if seenSigns[2] != Negative {
		t.Errorf("expected the guard to be substituted under the flipped (negative) sign, got %v", seenSigns[2])
	}
}

func Test_SubstituteExpr_04_NotFlipsSign(t *testing.T) {
	e := expr.NewNot[string](v("x"))

	var got SubCtx
	SubstituteExpr(e, TopSubCtx(), func(name string, t expr.Type, ctx SubCtx) expr.Expr[string] {
		got = ctx
		return expr.NewVar(name, t)
	})

	if got.Sign != Negative {
		t.Errorf("expected Not to flip sign to Negative, got %v", got.Sign)
	}
}

func Test_SubstituteExpr_05_ImpliesFlipsOnlyAntecedent(t *testing.T) {
	e := expr.NewImplies[string](v("p"), v("q"))

	signs := map[string]Sign{}
	SubstituteExpr(e, TopSubCtx(), func(name string, t expr.Type, ctx SubCtx) expr.Expr[string] {
		signs[name] = ctx.Sign
		return expr.NewVar(name, t)
	})

	if signs["p"] != Negative {
		t.Errorf("expected implication antecedent to flip to Negative, got %v", signs["p"])
	}

	if signs["q"] != Positive {
		t.Errorf("expected implication consequent to hold Positive sign, got %v", signs["q"])
	}
}

func Test_SubstituteExpr_06_ComparisonHoldsParentSign(t *testing.T) {
	e := expr.NewNot[string](expr.NewEq[string](v("x"), v("y")))

	signs := map[string]Sign{}
	SubstituteExpr(e, TopSubCtx(), func(name string, t expr.Type, ctx SubCtx) expr.Expr[string] {
		signs[name] = ctx.Sign
		return expr.NewVar(name, t)
	})

	if signs["x"] != Negative || signs["y"] != Negative {
		t.Errorf("expected both equality operands to hold the flipped (Not) sign, got x=%v y=%v", signs["x"], signs["y"])
	}
}

func Test_GView_07_MapRebuildsOverNewVariableSpace(t *testing.T) {
	g := NewGView(NewGFunc[string](expr.True[string](), "has", v("t")))

	mapped := MapGView(g, func(name string, t expr.Type) expr.Expr[int] {
		return expr.NewVar(len(name), t)
	})

	if mapped.Len() != 1 {
		t.Fatalf("expected 1 guarded function after mapping, got %d", mapped.Len())
	}
}

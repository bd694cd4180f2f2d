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
package term

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/markvar"
	"github.com/starling-verify/starling/pkg/view"
)

// MVExpr is an expression over marked (pre/after/intermediate/goal)
// variables, one level below the symbolic wrapping Sym adds (§4.7).
type MVExpr = expr.Expr[markvar.MarkedVar]

// Term is one verification condition (§3, §4.9): wpre ∧ cmd ⇒ (goalGuard ⇒
// goal). goalGuard and goal come from a single guarded function picked out
// of the postcondition's view multiset; wpre is the precondition's view,
// read entirely at Before.
type Term struct {
	Cmd       BoolExpr
	Wpre      view.GView[markvar.MarkedVar]
	GoalGuard MVExpr
	Goal      view.Func[MVExpr]
}

// liftBefore builds the Variable->MarkedVar embedding wpre is built under:
// every free variable of the precondition view reads as Before (§4.7
// step 2's starting state).
func liftBefore(v expr.Variable, t expr.Type) MVExpr { return expr.NewVar(markvar.BeforeOf(v), t) }

// liftGoal builds the Variable->MarkedVar embedding a postcondition
// view's n-th guarded function is read under (§3's Goal(n, v) marker).
func liftGoal(n int) func(expr.Variable, expr.Type) MVExpr {
	return func(v expr.Variable, t expr.Type) MVExpr { return expr.NewVar(markvar.GoalOf(n, v), t) }
}

// BuildTerms implements C7 (§4.9): one term per guarded function present
// in the postcondition view, each paired with the shared weakest
// precondition and command semantics.
func BuildTerms(
	declared []expr.Variable,
	pre view.GView[expr.Variable],
	routine Routine,
	post view.GView[expr.Variable],
) ([]Term, error) {
	cmd, err := CommandSemantics(declared, routine)
	if err != nil {
		return nil, err
	}

	wpre := view.MapGView(pre, liftBefore)

	goalFuncs := post.Funcs()
	terms := make([]Term, len(goalFuncs))

	for n, gf := range goalFuncs {
		lift := liftGoal(n)

		params := make([]MVExpr, len(gf.Item.Params))
		for i, p := range gf.Item.Params {
			params[i] = expr.Map(p, lift)
		}

		terms[n] = Term{
			Cmd:       cmd,
			Wpre:      wpre,
			GoalGuard: expr.Map(gf.Cond, lift),
			Goal:      view.Func[MVExpr]{Name: gf.Item.Name, Params: params},
		}
	}

	return terms, nil
}

// predicateCall renders a guarded-view function application as an opaque
// symbolic predicate: Starling cannot interpret a user-declared view's
// meaning, only substitute through it (§3, markvar.Sym's SymFunc case).
func predicateCall(f view.Func[MVExpr]) BoolExpr {
	return &expr.Var[markvar.Sym[markvar.MarkedVar]]{
		Name: markvar.SymFunc[markvar.MarkedVar]{Name: f.Name, Args: f.Params},
		T:    expr.Bool(),
	}
}

// gviewFormula renders a guarded view as the conjunction of (guard ⇒
// predicate) over its multiset of guarded functions: a guarded resource
// only needs to hold where its own guard does.
func gviewFormula(gv view.GView[markvar.MarkedVar]) BoolExpr {
	funcs := gv.Funcs()

	conj := make([]BoolExpr, len(funcs))
	for i, gf := range funcs {
		guard := markvar.LiftReg[markvar.MarkedVar](gf.Cond)
		pred := predicateCall(view.Func[MVExpr]{Name: gf.Item.Name, Params: gf.Item.Params})
		conj[i] = expr.NewImplies[markvar.Sym[markvar.MarkedVar]](guard, pred)
	}

	return expr.NewAnd[markvar.Sym[markvar.MarkedVar]](conj...)
}

// Formula renders t as the single Boolean condition an SMT backend would
// discharge: wpre ∧ cmd ∧ goalGuard ⇒ goal (§3).
func (t Term) Formula() BoolExpr {
	antecedent := expr.NewAnd[markvar.Sym[markvar.MarkedVar]](
		gviewFormula(t.Wpre),
		t.Cmd,
		markvar.LiftReg[markvar.MarkedVar](t.GoalGuard),
	)

	return expr.NewImplies[markvar.Sym[markvar.MarkedVar]](antecedent, predicateCall(t.Goal))
}

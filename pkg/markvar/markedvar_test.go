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
package markvar

import (
	"testing"

	"github.com/starling-verify/starling/pkg/expr"
)

func Test_MarkedVar_RoundTripsVariable(t *testing.T) {
	x := expr.NewVariable("x", expr.Int())

	cases := []MarkedVar{
		UnmarkedOf(x),
		BeforeOf(x),
		AfterOf(x),
		IntermediateOf(2, x),
		GoalOf(0, x),
	}

	for _, m := range cases {
		if m.Variable() != x {
			t.Errorf("%s: expected underlying variable %v, got %v", m, x, m.Variable())
		}
	}
}

func Test_MarkedVar_DistinctStrings(t *testing.T) {
	x := expr.NewVariable("x", expr.Int())
	seen := map[string]bool{}

	for _, m := range []MarkedVar{UnmarkedOf(x), BeforeOf(x), AfterOf(x), IntermediateOf(1, x), GoalOf(3, x)} {
		s := m.String()
		if seen[s] {
			t.Errorf("marker rendering collided: %s", s)
		}

		seen[s] = true
	}
}

func Test_MarkedVar_Accessors(t *testing.T) {
	x := expr.NewVariable("x", expr.Int())

	if _, ok := AsIntermediate(BeforeOf(x)); ok {
		t.Errorf("Before should not be an Intermediate marker")
	}

	stage, ok := AsIntermediate(IntermediateOf(4, x))
	if !ok || stage != 4 {
		t.Errorf("expected intermediate stage 4, got %d (ok=%v)", stage, ok)
	}

	idx, ok := AsGoal(GoalOf(2, x))
	if !ok || idx != 2 {
		t.Errorf("expected goal index 2, got %d (ok=%v)", idx, ok)
	}

	if !IsAfter(AfterOf(x)) || IsAfter(BeforeOf(x)) {
		t.Errorf("IsAfter misclassified a marker")
	}
}

func Test_SameVariable(t *testing.T) {
	x := expr.NewVariable("x", expr.Int())
	y := expr.NewVariable("y", expr.Int())

	if !SameVariable(BeforeOf(x), AfterOf(x)) {
		t.Errorf("Before(x) and After(x) should share the same variable")
	}

	if SameVariable(BeforeOf(x), AfterOf(y)) {
		t.Errorf("Before(x) and After(y) should not share the same variable")
	}
}

func Test_Sym_LiftReg(t *testing.T) {
	x := expr.NewVariable("x", expr.Int())
	e := expr.NewVar[MarkedVar](BeforeOf(x), expr.Int())

	lifted := LiftReg[MarkedVar](e)

	vars := VarsSym[MarkedVar](lifted)
	if len(vars) != 1 || !SameVariable(vars[0], BeforeOf(x)) {
		t.Errorf("expected lifted expression to carry one register, got %v", vars)
	}
}

func Test_Sym_VarsSym_DescendsIntoSymFunc(t *testing.T) {
	x := expr.NewVariable("x", expr.Int())
	y := expr.NewVariable("y", expr.Int())

	call := &expr.Var[Sym[MarkedVar]]{
		Name: SymFunc[MarkedVar]{
			Name: "hash",
			Args: []expr.Expr[MarkedVar]{
				expr.NewVar[MarkedVar](BeforeOf(x), expr.Int()),
				expr.NewVar[MarkedVar](BeforeOf(y), expr.Int()),
			},
		},
		T: expr.Bool(),
	}

	vars := VarsSym[MarkedVar](call)
	if len(vars) != 2 {
		t.Fatalf("expected 2 variables reachable through the symbolic call, got %d", len(vars))
	}
}

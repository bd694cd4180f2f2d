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
	"strings"
	"testing"

	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/microcode"
	"github.com/starling-verify/starling/pkg/view"
)

func Test_BuildTerms_00_OneTermPerGoalFunc(t *testing.T) {
	tVar := expr.NewVariable("t", expr.Int())
	ticket := expr.NewVariable("ticket", expr.Int())

	pre := view.NewGView(view.NewGFunc[expr.Variable](expr.True[expr.Variable](), "locked"))
	post := view.NewGView(
		view.NewGFunc[expr.Variable](expr.True[expr.Variable](), "holds", expr.NewVar(tVar, expr.Int())),
	)

	stage := []microcode.Microcode[expr.Variable]{
		microcode.NewAssign[expr.Variable](expr.NewVar(tVar, expr.Int()), expr.NewVar(ticket, expr.Int())),
	}

	terms, err := BuildTerms([]expr.Variable{tVar, ticket}, pre, Routine{stage}, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(terms) != 1 {
		t.Fatalf("expected 1 term (one guarded function in post), got %d", len(terms))
	}

	if terms[0].Goal.Name != "holds" {
		t.Errorf("expected goal function holds, got %s", terms[0].Goal.Name)
	}

	if len(terms[0].Goal.Params) != 1 || terms[0].Goal.Params[0].String() != "t!goal0" {
		t.Errorf("expected the goal parameter to read as t!goal0, got %v", terms[0].Goal.Params)
	}

	formula := terms[0].Formula().String()
	if !strings.Contains(formula, "locked") || !strings.Contains(formula, "holds") {
		t.Errorf("expected the formula to mention both the wpre and goal predicates, got %s", formula)
	}
}

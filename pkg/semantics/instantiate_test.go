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
package semantics

import (
	"testing"

	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/microcode"
	"github.com/starling-verify/starling/pkg/starerr"
)

// fetchAndIncrement schema: fetch(ctr) -> dst : dst := ctr; ctr := ctr + 1.
func fetchSchema() PrimSemantics {
	dst := expr.NewVariable("dst", expr.Int())
	ctr := expr.NewVariable("ctr", expr.Int())

	return NewPrimSemantics(
		[]expr.Variable{ctr},
		[]expr.Variable{dst},
		microcode.NewAssign[expr.Variable](
			expr.NewVar(dst, expr.Int()),
			expr.NewVar(ctr, expr.Int()),
		),
		microcode.NewAssign[expr.Variable](
			expr.NewVar(ctr, expr.Int()),
			expr.NewAdd[expr.Variable](expr.NewVar(ctr, expr.Int()), expr.NewIntLit[expr.Variable](1)),
		),
	)
}

func Test_Instantiate_00_SubstitutesCallerExpressions(t *testing.T) {
	schemas := PrimSemanticsMap{"fetch": fetchSchema()}

	tVar := expr.NewVariable("t", expr.Int())
	callerResult := expr.NewVar(tVar, expr.Int())
	callerArg := expr.NewVar(expr.NewVariable("ticket", expr.Int()), expr.Int())

	body, err := Instantiate("fetch", []expr.Expr[expr.Variable]{callerArg}, []expr.Expr[expr.Variable]{callerResult}, schemas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(body) != 2 {
		t.Fatalf("expected a 2-instruction body, got %d", len(body))
	}

	assign, ok := body[0].(microcode.Assign[expr.Variable])
	if !ok {
		t.Fatalf("expected first instruction to be an Assign, got %T", body[0])
	}

	if assign.LValue.String() != callerResult.String() {
		t.Errorf("expected the schema's result parameter to be replaced by the caller variable t, got %s", assign.LValue)
	}
}

func Test_Instantiate_01_MissingDefFails(t *testing.T) {
	_, err := Instantiate("nope", nil, nil, PrimSemanticsMap{})

	var starErr *starerr.Error
	if err == nil {
		t.Fatal("expected an error")
	}

	if se, ok := err.(*starerr.Error); !ok || se.Kind != starerr.KindMissingDef {
		t.Errorf("expected MissingDef, got %v", err)
	}

	_ = starErr
}

func Test_Instantiate_02_CountMismatchFails(t *testing.T) {
	schemas := PrimSemanticsMap{"fetch": fetchSchema()}

	_, err := Instantiate("fetch", nil, nil, schemas)

	se, ok := err.(*starerr.Error)
	if !ok || se.Kind != starerr.KindCountMismatch {
		t.Errorf("expected CountMismatch, got %v", err)
	}
}

func Test_Instantiate_03_TypeMismatchFails(t *testing.T) {
	schemas := PrimSemanticsMap{"fetch": fetchSchema()}

	intArg := expr.NewVar(expr.NewVariable("ticket", expr.Int()), expr.Int())
	boolResult := expr.NewVar(expr.NewVariable("b", expr.Bool()), expr.Bool())

	_, err := Instantiate("fetch", []expr.Expr[expr.Variable]{intArg}, []expr.Expr[expr.Variable]{boolResult}, schemas)

	se, ok := err.(*starerr.Error)
	if !ok || se.Kind != starerr.KindTypeMismatch {
		t.Errorf("expected TypeMismatch, got %v", err)
	}
}

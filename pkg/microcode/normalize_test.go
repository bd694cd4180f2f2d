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
package microcode

import (
	"testing"

	"github.com/starling-verify/starling/pkg/expr"
)

func Test_Normalize_00_WholeVariableAssignsPassThrough(t *testing.T) {
	t1 := expr.NewVar[string]("t", expr.Int())
	ticket := expr.NewVar[string]("ticket", expr.Int())

	assigns := []Assign[string]{
		NewAssign[string](t1, ticket),
		NewAssign[string](ticket, expr.NewAdd[string](ticket, expr.NewIntLit[string](1))),
	}

	out, err := Normalize(assigns, func(s string) string { return s })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 whole-variable assigns, got %d", len(out))
	}

	if out[0].LValue.String() != t1.String() || out[1].LValue.String() != ticket.String() {
		t.Errorf("expected order t, ticket (first-write order), got %s, %s", out[0].LValue, out[1].LValue)
	}
}

func Test_Normalize_01_ArraySubscriptsFoldIntoUpdCascade(t *testing.T) {
	arrT := expr.Array(expr.Int(), 4)
	a := expr.NewVar[string]("a", arrT)
	i := expr.NewVar[string]("i", expr.Int())
	j := expr.NewVar[string]("j", expr.Int())

	assigns := []Assign[string]{
		NewAssign[string](expr.NewIdx[string](expr.Int(), 4, a, i), expr.NewIntLit[string](1)),
		NewAssign[string](expr.NewIdx[string](expr.Int(), 4, a, j), expr.NewIntLit[string](2)),
	}

	out, err := Normalize(assigns, func(s string) string { return s })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("expected a single whole-array assign, got %d", len(out))
	}

	got := out[0].RValue.String()
	want := expr.NewUpd[string](expr.Int(), 4, expr.NewUpd[string](expr.Int(), 4, a, i, expr.NewIntLit[string](1)), j, expr.NewIntLit[string](2)).String()

	if got != want {
		t.Errorf("expected nested upd cascade %s, got %s", want, got)
	}
}

func Test_Normalize_02_DoubleWriteIsFatal(t *testing.T) {
	x := expr.NewVar[string]("x", expr.Int())

	assigns := []Assign[string]{
		NewAssign[string](x, expr.NewIntLit[string](1)),
		NewAssign[string](x, expr.NewIntLit[string](2)),
	}

	if _, err := Normalize(assigns, func(s string) string { return s }); err == nil {
		t.Errorf("expected a double-write error")
	}
}

func Test_Normalize_03_HavocPropagatesThroughNestedIndex(t *testing.T) {
	arrT := expr.Array(expr.Int(), 4)
	a := expr.NewVar[string]("a", arrT)
	i := expr.NewVar[string]("i", expr.Int())

	assigns := []Assign[string]{
		NewAssign[string](expr.NewIdx[string](expr.Int(), 4, a, i), nil),
	}

	out, err := Normalize(assigns, func(s string) string { return s })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out[0].RValue != nil {
		t.Errorf("expected havoc (nil rvalue) to propagate to the whole variable, got %v", out[0].RValue)
	}
}

func Test_Normalize_04_NonLvalueIsSilentlyDropped(t *testing.T) {
	x := expr.NewVar[string]("x", expr.Int())
	lit := expr.NewIntLit[string](5)

	assigns := []Assign[string]{
		NewAssign[string](lit, x), // malformed lvalue: a literal
	}

	out, err := Normalize(assigns, func(s string) string { return s })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 0 {
		t.Errorf("expected the malformed assignment to be dropped, got %d results", len(out))
	}
}

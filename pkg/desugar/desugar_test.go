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
package desugar

import (
	"testing"

	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/script"
	"github.com/starling-verify/starling/pkg/view"
)

func Test_View_00_FalsehoodGeneratesLiftProto(t *testing.T) {
	ctx := NewContext(nil, nil, nil)

	got := View(ctx, script.ViewFalsehood{}, expr.True[expr.Variable]())

	if ctx.LocalLiftView != "__lift_0" {
		t.Fatalf("expected localLiftView __lift_0, got %q", ctx.LocalLiftView)
	}

	if len(ctx.GeneratedProtos) != 1 || ctx.GeneratedProtos[0].Name != "__lift_0" {
		t.Fatalf("expected generated prototype __lift_0, got %v", ctx.GeneratedProtos)
	}

	if got.Len() != 1 {
		t.Fatalf("expected a single guarded function, got %d", got.Len())
	}

	gf := got.Funcs()[0]
	if gf.Cond.String() != expr.True[expr.Variable]().String() {
		t.Errorf("expected guard true, got %s", gf.Cond)
	}

	if gf.Item.Name != "__lift_0" {
		t.Errorf("expected item __lift_0(false), got %s", gf.Item.Name)
	}
}

func Test_Marked_01_UnknownGeneratesPrototypeOverThreadVars(t *testing.T) {
	s := expr.NewVariable("s", expr.Int())
	tv := expr.NewVariable("t", expr.Int())

	ctx := NewContext(nil, []expr.Variable{s, tv}, nil)

	got := Marked(ctx, script.Unknown())

	if got.Mandatory {
		t.Errorf("expected Unknown marking to desugar as Advisory (not Mandatory)")
	}

	if len(ctx.GeneratedProtos) != 1 || ctx.GeneratedProtos[0].Name != "__unknown_0" {
		t.Fatalf("expected fresh prototype __unknown_0, got %v", ctx.GeneratedProtos)
	}

	if len(ctx.GeneratedProtos[0].Params) != 2 {
		t.Fatalf("expected prototype to carry both thread vars, got %v", ctx.GeneratedProtos[0].Params)
	}

	if got.View.Len() != 1 || got.View.Funcs()[0].Item.Name != "__unknown_0" {
		t.Fatalf("expected result to instantiate __unknown_0(s, t), got %v", got.View)
	}
}

func Test_View_02_ConditionalNoElse(t *testing.T) {
	s := expr.NewVar[expr.Variable](expr.NewVariable("s", expr.Bool()), expr.Bool())

	v := script.ViewIf{
		Cond: s,
		Then: script.ViewFunc{Func: newFooBar()},
	}

	ctx := NewContext(nil, nil, nil)
	got := View(ctx, v, expr.True[expr.Variable]())

	if got.Len() != 1 {
		t.Fatalf("expected a single guarded function (the empty else branch contributes nothing), got %d", got.Len())
	}

	gf := got.Funcs()[0]
	if gf.Cond.String() != s.String() {
		t.Errorf("expected guard s, got %s", gf.Cond)
	}

	if gf.Item.Name != "foo" {
		t.Errorf("expected item foo(bar), got %s", gf.Item.Name)
	}
}

func newFooBar() view.Func[expr.Expr[expr.Variable]] {
	bar := expr.NewVar[expr.Variable](expr.NewVariable("bar", expr.Int()), expr.Int())
	return view.NewFunc[expr.Expr[expr.Variable]]("foo", bar)
}

func Test_Atomic_03_AssertAllocatesNextOkName(t *testing.T) {
	ok0 := expr.NewVariable("__ok_0", expr.Bool())
	ok1 := expr.NewVariable("__ok_1", expr.Bool())

	ctx := NewContext([]expr.Variable{ok0, ok1}, nil, nil)

	x := expr.NewVar[expr.Variable](expr.NewVariable("x", expr.Bool()), expr.Bool())
	got := Atomic(ctx, script.AAssert{Expr: x})

	if ctx.OkayBool != "__ok_2" {
		t.Fatalf("expected __ok_2 to be allocated, got %q", ctx.OkayBool)
	}

	prim, ok := got.(DAPrim)
	if !ok {
		t.Fatalf("expected a DAPrim, got %T", got)
	}

	if len(prim.Prim.Results) != 1 || prim.Prim.Results[0].String() != "__ok_2" {
		t.Errorf("expected the synthesized assignment to target __ok_2, got %v", prim.Prim.Results)
	}

	found := false

	for _, v := range ctx.SharedVars {
		if v.Name == "__ok_2" {
			found = true
		}
	}

	if !found {
		t.Errorf("expected __ok_2 to be added to shared vars")
	}
}

func Test_FillBlock_04_SingleViewProducesEmptyCmds(t *testing.T) {
	b := FillBlock([]Elem{ElemView{View: script.Mandatory(script.ViewUnit{})}})
	if len(b.Cmds) != 0 {
		t.Errorf("expected empty Cmds for a single-view block, got %d", len(b.Cmds))
	}
}

func Test_FillBlock_05_CapsMissingEnds(t *testing.T) {
	var skip script.Command[script.MarkedView] = script.FPrim[script.MarkedView]{}

	b := FillBlock([]Elem{ElemCmd{Cmd: skip}})

	if b.Pre.Marking != script.UnknownMark {
		t.Errorf("expected a synthesized Unknown precondition, got %v", b.Pre.Marking)
	}

	if len(b.Cmds) != 1 {
		t.Fatalf("expected 1 step, got %d", len(b.Cmds))
	}

	if b.Cmds[0].Post.Marking != script.UnknownMark {
		t.Errorf("expected a synthesized Unknown postcondition, got %v", b.Cmds[0].Post.Marking)
	}
}

func Test_FillBlock_06_ConsecutiveCommandsGetFreshGapView(t *testing.T) {
	var c1 script.Command[script.MarkedView] = script.FPrim[script.MarkedView]{}
	var c2 script.Command[script.MarkedView] = script.FPrim[script.MarkedView]{}

	b := FillBlock([]Elem{ElemCmd{Cmd: c1}, ElemCmd{Cmd: c2}})

	if len(b.Cmds) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(b.Cmds))
	}

	if b.Cmds[0].Post.Marking != script.UnknownMark {
		t.Errorf("expected a fresh Unknown view between consecutive commands, got %v", b.Cmds[0].Post.Marking)
	}
}

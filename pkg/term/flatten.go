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
	"github.com/starling-verify/starling/pkg/desugar"
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/microcode"
	"github.com/starling-verify/starling/pkg/script"
	"github.com/starling-verify/starling/pkg/semantics"
)

// BuildRoutine lowers a filled block's top-level steps into a Routine: one
// stage per step (§3's "sequence of microcode listings"). Nested blocks
// (an FIf's branches, a loop's body) flatten into a single listing rather
// than contributing further stages — §4.7's marker scheme only splits
// stages at this top level, matching scenario 1's ticket-lock fetch()
// becoming a single stage despite its schema having two assignments.
func BuildRoutine(
	ctx *desugar.Context,
	prims semantics.PrimSemanticsMap,
	b script.FullBlock[script.MarkedView, script.Command[script.MarkedView]],
) (Routine, error) {
	var routine Routine

	for _, step := range b.Cmds {
		listing, err := flattenCommand(ctx, prims, step.Cmd)
		if err != nil {
			return nil, err
		}

		routine = append(routine, listing)
	}

	return routine, nil
}

// flattenBlock concatenates a nested block's steps into one flat listing,
// discarding its own view annotations: those are gap-filling advisories
// (C4), not part of the command's semantics (§4.7).
func flattenBlock(
	ctx *desugar.Context,
	prims semantics.PrimSemanticsMap,
	b script.FullBlock[script.MarkedView, script.Command[script.MarkedView]],
) ([]microcode.Microcode[expr.Variable], error) {
	var out []microcode.Microcode[expr.Variable]

	for _, step := range b.Cmds {
		listing, err := flattenCommand(ctx, prims, step.Cmd)
		if err != nil {
			return nil, err
		}

		out = append(out, listing...)
	}

	return out, nil
}

func flattenCommand(
	ctx *desugar.Context,
	prims semantics.PrimSemanticsMap,
	cmd script.Command[script.MarkedView],
) ([]microcode.Microcode[expr.Variable], error) {
	switch c := cmd.(type) {
	case script.FPrim[script.MarkedView]:
		var out []microcode.Microcode[expr.Variable]

		for _, a := range c.Prims {
			listing, err := flattenAtomic(ctx, prims, a)
			if err != nil {
				return nil, err
			}

			out = append(out, listing...)
		}

		return out, nil

	case script.FIf[script.MarkedView]:
		thenListing, err := flattenBlock(ctx, prims, c.Then)
		if err != nil {
			return nil, err
		}

		var elseListing []microcode.Microcode[expr.Variable]

		if c.Else != nil {
			elseListing, err = flattenBlock(ctx, prims, *c.Else)
			if err != nil {
				return nil, err
			}
		}

		return []microcode.Microcode[expr.Variable]{microcode.NewBranch(c.Cond, thenListing, elseListing)}, nil

	case script.FWhile[script.MarkedView]:
		listing, err := flattenBlock(ctx, prims, c.Body)
		if err != nil {
			return nil, err
		}

		return loopApproximation(ctx, c.Cond, listing), nil

	case script.FDoWhile[script.MarkedView]:
		listing, err := flattenBlock(ctx, prims, c.Body)
		if err != nil {
			return nil, err
		}

		return loopApproximation(ctx, c.Cond, listing), nil

	case script.FBlocks[script.MarkedView]:
		var out []microcode.Microcode[expr.Variable]

		for _, blk := range c.Blocks {
			listing, err := flattenBlock(ctx, prims, blk)
			if err != nil {
				return nil, err
			}

			out = append(out, listing...)
		}

		return out, nil

	default:
		panic("term: unknown command node")
	}
}

// loopApproximation lowers a while/do-while into straight-line microcode:
// havoc every shared and thread variable (a sound over-approximation of
// whatever the loop body may have written across an unbounded number of
// iterations) then assume the loop has exited. Precise per-iteration
// reasoning against the loop's own invariant view is out of scope (§1's
// Non-goals: the core does not infer or discharge loop invariants beyond
// filling the fresh view at the loop's own gaps); listing is accepted so a
// future, more precise lowering has the body microcode already to hand.
func loopApproximation(
	ctx *desugar.Context,
	cond expr.Expr[expr.Variable],
	_ []microcode.Microcode[expr.Variable],
) []microcode.Microcode[expr.Variable] {
	var out []microcode.Microcode[expr.Variable]

	for _, v := range ctx.SharedVars {
		out = append(out, microcode.NewAssign[expr.Variable](expr.NewVar(v, v.Type), nil))
	}

	for _, v := range ctx.ThreadVars {
		out = append(out, microcode.NewAssign[expr.Variable](expr.NewVar(v, v.Type), nil))
	}

	out = append(out, microcode.NewAssume[expr.Variable](expr.NewNot[expr.Variable](cond)))

	return out
}

func flattenAtomic(
	ctx *desugar.Context,
	prims semantics.PrimSemanticsMap,
	a script.Atomic,
) ([]microcode.Microcode[expr.Variable], error) {
	return flattenDesugaredAtomic(desugar.Atomic(ctx, a), prims)
}

func flattenDesugaredAtomic(
	da desugar.DesugaredAtomic,
	prims semantics.PrimSemanticsMap,
) ([]microcode.Microcode[expr.Variable], error) {
	switch d := da.(type) {
	case desugar.DAPrim:
		if d.Prim.Name == desugar.AssignPrimName {
			return []microcode.Microcode[expr.Variable]{
				microcode.NewAssign(d.Prim.Results[0], d.Prim.Args[0]),
			}, nil
		}

		return semantics.Instantiate(d.Prim.Name, d.Prim.Args, d.Prim.Results, prims)

	case desugar.DACond:
		trueListing, err := flattenDesugaredAll(d.True, prims)
		if err != nil {
			return nil, err
		}

		falseListing, err := flattenDesugaredAll(d.False, prims)
		if err != nil {
			return nil, err
		}

		return []microcode.Microcode[expr.Variable]{microcode.NewBranch(d.Cond, trueListing, falseListing)}, nil

	default:
		panic("term: unknown desugared atomic node")
	}
}

func flattenDesugaredAll(
	das []desugar.DesugaredAtomic,
	prims semantics.PrimSemanticsMap,
) ([]microcode.Microcode[expr.Variable], error) {
	var out []microcode.Microcode[expr.Variable]

	for _, da := range das {
		listing, err := flattenDesugaredAtomic(da, prims)
		if err != nil {
			return nil, err
		}

		out = append(out, listing...)
	}

	return out, nil
}

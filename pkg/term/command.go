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
	"github.com/starling-verify/starling/pkg/microcode"
)

// Routine is a command as a sequence of microcode listings, interpreted
// as sequential composition (§3, §4.7). Each element is one stage; a
// stage's own internal listing may still contain a Branch node (an `if`
// compiles to a single stage, not a split) — only composing two stages in
// sequence assigns them distinct markers.
type Routine = [][]microcode.Microcode[expr.Variable]

// CommandSemantics implements §4.7: number every stage but the last as
// Intermediate(i), the last as After; translate each stage's listing in
// turn against a running state map seeded at Before for every declared
// variable; and close with the frame, asserting that every declared
// variable whose latest marker is not After (one the last stage did not
// assign) carries that latest value into After.
func CommandSemantics(declared []expr.Variable, routine Routine) (BoolExpr, error) {
	n := len(routine)

	state := make(map[string]markvar.MarkedVar, len(declared))
	for _, v := range declared {
		state[v.Name] = markvar.BeforeOf(v)
	}

	var conj []BoolExpr

	for i, stage := range routine {
		marker := stageMarker(i, n)

		stageExpr, touched, err := translateListing(stage, marker, state)
		if err != nil {
			return nil, err
		}

		conj = append(conj, stageExpr)

		for _, v := range touched {
			state[v.Name] = marker(v)
		}
	}

	for _, v := range declared {
		if m := state[v.Name]; !markvar.IsAfter(m) {
			conj = append(conj, expr.NewEq[markvar.Sym[markvar.MarkedVar]](
				regOf(markvar.AfterOf(v), v.Type),
				regOf(m, v.Type),
			))
		}
	}

	return expr.NewAnd[markvar.Sym[markvar.MarkedVar]](conj...), nil
}

func stageMarker(i, n int) func(expr.Variable) markvar.MarkedVar {
	if i == n-1 {
		return markvar.AfterOf
	}

	stage := i

	return func(v expr.Variable) markvar.MarkedVar { return markvar.IntermediateOf(stage, v) }
}

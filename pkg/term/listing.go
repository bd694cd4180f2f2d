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

// translateListing translates one microcode listing into a BoolExpr,
// threading a single read-only state snapshot throughout (§4.7 step b:
// the state map used for rvalue lookups is the one in force at the start
// of the stage, not updated mid-stage). Every Assign in the listing,
// wherever it is nested (including inside a Branch's arms), receives its
// lvalue marker from markOf — §4.7's marker is constant across a whole
// stage, branches included. touched collects every variable assigned
// anywhere in the listing, so the caller can update its running state map
// once the whole stage has been translated (step d).
func translateListing(
	listing []microcode.Microcode[expr.Variable],
	markOf func(expr.Variable) markvar.MarkedVar,
	readState map[string]markvar.MarkedVar,
) (BoolExpr, []expr.Variable, error) {
	var assigns []microcode.Assign[expr.Variable]

	var others []microcode.Microcode[expr.Variable]

	for _, m := range listing {
		if a, ok := m.(microcode.Assign[expr.Variable]); ok {
			assigns = append(assigns, a)
		} else {
			others = append(others, m)
		}
	}

	normalized, err := microcode.Normalize(assigns, func(v expr.Variable) string { return v.Name })
	if err != nil {
		return nil, nil, err
	}

	var conj []BoolExpr

	var touched []expr.Variable

	for _, o := range others {
		switch x := o.(type) {
		case microcode.Assume[expr.Variable]:
			conj = append(conj, markAndLift(x.Cond, readState))
		case microcode.Branch[expr.Variable]:
			condLifted := markAndLift(x.Cond, readState)

			thenExpr, thenTouched, err := translateListing(x.Then, markOf, readState)
			if err != nil {
				return nil, nil, err
			}

			elseExpr, elseTouched, err := translateListing(x.Else, markOf, readState)
			if err != nil {
				return nil, nil, err
			}

			conj = append(conj,
				expr.NewImplies[markvar.Sym[markvar.MarkedVar]](condLifted, thenExpr),
				expr.NewImplies[markvar.Sym[markvar.MarkedVar]](expr.NewNot[markvar.Sym[markvar.MarkedVar]](condLifted), elseExpr),
			)
			touched = append(touched, thenTouched...)
			touched = append(touched, elseTouched...)
		default:
			panic("term: unexpected microcode node in listing")
		}
	}

	for _, a := range normalized {
		rootVar := a.LValue.(*expr.Var[expr.Variable]).Name
		lhsMarker := markOf(rootVar)
		lhsExpr := regOf(lhsMarker, rootVar.Type)

		if a.RValue == nil {
			conj = append(conj, expr.True[markvar.Sym[markvar.MarkedVar]]())
		} else {
			conj = append(conj, expr.NewEq[markvar.Sym[markvar.MarkedVar]](lhsExpr, markAndLift(a.RValue, readState)))
		}

		touched = append(touched, rootVar)
	}

	return expr.NewAnd[markvar.Sym[markvar.MarkedVar]](conj...), touched, nil
}

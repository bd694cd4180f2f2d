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

// Package term implements C6 (command semantics: routine-to-Boolean
// translation, §4.7) and C7 (term construction, §4.9): combining a goal
// view, a weakest-precondition view and a command's two-state semantics
// into the verification conditions the core emits.
package term

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/markvar"
)

// BoolExpr is the two-state predicate representation used throughout C6/C7
// (§3's CommandSemantics.semantics): a Boolean expression over symbolic,
// marked variables.
type BoolExpr = expr.Expr[markvar.Sym[markvar.MarkedVar]]

func regOf(mv markvar.MarkedVar, t expr.Type) BoolExpr {
	return expr.NewVar[markvar.Sym[markvar.MarkedVar]](markvar.Reg[markvar.MarkedVar]{V: mv}, t)
}

// markAndLift rewrites a plain expression over raw variables into a
// BoolExpr: every Var leaf is looked up in state (defaulting to Before,
// per §4.7 step b: "a regular variable never yet assigned reads as
// Before") and wrapped as a Reg.
func markAndLift(e expr.Expr[expr.Variable], state map[string]markvar.MarkedVar) BoolExpr {
	return expr.Map(e, func(v expr.Variable, t expr.Type) BoolExpr {
		mv, ok := state[v.Name]
		if !ok {
			mv = markvar.BeforeOf(v)
		}

		return regOf(mv, t)
	})
}

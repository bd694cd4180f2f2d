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
	"fmt"

	"github.com/starling-verify/starling/pkg/expr"
)

// Sym is either a regular variable reference (Reg) or a symbolic function
// call (SymFunc) standing for an opaque predicate that Starling cannot
// interpret but can still substitute through (§3).  Sym[V] is the V used
// once a command's semantics has been composed into a two-state predicate
// (§4.7): CommandSemantics.semantics is a BoolExpr<Sym<MarkedVar>>.
type Sym[V any] interface {
	isSym()
}

// Reg wraps a plain variable reference.
type Reg[V any] struct{ V V }

func (Reg[V]) isSym() {}

// String renders a register as the variable it wraps.
func (r Reg[V]) String() string { return fmt.Sprint(r.V) }

// SymFunc is an opaque symbolic predicate applied to arguments that are
// themselves expressions over the unwrapped V (not further Sym-wrapped:
// §3, "arguments are expressions over V").
type SymFunc[V any] struct {
	Name string
	Args []expr.Expr[V]
}

func (SymFunc[V]) isSym() {}

// AsReg returns the wrapped variable if s is a Reg.
func AsReg[V any](s Sym[V]) (V, bool) {
	r, ok := s.(Reg[V])
	if !ok {
		var zero V
		return zero, false
	}

	return r.V, true
}

// AsSymFunc returns the name/args if s is a SymFunc.
func AsSymFunc[V any](s Sym[V]) (string, []expr.Expr[V], bool) {
	f, ok := s.(SymFunc[V])
	if !ok {
		return "", nil, false
	}

	return f.Name, f.Args, true
}

// LiftReg wraps every Var leaf of e (an expression over plain V) as a Reg,
// the trivial embedding Expr[V] ↪ Expr[Sym[V]] used once a command's
// microcode is ready to be expressed as CommandSemantics (§4.7 step 4).
func LiftReg[V any](e expr.Expr[V]) expr.Expr[Sym[V]] {
	return expr.Map(e, func(v V, t expr.Type) expr.Expr[Sym[V]] {
		return &expr.Var[Sym[V]]{Name: Reg[V]{V: v}, T: t}
	})
}

// SubstituteSym rewrites every register leaf of e via regF, and descends
// into every symbolic function's arguments via argF rather than treating
// them as opaque (§9: "traversals must descend into symbol arguments
// transparently").
func SubstituteSym[V, W any](
	e expr.Expr[Sym[V]],
	regF func(V) expr.Expr[Sym[W]],
	argF func(V, expr.Type) expr.Expr[W],
) expr.Expr[Sym[W]] {
	return expr.Map(e, func(s Sym[V], _ expr.Type) expr.Expr[Sym[W]] {
		switch x := s.(type) {
		case Reg[V]:
			return regF(x.V)
		case SymFunc[V]:
			newArgs := make([]expr.Expr[W], len(x.Args))
			for i, a := range x.Args {
				newArgs[i] = expr.Map(a, argF)
			}

			return &expr.Var[Sym[W]]{Name: SymFunc[W]{Name: x.Name, Args: newArgs}, T: expr.Bool()}
		default:
			panic("markvar: unknown Sym variant")
		}
	})
}

// VarsSym collects every V occurrence reachable from e, descending
// transparently into symbolic-function arguments.
func VarsSym[V any](e expr.Expr[Sym[V]]) []V {
	var out []V

	for _, s := range expr.Vars[Sym[V]](e) {
		switch x := s.(type) {
		case Reg[V]:
			out = append(out, x.V)
		case SymFunc[V]:
			for _, a := range x.Args {
				out = append(out, expr.Vars[V](a)...)
			}
		}
	}

	return out
}

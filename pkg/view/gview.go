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
package view

import (
	"strings"

	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/util/collection/set"
)

// GView is a guarded view: a multiset of guarded function applications
// (§3). Duplicates are significant — two identical GFuncs in a GView are
// not the same as one, since each corresponds to a distinct resource
// instance under separation-style conjunction.
type GView[V any] struct {
	funcs *set.MultiSet[GFunc[V]]
}

// Empty returns the empty (vacuously true) view.
func Empty[V any]() GView[V] {
	return GView[V]{funcs: set.NewMultiSet[GFunc[V]]()}
}

// NewGView builds a view from the given guarded functions.
func NewGView[V any](gs ...GFunc[V]) GView[V] {
	return GView[V]{funcs: set.NewMultiSet(gs...)}
}

// Len reports the number of guarded functions, counting duplicates.
func (v GView[V]) Len() int { return v.funcs.Len() }

// Funcs returns the guarded functions in canonical (sorted) order.
func (v GView[V]) Funcs() []GFunc[V] { return v.funcs.ToArray() }

// Join combines two views: the view holding both v's and other's
// resources. This is plain multiset union, so a GFunc present in both
// views appears twice in the join (§3, §4.2's "Join" desugaring rule).
func (v GView[V]) Join(other GView[V]) GView[V] {
	return GView[V]{funcs: v.funcs.Union(other.funcs)}
}

// Prune drops every guarded function whose guard isFalse reports as false,
// since such an entry can never be present (§4.2's pruning step). The
// desugarer does not call it; callers apply it to a view themselves.
func (v GView[V]) Prune(isFalse func(expr.Expr[V]) bool) GView[V] {
	return GView[V]{funcs: set.Filter(v.funcs, func(g GFunc[V]) bool { return !isFalse(g.Cond) })}
}

// Filter keeps only the guarded functions for which keep returns true.
func (v GView[V]) Filter(keep func(GFunc[V]) bool) GView[V] {
	return GView[V]{funcs: set.Filter(v.funcs, keep)}
}

// Substitute rewrites every guarded function's guard and parameters under
// ctx, per §4.8: the guard is substituted under the flipped context, the
// parameters under the unchanged context.
func (v GView[V]) Substitute(ctx SubCtx, leaf func(V, expr.Type, SubCtx) expr.Expr[V]) GView[V] {
	return GView[V]{funcs: set.Map(v.funcs, func(g GFunc[V]) GFunc[V] {
		return SubstituteGFunc(g, ctx, leaf)
	})}
}

// MapGView rebuilds the whole view over a new variable space W.
func MapGView[V, W any](v GView[V], f func(V, expr.Type) expr.Expr[W]) GView[W] {
	return GView[W]{funcs: set.Map(v.funcs, func(g GFunc[V]) GFunc[W] { return MapGFunc(g, f) })}
}

// Equal reports whether v and other contain the same guarded functions
// with the same multiplicities, independent of order (§8).
func (v GView[V]) Equal(other GView[V]) bool { return v.funcs.Equal(other.funcs) }

func (v GView[V]) String() string {
	fs := v.Funcs()
	parts := make([]string, len(fs))

	for i, g := range fs {
		parts[i] = g.String()
	}

	return "{ " + strings.Join(parts, " * ") + " }"
}

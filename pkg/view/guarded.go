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

import "github.com/starling-verify/starling/pkg/expr"

// Guarded pairs an item with the Boolean condition under which it holds
// (§3): a guarded view function is only present in the multiset when Cond
// evaluates true.
type Guarded[V any, I any] struct {
	Cond expr.Expr[V]
	Item I
}

// NewGuarded constructs a guarded item.
func NewGuarded[V any, I any](cond expr.Expr[V], item I) Guarded[V, I] {
	return Guarded[V, I]{Cond: cond, Item: item}
}

func (g Guarded[V, I]) String() string {
	return "[" + g.Cond.String() + "] " + stringer(g.Item)
}

// GFunc is a guarded view function application: the item a syntactic view
// desugars into (§3: GView<V> is a multiset of GFunc<V>). It has the same
// shape as Guarded[V, Func[Expr[V]]] but is its own defined type so it can
// carry the Cmp method set.MultiSet needs.
type GFunc[V any] struct {
	Cond expr.Expr[V]
	Item Func[expr.Expr[V]]
}

// NewGFunc constructs a guarded function application.
func NewGFunc[V any](cond expr.Expr[V], name string, params ...expr.Expr[V]) GFunc[V] {
	return GFunc[V]{Cond: cond, Item: NewFunc(name, params...)}
}

func (g GFunc[V]) String() string {
	return "[" + g.Cond.String() + "] " + g.Item.String()
}

// Cmp gives GFunc a total, deterministic order so it can be stored in a
// set.MultiSet: views are compared lexicographically by function name, then
// by S-expression rendering of the guard and each parameter. This ordering
// carries no logical meaning (it is not an entailment or subsumption
// order) — it exists purely so that two GViews built from the same
// elements in different orders compare Equal (§8: "tests rely only on
// deep-equality of multisets").
func (g GFunc[V]) Cmp(other GFunc[V]) int {
	if c := cmpString(g.Item.Name, other.Item.Name); c != 0 {
		return c
	}

	if c := cmpString(g.Cond.String(), other.Cond.String()); c != 0 {
		return c
	}

	if len(g.Item.Params) != len(other.Item.Params) {
		return len(g.Item.Params) - len(other.Item.Params)
	}

	for i := range g.Item.Params {
		if c := cmpString(g.Item.Params[i].String(), other.Item.Params[i].String()); c != 0 {
			return c
		}
	}

	return 0
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SubstituteGFunc rewrites a guarded function application under ctx: the
// guard is substituted under the flipped context, the function's
// parameters under the unchanged context (§4.8).
func SubstituteGFunc[V any](g GFunc[V], ctx SubCtx, leaf func(V, expr.Type, SubCtx) expr.Expr[V]) GFunc[V] {
	newParams := make([]expr.Expr[V], len(g.Item.Params))
	for i, p := range g.Item.Params {
		newParams[i] = SubstituteExpr(p, ctx, leaf)
	}

	return GFunc[V]{
		Cond: SubstituteExpr(g.Cond, SubCtx{ctx.Sign.Flip()}, leaf),
		Item: Func[expr.Expr[V]]{Name: g.Item.Name, Params: newParams},
	}
}

// MapGFunc rebuilds a guarded function application over a new variable
// space W, threading declared types through expr.Map the same way marking
// and instantiation do elsewhere in the pipeline.
func MapGFunc[V, W any](g GFunc[V], f func(V, expr.Type) expr.Expr[W]) GFunc[W] {
	newParams := make([]expr.Expr[W], len(g.Item.Params))
	for i, p := range g.Item.Params {
		newParams[i] = expr.Map(p, f)
	}

	return GFunc[W]{
		Cond: expr.Map(g.Cond, f),
		Item: Func[expr.Expr[W]]{Name: g.Item.Name, Params: newParams},
	}
}

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
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/starerr"
)

// pathStep is one Idx layer peeled off an lvalue expression, carrying the
// array-shape metadata needed to rebuild an Upd at the same nesting depth.
type pathStep[V any] struct {
	Index    expr.Expr[V]
	ElemType expr.Type
	Length   uint
}

// extractPath decomposes a well-formed lvalue (a variable, possibly
// wrapped in Idx steps) into its root variable reference and an ordered
// index path (§4.5 step 1). A non-lvalue expression is reported via ok =
// false, err = nil ("silently ignored for write-mapping"); indexing a
// non-array expression is a genuine failure.
func extractPath[V any](e expr.Expr[V]) (root expr.Expr[V], path []pathStep[V], ok bool, err error) {
	switch n := e.(type) {
	case *expr.Var[V]:
		return n, nil, true, nil
	case *expr.Idx[V]:
		if n.Arr.ExprType().Kind != expr.KindArray {
			return nil, nil, false, starerr.BadSemantics("index appears over a non-array expression")
		}

		root, path, ok, err = extractPath[V](n.Arr)
		if !ok || err != nil {
			return nil, nil, ok, err
		}

		return root, append(path, pathStep[V]{Index: n.Index, ElemType: n.ElemType, Length: n.Length}), true, nil
	default:
		return nil, nil, false, nil
	}
}

// write records what has been written so far at one variable or one of its
// nested array locations (§3's "Write record").
type write[V any] interface {
	isWrite()
}

// writeEntire records a direct, whole-location write. Val nil means havoc.
type writeEntire[V any] struct {
	Val expr.Expr[V]
}

func (writeEntire[V]) isWrite() {}

// writeIndices records writes scattered across distinct indices of an
// array location; order is insertion order, so translation back to
// expressions is deterministic (§4.5 step 3, §8 scenario 6).
type writeIndices[V any] struct {
	order []string
	byKey map[string]indexEntry[V]
}

type indexEntry[V any] struct {
	Index    expr.Expr[V]
	ElemType expr.Type
	Length   uint
	Sub      write[V]
}

func (writeIndices[V]) isWrite() {}

// insertWrite folds one assignment's index path into the existing write
// record, per §4.5 step 2's rules. It never mutates w; it returns a new
// write record.
func insertWrite[V any](w write[V], path []pathStep[V], rv expr.Expr[V]) (write[V], error) {
	if len(path) == 0 {
		if w != nil {
			return nil, starerr.BadSemantics("double write to the same location")
		}

		return writeEntire[V]{Val: rv}, nil
	}

	step := path[0]
	key := step.Index.String()

	var idx writeIndices[V]

	switch x := w.(type) {
	case nil:
		idx = writeIndices[V]{byKey: map[string]indexEntry[V]{}}
	case writeEntire[V]:
		return nil, starerr.BadSemantics("indexed write over an already entirely-written location")
	case writeIndices[V]:
		idx = x
	default:
		panic("microcode: unknown write variant")
	}

	newByKey := make(map[string]indexEntry[V], len(idx.byKey)+1)
	for k, v := range idx.byKey {
		newByKey[k] = v
	}

	newOrder := append([]string{}, idx.order...)

	existing, had := newByKey[key]

	var sub write[V]
	if had {
		sub = existing.Sub
	}

	newSub, err := insertWrite(sub, path[1:], rv)
	if err != nil {
		return nil, err
	}

	newByKey[key] = indexEntry[V]{Index: step.Index, ElemType: step.ElemType, Length: step.Length, Sub: newSub}
	if !had {
		newOrder = append(newOrder, key)
	}

	return writeIndices[V]{order: newOrder, byKey: newByKey}, nil
}

// translateWrite folds a write record back into an expression rooted at
// cur (the location's current value), producing a cascade of Upd
// expressions for nested index writes (§4.5 step 3). A nil result means
// havoc: some component of the location was havoced, so the whole location
// is unconstrained.
func translateWrite[V any](cur expr.Expr[V], w write[V]) expr.Expr[V] {
	switch x := w.(type) {
	case writeEntire[V]:
		return x.Val
	case writeIndices[V]:
		result := cur

		for _, key := range x.order {
			entry := x.byKey[key]
			subCur := expr.NewIdx[V](entry.ElemType, entry.Length, result, entry.Index)

			subVal := translateWrite[V](subCur, entry.Sub)
			if subVal == nil {
				return nil
			}

			result = expr.NewUpd[V](entry.ElemType, entry.Length, result, entry.Index, subVal)
		}

		return result
	default:
		panic("microcode: unknown write variant")
	}
}

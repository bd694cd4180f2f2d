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
package expr

// Idx is an array subscript, Idx(eltType, length, arr, index).  Its static
// type is eltType: indexing a Bool array yields a BoolExpr, an Int array an
// IntExpr.  For lvalue purposes (§4.5), Arr must itself resolve to a
// variable possibly wrapped in further Idx steps; this is checked by
// pkg/microcode, not here.
type Idx[V any] struct {
	ElemType Type
	Length   uint
	Arr      Expr[V]
	Index    Expr[V]
}

// NewIdx constructs an array subscript.
func NewIdx[V any](elemType Type, length uint, arr, index Expr[V]) *Idx[V] {
	return &Idx[V]{ElemType: elemType, Length: length, Arr: arr, Index: index}
}

// ExprType implements Expr.
func (i *Idx[V]) ExprType() Type { return i.ElemType }
func (i *Idx[V]) String() string { return "(idx " + i.Arr.String() + " " + i.Index.String() + ")" }

// Upd is an array update, Upd(eltType, length, arr, index, val): the array
// equal to arr except that position index now holds val.
type Upd[V any] struct {
	ElemType Type
	Length   uint
	Arr      Expr[V]
	Index    Expr[V]
	Val      Expr[V]
}

// NewUpd constructs an array update.
func NewUpd[V any](elemType Type, length uint, arr, index, val Expr[V]) *Upd[V] {
	return &Upd[V]{ElemType: elemType, Length: length, Arr: arr, Index: index, Val: val}
}

// ExprType implements Expr.
func (u *Upd[V]) ExprType() Type { return Array(u.ElemType, u.Length) }
func (u *Upd[V]) String() string {
	return "(upd " + u.Arr.String() + " " + u.Index.String() + " " + u.Val.String() + ")"
}

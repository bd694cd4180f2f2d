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

// Package set provides sorted-set and sorted-multiset primitives.
// MultiSet is adapted from the sorted-set family (itself keyed on a
// Comparable[T] interface, following AnySortedSet's convention) but never
// removes duplicate entries: §3 requires GView to be a multiset, not a
// set, because duplicate instances of the same guarded view function
// matter under separation-style conjunction.
package set

import "sort"

// Comparable provides the ordering a MultiSet element must support. <0
// means lhs sorts before rhs, 0 means they are equal for ordering
// purposes (but not necessarily interchangeable — see MultiSet's doc),
// >0 means lhs sorts after rhs.
type Comparable[T any] interface {
	Cmp(other T) int
}

// MultiSet is an order-independent, duplicate-preserving collection: two
// MultiSets are Equal if they contain the same elements with the same
// multiplicities, regardless of insertion order. Internally it is kept
// sorted by Cmp purely so that Equal and deep-equality-based tests
// (§8: "tests rely only on deep-equality of multisets") are order
// insensitive and reproducible.
type MultiSet[T Comparable[T]] struct {
	items []T
}

// NewMultiSet builds a MultiSet containing the given items (duplicates
// retained), sorted by Cmp.
func NewMultiSet[T Comparable[T]](items ...T) *MultiSet[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	sortItems(cp)

	return &MultiSet[T]{items: cp}
}

func sortItems[T Comparable[T]](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Cmp(items[j]) < 0
	})
}

// Len returns the number of elements, counting duplicates.
func (m *MultiSet[T]) Len() int { return len(m.items) }

// ToArray returns the elements in sorted (canonical) order.
func (m *MultiSet[T]) ToArray() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)

	return out
}

// Insert adds a single element, preserving existing duplicates.
func (m *MultiSet[T]) Insert(item T) {
	i := sort.Search(len(m.items), func(i int) bool { return m.items[i].Cmp(item) >= 0 })
	m.items = append(m.items, item)
	copy(m.items[i+1:], m.items[i:])
	m.items[i] = item
}

// Union returns a new MultiSet containing every element of m and other,
// with multiplicities added (this is plain multiset union, not set
// union): a guarded view appearing twice in m and once in other appears
// three times in the result.
func (m *MultiSet[T]) Union(other *MultiSet[T]) *MultiSet[T] {
	out := make([]T, 0, len(m.items)+len(other.items))
	out = append(out, m.items...)
	out = append(out, other.items...)
	sortItems(out)

	return &MultiSet[T]{items: out}
}

// Map applies f to every element, returning a new MultiSet (re-sorted,
// since f's output may not preserve Cmp order).
func Map[T Comparable[T], U Comparable[U]](m *MultiSet[T], f func(T) U) *MultiSet[U] {
	out := make([]U, len(m.items))
	for i, item := range m.items {
		out[i] = f(item)
	}

	return NewMultiSet(out...)
}

// Filter returns a new MultiSet retaining only elements for which keep
// returns true, preserving multiplicities.
func Filter[T Comparable[T]](m *MultiSet[T], keep func(T) bool) *MultiSet[T] {
	out := make([]T, 0, len(m.items))

	for _, item := range m.items {
		if keep(item) {
			out = append(out, item)
		}
	}

	return &MultiSet[T]{items: out}
}

// Equal reports whether m and other contain the same elements with the
// same multiplicities, independent of insertion order.
func (m *MultiSet[T]) Equal(other *MultiSet[T]) bool {
	if len(m.items) != len(other.items) {
		return false
	}

	for i := range m.items {
		if m.items[i].Cmp(other.items[i]) != 0 {
			return false
		}
	}

	return true
}

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

// Package view implements §3/§4.2's guarded views: the multiset of
// (condition, func) pairs that a syntactic view desugars into, plus
// mapping, pruning and position-aware substitution over them (§4.8).
package view

import "strings"

// Func is a named, ordered parameter list — a view instantiation (e.g.
// "has(t, n)") or, generically, anything shaped like a function
// application.
type Func[T any] struct {
	Name   string
	Params []T
}

// NewFunc constructs a function application.
func NewFunc[T any](name string, params ...T) Func[T] {
	return Func[T]{Name: name, Params: params}
}

func (f Func[T]) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = stringer(p)
	}

	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

func stringer(v any) string {
	type stringerIface interface{ String() string }
	if s, ok := v.(stringerIface); ok {
		return s.String()
	}

	return "?"
}

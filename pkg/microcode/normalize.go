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

import "github.com/starling-verify/starling/pkg/expr"

// Normalize folds a listing of (possibly array-subscripted) assignments
// into whole-variable assigns, in the order each variable was first
// written (§4.5). varKey must render V deterministically and uniquely
// (e.g. a variable's declared name); assignments whose lvalue isn't a
// valid variable-or-Idx-chain are silently dropped, matching §4.5 step 1.
func Normalize[V any](assigns []Assign[V], varKey func(V) string) ([]Assign[V], error) {
	type varEntry struct {
		root  expr.Expr[V]
		write write[V]
	}

	vars := map[string]*varEntry{}

	var order []string

	for _, a := range assigns {
		root, path, ok, err := extractPath[V](a.LValue)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		rv, _ := root.(*expr.Var[V])
		key := varKey(rv.Name)

		entry, exists := vars[key]
		if !exists {
			entry = &varEntry{root: root}
			vars[key] = entry

			order = append(order, key)
		}

		newWrite, err := insertWrite(entry.write, path, a.RValue)
		if err != nil {
			return nil, err
		}

		entry.write = newWrite
	}

	out := make([]Assign[V], 0, len(order))
	for _, key := range order {
		e := vars[key]
		out = append(out, Assign[V]{LValue: e.root, RValue: translateWrite[V](e.root, e.write)})
	}

	return out, nil
}

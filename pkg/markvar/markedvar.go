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

// Package markvar implements §3/§4.7's variable-marking discipline
// (MarkedVar) and the symbolic-function wrapper (Sym[V]) used once
// commands have been lowered to two-state Boolean predicates.
package markvar

import (
	"fmt"

	"github.com/starling-verify/starling/pkg/expr"
)

// MarkedVar tags a Variable with its role in a two-state predicate: the
// pre-state, the post-state, an intermediate composition stage, or a
// goal-view slot.  Every MarkedVar refers back to exactly one Variable.
type MarkedVar interface {
	// Variable returns the underlying declared variable.
	Variable() expr.Variable
	String() string

	marked()
}

type unmarked struct{ v expr.Variable }

// UnmarkedOf wraps v with no role tag.
func UnmarkedOf(v expr.Variable) MarkedVar { return unmarked{v} }
func (u unmarked) Variable() expr.Variable { return u.v }
func (u unmarked) String() string          { return u.v.Name }
func (unmarked) marked()                   {}

type before struct{ v expr.Variable }

// BeforeOf tags v as a pre-state (Before) occurrence.
func BeforeOf(v expr.Variable) MarkedVar  { return before{v} }
func (b before) Variable() expr.Variable  { return b.v }
func (b before) String() string           { return b.v.Name + "!before" }
func (before) marked()                    {}

type after struct{ v expr.Variable }

// AfterOf tags v as a post-state (After) occurrence.
func AfterOf(v expr.Variable) MarkedVar  { return after{v} }
func (a after) Variable() expr.Variable  { return a.v }
func (a after) String() string          { return a.v.Name + "!after" }
func (after) marked()                   {}

type intermediate struct {
	stage int
	v     expr.Variable
}

// IntermediateOf tags v as belonging to composition stage `stage` (§4.7
// step 1: every stage before the last is numbered this way).
func IntermediateOf(stage int, v expr.Variable) MarkedVar { return intermediate{stage, v} }
func (i intermediate) Variable() expr.Variable            { return i.v }
func (i intermediate) String() string                     { return fmt.Sprintf("%s!%d", i.v.Name, i.stage) }
func (intermediate) marked()                               {}

// Stage returns the composition-stage index of an Intermediate marker.
func (i intermediate) Stage() int { return i.stage }

type goal struct {
	index int
	v     expr.Variable
}

// GoalOf tags v as belonging to the `index`-th goal view (§3: "Goal(n, v)").
func GoalOf(index int, v expr.Variable) MarkedVar { return goal{index, v} }
func (g goal) Variable() expr.Variable            { return g.v }
func (g goal) String() string                     { return fmt.Sprintf("%s!goal%d", g.v.Name, g.index) }
func (goal) marked()                               {}

// Index returns the goal-view index of a Goal marker.
func (g goal) Index() int { return g.index }

// AsIntermediate reports whether m is an Intermediate marker, and if so its
// stage number.
func AsIntermediate(m MarkedVar) (stage int, ok bool) {
	i, ok := m.(intermediate)
	if !ok {
		return 0, false
	}

	return i.stage, true
}

// AsGoal reports whether m is a Goal marker, and if so its goal index.
func AsGoal(m MarkedVar) (index int, ok bool) {
	g, ok := m.(goal)
	if !ok {
		return 0, false
	}

	return g.index, true
}

// IsAfter reports whether m is an After marker.
func IsAfter(m MarkedVar) bool {
	_, ok := m.(after)
	return ok
}

// IsBefore reports whether m is a Before marker.
func IsBefore(m MarkedVar) bool {
	_, ok := m.(before)
	return ok
}

// SameVariable reports whether a and b mark occurrences of the same
// underlying Variable, regardless of marker kind.
func SameVariable(a, b MarkedVar) bool {
	return a.Variable().Name == b.Variable().Name
}

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

// Counter is a monotonically increasing counter for anywhere a small dense
// sequence of fresh stage indices is needed. pkg/term's CommandSemantics
// does not use it: it numbers its Intermediate markers by stage position.
//
// Counter is deliberately not safe for concurrent use: per §5, a
// DesugarContext (and the stage counters nested within a single command's
// translation) is owned by exactly one caller at a time.
type Counter struct {
	next int
}

// Next returns the next stage index and advances the counter.
func (c *Counter) Next() int {
	v := c.next
	c.next++

	return v
}

// Peek returns the next index that Next would return, without advancing.
func (c *Counter) Peek() int { return c.next }

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
package set

import (
	"testing"

	"github.com/starling-verify/starling/pkg/util/assert"
)

type intItem int

func (i intItem) Cmp(o intItem) int { return int(i) - int(o) }

func Test_MultiSet_00_PreservesDuplicates(t *testing.T) {
	m := NewMultiSet(intItem(1), intItem(1), intItem(2))
	assert.Equal(t, 3, m.Len(), "expected 3 elements (with duplicate)")
}

func Test_MultiSet_01_OrderIndependentEquality(t *testing.T) {
	a := NewMultiSet(intItem(3), intItem(1), intItem(2))
	b := NewMultiSet(intItem(1), intItem(2), intItem(3))

	assert.True(t, a.Equal(b), "multisets with same elements in different order should be equal")
}

func Test_MultiSet_02_MultiplicityMatters(t *testing.T) {
	a := NewMultiSet(intItem(1), intItem(1))
	b := NewMultiSet(intItem(1))

	assert.False(t, a.Equal(b), "multisets with different multiplicities should not be equal")
}

func Test_MultiSet_03_Union(t *testing.T) {
	a := NewMultiSet(intItem(1))
	b := NewMultiSet(intItem(1), intItem(2))

	u := a.Union(b)
	assert.Equal(t, 3, u.Len(), "expected union length 3")
}

func Test_MultiSet_04_FilterPreservesMultiplicity(t *testing.T) {
	m := NewMultiSet(intItem(1), intItem(2), intItem(2), intItem(3))
	f := Filter(m, func(i intItem) bool { return i == 2 })

	assert.Equal(t, 2, f.Len(), "expected 2 matching elements")
}

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

// Variable is a named slot with a base type (§3).  It is the leaf V used
// before any marking has been applied; pkg/markvar.MarkedVar wraps exactly
// one Variable with a role tag once the pipeline needs to distinguish
// pre/post/intermediate/goal occurrences of the same slot.
type Variable struct {
	Name string
	Type Type
}

// NewVariable constructs a variable declaration.
func NewVariable(name string, t Type) Variable { return Variable{Name: name, Type: t} }

func (v Variable) String() string { return v.Name }

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
package script

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/semantics"
)

// CollatedScript is everything the core consumes as input (§6): it is
// produced upstream by the (out-of-scope) parser and collator.
type CollatedScript struct {
	SharedVars  []expr.Variable
	ThreadVars  []expr.Variable
	ViewProtos  []ViewProto
	Methods     map[string]Method
	Prims       semantics.PrimSemanticsMap
	SearchDepth uint
}

// NewCollatedScript constructs an (initially empty) script; callers add
// declarations with the With* builders.
func NewCollatedScript() *CollatedScript {
	return &CollatedScript{
		Methods: map[string]Method{},
		Prims:   semantics.PrimSemanticsMap{},
	}
}

// WithShared appends a shared-state variable declaration.
func (s *CollatedScript) WithShared(v expr.Variable) *CollatedScript {
	s.SharedVars = append(s.SharedVars, v)
	return s
}

// WithThread appends a thread-local variable declaration.
func (s *CollatedScript) WithThread(v expr.Variable) *CollatedScript {
	s.ThreadVars = append(s.ThreadVars, v)
	return s
}

// WithViewProto registers a view prototype.
func (s *CollatedScript) WithViewProto(p ViewProto) *CollatedScript {
	s.ViewProtos = append(s.ViewProtos, p)
	return s
}

// WithMethod registers a named method.
func (s *CollatedScript) WithMethod(m Method) *CollatedScript {
	s.Methods[m.Name] = m
	return s
}

// WithPrim registers a primitive's semantic schema.
func (s *CollatedScript) WithPrim(name string, sem semantics.PrimSemantics) *CollatedScript {
	s.Prims[name] = sem
	return s
}

// WithSearchDepth sets the search-depth hint.
func (s *CollatedScript) WithSearchDepth(depth uint) *CollatedScript {
	s.SearchDepth = depth
	return s
}

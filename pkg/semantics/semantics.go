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

// Package semantics implements §4.6's semantic instantiator: looking up a
// primitive's schema and substituting caller-side expressions for its
// formal parameters.
package semantics

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/microcode"
)

// PrimSemantics is the schema registered for one primitive name: its
// formal argument/result parameters and the microcode body written in
// terms of them (§3).
type PrimSemantics struct {
	Args    []expr.Variable
	Results []expr.Variable
	Body    []microcode.Microcode[expr.Variable]
}

// NewPrimSemantics constructs a schema.
func NewPrimSemantics(args, results []expr.Variable, body ...microcode.Microcode[expr.Variable]) PrimSemantics {
	return PrimSemantics{Args: args, Results: results, Body: body}
}

// PrimSemanticsMap is the global registry primitives are instantiated
// against.
type PrimSemanticsMap map[string]PrimSemantics

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

// Package script models the collated input the desugarer consumes (§6):
// the surface-level view/atomic/command AST produced upstream by the
// (out-of-scope) parser and collator. There is no parser in this module —
// §1 treats it as an external collaborator — so this package also offers
// small literal constructors used to build scripts directly, the way a
// test or an embedder driving the core programmatically would.
package script

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/view"
)

// View is a syntactic view expression, as written in a `{| ... |}`
// annotation (§4.2).
type View interface {
	isView()
}

// ViewUnit is the empty view (desugars to no guarded functions).
type ViewUnit struct{}

func (ViewUnit) isView() {}

// ViewFalsehood is `false`, desugaring to a lifted False view (§4.2).
type ViewFalsehood struct{}

func (ViewFalsehood) isView() {}

// ViewLocal lifts a plain Boolean expression into a view via the context's
// local-lift prototype.
type ViewLocal struct {
	Expr expr.Expr[expr.Variable]
}

func (ViewLocal) isView() {}

// ViewFunc names a view prototype instantiation directly.
type ViewFunc struct {
	Func view.Func[expr.Expr[expr.Variable]]
}

func (ViewFunc) isView() {}

// ViewJoin is the separation-style conjunction of two views.
type ViewJoin struct {
	A, B View
}

func (ViewJoin) isView() {}

// ViewIf is a conditional view: Then under Cond, Else under ¬Cond. Else
// may be nil, meaning Unit (§4.2: "withDefault(Unit, eo)").
type ViewIf struct {
	Cond expr.Expr[expr.Variable]
	Then View
	Else View
}

func (ViewIf) isView() {}

// Marking distinguishes how firmly a view annotation is asserted (§4.2).
type Marking int

const (
	// Unmarked is a plain `{| v |}` annotation.
	Unmarked Marking = iota
	// Questioned is a `{| v? |}` annotation; desugars identically to Unmarked.
	Questioned
	// UnknownMark is `{| ? |}`, triggering generation of a fresh prototype.
	UnknownMark
)

// MarkedView is a view annotation as it appears at a block gap, carrying
// its marking alongside the syntactic view (for UnknownMark, View is
// ignored).
type MarkedView struct {
	Marking Marking
	View    View
}

// Mandatory wraps a view with Unmarked marking, the common case.
func Mandatory(v View) MarkedView { return MarkedView{Marking: Unmarked, View: v} }

// Unknown constructs the `{| ? |}` marking.
func Unknown() MarkedView { return MarkedView{Marking: UnknownMark} }

// ViewProto is a named, typed view prototype declaration (§3). An
// iterated prototype additionally binds an iterator-count parameter.
type ViewProto struct {
	Name        string
	Params      []expr.Variable
	IsAnonymous bool
	Iterated    bool
	IterParam   expr.Variable
}

// NewViewProto constructs a non-iterated, named prototype.
func NewViewProto(name string, params ...expr.Variable) ViewProto {
	return ViewProto{Name: name, Params: params}
}

// NewIteratedViewProto constructs a prototype with an iterator-count
// parameter.
func NewIteratedViewProto(name string, iter expr.Variable, params ...expr.Variable) ViewProto {
	return ViewProto{Name: name, Params: params, Iterated: true, IterParam: iter}
}

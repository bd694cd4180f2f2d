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
package desugar

import "github.com/starling-verify/starling/pkg/script"

// Elem is one slot of an unfilled block: either a view annotation or a
// command. Sub-blocks nested inside a command (an FIf's branches, an
// FWhile's body, ...) must already be filled by the caller before being
// wrapped in an ElemCmd, since filling recurses bottom-up.
type Elem interface {
	isElem()
}

// ElemView is a view annotation at a block gap.
type ElemView struct {
	View script.MarkedView
}

func (ElemView) isElem() {}

// ElemCmd is a command.
type ElemCmd struct {
	Cmd script.Command[script.MarkedView]
}

func (ElemCmd) isElem() {}

// FillBlock fills a raw element list into a FullBlock by capping with
// fresh unknown views and sliding a width-2 window across the result
// (§4.4).
func FillBlock(elems []Elem) script.FullBlock[script.MarkedView, script.Command[script.MarkedView]] {
	return slide(capBlock(elems))
}

func capBlock(elems []Elem) []Elem {
	out := append([]Elem{}, elems...)

	if len(out) == 0 {
		return []Elem{ElemView{View: script.Unknown()}, ElemView{View: script.Unknown()}}
	}

	if _, ok := out[0].(ElemView); !ok {
		out = append([]Elem{ElemView{View: script.Unknown()}}, out...)
	}

	if _, ok := out[len(out)-1].(ElemView); !ok {
		out = append(out, ElemView{View: script.Unknown()})
	}

	return out
}

func slide(capped []Elem) script.FullBlock[script.MarkedView, script.Command[script.MarkedView]] {
	pre := capped[0].(ElemView).View

	var steps []script.Step[script.Command[script.MarkedView], script.MarkedView]

	var pending *script.Command[script.MarkedView]

	for i := 1; i < len(capped); i++ {
		switch e := capped[i].(type) {
		case ElemView:
			if pending != nil {
				steps = append(steps, script.Step[script.Command[script.MarkedView], script.MarkedView]{Cmd: *pending, Post: e.View})
				pending = nil
			} else {
				// (view, view): a skip-prim carries the second view.
				var skip script.Command[script.MarkedView] = script.FPrim[script.MarkedView]{}
				steps = append(steps, script.Step[script.Command[script.MarkedView], script.MarkedView]{Cmd: skip, Post: e.View})
			}
		case ElemCmd:
			if pending != nil {
				// (cmd, cmd): a fresh unknown view fills the gap.
				steps = append(steps, script.Step[script.Command[script.MarkedView], script.MarkedView]{Cmd: *pending, Post: script.Unknown()})
			}

			cmd := e.Cmd
			pending = &cmd
		}
	}

	return script.FullBlock[script.MarkedView, script.Command[script.MarkedView]]{Pre: pre, Cmds: steps}
}

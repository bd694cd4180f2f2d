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

import "github.com/starling-verify/starling/pkg/expr"

// Command is a full (block-filled) command, mutually recursive with
// FullBlock (§9: "model views and commands as a single recursion group").
type Command[V any] interface {
	isCommand()
}

// FPrim is an atomic primitive set.
type FPrim[V any] struct {
	Prims []Atomic
}

func (FPrim[V]) isCommand() {}

// FIf is a conditional; Else is nil when the surface program had no else
// branch (§3).
type FIf[V any] struct {
	Cond expr.Expr[expr.Variable]
	Then FullBlock[V, Command[V]]
	Else *FullBlock[V, Command[V]]
}

func (FIf[V]) isCommand() {}

// FWhile is a pre-tested loop.
type FWhile[V any] struct {
	Cond expr.Expr[expr.Variable]
	Body FullBlock[V, Command[V]]
}

func (FWhile[V]) isCommand() {}

// FDoWhile is a post-tested loop.
type FDoWhile[V any] struct {
	Body FullBlock[V, Command[V]]
	Cond expr.Expr[expr.Variable]
}

func (FDoWhile[V]) isCommand() {}

// FBlocks is parallel composition of independently-filled blocks.
type FBlocks[V any] struct {
	Blocks []FullBlock[V, Command[V]]
}

func (FBlocks[V]) isCommand() {}

// Step pairs a command with the view holding immediately after it (§3:
// "the view after the k-th command is paired with that command").
type Step[C any, V any] struct {
	Cmd  C
	Post V
}

// FullBlock is a filled block: a precondition view followed by an ordered
// sequence of (command, post-view) steps (§3).
type FullBlock[V any, C any] struct {
	Pre  V
	Cmds []Step[C, V]
}

// NewFullBlock constructs a filled block from its precondition and steps.
func NewFullBlock[V any, C any](pre V, steps ...Step[C, V]) FullBlock[V, C] {
	return FullBlock[V, C]{Pre: pre, Cmds: steps}
}

// Postcondition returns the view following the block's last command, or
// the precondition itself if the block has no commands.
func (b FullBlock[V, C]) Postcondition() V {
	if len(b.Cmds) == 0 {
		return b.Pre
	}

	return b.Cmds[len(b.Cmds)-1].Post
}

// Method is a named routine: a block whose view annotations are
// MarkedViews (pre-desugar).
type Method struct {
	Name string
	Body FullBlock[MarkedView, Command[MarkedView]]
}

// NewMethod constructs a named method.
func NewMethod(name string, body FullBlock[MarkedView, Command[MarkedView]]) Method {
	return Method{Name: name, Body: body}
}

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

// Package desugar implements C4: lowering syntactic views into guarded
// view multisets (§4.2), lowering assert/error into assignment to a
// synthesized ok-flag (§4.3), and filling block gaps with fresh unknown
// views (§4.4).
package desugar

import (
	"fmt"

	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/script"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "desugar")

// Context is DesugarContext (§3): the state threaded through desugaring.
// It grows monotonically — generators only add names, never remove them
// — and is not safe for concurrent use (§5: the fresh-name counter is
// shared per context, single-threaded).
type Context struct {
	SharedVars      []expr.Variable
	ThreadVars      []expr.Variable
	LocalLiftView   string // "" means none generated yet
	GeneratedProtos []script.ViewProto
	ExistingProtos  []script.ViewProto
	OkayBool        string // "" means none generated yet
}

// NewContext constructs a context from the script's declared shared/thread
// variables and the prototypes the surface program already declares.
func NewContext(shared, thread []expr.Variable, existing []script.ViewProto) *Context {
	return &Context{SharedVars: shared, ThreadVars: thread, ExistingProtos: existing}
}

func (c *Context) protoNames() map[string]bool {
	out := make(map[string]bool, len(c.GeneratedProtos)+len(c.ExistingProtos))
	for _, p := range c.GeneratedProtos {
		out[p.Name] = true
	}

	for _, p := range c.ExistingProtos {
		out[p.Name] = true
	}

	return out
}

func (c *Context) varNames() map[string]bool {
	out := make(map[string]bool, len(c.SharedVars)+len(c.ThreadVars))
	for _, v := range c.SharedVars {
		out[v.Name] = true
	}

	for _, v := range c.ThreadVars {
		out[v.Name] = true
	}

	return out
}

// freshName spins a monotonic counter until a name of the form prefix_N is
// not present in taken (§9: "spin until the candidate is not in the union
// of existing and generated names").
func freshName(prefix string, taken map[string]bool) string {
	for n := 0; ; n++ {
		name := fmt.Sprintf("%s_%d", prefix, n)
		if !taken[name] {
			return name
		}
	}
}

// ensureLocalLift returns the context's Boolean-lifting view prototype
// name, generating `__lift_N(bool x)` on first use (§4.2).
func (c *Context) ensureLocalLift() string {
	if c.LocalLiftView != "" {
		return c.LocalLiftView
	}

	name := freshName("__lift", c.protoNames())
	c.GeneratedProtos = append(c.GeneratedProtos, script.NewViewProto(name, expr.NewVariable("x", expr.Bool())))
	c.LocalLiftView = name

	logger.Debugf("synthesized local-lift prototype %s", name)

	return name
}

// ensureOkayBool returns the context's error-tracking Boolean's name,
// generating `__ok_N` and adding it to the shared variables on first use
// (§4.3).
func (c *Context) ensureOkayBool() string {
	if c.OkayBool != "" {
		return c.OkayBool
	}

	name := freshName("__ok", c.varNames())
	c.SharedVars = append(c.SharedVars, expr.NewVariable(name, expr.Bool()))
	c.OkayBool = name

	logger.Debugf("synthesized error-tracking variable %s", name)

	return name
}

// freshUnknownProto generates a fresh `__unknown_N` prototype whose
// parameters are the thread-local variables in declaration order (§4.2).
func (c *Context) freshUnknownProto() script.ViewProto {
	name := freshName("__unknown", c.protoNames())
	params := append([]expr.Variable{}, c.ThreadVars...)
	proto := script.NewViewProto(name, params...)
	c.GeneratedProtos = append(c.GeneratedProtos, proto)

	logger.Debugf("filled a view gap with fresh prototype %s", name)

	return proto
}

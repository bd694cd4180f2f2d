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
package semantics

import (
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/microcode"
	"github.com/starling-verify/starling/pkg/starerr"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "semantics")

// Instantiate resolves a primitive invocation (name, caller args, caller
// results) against schemas, producing the microcode listing with caller
// expressions substituted for schema parameters (§4.6).
func Instantiate(
	name string,
	args, results []expr.Expr[expr.Variable],
	schemas PrimSemanticsMap,
) ([]microcode.Microcode[expr.Variable], error) {
	schema, ok := schemas[name]
	if !ok {
		return nil, starerr.MissingDef(name)
	}

	if len(args) != len(schema.Args) {
		return nil, starerr.CountMismatch(len(schema.Args), len(args))
	}

	if len(results) != len(schema.Results) {
		return nil, starerr.CountMismatch(len(schema.Results), len(results))
	}

	sub := make(map[string]expr.Expr[expr.Variable], len(args)+len(results))

	for i, p := range schema.Args {
		if !p.Type.Equals(args[i].ExprType()) {
			return nil, starerr.TypeMismatch(p.Name, args[i].ExprType().String())
		}

		sub[p.Name] = args[i]
	}

	for i, p := range schema.Results {
		if !p.Type.Equals(results[i].ExprType()) {
			return nil, starerr.TypeMismatch(p.Name, results[i].ExprType().String())
		}

		sub[p.Name] = results[i]
	}

	body, err := substMicrocode(schema.Body, sub)
	if err != nil {
		return nil, starerr.Instantiate(name, err)
	}

	logger.Debugf("instantiated primitive %s against %d argument(s) and %d result(s)", name, len(args), len(results))

	return body, nil
}

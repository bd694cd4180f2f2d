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
package cmd

import (
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/starling-verify/starling/pkg/config"
	"github.com/starling-verify/starling/pkg/desugar"
	"github.com/starling-verify/starling/pkg/expr"
	"github.com/starling-verify/starling/pkg/microcode"
	"github.com/starling-verify/starling/pkg/script"
	"github.com/starling-verify/starling/pkg/semantics"
	"github.com/starling-verify/starling/pkg/term"
	"github.com/starling-verify/starling/pkg/view"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Generate the verification conditions for a ticket-lock acquire.",
	Long: `Runs the core pipeline (view desugaring, command semantics, term
construction) over a small self-contained ticket-lock scenario and prints
the resulting terms. In a full system this would instead take a collated
script produced by an external parser/front end (§1's Non-goals).`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.VerificationConfig{
			SearchDepth: GetUint(cmd, "search-depth"),
			Strict:      GetFlag(cmd, "strict"),
			Verbose:     GetFlag(cmd, "verbose"),
		}

		if cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}

		if err := runVerify(cfg); err != nil {
			renderError(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

// ticketLockScript builds the scenario 1 demo directly (§8): a shared
// ticket counter, a thread-local held-ticket variable, a "locked"
// prototype guarding the pre-state and a "holds(t)" prototype guarding
// the post-state, and a single method whose body invokes the fetch
// primitive fetch(t, ticket++).
func ticketLockScript() *script.CollatedScript {
	ticket := expr.NewVariable("ticket", expr.Int())
	t := expr.NewVariable("t", expr.Int())
	src := expr.NewVariable("src", expr.Int())
	dst := expr.NewVariable("dst", expr.Int())

	var tExpr expr.Expr[expr.Variable] = expr.NewVar(t, expr.Int())

	fetchSchema := semantics.NewPrimSemantics(
		[]expr.Variable{src},
		[]expr.Variable{dst},
		microcode.NewAssign[expr.Variable](expr.NewVar(dst, expr.Int()), expr.NewVar(src, expr.Int())),
		microcode.NewAssign[expr.Variable](
			expr.NewVar(src, expr.Int()),
			expr.NewAdd[expr.Variable](expr.NewVar(src, expr.Int()), expr.NewIntLit[expr.Variable](1)),
		),
	)

	body := script.NewFullBlock[script.MarkedView, script.Command[script.MarkedView]](
		script.Mandatory(script.ViewFunc{Func: view.NewFunc[expr.Expr[expr.Variable]]("locked")}),
		script.Step[script.Command[script.MarkedView], script.MarkedView]{
			Cmd: script.FPrim[script.MarkedView]{
				Prims: []script.Atomic{
					script.APrim{Prim: script.NewPrimCommand("fetch", expr.NewVar(ticket, expr.Int())).WithResults(tExpr)},
				},
			},
			Post: script.Mandatory(script.ViewFunc{Func: view.NewFunc("holds", tExpr)}),
		},
	)

	return script.NewCollatedScript().
		WithShared(ticket).
		WithThread(t).
		WithViewProto(script.NewViewProto("locked")).
		WithViewProto(script.NewViewProto("holds", t)).
		WithPrim("fetch", fetchSchema).
		WithMethod(script.NewMethod("acquire", body)).
		WithSearchDepth(8)
}

// runVerify desugars every method of the demo script and prints one
// rendered formula per produced term (§4.9's "one term per goal function").
func runVerify(cfg config.VerificationConfig) error {
	cs := ticketLockScript()

	ctx := desugar.NewContext(cs.SharedVars, cs.ThreadVars, cs.ViewProtos)
	declared := append(append([]expr.Variable{}, cs.SharedVars...), cs.ThreadVars...)

	for _, name := range sortedMethodNames(cs) {
		method := cs.Methods[name]

		routine, err := term.BuildRoutine(ctx, cs.Prims, method.Body)
		if err != nil {
			return err
		}

		pre := desugar.Marked(ctx, method.Body.Pre)
		post := desugar.Marked(ctx, method.Body.Postcondition())

		terms, err := term.BuildTerms(declared, pre.View, routine, post.View)
		if err != nil {
			return err
		}

		for i, t := range terms {
			renderHeading(
				fmt.Sprintf("%s: term %d (goal %s)", method.Name, i, t.Goal.Name),
				t.Formula().String(),
			)
		}
	}

	return nil
}

func sortedMethodNames(cs *script.CollatedScript) []string {
	names := make([]string, 0, len(cs.Methods))
	for name := range cs.Methods {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

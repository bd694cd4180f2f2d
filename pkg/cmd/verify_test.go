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
	"testing"

	"github.com/starling-verify/starling/pkg/config"
)

// Test_RunVerify_00_TicketLockRunsWithoutError exercises the full pipeline
// (desugar -> command semantics -> term construction) end to end over the
// demo ticket-lock scenario and checks that it completes without error;
// the rendered terms are printed to stdout.
func Test_RunVerify_00_TicketLockRunsWithoutError(t *testing.T) {
	cs := ticketLockScript()

	if len(cs.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(cs.Methods))
	}

	if err := runVerify(config.DefaultVerificationConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

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

// Package config holds the options that shape a verification run, in the
// same role corset.CompilationConfig plays for a compilation run: a plain
// options struct threaded down from the CLI flags into the packages that
// need them, rather than read back out of global state.
package config

// VerificationConfig determines how pkg/cmd drives the term-generation
// pipeline (pkg/desugar, pkg/term) for a given collated script.
type VerificationConfig struct {
	// SearchDepth is the search-depth hint taken from the --search-depth
	// flag. It is carried in the config only: pkg/desugar's fresh-name
	// generation does not read it and has no bound on the candidates it
	// tries.
	SearchDepth uint
	// Strict is taken from the --strict flag. It is carried in the config
	// only: pkg/term always frames every declared shared and thread
	// variable, whatever its value.
	Strict bool
	// Verbose raises pkg/desugar's and pkg/semantics's logrus level to
	// Debug, surfacing fresh-name synthesis and gap-filling decisions.
	Verbose bool
}

// DefaultVerificationConfig mirrors corset's unset-compilation-config
// defaults: a search depth of 8 (the same default as the --search-depth
// flag) with Strict enabled and logging left at its default level.
func DefaultVerificationConfig() VerificationConfig {
	return VerificationConfig{
		SearchDepth: 8,
		Strict:      true,
		Verbose:     false,
	}
}

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
package expr

import (
	"fmt"
	"reflect"
)

// unknownNode builds a panic message for an expression node kind not
// recognised by an exhaustive switch.  Reaching this indicates a new node
// kind was added to the algebra without updating all traversals, i.e. a
// programmer error, not a runtime condition a caller can recover from.
func unknownNode[V any](e Expr[V]) string {
	return fmt.Sprintf("unknown expression node %q", reflect.TypeOf(e).String())
}

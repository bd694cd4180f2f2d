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

// Package expr implements the typed expression algebra of §3/§4.1: integer,
// Boolean and array expressions over a generic variable representation V,
// together with the simplifier, variable collection and the intermediate-
// stage fresh-name counter used by composition (§4.7).
package expr

import "fmt"

// Kind identifies the base type of an expression or variable.
type Kind uint8

const (
	// KindInt is the type of machine integers.
	KindInt Kind = iota
	// KindBool is the type of Booleans.
	KindBool
	// KindArray is the type of fixed-length arrays.
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	default:
		return "?"
	}
}

// Type is the base type of a Variable or Expr: Int, Bool, or Array(eltType,
// length).  Array carries its element type and fixed length so that Idx/Upd
// can be checked for compatibility against it.
type Type struct {
	Kind   Kind
	Elem   *Type
	Length uint
}

// Int constructs the integer type.
func Int() Type { return Type{Kind: KindInt} }

// Bool constructs the Boolean type.
func Bool() Type { return Type{Kind: KindBool} }

// Array constructs the type of a fixed-length array with the given element
// type and length.
func Array(elem Type, length uint) Type {
	e := elem
	return Type{Kind: KindArray, Elem: &e, Length: length}
}

// Equals returns whether two types denote the same shape.
func (t Type) Equals(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}

	if t.Kind != KindArray {
		return true
	}

	return t.Length == o.Length && t.Elem.Equals(*o.Elem)
}

func (t Type) String() string {
	switch t.Kind {
	case KindArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Length)
	default:
		return t.Kind.String()
	}
}

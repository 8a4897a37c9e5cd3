// Copyright 2023 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import "fmt"

// T is the type tag of a runtime value. Every value in the system maps
// to exactly one primary tag.
type T uint8

const (
	// T_any matches every tag in a signature pattern.
	T_any T = iota

	// absence sentinels. The two kinds are distinct and not mutually equal.
	T_null
	T_undefined

	// scalar types
	T_bool
	T_number
	T_string
	T_bignum
	T_complex
	T_unit

	// container types
	T_sequence
	T_grid
)

func (t T) String() string {
	switch t {
	case T_any:
		return "any"
	case T_null:
		return "null"
	case T_undefined:
		return "undefined"
	case T_bool:
		return "bool"
	case T_number:
		return "number"
	case T_string:
		return "string"
	case T_bignum:
		return "bignum"
	case T_complex:
		return "complex"
	case T_unit:
		return "unit"
	case T_sequence:
		return "sequence"
	case T_grid:
		return "grid"
	}
	return fmt.Sprintf("unexpected type tag %d", t)
}

// IsContainer reports whether values with this tag hold other values.
func (t T) IsContainer() bool {
	return t == T_sequence || t == T_grid
}

// IsAbsent reports whether this tag is one of the two absence sentinels.
func (t T) IsAbsent() bool {
	return t == T_null || t == T_undefined
}

// TsToString formats a tag list the way dispatch error messages print it.
func TsToString(ts []T) string {
	s := "["
	for i, t := range ts {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s + "]"
}

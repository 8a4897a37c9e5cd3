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

// Package value defines the closed set of runtime values the dispatch and
// mapping machinery operates on: scalars, the two absence sentinels, and
// the two container shapes (Sequence, Grid).
package value

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/container/types"
)

// Value is the closed variant of runtime values. Every Value classifies
// to exactly one type tag.
type Value interface {
	Kind() types.T
	String() string
}

type Bool bool

func (Bool) Kind() types.T { return types.T_bool }

func (v Bool) String() string {
	if v {
		return "true"
	}
	return "false"
}

type Number float64

func (Number) Kind() types.T { return types.T_number }

func (v Number) String() string { return fmt.Sprintf("%v", float64(v)) }

type String string

func (String) Kind() types.T { return types.T_string }

func (v String) String() string { return fmt.Sprintf("%q", string(v)) }

// BigNum is an arbitrary-precision number. Its arithmetic is delegated to
// math/big; this module only ever asks it for exact comparison.
type BigNum struct {
	Float *big.Float
}

func (BigNum) Kind() types.T { return types.T_bignum }

func (v BigNum) String() string { return v.Float.Text('g', -1) }

// NewBigNum builds a BigNum from a float64.
func NewBigNum(f float64) BigNum {
	return BigNum{Float: big.NewFloat(f)}
}

type Complex complex128

func (Complex) Kind() types.T { return types.T_complex }

func (v Complex) String() string { return fmt.Sprintf("%v", complex128(v)) }

// Null is the null-like absence sentinel.
type Null struct{}

func (Null) Kind() types.T { return types.T_null }

func (Null) String() string { return "null" }

// Undefined is the undefined-like absence sentinel. It is distinct from
// Null; the two never compare equal to each other.
type Undefined struct{}

func (Undefined) Kind() types.T { return types.T_undefined }

func (Undefined) String() string { return "undefined" }

// Sequence is a one-dimensional ordered container. Elements may themselves
// be containers; nesting is always tree-shaped.
type Sequence []Value

func (Sequence) Kind() types.T { return types.T_sequence }

func (v Sequence) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Grid is a two-dimensional rectangular container. Build one with NewGrid,
// which enforces that all rows have the same length.
type Grid [][]Value

func (Grid) Kind() types.T { return types.T_grid }

func (v Grid) String() string {
	parts := make([]string, len(v))
	for i, row := range v {
		parts[i] = Sequence(row).String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Rows returns the number of rows.
func (v Grid) Rows() int { return len(v) }

// Cols returns the number of columns, 0 for an empty grid.
func (v Grid) Cols() int {
	if len(v) == 0 {
		return 0
	}
	return len(v[0])
}

// NewGrid validates rectangularity and returns the grid. A ragged input is
// a shape error, never silently truncated or padded.
func NewGrid(ctx context.Context, rows [][]Value) (Grid, error) {
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != len(rows[0]) {
			return nil, nerr.NewShapeMismatch(ctx,
				"grid row %d has %d columns, expected %d", i, len(rows[i]), len(rows[0]))
		}
	}
	return Grid(rows), nil
}

// FromGo classifies a native Go value into a Value. It is deterministic and
// total over the supported input set; anything else fails with
// ErrUnclassifiableValue.
func FromGo(ctx context.Context, v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Number(x), nil
	case int8:
		return Number(x), nil
	case int16:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint:
		return Number(x), nil
	case uint8:
		return Number(x), nil
	case uint16:
		return Number(x), nil
	case uint32:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case float64:
		return Number(x), nil
	case string:
		return String(x), nil
	case complex64:
		return Complex(x), nil
	case complex128:
		return Complex(x), nil
	case *big.Float:
		return BigNum{Float: x}, nil
	case []float64:
		s := make(Sequence, len(x))
		for i, e := range x {
			s[i] = Number(e)
		}
		return s, nil
	case []int:
		s := make(Sequence, len(x))
		for i, e := range x {
			s[i] = Number(e)
		}
		return s, nil
	case []string:
		s := make(Sequence, len(x))
		for i, e := range x {
			s[i] = String(e)
		}
		return s, nil
	case []any:
		s := make(Sequence, len(x))
		for i, e := range x {
			ev, err := FromGo(ctx, e)
			if err != nil {
				return nil, err
			}
			s[i] = ev
		}
		return s, nil
	case [][]float64:
		rows := make([][]Value, len(x))
		for i, row := range x {
			rows[i] = make([]Value, len(row))
			for j, e := range row {
				rows[i][j] = Number(e)
			}
		}
		return NewGrid(ctx, rows)
	case [][]any:
		rows := make([][]Value, len(x))
		for i, row := range x {
			rows[i] = make([]Value, len(row))
			for j, e := range row {
				ev, err := FromGo(ctx, e)
				if err != nil {
					return nil, err
				}
				rows[i][j] = ev
			}
		}
		return NewGrid(ctx, rows)
	}
	return nil, nerr.NewUnclassifiableValue(ctx, v)
}

// Classify returns the primary type tag of a native Go value.
func Classify(ctx context.Context, v any) (types.T, error) {
	val, err := FromGo(ctx, v)
	if err != nil {
		return 0, err
	}
	return val.Kind(), nil
}

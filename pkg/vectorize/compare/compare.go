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

// Package compare holds flat comparison kernels used as the fast path for
// element-wise operators over homogeneous numeric sequences.
package compare

import (
	"github.com/matrixorigin/numcore/pkg/common/floatcmp"
	"golang.org/x/exp/constraints"
)

type numericT interface {
	constraints.Integer | constraints.Float
}

// NumericNotEqual writes xs[i] != ys[i] into rs. Slices must have equal
// length; the caller validates shapes.
func NumericNotEqual[T numericT](xs, ys []T, rs []bool) []bool {
	for i := range xs {
		rs[i] = xs[i] != ys[i]
	}
	return rs
}

// NumericNotEqualScalar broadcasts x against ys.
func NumericNotEqualScalar[T numericT](x T, ys []T, rs []bool) []bool {
	for i := range ys {
		rs[i] = x != ys[i]
	}
	return rs
}

// Float64NotEqualTolerant is the epsilon-aware variant used by the unequal
// operator: elements compare equal when they are nearly equal under the
// relative tolerance.
func Float64NotEqualTolerant(xs, ys []float64, epsilon float64, rs []bool) []bool {
	for i := range xs {
		rs[i] = !floatcmp.NearlyEqual(xs[i], ys[i], epsilon)
	}
	return rs
}

// Float64NotEqualScalarTolerant broadcasts x against ys under the relative
// tolerance.
func Float64NotEqualScalarTolerant(x float64, ys []float64, epsilon float64, rs []bool) []bool {
	for i := range ys {
		rs[i] = !floatcmp.NearlyEqual(x, ys[i], epsilon)
	}
	return rs
}

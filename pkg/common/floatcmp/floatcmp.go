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

// Package floatcmp holds the relative-tolerance comparator the numeric
// comparison operators are built on.
package floatcmp

import "math"

// MinNormalizedDiff is the smallest absolute difference the relative
// comparison can resolve. Differences below this threshold always compare
// equal; this is an accepted precision boundary, not a defect.
const MinNormalizedDiff = 2.220446049250313e-16

// NearlyEqual reports whether a and b are equal within the given relative
// tolerance epsilon.
//
// The comparison is commutative and, for any non-NaN a, NearlyEqual(a, a, eps)
// is true. NaN never compares equal to anything, including itself. Infinities
// compare equal only to the same infinity.
func NearlyEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if isFinite(a) && isFinite(b) {
		diff := math.Abs(a - b)
		if diff < MinNormalizedDiff {
			return true
		}
		return diff <= math.Max(math.Abs(a), math.Abs(b))*epsilon
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

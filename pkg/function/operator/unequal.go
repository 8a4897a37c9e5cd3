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

package operator

import (
	"context"

	"github.com/matrixorigin/numcore/pkg/common/floatcmp"
	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/container/types"
	"github.com/matrixorigin/numcore/pkg/container/value"
	"github.com/matrixorigin/numcore/pkg/deepmap"
	"github.com/matrixorigin/numcore/pkg/function"
	"github.com/matrixorigin/numcore/pkg/vectorize/compare"
)

const (
	// UnequalName is the public entry point; its single overload accepts
	// any pair and fans out below.
	UnequalName = "unequal"

	// ScalarUnequalName holds the per-type scalar comparators. The deep
	// mapper never calls it directly; leaves re-enter UnequalName so that
	// nested sentinels and mixed scalar pairs are handled at any depth.
	ScalarUnequalName = "scalarUnequal"
)

func (e *Env) registerUnequal() {
	r := e.fns

	r.Register(ScalarUnequalName,
		function.NewSignature(function.Exact(types.T_bool), function.Exact(types.T_bool)),
		e.boolUnequal)
	r.Register(ScalarUnequalName,
		function.NewSignature(function.Exact(types.T_number), function.Exact(types.T_number)),
		e.numberUnequal)
	r.Register(ScalarUnequalName,
		function.NewSignature(function.Exact(types.T_bignum), function.Exact(types.T_bignum)),
		e.bignumUnequal)
	r.Register(ScalarUnequalName,
		function.NewSignature(function.Exact(types.T_complex), function.Exact(types.T_complex)),
		e.complexUnequal)
	r.Register(ScalarUnequalName,
		function.NewSignature(function.Exact(types.T_unit), function.Exact(types.T_unit)),
		e.unitUnequal)
	r.Register(ScalarUnequalName,
		function.NewSignature(function.Exact(types.T_string), function.Exact(types.T_string)),
		e.stringUnequal)

	r.Register(UnequalName,
		function.NewSignature(function.Any(), function.Any()),
		e.unequalAny)
}

// Unequal is the element-wise != entry point.
func (e *Env) Unequal(ctx context.Context, x, y value.Value) (value.Value, error) {
	return e.fns.Call(ctx, UnequalName, []value.Value{x, y})
}

func (e *Env) unequalAny(ctx context.Context, args []value.Value) (value.Value, error) {
	x, y := args[0], args[1]

	// Absence sentinels compare by identity of kind, before any type
	// dispatch and without numeric tolerance. null and undefined are
	// distinct kinds and never equal each other.
	if x.Kind().IsAbsent() || y.Kind().IsAbsent() {
		return value.Bool(x.Kind() != y.Kind()), nil
	}

	if x.Kind().IsContainer() || y.Kind().IsContainer() {
		if out, ok := e.flatNumericFastPath(x, y); ok {
			return out, nil
		}
		leaf := func(ctx context.Context, a, b value.Value) (value.Value, error) {
			return e.fns.Call(ctx, UnequalName, []value.Value{a, b})
		}
		return deepmap.Map2(ctx, x, y, leaf, deepmap.Options{MaxDepth: e.maxDepth})
	}

	return e.fns.Call(ctx, ScalarUnequalName, args)
}

// flatNumericFastPath handles the hot case of flat all-number sequences
// with a single kernel pass instead of per-leaf dispatch. Results are
// identical to the general path.
func (e *Env) flatNumericFastPath(x, y value.Value) (value.Value, bool) {
	if xs, ok := asNumbers(x); ok {
		if ys, ok := asNumbers(y); ok {
			if len(xs) != len(ys) {
				return nil, false // let the mapper report the shape error
			}
			rs := make([]bool, len(xs))
			compare.Float64NotEqualTolerant(xs, ys, e.epsilon, rs)
			return boolsToSequence(rs), true
		}
		if n, ok := y.(value.Number); ok {
			rs := make([]bool, len(xs))
			compare.Float64NotEqualScalarTolerant(float64(n), xs, e.epsilon, rs)
			return boolsToSequence(rs), true
		}
		return nil, false
	}
	if n, ok := x.(value.Number); ok {
		if ys, ok := asNumbers(y); ok {
			rs := make([]bool, len(ys))
			compare.Float64NotEqualScalarTolerant(float64(n), ys, e.epsilon, rs)
			return boolsToSequence(rs), true
		}
	}
	return nil, false
}

func asNumbers(v value.Value) ([]float64, bool) {
	s, ok := v.(value.Sequence)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(s))
	for i, elem := range s {
		n, isNum := elem.(value.Number)
		if !isNum {
			return nil, false
		}
		out[i] = float64(n)
	}
	return out, true
}

func boolsToSequence(rs []bool) value.Sequence {
	out := make(value.Sequence, len(rs))
	for i, b := range rs {
		out[i] = value.Bool(b)
	}
	return out
}

func (e *Env) boolUnequal(_ context.Context, args []value.Value) (value.Value, error) {
	return value.Bool(args[0].(value.Bool) != args[1].(value.Bool)), nil
}

func (e *Env) numberUnequal(_ context.Context, args []value.Value) (value.Value, error) {
	a, b := args[0].(value.Number), args[1].(value.Number)
	return value.Bool(!floatcmp.NearlyEqual(float64(a), float64(b), e.epsilon)), nil
}

func (e *Env) bignumUnequal(_ context.Context, args []value.Value) (value.Value, error) {
	a, b := args[0].(value.BigNum), args[1].(value.BigNum)
	return value.Bool(a.Float.Cmp(b.Float) != 0), nil
}

func (e *Env) complexUnequal(_ context.Context, args []value.Value) (value.Value, error) {
	a, b := complex128(args[0].(value.Complex)), complex128(args[1].(value.Complex))
	unequal := !floatcmp.NearlyEqual(real(a), real(b), e.epsilon) ||
		!floatcmp.NearlyEqual(imag(a), imag(b), e.epsilon)
	return value.Bool(unequal), nil
}

func (e *Env) unitUnequal(ctx context.Context, args []value.Value) (value.Value, error) {
	a, b := args[0].(value.Unit), args[1].(value.Unit)
	if !a.SameBase(b) {
		return nil, nerr.NewIncompatibleUnitBase(ctx, a.Name, b.Name)
	}
	return value.Bool(!floatcmp.NearlyEqual(a.BaseMagnitude(), b.BaseMagnitude(), e.epsilon)), nil
}

func (e *Env) stringUnequal(_ context.Context, args []value.Value) (value.Value, error) {
	return value.Bool(args[0].(value.String) != args[1].(value.String)), nil
}

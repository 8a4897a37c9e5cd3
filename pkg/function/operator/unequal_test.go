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
	"testing"

	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/config"
	"github.com/matrixorigin/numcore/pkg/container/value"
	"github.com/matrixorigin/numcore/pkg/testutil"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

func newTestEnv() *Env {
	return NewEnv(config.NewDefaultParameters())
}

func TestUnequalNumbers(t *testing.T) {
	convey.Convey("test number unequal", t, func() {
		e := newTestEnv()
		ctx := context.Background()
		cases := []struct {
			left   float64
			right  float64
			result bool
		}{
			{4, 4, false},
			{4, 5, true},
			{0, 0, false},
			{-1, 1, true},
			{1, 1 + 1e-13, false}, // below epsilon
			{1, 1 + 1e-11, true},  // above epsilon
			{0, 1e-17, false},     // below the resolvable difference floor
		}
		for _, c := range cases {
			got, err := e.Unequal(ctx, value.Number(c.left), value.Number(c.right))
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, value.Bool(c.result))
		}
	})
}

func TestUnequalBoolsAndStrings(t *testing.T) {
	convey.Convey("test bool and string unequal", t, func() {
		e := newTestEnv()
		ctx := context.Background()

		got, err := e.Unequal(ctx, value.Bool(true), value.Bool(true))
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, value.Bool(false))

		got, err = e.Unequal(ctx, value.Bool(true), value.Bool(false))
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, value.Bool(true))

		got, err = e.Unequal(ctx, value.String("abc"), value.String("abd"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, value.Bool(true))

		got, err = e.Unequal(ctx, value.String("abc"), value.String("abc"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldResemble, value.Bool(false))
	})
}

func TestUnequalSentinels(t *testing.T) {
	convey.Convey("test absence sentinel identity", t, func() {
		e := newTestEnv()
		ctx := context.Background()
		null := value.Null{}
		undef := value.Undefined{}

		cases := []struct {
			x, y   value.Value
			result bool
		}{
			{null, null, false},
			{undef, undef, false},
			{null, undef, true},
			{undef, null, true},
			{null, value.Number(0), true},
			{value.Number(0), null, true},
			{undef, value.Number(0), true},
			{null, value.String(""), true},
		}
		for _, c := range cases {
			got, err := e.Unequal(ctx, c.x, c.y)
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, value.Bool(c.result))
		}
	})
}

func TestUnequalSymmetry(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	pairs := [][2]value.Value{
		{value.Number(4), value.Number(5)},
		{value.Number(4), value.Number(4)},
		{value.Bool(true), value.Bool(false)},
		{value.String("a"), value.String("b")},
		{value.NewBigNum(2.5), value.NewBigNum(2.5)},
		{value.Complex(complex(1, 2)), value.Complex(complex(1, 3))},
		{testutil.MustParseUnit("50 cm"), testutil.MustParseUnit("5 m")},
		{value.Bool(true), value.Number(1)},
		{value.Number(2.5), value.NewBigNum(2.5)},
	}
	for _, p := range pairs {
		xy, err := e.Unequal(ctx, p[0], p[1])
		require.NoError(t, err)
		yx, err := e.Unequal(ctx, p[1], p[0])
		require.NoError(t, err)
		require.Equal(t, xy, yx, "pair %v, %v", p[0], p[1])
	}
}

func TestUnequalSequences(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	got, err := e.Unequal(ctx,
		testutil.MakeNumberSequence(2, 5, 1),
		testutil.MakeNumberSequence(2, 7, 1))
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolSequence(false, true, false), got)

	// result length equals input length and each element is the scalar result
	got, err = e.Unequal(ctx,
		testutil.MakeStringSequence("a", "b"),
		testutil.MakeStringSequence("a", "c"))
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolSequence(false, true), got)
}

func TestUnequalBroadcast(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	got, err := e.Unequal(ctx, value.Number(5), testutil.MakeNumberSequence(2, 5, 1))
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolSequence(true, false, true), got)

	got, err = e.Unequal(ctx, testutil.MakeNumberSequence(2, 5, 1), value.Number(5))
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolSequence(true, false, true), got)

	// broadcast against a grid goes through the general mapper
	got, err = e.Unequal(ctx, value.Number(2), testutil.MakeNumberGrid([]float64{1, 2}, []float64{2, 3}))
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolGrid([]bool{true, false}, []bool{false, true}), got)
}

func TestUnequalGrids(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	got, err := e.Unequal(ctx,
		testutil.MakeNumberGrid([]float64{1, 2}, []float64{3, 4}),
		testutil.MakeNumberGrid([]float64{1, 9}, []float64{3, 4}))
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolGrid([]bool{false, true}, []bool{false, false}), got)
}

func TestUnequalShapeMismatch(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	_, err := e.Unequal(ctx,
		testutil.MakeNumberSequence(1, 2, 3),
		testutil.MakeNumberSequence(1, 2, 3, 4))
	require.True(t, nerr.IsNErrCode(err, nerr.ErrShapeMismatch))

	// rank mismatch, not silently reconciled
	_, err = e.Unequal(ctx,
		testutil.MakeNumberSequence(1, 2),
		testutil.MakeNumberGrid([]float64{1, 2}))
	require.True(t, nerr.IsNErrCode(err, nerr.ErrShapeMismatch))
}

func TestUnequalNestedSentinels(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	x := value.Sequence{value.Null{}, value.Number(1)}
	y := value.Sequence{value.Null{}, value.Number(2)}
	got, err := e.Unequal(ctx, x, y)
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolSequence(false, true), got)

	x = value.Sequence{value.Null{}}
	y = value.Sequence{value.Undefined{}}
	got, err = e.Unequal(ctx, x, y)
	require.NoError(t, err)
	require.Equal(t, testutil.MakeBoolSequence(true), got)
}

func TestUnequalBigNum(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	got, err := e.Unequal(ctx, value.NewBigNum(2.5), value.NewBigNum(2.5))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), got)

	got, err = e.Unequal(ctx, value.NewBigNum(2.5), value.NewBigNum(3))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), got)

	// number widens to bignum through the conversion graph
	got, err = e.Unequal(ctx, value.Number(2.5), value.NewBigNum(2.5))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), got)
}

func TestUnequalComplex(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	got, err := e.Unequal(ctx, value.Complex(complex(1, 2)), value.Complex(complex(1, 2)))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), got)

	// differing imaginary component alone is enough
	got, err = e.Unequal(ctx, value.Complex(complex(1, 2)), value.Complex(complex(1, 3)))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), got)

	got, err = e.Unequal(ctx, value.Complex(complex(2, 2)), value.Complex(complex(1, 2)))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), got)
}

func TestUnequalUnits(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	// 50 cm == 0.5 m after base conversion
	got, err := e.Unequal(ctx,
		testutil.MustParseUnit("50 cm"),
		testutil.MustParseUnit("0.5 m"))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), got)

	got, err = e.Unequal(ctx,
		testutil.MustParseUnit("50 cm"),
		testutil.MustParseUnit("5 m"))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), got)

	_, err = e.Unequal(ctx,
		testutil.MustParseUnit("50 cm"),
		testutil.MustParseUnit("5 kg"))
	require.True(t, nerr.IsNErrCode(err, nerr.ErrIncompatibleUnitBase))
}

func TestUnequalBoolNumberConversion(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	// bool widens to number: true compares equal to 1
	got, err := e.Unequal(ctx, value.Bool(true), value.Number(1))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), got)

	got, err = e.Unequal(ctx, value.Bool(true), value.Number(0))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), got)
}

func TestUnequalNoMatchingSignature(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	// no scalarUnequal overload and no conversion path for these pairs
	_, err := e.Unequal(ctx, value.String("x"), value.Number(1))
	require.True(t, nerr.IsNErrCode(err, nerr.ErrNoMatchingSignature))

	_, err = e.Unequal(ctx, testutil.MustParseUnit("5 m"), value.Number(5))
	require.True(t, nerr.IsNErrCode(err, nerr.ErrNoMatchingSignature))

	// inside a container the same failure propagates out
	_, err = e.Unequal(ctx,
		value.Sequence{value.String("x")},
		testutil.MakeNumberSequence(1))
	require.True(t, nerr.IsNErrCode(err, nerr.ErrNoMatchingSignature))
}

func TestUnequalFastPathMatchesGeneralPath(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	xs := []float64{1, 2, 3, 1 + 1e-13, 5}
	ys := []float64{1, 9, 3, 1, 5.5}

	// flat numeric sequences take the kernel fast path
	fast, err := e.Unequal(ctx, testutil.MakeNumberSequence(xs...), testutil.MakeNumberSequence(ys...))
	require.NoError(t, err)

	// forcing a mixed element disables the fast path but not the answer
	xv := testutil.MakeNumberSequence(xs...)
	yv := testutil.MakeNumberSequence(ys...)
	xMixed := append(value.Sequence{}, xv...)
	yMixed := append(value.Sequence{}, yv...)
	xMixed = append(xMixed, value.String("t"))
	yMixed = append(yMixed, value.String("t"))
	slow, err := e.Unequal(ctx, xMixed, yMixed)
	require.NoError(t, err)

	require.Equal(t, fast, slow.(value.Sequence)[:len(xs)])
}

func TestUnequalMaxDepthFromConfig(t *testing.T) {
	params := config.NewDefaultParameters()
	params.MaxNestingDepth = 3
	e := NewEnv(params)
	ctx := context.Background()

	deep := value.Sequence{value.Sequence{value.Sequence{value.Sequence{value.Number(1)}}}}
	_, err := e.Unequal(ctx, deep, deep)
	require.True(t, nerr.IsNErrCode(err, nerr.ErrMaxDepthExceeded))
}

func TestUnequalEpsilonFromConfig(t *testing.T) {
	params := config.NewDefaultParameters()
	params.Epsilon = 0.1
	e := NewEnv(params)
	ctx := context.Background()

	got, err := e.Unequal(ctx, value.Number(100), value.Number(109))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), got)

	got, err = e.Unequal(ctx, value.Number(100), value.Number(120))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), got)
}

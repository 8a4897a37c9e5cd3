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

// Package deepmap walks two container structures in lock-step, applying a
// binary scalar function at the leaves and rebuilding the shared shape.
package deepmap

import (
	"context"

	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/container/value"
)

// LeafFunc is applied to every scalar pair. For operators it re-enters the
// dispatch registry, so nested absence sentinels and mixed scalar types get
// the same treatment at any depth.
type LeafFunc func(ctx context.Context, x, y value.Value) (value.Value, error)

// DefaultMaxDepth bounds container nesting. Containers are tree-shaped, so
// the walk always terminates; the bound only guards the call stack against
// adversarially deep inputs.
const DefaultMaxDepth = 1000

// Options tunes one Map2 walk.
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Map2 applies leaf element-wise across x and y.
//
// Both scalars: the leaf applies directly. One scalar, one container: the
// scalar is broadcast against every element, preserving the container's
// shape. Two sequences must have equal length and two grids equal
// dimensions, otherwise the call fails with ErrShapeMismatch; a sequence
// against a grid is a rank mismatch and is never silently reconciled.
// The result is freshly built; input structures are not modified.
func Map2(ctx context.Context, x, y value.Value, leaf LeafFunc, opts Options) (value.Value, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return map2(ctx, x, y, leaf, 0, maxDepth)
}

func map2(ctx context.Context, x, y value.Value, leaf LeafFunc, depth, maxDepth int) (value.Value, error) {
	if depth >= maxDepth {
		return nil, nerr.NewMaxDepthExceeded(ctx, maxDepth)
	}

	xc, yc := x.Kind().IsContainer(), y.Kind().IsContainer()
	switch {
	case !xc && !yc:
		return leaf(ctx, x, y)

	case xc && !yc:
		return broadcast(ctx, x, y, leaf, depth, maxDepth, false)

	case !xc && yc:
		return broadcast(ctx, y, x, leaf, depth, maxDepth, true)
	}

	xs, xIsSeq := x.(value.Sequence)
	ys, yIsSeq := y.(value.Sequence)
	if xIsSeq != yIsSeq {
		return nil, nerr.NewShapeMismatch(ctx,
			"rank mismatch: %s against %s", x.Kind(), y.Kind())
	}
	if xIsSeq {
		if len(xs) != len(ys) {
			return nil, nerr.NewShapeMismatch(ctx,
				"sequence lengths %d and %d differ", len(xs), len(ys))
		}
		out := make(value.Sequence, len(xs))
		for i := range xs {
			r, err := map2(ctx, xs[i], ys[i], leaf, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}

	xg := x.(value.Grid)
	yg := y.(value.Grid)
	if xg.Rows() != yg.Rows() || xg.Cols() != yg.Cols() {
		return nil, nerr.NewShapeMismatch(ctx,
			"grid dimensions %dx%d and %dx%d differ",
			xg.Rows(), xg.Cols(), yg.Rows(), yg.Cols())
	}
	rows := make([][]value.Value, xg.Rows())
	for i := range xg {
		rows[i] = make([]value.Value, len(xg[i]))
		for j := range xg[i] {
			r, err := map2(ctx, xg[i][j], yg[i][j], leaf, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			rows[i][j] = r
		}
	}
	return value.NewGrid(ctx, rows)
}

// broadcast applies the scalar s against every element of container c.
// swapped records which side of the original call the scalar came from,
// so non-commutative leaves see their arguments in call order.
func broadcast(ctx context.Context, c, s value.Value, leaf LeafFunc, depth, maxDepth int, swapped bool) (value.Value, error) {
	pair := func(ctx context.Context, elem value.Value) (value.Value, error) {
		if swapped {
			return map2(ctx, s, elem, leaf, depth+1, maxDepth)
		}
		return map2(ctx, elem, s, leaf, depth+1, maxDepth)
	}

	switch cv := c.(type) {
	case value.Sequence:
		out := make(value.Sequence, len(cv))
		for i, elem := range cv {
			r, err := pair(ctx, elem)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case value.Grid:
		rows := make([][]value.Value, cv.Rows())
		for i := range cv {
			rows[i] = make([]value.Value, len(cv[i]))
			for j, elem := range cv[i] {
				r, err := pair(ctx, elem)
				if err != nil {
					return nil, err
				}
				rows[i][j] = r
			}
		}
		return value.NewGrid(ctx, rows)
	}
	return nil, nerr.NewInternal(ctx, "broadcast over non-container %s", c.Kind())
}

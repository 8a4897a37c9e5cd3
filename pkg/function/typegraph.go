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

package function

import (
	"context"
	"math/big"

	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/container/types"
	"github.com/matrixorigin/numcore/pkg/container/value"
)

// ConvFunc applies one implicit conversion edge.
type ConvFunc func(ctx context.Context, v value.Value) (value.Value, error)

type convEdge struct {
	to   types.T
	cost int64
	fn   ConvFunc
}

// TypeGraph is the conversion graph consulted during overload resolution:
// directed edges between type tags, each with a non-negative cost and a
// conversion function. Identity is always reachable at cost zero.
//
// The graph is populated during the registration phase and read-only
// afterwards, so concurrent resolution needs no locking.
type TypeGraph struct {
	edges map[types.T][]convEdge
}

func NewTypeGraph() *TypeGraph {
	return &TypeGraph{edges: make(map[types.T][]convEdge)}
}

// AddConversion registers a directed conversion edge. Cost must be
// non-negative; a duplicate edge for the same (from, to) pair replaces
// the earlier one.
func (g *TypeGraph) AddConversion(from, to types.T, cost int64, fn ConvFunc) {
	if cost < 0 {
		panic("conversion cost must be non-negative")
	}
	for i, e := range g.edges[from] {
		if e.to == to {
			g.edges[from][i] = convEdge{to: to, cost: cost, fn: fn}
			return
		}
	}
	g.edges[from] = append(g.edges[from], convEdge{to: to, cost: cost, fn: fn})
}

// Cost returns the cheapest path cost from one tag to another, and whether
// any path exists. The graph is tiny and static, so a plain Dijkstra scan
// per query is cheap enough.
func (g *TypeGraph) Cost(from, to types.T) (int64, bool) {
	if from == to {
		return 0, true
	}
	_, cost, ok := g.cheapestPath(from, to)
	return cost, ok
}

// Convert rewrites v to the target tag by applying the conversion functions
// along the cheapest path. Fails with ErrConversionUnsupported when the
// target is unreachable.
func (g *TypeGraph) Convert(ctx context.Context, v value.Value, to types.T) (value.Value, error) {
	from := v.Kind()
	if from == to {
		return v, nil
	}
	path, _, ok := g.cheapestPath(from, to)
	if !ok {
		return nil, nerr.NewConversionUnsupported(ctx, from.String(), to.String())
	}
	var err error
	for _, fn := range path {
		if v, err = fn(ctx, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (g *TypeGraph) cheapestPath(from, to types.T) ([]ConvFunc, int64, bool) {
	type state struct {
		cost int64
		prev types.T
		via  ConvFunc
		done bool
	}
	dist := map[types.T]*state{from: {}}
	for {
		// pick the cheapest unsettled node
		var cur types.T
		var curState *state
		for t, s := range dist {
			if !s.done && (curState == nil || s.cost < curState.cost) {
				cur, curState = t, s
			}
		}
		if curState == nil {
			return nil, 0, false
		}
		if cur == to {
			var path []ConvFunc
			for t := to; t != from; t = dist[t].prev {
				path = append([]ConvFunc{dist[t].via}, path...)
			}
			return path, curState.cost, true
		}
		curState.done = true
		for _, e := range g.edges[cur] {
			next := curState.cost + e.cost
			if s, ok := dist[e.to]; !ok || next < s.cost {
				dist[e.to] = &state{cost: next, prev: cur, via: e.fn}
			}
		}
	}
}

// DefaultTypeGraph returns the conversion graph the operators register
// against: widening-only edges, costed so that any single hop is cheaper
// than any two-hop path.
func DefaultTypeGraph() *TypeGraph {
	g := NewTypeGraph()
	g.AddConversion(types.T_bool, types.T_number, 1, func(_ context.Context, v value.Value) (value.Value, error) {
		if v.(value.Bool) {
			return value.Number(1), nil
		}
		return value.Number(0), nil
	})
	g.AddConversion(types.T_number, types.T_bignum, 2, func(_ context.Context, v value.Value) (value.Value, error) {
		return value.BigNum{Float: big.NewFloat(float64(v.(value.Number)))}, nil
	})
	g.AddConversion(types.T_number, types.T_complex, 3, func(_ context.Context, v value.Value) (value.Value, error) {
		return value.Complex(complex(float64(v.(value.Number)), 0)), nil
	})
	g.AddConversion(types.T_bignum, types.T_complex, 4, func(_ context.Context, v value.Value) (value.Value, error) {
		f, _ := v.(value.BigNum).Float.Float64()
		return value.Complex(complex(f, 0)), nil
	})
	return g
}

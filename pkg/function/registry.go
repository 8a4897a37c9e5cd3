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

// Package function implements typed multiple dispatch: a registry of
// (signature, implementation) overloads per function name, resolved at
// call time from the runtime type tags of all arguments, with implicit
// conversions ranked by path cost through a TypeGraph.
package function

import (
	"context"

	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/container/types"
	"github.com/matrixorigin/numcore/pkg/container/value"
	"github.com/matrixorigin/numcore/pkg/logutil"
)

// Impl is one concrete implementation bound to a signature. Arguments have
// already been converted to the signature's accepted tags when it runs.
type Impl func(ctx context.Context, args []value.Value) (value.Value, error)

type overload struct {
	sig Signature
	fn  Impl
}

// Registry records all overloads of all function names, together with the
// conversion graph used to rank inexact matches.
//
// Registration happens once at startup, before any concurrent Call; after
// that the registry is read-only and safe for unlimited concurrent callers.
type Registry struct {
	graph *TypeGraph
	fns   map[string][]overload
}

func NewRegistry(graph *TypeGraph) *Registry {
	return &Registry{
		graph: graph,
		fns:   make(map[string][]overload),
	}
}

// TypeGraph returns the conversion graph the registry resolves against.
func (r *Registry) TypeGraph() *TypeGraph {
	return r.graph
}

// Register binds an implementation to a signature under the given name.
// Registering a duplicate signature replaces the prior entry in place, so
// registration order — the final tie-break — is stable.
func (r *Registry) Register(name string, sig Signature, fn Impl) {
	logutil.Debugf("register %s%s", name, sig)
	for i, ov := range r.fns[name] {
		if ov.sig.equal(sig) {
			r.fns[name][i] = overload{sig: sig, fn: fn}
			return
		}
	}
	r.fns[name] = append(r.fns[name], overload{sig: sig, fn: fn})
}

// Resolution is the outcome of a successful Resolve: the implementation to
// invoke and, when the match was inexact, the per-argument target tags to
// convert to first.
type Resolution struct {
	Fn       Impl
	NeedCast bool
	Targets  []types.T
}

// Resolve finds the best-matching overload of name for the given argument
// tags. Exact matches win; otherwise the viable overload with the lowest
// total conversion cost is chosen, ties broken by specificity (more
// non-wildcard positions) and then by registration order.
func (r *Registry) Resolve(ctx context.Context, name string, argTags []types.T) (Resolution, error) {
	overloads, ok := r.fns[name]
	if !ok {
		return Resolution{}, nerr.NewUnknownFunction(ctx, name)
	}

	bestIdx := -1
	var bestCost int64
	var bestSpecificity int
	var bestTargets []types.T

	for idx, ov := range overloads {
		if len(ov.sig) != len(argTags) {
			continue
		}
		cost, targets, viable := r.matchCost(ov.sig, argTags)
		if !viable {
			continue
		}
		specificity := ov.sig.nonWildcardCount()
		if bestIdx < 0 || cost < bestCost ||
			(cost == bestCost && specificity > bestSpecificity) {
			bestIdx, bestCost, bestSpecificity, bestTargets = idx, cost, specificity, targets
		}
	}

	if bestIdx < 0 {
		return Resolution{}, nerr.NewNoMatchingSignature(ctx, name, types.TsToString(argTags))
	}
	res := Resolution{Fn: overloads[bestIdx].fn}
	// A zero-cost edge still converts, so compare tags rather than cost.
	for i, target := range bestTargets {
		if target != argTags[i] {
			res.NeedCast = true
			res.Targets = bestTargets
			break
		}
	}
	return res, nil
}

// matchCost computes the total conversion cost of binding argTags to sig,
// together with the per-position target tags. A position either hits its
// pattern directly (cost 0) or is reachable through the conversion graph;
// an unreachable position makes the whole signature non-viable.
func (r *Registry) matchCost(sig Signature, argTags []types.T) (int64, []types.T, bool) {
	var total int64
	targets := make([]types.T, len(argTags))
	for i, p := range sig {
		actual := argTags[i]
		if p.hits(actual) {
			targets[i] = actual
			continue
		}
		found := false
		var posCost int64
		var posTarget types.T
		for _, want := range p.Tags() {
			if c, ok := r.graph.Cost(actual, want); ok && (!found || c < posCost) {
				found, posCost, posTarget = true, c, want
			}
		}
		if !found {
			return 0, nil, false
		}
		total += posCost
		targets[i] = posTarget
	}
	return total, targets, true
}

// Call is the single invocation surface: resolve, convert arguments where
// the match was inexact, invoke. Operators call it at their entry points
// and the deep mapper calls it again for every leaf pair.
func (r *Registry) Call(ctx context.Context, name string, args []value.Value) (value.Value, error) {
	argTags := make([]types.T, len(args))
	for i, a := range args {
		argTags[i] = a.Kind()
	}
	res, err := r.Resolve(ctx, name, argTags)
	if err != nil {
		return nil, err
	}
	if res.NeedCast {
		converted := make([]value.Value, len(args))
		for i, a := range args {
			if converted[i], err = r.graph.Convert(ctx, a, res.Targets[i]); err != nil {
				return nil, err
			}
		}
		args = converted
	}
	return res.Fn(ctx, args)
}

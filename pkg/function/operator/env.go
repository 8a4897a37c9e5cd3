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

// Package operator registers the element-wise operators on top of the
// dispatch registry and the deep mapper.
package operator

import (
	"context"

	"github.com/matrixorigin/numcore/pkg/config"
	"github.com/matrixorigin/numcore/pkg/container/value"
	"github.com/matrixorigin/numcore/pkg/function"
)

// Env binds a function registry to the host-supplied parameters. Build it
// once at startup; after NewEnv returns, the registry is read-only and the
// Env is safe for unlimited concurrent callers.
type Env struct {
	fns      *function.Registry
	epsilon  float64
	maxDepth int
}

// NewEnv builds an environment with the default conversion graph and all
// operators registered.
func NewEnv(params *config.Parameters) *Env {
	e := &Env{
		fns:      function.NewRegistry(function.DefaultTypeGraph()),
		epsilon:  params.Epsilon,
		maxDepth: params.MaxNestingDepth,
	}
	e.registerUnequal()
	return e
}

// Functions exposes the registry, mainly so hosts can register further
// operators against the same conversion graph during their startup phase.
func (e *Env) Functions() *function.Registry {
	return e.fns
}

// Call invokes any registered function by name.
func (e *Env) Call(ctx context.Context, name string, args []value.Value) (value.Value, error) {
	return e.fns.Call(ctx, name, args)
}

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

package config

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/logutil"
)

// Parameters carries the host-supplied configuration. The core threads
// these values through explicitly; they are never ambient state.
type Parameters struct {
	// Epsilon is the relative tolerance used by numeric comparison.
	Epsilon float64 `toml:"epsilon"`

	// MaxNestingDepth bounds container nesting in the deep mapper.
	MaxNestingDepth int `toml:"max-nesting-depth"`

	Log logutil.LogConfig `toml:"log"`
}

// NewDefaultParameters returns the defaults used when no config file is
// given.
func NewDefaultParameters() *Parameters {
	return &Parameters{
		Epsilon:         1e-12,
		MaxNestingDepth: 1000,
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadParametersFromFile overlays values from a TOML file onto p.
func LoadParametersFromFile(ctx context.Context, path string, p *Parameters) error {
	if _, err := toml.DecodeFile(path, p); err != nil {
		return nerr.NewBadConfig(ctx, "decode %s: %v", path, err)
	}
	return p.Validate(ctx)
}

// Validate rejects parameter combinations the core cannot honor.
func (p *Parameters) Validate(ctx context.Context) error {
	if p.Epsilon < 0 || p.Epsilon >= 1 {
		return nerr.NewBadConfig(ctx, "epsilon %v out of range [0, 1)", p.Epsilon)
	}
	if p.MaxNestingDepth <= 0 {
		return nerr.NewBadConfig(ctx, "max-nesting-depth %d must be positive", p.MaxNestingDepth)
	}
	return nil
}

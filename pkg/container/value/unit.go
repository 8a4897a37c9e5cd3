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

package value

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matrixorigin/numcore/pkg/common/nerr"
	"github.com/matrixorigin/numcore/pkg/container/types"
)

// Unit is a magnitude with a physical unit. Comparison across units of the
// same base dimension converts both sides to the base unit first; units of
// different dimensions are incompatible.
type Unit struct {
	Magnitude float64
	Name      string

	scale float64
	dim   string
}

func (Unit) Kind() types.T { return types.T_unit }

func (v Unit) String() string {
	return fmt.Sprintf("%v %s", v.Magnitude, v.Name)
}

// Dim returns the physical base dimension, e.g. "length".
func (v Unit) Dim() string { return v.dim }

// BaseMagnitude returns the magnitude converted to the base unit of its
// dimension.
func (v Unit) BaseMagnitude() float64 { return v.Magnitude * v.scale }

// SameBase reports whether two units share a physical base dimension.
func (v Unit) SameBase(o Unit) bool { return v.dim == o.dim }

type unitDef struct {
	scale float64
	dim   string
}

// The table only carries what comparison needs: a scale to the base unit
// of each dimension. Full unit arithmetic is out of scope.
var unitTable = map[string]unitDef{
	"m":   {1, "length"},
	"km":  {1000, "length"},
	"cm":  {0.01, "length"},
	"mm":  {0.001, "length"},
	"kg":  {1, "mass"},
	"g":   {0.001, "mass"},
	"mg":  {1e-6, "mass"},
	"s":   {1, "time"},
	"min": {60, "time"},
	"h":   {3600, "time"},
}

// NewUnit builds a Unit from a magnitude and a unit symbol.
func NewUnit(ctx context.Context, magnitude float64, name string) (Unit, error) {
	def, ok := unitTable[name]
	if !ok {
		return Unit{}, nerr.NewUnknownUnit(ctx, name)
	}
	return Unit{Magnitude: magnitude, Name: name, scale: def.scale, dim: def.dim}, nil
}

// ParseUnit parses strings like "50 cm" or "5m".
func ParseUnit(ctx context.Context, s string) (Unit, error) {
	t := strings.TrimSpace(s)
	i := 0
	for i < len(t) && (t[i] == '+' || t[i] == '-' || t[i] == '.' || t[i] == 'e' ||
		t[i] == 'E' || (t[i] >= '0' && t[i] <= '9')) {
		i++
	}
	mag, err := strconv.ParseFloat(strings.TrimSpace(t[:i]), 64)
	if err != nil {
		return Unit{}, nerr.NewNotSupported(ctx, "unit literal '%s'", s)
	}
	return NewUnit(ctx, mag, strings.TrimSpace(t[i:]))
}

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

// Package testutil provides value constructors shared by tests.
package testutil

import (
	"context"

	"github.com/matrixorigin/numcore/pkg/container/value"
)

func MakeNumberSequence(vs ...float64) value.Sequence {
	s := make(value.Sequence, len(vs))
	for i, v := range vs {
		s[i] = value.Number(v)
	}
	return s
}

func MakeBoolSequence(vs ...bool) value.Sequence {
	s := make(value.Sequence, len(vs))
	for i, v := range vs {
		s[i] = value.Bool(v)
	}
	return s
}

func MakeStringSequence(vs ...string) value.Sequence {
	s := make(value.Sequence, len(vs))
	for i, v := range vs {
		s[i] = value.String(v)
	}
	return s
}

// MakeNumberGrid builds a rectangular grid of numbers; it panics on ragged
// input since tests construct only well-formed shapes with it.
func MakeNumberGrid(rows ...[]float64) value.Grid {
	out := make([][]value.Value, len(rows))
	for i, row := range rows {
		out[i] = make([]value.Value, len(row))
		for j, v := range row {
			out[i][j] = value.Number(v)
		}
	}
	g, err := value.NewGrid(context.Background(), out)
	if err != nil {
		panic(err)
	}
	return g
}

// MakeBoolGrid builds a rectangular grid of booleans.
func MakeBoolGrid(rows ...[]bool) value.Grid {
	out := make([][]value.Value, len(rows))
	for i, row := range rows {
		out[i] = make([]value.Value, len(row))
		for j, v := range row {
			out[i][j] = value.Bool(v)
		}
	}
	g, err := value.NewGrid(context.Background(), out)
	if err != nil {
		panic(err)
	}
	return g
}

// MustParseUnit parses a unit literal or panics.
func MustParseUnit(s string) value.Unit {
	u, err := value.ParseUnit(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return u
}

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
	"strings"

	"github.com/matrixorigin/numcore/pkg/container/types"
)

// Pattern matches one argument position of a signature: an exact tag, a
// set of tags, or the wildcard.
type Pattern struct {
	wildcard bool
	tags     []types.T
}

// Exact matches a single tag.
func Exact(t types.T) Pattern {
	return Pattern{tags: []types.T{t}}
}

// OneOf matches any tag from the given set.
func OneOf(ts ...types.T) Pattern {
	return Pattern{tags: ts}
}

// Any matches every tag at zero cost.
func Any() Pattern {
	return Pattern{wildcard: true}
}

// IsWildcard reports whether this pattern is the wildcard.
func (p Pattern) IsWildcard() bool { return p.wildcard }

// Tags returns the tags an exact or set pattern accepts directly.
func (p Pattern) Tags() []types.T { return p.tags }

func (p Pattern) hits(t types.T) bool {
	if p.wildcard {
		return true
	}
	for _, pt := range p.tags {
		if pt == t {
			return true
		}
	}
	return false
}

func (p Pattern) String() string {
	if p.wildcard {
		return "any"
	}
	if len(p.tags) == 1 {
		return p.tags[0].String()
	}
	parts := make([]string, len(p.tags))
	for i, t := range p.tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, "|")
}

// Signature is an ordered, fixed-arity list of patterns. Created once at
// registration time and immutable thereafter.
type Signature []Pattern

// NewSignature builds a signature from its positional patterns.
func NewSignature(ps ...Pattern) Signature {
	return Signature(ps)
}

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// equal is positional equality of patterns; used for replace-on-duplicate
// at registration.
func (s Signature) equal(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i].wildcard != o[i].wildcard {
			return false
		}
		if len(s[i].tags) != len(o[i].tags) {
			return false
		}
		for j := range s[i].tags {
			if s[i].tags[j] != o[i].tags[j] {
				return false
			}
		}
	}
	return true
}

func (s Signature) nonWildcardCount() int {
	n := 0
	for _, p := range s {
		if !p.wildcard {
			n++
		}
	}
	return n
}

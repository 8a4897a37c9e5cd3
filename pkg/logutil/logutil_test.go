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

package logutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	SetupLogger(&LogConfig{Level: "debug", Format: "json"})
	require.NotNil(t, GetGlobalLogger())
	require.True(t, GetGlobalLogger().Core().Enabled(-1)) // debug enabled

	SetupLogger(&LogConfig{Level: "error", Format: "console"})
	require.False(t, GetGlobalLogger().Core().Enabled(0)) // info disabled

	// bad level falls back to info
	SetupLogger(&LogConfig{Level: "nope", Format: "console"})
	require.True(t, GetGlobalLogger().Core().Enabled(0))
}

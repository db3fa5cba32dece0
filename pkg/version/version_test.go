// Copyright 2025 Arcade Team
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

package version

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoString(t *testing.T) {
	assert.Equal(t, "dev", (&Info{}).String())
	assert.Equal(t, "v1.2.0", (&Info{Version: "v1.2.0"}).String())
	assert.Equal(t, "v1.2.0-abc123", (&Info{Version: "v1.2.0", GitCommit: "abc123"}).String())
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	VersionCmd.SetArgs(nil)
	require.NoError(t, VersionCmd.Execute())

	assert.Contains(t, buf.String(), `"goVersion": "`+runtime.Version()+`"`)
	assert.Contains(t, buf.String(), `"platform": "`+runtime.GOOS+"/"+runtime.GOARCH+`"`)
}

// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pkgLogger = WithContext("pkg", "test")

func TestContextLoggerFollowsRoot(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LvlInfo, false)

	pkgLogger.Info("verified", "hash", "0x01")
	pkgLogger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "verified")
	assert.Contains(t, out, "pkg=test")
	assert.Contains(t, out, "hash=0x01")
	assert.NotContains(t, out, "hidden")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LvlDebug, true)

	pkgLogger.With("stage", "basic").Debug("rejected", "code", "InvalidChainId")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))
	assert.Equal(t, "rejected", record["msg"])
	assert.Equal(t, "test", record["pkg"])
	assert.Equal(t, "basic", record["stage"])
	assert.Equal(t, "InvalidChainId", record["code"])
}

func TestWithDoesNotAlias(t *testing.T) {
	base := WithContext("a", 1).(*contextLogger)
	l1 := base.With("b", 2).(*contextLogger)
	l2 := base.With("c", 3).(*contextLogger)
	assert.Equal(t, []any{"a", 1, "b", 2}, l1.ctx)
	assert.Equal(t, []any{"a", 1, "c", 3}, l2.ctx)
}

func TestLevelSwitch(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LvlWarn, false)

	pkgLogger.Info("before")
	Level().Set(LevelDebug)
	pkgLogger.Debug("after")

	out := buf.String()
	assert.NotContains(t, out, "before")
	assert.Contains(t, out, "after")
	assert.Equal(t, "debug", LevelString(Level().Level()))
}

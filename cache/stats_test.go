// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheStats(t *testing.T) {
	cs := &Stats{}
	assert.Equal(t, float64(0), cs.HitRate())
	assert.False(t, cs.Changed())

	cs.Hit()
	cs.Miss()
	assert.Equal(t, int64(1), cs.Hits())
	assert.Equal(t, int64(1), cs.Misses())
	assert.Equal(t, 0.5, cs.HitRate())
	assert.True(t, cs.Changed())
	assert.False(t, cs.Changed())

	cs.Hit()
	cs.Miss()
	assert.False(t, cs.Changed(), "rate unchanged")

	assert.Equal(t, int64(3), cs.Hit())
	assert.True(t, cs.Changed())
}

// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import "sync/atomic"

// Stats counts cache hits and misses.
type Stats struct {
	hit, miss atomic.Int64
	// hit rate in permille as of the last Changed call
	lastRate atomic.Int32
}

// Hit records a hit.
func (cs *Stats) Hit() int64 { return cs.hit.Add(1) }

// Miss records a miss.
func (cs *Stats) Miss() int64 { return cs.miss.Add(1) }

// Hits returns the number of hits.
func (cs *Stats) Hits() int64 { return cs.hit.Load() }

// Misses returns the number of misses.
func (cs *Stats) Misses() int64 { return cs.miss.Load() }

// HitRate returns hits / lookups, 0 without lookups.
func (cs *Stats) HitRate() float64 {
	hit := cs.hit.Load()
	lookups := hit + cs.miss.Load()
	if lookups == 0 {
		return 0
	}
	return float64(hit) / float64(lookups)
}

// Changed reports whether the hit rate moved by at least 0.1% since the previous call.
// Used to throttle periodic stats logging.
func (cs *Stats) Changed() bool {
	rate := int32(cs.HitRate() * 1000)
	return cs.lastRate.Swap(rate) != rate
}

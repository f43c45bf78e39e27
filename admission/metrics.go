// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package admission

import "github.com/zemse/parity-esn/metrics"

var (
	metricVerifiedCount    = metrics.LazyLoadCounterVec("verified_count", []string{"stage"})
	metricRejectedCount    = metrics.LazyLoadCounterVec("rejected_count", []string{"code"})
	metricRecoverDuration  = metrics.LazyLoadHistogram("recover_duration_us", metrics.BucketRecoverMicros)
	metricSenderCacheHits  = metrics.LazyLoadCounter("sender_cache_hit_count")
	metricSenderCacheItems = metrics.LazyLoadGauge("sender_cache_entries")
)

// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions

import "github.com/zemse/parity-esn/metrics"

var metricActionCount = metrics.LazyLoadCounterVec("api_verified_action_count", []string{"action"})

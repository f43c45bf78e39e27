// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/zemse/parity-esn/metrics"
)

// MetricsPath is where the scrape endpoint is served.
const MetricsPath = "/metrics"

// StartMetricsServer serves the gate, API and process metrics for scraping.
// Only GET is routed, other methods get 405.
func StartMetricsServer(addr string) (string, func(), error) {
	router := mux.NewRouter()
	router.Path(MetricsPath).
		Methods(http.MethodGet).
		Handler(metrics.HTTPHandler())

	return start("metrics API", addr, handlers.CompressHandler(router), MetricsPath)
}

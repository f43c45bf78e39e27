// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/zemse/parity-esn/log"
)

// maxLoggedBody caps the request body written to the log.
const maxLoggedBody = 1024

// RequestLoggerHandler returns a http handler logging every request with its body and duration.
func RequestLoggerHandler(handler http.Handler, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the body can be read only once, so it is restored for the next handler
		var bodyBytes []byte
		if r.Body != nil {
			var err error
			bodyBytes, err = io.ReadAll(r.Body)
			if err != nil {
				logger.Warn("unexpected body read error", "err", err)
				http.Error(w, "unable to read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}

		start := time.Now()
		handler.ServeHTTP(w, r)

		body := bodyBytes
		if len(body) > maxLoggedBody {
			body = body[:maxLoggedBody]
		}
		logger.Info("API Request",
			"URI", r.URL.String(),
			"Method", r.Method,
			"DurationMs", time.Since(start).Milliseconds(),
			"Body", string(body),
		)
	})
}

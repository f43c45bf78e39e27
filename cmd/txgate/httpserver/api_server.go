// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import "net/http"

// StartAPIServer serves handler on addr. Request bodies larger than maxBody bytes are cut off.
// It returns the base URL and a function stopping the server.
func StartAPIServer(addr string, handler http.Handler, maxBody int64) (string, func(), error) {
	if maxBody > 0 {
		handler = requestBodyLimit(handler, maxBody)
	}
	return start("API", addr, handler, "/")
}

func requestBodyLimit(h http.Handler, limit int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		h.ServeHTTP(w, r)
	})
}

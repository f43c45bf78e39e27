// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package httpserver starts the HTTP listeners of txgate.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/zemse/parity-esn/co"
	"github.com/zemse/parity-esn/log"
)

// ShutdownTimeout bounds how long a stopping server waits for in-flight requests.
var ShutdownTimeout = 5 * time.Second

var logger = log.WithContext("pkg", "httpserver")

// start serves handler on addr. The returned URL is the listening address followed by path.
func start(name, addr string, handler http.Handler, path string) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen %v addr [%v]", name, addr)
	}

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes co.Goes
	goes.Go(func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Warn("server stopped", "name", name, "err", err)
		}
	})
	return "http://" + listener.Addr().String() + path, func() {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("forcing server close", "name", name, "err", err)
			srv.Close()
		}
		if err := goes.WaitContext(ctx); err != nil {
			logger.Warn("server did not exit in time", "name", name, "err", err)
		}
	}, nil
}

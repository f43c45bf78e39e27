// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"log/slog"

	"github.com/zemse/parity-esn/api/admin"
)

// StartAdminServer serves the admin API, which switches logLevel at runtime.
func StartAdminServer(addr string, logLevel *slog.LevelVar) (string, func(), error) {
	return start("admin API", addr, admin.New(logLevel), "/admin")
}

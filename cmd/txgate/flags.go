// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/log"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML file holding the gate options",
	}
	chainIDFlag = cli.StringFlag{
		Name:  "chain-id",
		Usage: "chain id transactions must be bound to, 'none' accepts only transactions without replay protection (default 1)",
	}
	checkLowSFlag = cli.BoolTFlag{
		Name:  "check-low-s",
		Usage: "reject signatures with s in the upper half of the curve order",
	}
	allowEmptySignatureFlag = cli.BoolFlag{
		Name:  "allow-empty-signature",
		Usage: "admit unsigned transactions (r = s = 0)",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "maximum number of concurrent signature recoveries of a batch (default number of CPUs)",
	}
	maxTxSizeFlag = cli.Uint64Flag{
		Name:  "max-tx-size",
		Value: admission.DefaultMaxTxSize,
		Usage: "maximum size in bytes of an encoded transaction",
	}
	senderCacheSizeFlag = cli.IntFlag{
		Name:  "sender-cache-size",
		Value: 16384,
		Usage: "number of verified transactions remembered by hash (0 disables the cache)",
	}
	verbosityFlag = cli.Uint64Flag{
		Name:  "verbosity",
		Value: log.LvlInfo,
		Usage: "log verbosity (0-5)",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}

	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8669",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	enableAPILogsFlag = cli.BoolFlag{
		Name:  "enable-api-logs",
		Usage: "enables API requests logging",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enables metrics collection",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Value: "localhost:2112",
		Usage: "metrics service listening address",
	}
	enableAdminFlag = cli.BoolFlag{
		Name:  "enable-admin",
		Usage: "enables admin server",
	}
	adminAddrFlag = cli.StringFlag{
		Name:  "admin-addr",
		Value: "localhost:2113",
		Usage: "admin service listening address",
	}

	gateFlags = []cli.Flag{
		configFlag,
		chainIDFlag,
		checkLowSFlag,
		allowEmptySignatureFlag,
		workersFlag,
		maxTxSizeFlag,
		senderCacheSizeFlag,
		verbosityFlag,
		jsonLogsFlag,
	}

	serveFlags = []cli.Flag{
		apiAddrFlag,
		apiCorsFlag,
		enableAPILogsFlag,
		enableMetricsFlag,
		metricsAddrFlag,
		enableAdminFlag,
		adminAddrFlag,
	}
)

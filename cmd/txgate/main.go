// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// txgate runs the transaction admission gateway.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/zemse/parity-esn/api"
	"github.com/zemse/parity-esn/cmd/txgate/httpserver"
	"github.com/zemse/parity-esn/log"
	"github.com/zemse/parity-esn/metrics"
)

var (
	version       string
	gitCommit     string
	gitTag        string
	copyrightYear string

	logger = log.WithContext("pkg", "txgate")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = fullVersion()
	app.Name = "txgate"
	app.Usage = "Verifies untrusted transactions before they enter the pool"
	app.Copyright = fmt.Sprintf("2025-%s The VeChainThor developers", copyrightYear)
	app.Flags = append(append([]cli.Flag{}, gateFlags...), serveFlags...)
	app.Action = serveAction
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "serve the verification API (default)",
			Flags:  append(append([]cli.Flag{}, gateFlags...), serveFlags...),
			Action: serveAction,
		},
		{
			Name:      "verify",
			Usage:     "verify hex encoded transactions and print a JSON verdict for each",
			ArgsUsage: "<0xraw>...",
			Flags:     gateFlags,
			Action:    verifyAction,
		},
		{
			Name:      "analyse",
			Usage:     "list the transactions of a file whose action uses the legacy empty list encoding",
			ArgsUsage: "<file>",
			Flags:     []cli.Flag{verbosityFlag, jsonLogsFlag},
			Action:    analyseAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveAction(ctx *cli.Context) error {
	defer func() { logger.Info("exited") }()

	if err := initLogger(ctx); err != nil {
		return err
	}
	gate, err := newGate(ctx)
	if err != nil {
		return err
	}
	opts := gate.Options()

	exitSignal := handleExitSignal()

	enableMetrics := ctx.Bool(enableMetricsFlag.Name)
	if enableMetrics {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return errors.Wrap(err, "start metrics server")
		}
		defer func() { logger.Info("stopping metrics server..."); closeFunc() }()
		logger.Info("metrics server started", "url", url)
	}

	if ctx.Bool(enableAdminFlag.Name) {
		url, closeFunc, err := httpserver.StartAdminServer(ctx.String(adminAddrFlag.Name), log.Level())
		if err != nil {
			return errors.Wrap(err, "start admin server")
		}
		defer func() { logger.Info("stopping admin server..."); closeFunc() }()
		logger.Info("admin server started", "url", url)
	}

	handler := api.New(gate, api.Options{
		AllowedOrigins:  ctx.String(apiCorsFlag.Name),
		EnableReqLogger: ctx.Bool(enableAPILogsFlag.Name),
		EnableMetrics:   enableMetrics,
	})
	// hex doubles the payload, the JSON envelope adds the rest
	apiURL, stopAPI, err := httpserver.StartAPIServer(ctx.String(apiAddrFlag.Name), handler, int64(opts.MaxTxSize)*2+4096)
	if err != nil {
		return err
	}
	defer func() { logger.Info("stopping API server..."); stopAPI() }()

	printStartupMessage(ctx.App.Writer, opts, apiURL)

	<-exitSignal.Done()
	return nil
}

// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/log"
)

func initLogger(ctx *cli.Context) error {
	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse verbosity flag")
	}
	if lvl > log.LvlTrace {
		return errors.Errorf("verbosity %v out of range [0, %v]", lvl, log.LvlTrace)
	}
	log.Init(lvl, ctx.Bool(jsonLogsFlag.Name))
	return nil
}

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, fmt.Errorf("invalid value %v, exceeds max int", val)
	}
	return int(val), nil
}

// gateOptions builds the gate options. Flags given on the command line override
// the --config file, which overrides the defaults.
func gateOptions(ctx *cli.Context) (admission.Options, error) {
	opts := admission.DefaultOptions()
	opts.MaxTxSize = maxTxSizeFlag.Value
	opts.SenderCacheSize = senderCacheSizeFlag.Value

	if path := ctx.String(configFlag.Name); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return admission.Options{}, err
		}
		if err := cfg.apply(&opts); err != nil {
			return admission.Options{}, errors.Wrapf(err, "config %v", path)
		}
	}

	if ctx.IsSet(chainIDFlag.Name) {
		id, err := parseChainID(ctx.String(chainIDFlag.Name))
		if err != nil {
			return admission.Options{}, err
		}
		opts.ChainID = id
	}
	if ctx.IsSet(checkLowSFlag.Name) {
		opts.CheckLowS = ctx.BoolT(checkLowSFlag.Name)
	}
	if ctx.IsSet(allowEmptySignatureFlag.Name) {
		opts.AllowEmptySignature = ctx.Bool(allowEmptySignatureFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) {
		opts.Workers = ctx.Int(workersFlag.Name)
	}
	if ctx.IsSet(maxTxSizeFlag.Name) {
		opts.MaxTxSize = ctx.Uint64(maxTxSizeFlag.Name)
	}
	if ctx.IsSet(senderCacheSizeFlag.Name) {
		size := ctx.Int(senderCacheSizeFlag.Name)
		if size < 0 {
			return admission.Options{}, errors.New("sender-cache-size: must not be negative")
		}
		opts.SenderCacheSize = size
	}
	return opts, nil
}

func newGate(ctx *cli.Context) (*admission.Gate, error) {
	opts, err := gateOptions(ctx)
	if err != nil {
		return nil, err
	}
	return admission.New(opts)
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, syscall.SIGINT, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func printStartupMessage(w io.Writer, opts admission.Options, apiURL string) {
	fmt.Fprintf(w, `Starting %v
    Chain ID     [ %v ]
    Low S        [ %v ]
    Unsigned     [ %v ]
    Workers      [ %v ]
    Max tx size  [ %v ]
    API portal   [ %v ]
`,
		"txgate/"+fullVersion(),
		func() string {
			if opts.ChainID == nil {
				return "none"
			}
			return fmt.Sprint(*opts.ChainID)
		}(),
		func() string {
			if opts.CheckLowS {
				return "required"
			}
			return "not checked"
		}(),
		func() string {
			if opts.AllowEmptySignature {
				return "admitted"
			}
			return "rejected"
		}(),
		opts.Workers,
		opts.MaxTxSize,
		apiURL)
}

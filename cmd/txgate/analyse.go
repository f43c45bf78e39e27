// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/tx"
)

// maxLineSize fits the hex form of the largest transaction the gate admits by default.
const maxLineSize = 2*admission.DefaultMaxTxSize + 1024

type analyseStats struct {
	Lines     int
	Legacy    int
	Malformed int
}

func analyseAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one file")
	}

	path := ctx.Args().First()
	f, err := os.Open(path) //#nosec G304
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "stat input")
	}

	bar := pb.New64(info.Size()).
		SetUnits(pb.U_BYTES).
		SetMaxWidth(90)
	bar.Output = os.Stderr
	bar.Start()

	stats, err := analyse(f, ctx.App.Writer, func(n int) { bar.Add(n) })
	bar.Finish()
	if err != nil {
		return errors.Wrapf(err, "analyse %v", path)
	}

	logger.Info("analysis done", "lines", stats.Lines, "legacy", stats.Legacy, "malformed", stats.Malformed)
	return nil
}

// analyse reads one hex encoded transaction per line from r and writes the line number and
// content of those whose action is the legacy empty list. Blank lines are skipped.
func analyse(r io.Reader, w io.Writer, progress func(int)) (analyseStats, error) {
	var stats analyseStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		progress(len(line) + 1)

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stats.Lines++

		if !strings.HasPrefix(line, "0x") && !strings.HasPrefix(line, "0X") {
			line = "0x" + line
		}
		raw, err := hexutil.Decode(line)
		if err != nil {
			stats.Malformed++
			logger.Debug("skip line", "line", lineNum, "err", err)
			continue
		}
		enc, err := tx.InspectActionEncoding(raw)
		if err != nil {
			stats.Malformed++
			logger.Debug("skip line", "line", lineNum, "err", err)
			continue
		}
		if enc == tx.EncodingEmptyList {
			stats.Legacy++
			if _, err := fmt.Fprintf(w, "%d\t%s\n", lineNum, line); err != nil {
				return stats, err
			}
		}
	}
	return stats, scanner.Err()
}

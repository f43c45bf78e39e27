// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/zemse/parity-esn/admission"
	"github.com/zemse/parity-esn/api/transactions"
	"github.com/zemse/parity-esn/tx"
)

func verifyAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}
	if ctx.NArg() == 0 {
		return errors.New("no transaction given")
	}
	gate, err := newGate(ctx)
	if err != nil {
		return err
	}

	rejected, err := verifyRaws(ctx.App.Writer, gate, ctx.Args())
	if err != nil {
		return err
	}
	if rejected > 0 {
		return errors.Errorf("%v of %v transactions rejected", rejected, ctx.NArg())
	}
	return nil
}

// verifyRaws writes one JSON verdict per line and returns the number of rejections.
func verifyRaws(w io.Writer, gate *admission.Gate, raws []string) (int, error) {
	enc := json.NewEncoder(w)
	rejected := 0
	for _, s := range raws {
		var item transactions.BatchItem

		trx, err := verifyHex(gate, s)
		if err != nil {
			rejected++
			item.Rejection = transactions.ConvertRejection(err)
		} else {
			item.OK = true
			item.Tx = transactions.ConvertTransaction(trx, nil)
		}
		if err := enc.Encode(&item); err != nil {
			return rejected, err
		}
	}
	return rejected, nil
}

func verifyHex(gate *admission.Gate, s string) (*tx.VerifiedTransaction, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, tx.RLPError(err)
	}
	return gate.VerifyRaw(raw)
}

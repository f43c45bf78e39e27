// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	"github.com/zemse/parity-esn/cry"
	"github.com/zemse/parity-esn/eth"
	"github.com/zemse/parity-esn/tx"
)

// RawTx is the body of a verification request.
type RawTx struct {
	Raw       string        `json:"raw"`
	Condition *tx.Condition `json:"condition,omitempty"`
}

func (r *RawTx) decode() ([]byte, error) {
	return hexutil.Decode(r.Raw)
}

// RawBatch is the body of a batch verification request.
type RawBatch struct {
	Raws []string `json:"raws"`
}

// Transaction is a verified transaction with its sender.
type Transaction struct {
	ID        eth.Bytes32           `json:"id"`
	Sender    eth.Address           `json:"sender"`
	PublicKey *cry.PublicKey        `json:"publicKey"`
	Unsigned  bool                  `json:"unsigned"`
	ChainID   *math.HexOrDecimal64  `json:"chainId"`
	Nonce     *math.HexOrDecimal256 `json:"nonce"`
	GasPrice  *math.HexOrDecimal256 `json:"gasPrice"`
	Gas       *math.HexOrDecimal256 `json:"gas"`
	To        *eth.Address          `json:"to"`
	Value     *math.HexOrDecimal256 `json:"value"`
	Data      hexutil.Bytes         `json:"data"`
	Size      uint64                `json:"size"`
	Condition *tx.Condition         `json:"condition,omitempty"`
}

// Rejection explains why a transaction was not admitted.
type Rejection struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchItem is the verdict on one element of a batch.
type BatchItem struct {
	OK bool         `json:"ok"`
	Tx *Transaction `json:"tx,omitempty"`
	*Rejection
}

func hexU256(x *uint256.Int) *math.HexOrDecimal256 {
	return (*math.HexOrDecimal256)(x.ToBig())
}

// ConvertTransaction converts a verified transaction into its JSON form.
func ConvertTransaction(trx *tx.VerifiedTransaction, cond *tx.Condition) *Transaction {
	var chainID *math.HexOrDecimal64
	if id := trx.ChainID(); id != nil {
		chainID = (*math.HexOrDecimal64)(id)
	}
	return &Transaction{
		ID:        trx.Hash(),
		Sender:    trx.Sender(),
		PublicKey: trx.Public(),
		Unsigned:  trx.IsUnsigned(),
		ChainID:   chainID,
		Nonce:     hexU256(trx.Nonce()),
		GasPrice:  hexU256(trx.GasPrice()),
		Gas:       hexU256(trx.Gas()),
		To:        trx.Action().To(),
		Value:     hexU256(trx.Value()),
		Data:      trx.Data(),
		Size:      trx.Size(),
		Condition: cond,
	}
}

// ConvertRejection describes err by its taxonomy code.
func ConvertRejection(err error) *Rejection {
	code, ok := tx.CodeOf(err)
	if !ok {
		return &Rejection{Code: "Internal", Message: err.Error()}
	}
	return &Rejection{Code: code.String(), Message: err.Error()}
}

// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"errors"

	"github.com/zemse/parity-esn/cry"
	"github.com/zemse/parity-esn/eth"
)

var unsignedSender = eth.Address{
	0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff,
}

var systemAddress = eth.Address{
	0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xfe,
}

var errNilTx = errors.New("nil transaction")

// UnsignedSender returns the sender assigned to EIP-86 unsigned transactions.
func UnsignedSender() eth.Address { return unsignedSender }

// SystemAddress returns the sender of state updates synthesized by the node itself.
func SystemAddress() eth.Address { return systemAddress }

// VerifyBasic runs the cheap structural checks on trx. The public key is not recovered.
//
// The checks run in a fixed order and the first failure is reported:
// low s, unsigned when not allowed, EIP-86 shape of unsigned transactions, chain id.
func VerifyBasic(trx *Transaction, checkLowS bool, chainID *uint64, allowEmptySignature bool) (*BasicVerifiedTransaction, error) {
	if trx == nil {
		return nil, RLPError(errNilTx)
	}
	unsigned := trx.IsUnsigned()

	if checkLowS && !(allowEmptySignature && unsigned) && !trx.Signature().IsLowS() {
		return nil, SignatureError(cry.ErrInvalidSignature)
	}

	// unsigned transactions are only valid with EIP-86 enabled
	if !allowEmptySignature && unsigned {
		return nil, SignatureError(cry.ErrInvalidSignature)
	}

	// EIP-86: gas price, value and nonce must all be zero
	if allowEmptySignature && unsigned &&
		!(isZero(trx.body.GasPrice) && isZero(trx.body.Value) && isZero(trx.body.Nonce)) {
		return nil, SignatureError(cry.ErrInvalidSignature)
	}

	if txChainID := trx.ChainID(); txChainID != nil && (chainID == nil || *txChainID != *chainID) {
		return nil, ErrInvalidChainID
	}

	return &BasicVerifiedTransaction{view{trx}}, nil
}

// VerifySignature recovers the sender of a structurally verified transaction.
// Unsigned transactions get UnsignedSender without any cryptographic work.
func VerifySignature(trx *BasicVerifiedTransaction) (*VerifiedTransaction, error) {
	if trx == nil || trx.tx == nil {
		return nil, RLPError(errNilTx)
	}
	if trx.IsUnsigned() {
		return newVerified(trx.tx, nil), nil
	}

	public, err := trx.tx.RecoverPublic()
	if err != nil {
		return nil, SignatureError(err)
	}
	return newVerified(trx.tx, &public), nil
}

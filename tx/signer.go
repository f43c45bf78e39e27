// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"crypto/ecdsa"

	"github.com/holiman/uint256"

	"github.com/zemse/parity-esn/cry"
)

// Sign signs trx with prv and returns the signed copy.
// With a chain id v is set as of EIP-155, otherwise it is 27 or 28.
func Sign(trx *Transaction, prv *ecdsa.PrivateKey, chainID *uint64) (*Transaction, error) {
	sig, err := cry.Sign(trx.SigningHash(chainID), prv)
	if err != nil {
		return nil, err
	}

	v := uint64(sig[64]) + 27
	if chainID != nil {
		v = uint64(sig[64]) + 35 + *chainID*2
	}
	r := new(uint256.Int).SetBytes(sig[:32])
	s := new(uint256.Int).SetBytes(sig[32:64])
	return trx.withSignature(v, r, s), nil
}

// MustSign is like Sign but panics on error.
func MustSign(trx *Transaction, prv *ecdsa.PrivateKey, chainID *uint64) *Transaction {
	signed, err := Sign(trx, prv, chainID)
	if err != nil {
		panic(err)
	}
	return signed
}

// SignVerified signs trx and wraps it as verified, skipping the recovery.
func SignVerified(trx *Transaction, prv *ecdsa.PrivateKey, chainID *uint64) (*VerifiedTransaction, error) {
	signed, err := Sign(trx, prv, chainID)
	if err != nil {
		return nil, err
	}
	public, err := cry.PublicKeyFromECDSA(&prv.PublicKey)
	if err != nil {
		return nil, err
	}
	return newVerified(signed, &public), nil
}

// NullSign returns trx in the EIP-86 unsigned form: r = s = 0 and v holds the chain id.
func NullSign(trx *Transaction, chainID uint64) *VerifiedTransaction {
	return newVerified(trx.withSignature(chainID, nil, nil), nil)
}

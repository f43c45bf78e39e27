// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/zemse/parity-esn/eth"
)

// Fixture is a transaction as written in JSON state test files.
// An empty or absent To means contract creation.
type Fixture struct {
	Nonce     *math.HexOrDecimal256 `json:"nonce"`
	GasPrice  *math.HexOrDecimal256 `json:"gasPrice"`
	GasLimit  *math.HexOrDecimal256 `json:"gasLimit"`
	To        string                `json:"to"`
	Value     *math.HexOrDecimal256 `json:"value"`
	Data      hexutil.Bytes         `json:"data"`
	SecretKey hexutil.Bytes         `json:"secretKey,omitempty"`
}

// VerifiedFromFixture builds the fixture transaction and signs it with the secret key
// without replay protection. Fixtures without a secret key are null signed for chain id 1.
func VerifiedFromFixture(f *Fixture) (*VerifiedTransaction, error) {
	b := NewBuilder().Data(f.Data)

	for _, field := range []struct {
		name string
		val  *math.HexOrDecimal256
		set  func(*uint256.Int)
	}{
		{"nonce", f.Nonce, func(x *uint256.Int) { b.body.Nonce = x }},
		{"gasPrice", f.GasPrice, func(x *uint256.Int) { b.body.GasPrice = x }},
		{"gasLimit", f.GasLimit, func(x *uint256.Int) { b.body.Gas = x }},
		{"value", f.Value, func(x *uint256.Int) { b.body.Value = x }},
	} {
		x, err := fixtureU256(field.val)
		if err != nil {
			return nil, errors.Wrap(err, field.name)
		}
		field.set(x)
	}

	if to := strings.TrimSpace(f.To); to != "" && to != "0x" {
		addr, err := eth.ParseAddress(to)
		if err != nil {
			return nil, errors.Wrap(err, "to")
		}
		b.Action(CallAction(addr))
	}
	trx := b.Build()

	if len(f.SecretKey) == 0 {
		return NullSign(trx, 1), nil
	}
	prv, err := crypto.ToECDSA(f.SecretKey)
	if err != nil {
		return nil, errors.Wrap(err, "secretKey")
	}
	return SignVerified(trx, prv, nil)
}

func fixtureU256(v *math.HexOrDecimal256) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	x, overflow := uint256.FromBig((*big.Int)(v))
	if overflow || (*big.Int)(v).Sign() < 0 {
		return nil, errors.New("value out of range")
	}
	return x, nil
}

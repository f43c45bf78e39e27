// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/holiman/uint256"
)

// Builder to make it easy to build transaction.
type Builder struct {
	body body
}

// NewBuilder create a new transaction builder.
// Without further calls it builds a zero valued contract creation.
func NewBuilder() *Builder {
	return &Builder{}
}

// Nonce set nonce.
func (b *Builder) Nonce(nonce uint64) *Builder {
	b.body.Nonce = uint256.NewInt(nonce)
	return b
}

// GasPrice set gas price.
func (b *Builder) GasPrice(price *uint256.Int) *Builder {
	b.body.GasPrice = cloneU256(price)
	return b
}

// Gas set gas limit.
func (b *Builder) Gas(gas uint64) *Builder {
	b.body.Gas = uint256.NewInt(gas)
	return b
}

// Action set the action.
func (b *Builder) Action(action Action) *Builder {
	b.body.Action = Action{to: action.To()}
	return b
}

// Value set the transferred value.
func (b *Builder) Value(value *uint256.Int) *Builder {
	b.body.Value = cloneU256(value)
	return b
}

// Data set the payload.
func (b *Builder) Data(data []byte) *Builder {
	b.body.Data = append([]byte(nil), data...)
	return b
}

// Build builds an unsigned transaction (v = r = s = 0).
func (b *Builder) Build() *Transaction {
	trx := Transaction{body: b.body.copy()}
	trx.body.V = 0
	return &trx
}

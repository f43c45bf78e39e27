// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"io"

	"github.com/holiman/uint256"

	"github.com/zemse/parity-esn/cry"
	"github.com/zemse/parity-esn/eth"
)

// view exposes the read-only surface of a transaction to the trusted wrappers.
type view struct {
	tx *Transaction
}

func (v view) Hash() eth.Bytes32 { return v.tx.Hash() }
func (v view) Nonce() *uint256.Int { return v.tx.Nonce() }
func (v view) GasPrice() *uint256.Int { return v.tx.GasPrice() }
func (v view) Gas() *uint256.Int { return v.tx.Gas() }
func (v view) Action() Action { return v.tx.Action() }
func (v view) Value() *uint256.Int { return v.tx.Value() }
func (v view) Data() []byte { return v.tx.Data() }
func (v view) V() uint64 { return v.tx.V() }
func (v view) R() *uint256.Int { return v.tx.R() }
func (v view) S() *uint256.Int { return v.tx.S() }
func (v view) IsUnsigned() bool { return v.tx.IsUnsigned() }
func (v view) ChainID() *uint64 { return v.tx.ChainID() }
func (v view) StandardV() byte { return v.tx.StandardV() }
func (v view) Signature() Signature { return v.tx.Signature() }
func (v view) SigningHash(chainID *uint64) eth.Bytes32 { return v.tx.SigningHash(chainID) }
func (v view) RecoverPublic() (cry.PublicKey, error) { return v.tx.RecoverPublic() }
func (v view) Size() uint64 { return v.tx.Size() }
func (v view) EncodeRLP(w io.Writer) error { return v.tx.EncodeRLP(w) }
func (v view) MarshalBinary() ([]byte, error) { return v.tx.MarshalBinary() }
func (v view) String() string { return v.tx.String() }

// Unverified returns the wrapped wire transaction.
func (v view) Unverified() *Transaction { return v.tx }

// BasicVerifiedTransaction is a transaction that passed the structural checks of VerifyBasic.
// Its signature has not been recovered yet.
type BasicVerifiedTransaction struct {
	view
}

// VerifiedTransaction is a transaction with an attributed sender.
// Public is nil exactly when the sender is UnsignedSender().
type VerifiedTransaction struct {
	view
	sender eth.Address
	public *cry.PublicKey
}

// Sender returns the account that sent the transaction.
func (v *VerifiedTransaction) Sender() eth.Address {
	return v.sender
}

// Public returns the recovered public key, nil for unsigned transactions.
func (v *VerifiedTransaction) Public() *cry.PublicKey {
	if v.public == nil {
		return nil
	}
	cpy := *v.public
	return &cpy
}

// Attach attributes the sender of v to basic, which must carry the same hash.
func (v *VerifiedTransaction) Attach(basic *BasicVerifiedTransaction) (*VerifiedTransaction, bool) {
	if basic == nil || basic.tx == nil || basic.Hash() != v.Hash() {
		return nil, false
	}
	return &VerifiedTransaction{view: view{basic.tx}, sender: v.sender, public: v.public}, true
}

func newVerified(trx *Transaction, public *cry.PublicKey) *VerifiedTransaction {
	if public == nil {
		return &VerifiedTransaction{view: view{trx}, sender: unsignedSender}
	}
	cpy := *public
	return &VerifiedTransaction{
		view:   view{trx},
		sender: cpy.Address(),
		public: &cpy,
	}
}

// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"io"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/zemse/parity-esn/cry"
	"github.com/zemse/parity-esn/eth"
)

// Transaction is an immutable, untrusted transaction as decoded from the wire.
// Nothing about its signature or chain id has been checked; see VerifyBasic.
type Transaction struct {
	body body
	// raw holds the encoding the transaction was decoded from, nil for built ones.
	raw []byte

	cache struct {
		hash atomic.Value
		size atomic.Value
	}
}

// body describes details of a tx.
type body struct {
	Nonce    *uint256.Int
	GasPrice *uint256.Int
	Gas      *uint256.Int
	Action   Action
	Value    *uint256.Int
	Data     []byte
	V        uint64
	R        *uint256.Int
	S        *uint256.Int
}

func (b *body) copy() body {
	cpy := *b
	cpy.Nonce = cloneU256(b.Nonce)
	cpy.GasPrice = cloneU256(b.GasPrice)
	cpy.Gas = cloneU256(b.Gas)
	cpy.Value = cloneU256(b.Value)
	cpy.R = cloneU256(b.R)
	cpy.S = cloneU256(b.S)
	cpy.Data = append([]byte(nil), b.Data...)
	return cpy
}

func cloneU256(x *uint256.Int) *uint256.Int {
	if x == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(x)
}

func isZero(x *uint256.Int) bool {
	return x == nil || x.IsZero()
}

// Nonce returns the sender nonce.
func (t *Transaction) Nonce() *uint256.Int {
	return cloneU256(t.body.Nonce)
}

// GasPrice returns the gas price.
func (t *Transaction) GasPrice() *uint256.Int {
	return cloneU256(t.body.GasPrice)
}

// Gas returns the gas limit of the transaction.
func (t *Transaction) Gas() *uint256.Int {
	return cloneU256(t.body.Gas)
}

// Action returns the transaction target.
func (t *Transaction) Action() Action {
	return Action{to: t.body.Action.To()}
}

// Value returns the transferred value.
func (t *Transaction) Value() *uint256.Int {
	return cloneU256(t.body.Value)
}

// Data returns the payload: init code for contract creation, call data otherwise.
func (t *Transaction) Data() []byte {
	return append([]byte(nil), t.body.Data...)
}

// V returns the raw v value as found on the wire.
func (t *Transaction) V() uint64 {
	return t.body.V
}

// R returns the raw r value of the signature.
func (t *Transaction) R() *uint256.Int {
	return cloneU256(t.body.R)
}

// S returns the raw s value of the signature.
func (t *Transaction) S() *uint256.Int {
	return cloneU256(t.body.S)
}

// IsUnsigned returns whether the transaction carries the EIP-86 empty signature (r = s = 0).
func (t *Transaction) IsUnsigned() bool {
	return isZero(t.body.R) && isZero(t.body.S)
}

// ChainID returns the chain id the transaction is bound to, nil if it is not replay protected.
// For unsigned transactions v holds the chain id as is.
func (t *Transaction) ChainID() *uint64 {
	v := t.body.V
	switch {
	case t.IsUnsigned():
		return &v
	case v >= 35:
		id := (v - 35) / 2
		return &id
	default:
		return nil
	}
}

// StandardV returns the recovery id encoded in v, or 4 if v encodes none.
func (t *Transaction) StandardV() byte {
	switch v := t.body.V; {
	case v == 27 || v == 28:
		return byte(v - 27)
	case v >= 35:
		return byte((v - 1) % 2)
	default:
		return invalidV
	}
}

// Signature returns the signature in standard form.
func (t *Transaction) Signature() Signature {
	return NewSignature(t.body.R, t.body.S, t.StandardV())
}

// SigningHash returns the hash signed by the sender.
// With a chain id, the EIP-155 fields (chainID, 0, 0) are appended.
func (t *Transaction) SigningHash(chainID *uint64) eth.Bytes32 {
	return eth.Keccak256Fn(func(w io.Writer) {
		fields := []any{
			t.body.Nonce,
			t.body.GasPrice,
			t.body.Gas,
			t.body.Action,
			t.body.Value,
			t.body.Data,
		}
		if chainID != nil {
			fields = append(fields, *chainID, uint(0), uint(0))
		}
		rlp.Encode(w, fields)
	})
}

// RecoverPublic recovers the public key of the signer.
func (t *Transaction) RecoverPublic() (cry.PublicKey, error) {
	return cry.Recover(t.SigningHash(t.ChainID()), t.Signature().Bytes())
}

// Hash returns the keccak hash of the encoded transaction, signature included.
// A decoded transaction hashes the bytes it was decoded from, so a legacy
// empty list action keeps the id it has on chain.
func (t *Transaction) Hash() eth.Bytes32 {
	if cached := t.cache.hash.Load(); cached != nil {
		return cached.(eth.Bytes32)
	}

	h := eth.Keccak256Fn(func(w io.Writer) {
		t.EncodeRLP(w)
	})
	t.cache.hash.Store(h)
	return h
}

// Size returns the encoded size of the transaction in bytes.
func (t *Transaction) Size() uint64 {
	if cached := t.cache.size.Load(); cached != nil {
		return cached.(uint64)
	}
	var c writeCounter
	t.EncodeRLP(&c)
	t.cache.size.Store(uint64(c))
	return uint64(c)
}

// withSignature returns a copy of the transaction with the given signature values.
func (t *Transaction) withSignature(v uint64, r, s *uint256.Int) *Transaction {
	newTx := Transaction{body: t.body.copy()}
	newTx.body.V = v
	newTx.body.R = cloneU256(r)
	newTx.body.S = cloneU256(s)
	return &newTx
}

// EncodeRLP implements rlp.Encoder.
// Decoded transactions are written back exactly as received.
func (t *Transaction) EncodeRLP(w io.Writer) error {
	if t.raw != nil {
		_, err := w.Write(t.raw)
		return err
	}
	return rlp.Encode(w, &t.body)
}

// DecodeRLP implements rlp.Decoder
func (t *Transaction) DecodeRLP(s *rlp.Stream) error {
	raw, err := s.Raw()
	if err != nil {
		return err
	}
	var body body
	if err := rlp.DecodeBytes(raw, &body); err != nil {
		return err
	}
	*t = Transaction{body: body, raw: raw}
	t.cache.hash.Store(eth.Keccak256(raw))
	t.cache.size.Store(uint64(len(raw)))
	return nil
}

// MarshalBinary returns the RLP encoding, the received bytes for a decoded transaction.
func (t *Transaction) MarshalBinary() ([]byte, error) {
	return rlp.EncodeToBytes(t)
}

// UnmarshalBinary decodes the RLP encoding.
func (t *Transaction) UnmarshalBinary(data []byte) error {
	return rlp.DecodeBytes(data, t)
}

func (t *Transaction) String() string {
	return "Tx(" + t.Hash().AbbrevString() + ", " + t.body.Action.String() + ")"
}

type writeCounter uint64

func (c *writeCounter) Write(b []byte) (int, error) {
	*c += writeCounter(len(b))
	return len(b), nil
}

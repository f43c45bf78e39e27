// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/holiman/uint256"

	"github.com/zemse/parity-esn/cry"
)

// invalidV is the standard v reported for a raw v that encodes no recovery id.
const invalidV = 4

// Signature is an ECDSA signature in standard form, where V is the recovery id.
type Signature struct {
	r, s [32]byte
	v    byte
}

// NewSignature creates a signature from its components.
func NewSignature(r, s *uint256.Int, v byte) Signature {
	sig := Signature{v: v}
	if r != nil {
		sig.r = r.Bytes32()
	}
	if s != nil {
		sig.s = s.Bytes32()
	}
	return sig
}

// R returns the r component.
func (sig Signature) R() *uint256.Int {
	return new(uint256.Int).SetBytes32(sig.r[:])
}

// S returns the s component.
func (sig Signature) S() *uint256.Int {
	return new(uint256.Int).SetBytes32(sig.s[:])
}

// V returns the recovery id, 0 or 1 for a well formed signature.
func (sig Signature) V() byte {
	return sig.v
}

// IsLowS returns whether s is in the lower half of the curve order.
func (sig Signature) IsLowS() bool {
	return cry.IsLowS(&sig.s)
}

// IsValid returns whether the signature values are in range.
func (sig Signature) IsValid() bool {
	return cry.ValidateSignatureValues(sig.v, &sig.r, &sig.s)
}

// Bytes returns the signature in [R || S || V] format.
func (sig Signature) Bytes() []byte {
	b := make([]byte, cry.SignatureLength)
	copy(b[:32], sig.r[:])
	copy(b[32:64], sig.s[:])
	b[64] = sig.v
	return b
}

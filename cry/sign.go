// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cry

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/zemse/parity-esn/eth"
)

// SignatureLength is the length of a recoverable signature in [R || S || V] form.
const SignatureLength = crypto.SignatureLength

// ErrInvalidSignature is returned for signatures whose values are out of range.
var ErrInvalidSignature = errors.New("invalid EC signature")

// Sign calculates a recoverable ECDSA signature of hash.
// The produced signature is in the [R || S || V] format where V is 0 or 1.
func Sign(hash eth.Bytes32, prv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(hash[:], prv)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return sig, nil
}

// Recover returns the public key that produced sig over hash.
// sig must be in the [R || S || V] format where V is 0 or 1.
func Recover(hash eth.Bytes32, sig []byte) (PublicKey, error) {
	var pub PublicKey
	if len(sig) != SignatureLength {
		return pub, errors.Errorf("invalid signature length %d", len(sig))
	}
	var r, s [32]byte
	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	if !ValidateSignatureValues(sig[64], &r, &s) {
		return pub, ErrInvalidSignature
	}
	raw, err := crypto.Ecrecover(hash[:], sig)
	if err != nil {
		return pub, err
	}
	if len(raw) != PublicKeyLength+1 || raw[0] != 0x04 {
		return pub, errors.New("invalid public key")
	}
	copy(pub[:], raw[1:])
	return pub, nil
}

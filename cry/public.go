// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cry

import (
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/zemse/parity-esn/eth"
)

// PublicKeyLength is the length of an uncompressed secp256k1 public key without the 0x04 prefix.
const PublicKeyLength = 64

// PublicKey is an uncompressed secp256k1 public key, X || Y.
type PublicKey [PublicKeyLength]byte

// String implements stringer.
func (p PublicKey) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

// Bytes returns byte slice form of the key.
func (p PublicKey) Bytes() []byte {
	return p[:]
}

// MarshalJSON implements json.Marshaler.
func (p *PublicKey) MarshalJSON() ([]byte, error) {
	if p == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(p.String())
}

// UnmarshalText parses a 0x prefixed hex key.
func (p *PublicKey) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("PublicKey", input, p[:])
}

// Address derives the account address of the key, the last 20 bytes of keccak(X || Y).
func (p PublicKey) Address() eth.Address {
	h := eth.Keccak256(p[:])
	return eth.BytesToAddress(h[12:])
}

// ToECDSA converts the key into the stdlib form.
func (p PublicKey) ToECDSA() (*ecdsa.PublicKey, error) {
	return crypto.UnmarshalPubkey(append([]byte{0x04}, p[:]...))
}

// PublicKeyFromECDSA converts an ecdsa public key.
func PublicKeyFromECDSA(pub *ecdsa.PublicKey) (PublicKey, error) {
	var p PublicKey
	raw := crypto.FromECDSAPub(pub)
	if len(raw) != PublicKeyLength+1 || raw[0] != 0x04 {
		return p, errors.New("invalid public key")
	}
	copy(p[:], raw[1:])
	return p, nil
}

// AddressOf returns the account address controlled by the private key.
func AddressOf(prv *ecdsa.PrivateKey) eth.Address {
	return eth.Address(crypto.PubkeyToAddress(prv.PublicKey))
}

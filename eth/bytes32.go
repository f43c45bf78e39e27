// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package eth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Bytes32 is a keccak digest: a transaction id or the payload its sender signed.
type Bytes32 common.Hash

func (b Bytes32) String() string {
	return common.Hash(b).Hex()
}

// AbbrevString keeps the first and last four bytes, for log lines.
func (b Bytes32) AbbrevString() string {
	return fmt.Sprintf("0x%x…%x", b[:4], b[28:])
}

// MarshalText encodes the digest as 0x prefixed hex, in JSON too.
func (b Bytes32) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b[:]).MarshalText()
}

// UnmarshalText parses exactly 32 bytes of 0x prefixed hex.
func (b *Bytes32) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Bytes32", input, b[:])
}

// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cry

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// IsLowS reports whether the big-endian scalar s lies in the lower half of the curve order.
// Values at or above the order are never low.
func IsLowS(s *[32]byte) bool {
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetBytes(s); overflow != 0 {
		return false
	}
	return !scalar.IsOverHalfOrder()
}

// ValidateSignatureValues checks that 0 < r < n, 0 < s < n and v is 0 or 1.
// Malleable (high s) signatures are accepted here; see IsLowS.
func ValidateSignatureValues(v byte, r, s *[32]byte) bool {
	if v > 1 {
		return false
	}
	return inRange(r) && inRange(s)
}

func inRange(b *[32]byte) bool {
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetBytes(b); overflow != 0 {
		return false
	}
	return !scalar.IsZero()
}

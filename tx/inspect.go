// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// ActionEncoding classifies how the action field of a raw transaction is encoded.
type ActionEncoding uint8

const (
	// EncodingCreate the canonical empty string (0x80).
	EncodingCreate ActionEncoding = iota
	// EncodingCall a 20 bytes address.
	EncodingCall
	// EncodingEmptyList the legacy empty list (0xc0), still decoded as Create.
	EncodingEmptyList
)

func (e ActionEncoding) String() string {
	switch e {
	case EncodingCreate:
		return "create"
	case EncodingCall:
		return "call"
	case EncodingEmptyList:
		return "empty-list"
	default:
		return "unknown"
	}
}

// actionIndex is the position of the action in the transaction list.
const actionIndex = 3

// InspectActionEncoding reports the encoding of the action field in raw, without decoding
// the rest of the transaction.
func InspectActionEncoding(raw []byte) (ActionEncoding, error) {
	content, rest, err := rlp.SplitList(raw)
	if err != nil {
		return 0, err
	}
	if len(rest) > 0 {
		return 0, rlp.ErrMoreThanOneValue
	}
	for i := 0; ; i++ {
		if len(content) == 0 {
			return 0, errors.New("too few elements")
		}
		kind, val, tail, err := rlp.Split(content)
		if err != nil {
			return 0, err
		}
		if i < actionIndex {
			content = tail
			continue
		}
		switch {
		case kind == rlp.List && len(val) == 0:
			return EncodingEmptyList, nil
		case kind == rlp.String && len(val) == 0:
			return EncodingCreate, nil
		case kind == rlp.String && len(val) == 20:
			return EncodingCall, nil
		default:
			return 0, errors.Errorf("malformed action: kind %v, %d bytes", kind, len(val))
		}
	}
}

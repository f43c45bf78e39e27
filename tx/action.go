// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/zemse/parity-esn/eth"
)

// Action is the target of a transaction: either create a new contract,
// or call the contract (or transfer to the account) at an address.
// The zero value is a contract creation.
type Action struct {
	to *eth.Address
}

// CreateAction returns the action that creates a new contract.
func CreateAction() Action {
	return Action{}
}

// CallAction returns the action that calls the given address.
func CallAction(to eth.Address) Action {
	return Action{to: &to}
}

// IsCreate returns whether the action creates a contract.
func (a Action) IsCreate() bool {
	return a.to == nil
}

// To returns the callee, nil for contract creation.
func (a Action) To() *eth.Address {
	if a.to == nil {
		return nil
	}
	cpy := *a.to
	return &cpy
}

// Equal reports whether both actions have the same target.
func (a Action) Equal(other Action) bool {
	if a.to == nil || other.to == nil {
		return a.to == nil && other.to == nil
	}
	return *a.to == *other.to
}

func (a Action) String() string {
	if a.to == nil {
		return "Create"
	}
	return fmt.Sprintf("Call(%v)", a.to)
}

// EncodeRLP implements rlp.Encoder.
// Create is encoded as an empty string, Call as the bare address.
func (a Action) EncodeRLP(w io.Writer) error {
	if a.to == nil {
		_, err := w.Write(rlp.EmptyString)
		return err
	}
	return rlp.Encode(w, a.to)
}

// DecodeRLP implements rlp.Decoder.
// Any empty item decodes to Create, everything else must be an address.
func (a *Action) DecodeRLP(s *rlp.Stream) error {
	kind, size, err := s.Kind()
	if err != nil {
		return err
	}
	if size == 0 && kind != rlp.Byte {
		if kind == rlp.List {
			if _, err := s.List(); err != nil {
				return err
			}
			if err := s.ListEnd(); err != nil {
				return err
			}
		} else if _, err := s.Bytes(); err != nil {
			return err
		}
		*a = Action{}
		return nil
	}

	var to eth.Address
	if err := s.Decode(&to); err != nil {
		return err
	}
	*a = Action{to: &to}
	return nil
}

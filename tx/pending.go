// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ConditionKind tells what a Condition compares against.
type ConditionKind uint8

const (
	// ConditionNumber valid at this block number or later.
	ConditionNumber ConditionKind = iota + 1
	// ConditionTimestamp valid at this unix time or later.
	ConditionTimestamp
)

// Condition is the earliest point at which a transaction may be included.
type Condition struct {
	kind  ConditionKind
	value uint64
}

// NumberCondition activates at the given block number.
func NumberCondition(number uint64) *Condition {
	return &Condition{ConditionNumber, number}
}

// TimestampCondition activates at the given unix time in seconds.
func TimestampCondition(unix uint64) *Condition {
	return &Condition{ConditionTimestamp, unix}
}

// Kind returns the condition kind.
func (c *Condition) Kind() ConditionKind {
	return c.kind
}

// Value returns the block number or timestamp.
func (c *Condition) Value() uint64 {
	return c.value
}

func (c *Condition) String() string {
	switch c.kind {
	case ConditionNumber:
		return fmt.Sprintf("Number(%d)", c.value)
	case ConditionTimestamp:
		return fmt.Sprintf("Timestamp(%d)", c.value)
	default:
		return "Condition(?)"
	}
}

type conditionJSON struct {
	Block *uint64 `json:"block,omitempty"`
	Time  *uint64 `json:"time,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (c *Condition) MarshalJSON() ([]byte, error) {
	var v conditionJSON
	switch c.kind {
	case ConditionNumber:
		v.Block = &c.value
	case ConditionTimestamp:
		v.Time = &c.value
	default:
		return nil, errors.New("unknown condition kind")
	}
	return json.Marshal(&v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var v conditionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v.Block != nil && v.Time != nil:
		return errors.New("condition has both block and time")
	case v.Block != nil:
		*c = Condition{ConditionNumber, *v.Block}
	case v.Time != nil:
		*c = Condition{ConditionTimestamp, *v.Time}
	default:
		return errors.New("condition needs block or time")
	}
	return nil
}

// PendingTransaction is a verified transaction queued with an optional activation condition.
type PendingTransaction struct {
	*VerifiedTransaction
	// Condition to be activated at, nil for immediately.
	Condition *Condition
}

// NewPendingTransaction creates a pending transaction.
func NewPendingTransaction(trx *VerifiedTransaction, cond *Condition) *PendingTransaction {
	return &PendingTransaction{
		VerifiedTransaction: trx,
		Condition:           cond,
	}
}

// PendingFromVerified creates a pending transaction that is eligible immediately.
func PendingFromVerified(trx *VerifiedTransaction) *PendingTransaction {
	return NewPendingTransaction(trx, nil)
}

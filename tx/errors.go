// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Code identifies a transaction rejection reason.
type Code uint8

// Rejection codes. The values are stable and used as metric labels and API verdicts.
const (
	CodeAlreadyImported Code = iota + 1
	CodeOld
	CodeTooCheapToReplace
	CodeLimitReached
	CodeInsufficientGasPrice
	CodeInsufficientGas
	CodeInsufficientBalance
	CodeGasLimitExceeded
	CodeInvalidGasLimit
	CodeSenderBanned
	CodeRecipientBanned
	CodeCodeBanned
	CodeInvalidChainID
	CodeNotAllowed
	CodeInvalidSignature
	CodeTooBig
	CodeInvalidRLP
)

var codeNames = [...]string{
	CodeAlreadyImported:      "AlreadyImported",
	CodeOld:                  "Old",
	CodeTooCheapToReplace:    "TooCheapToReplace",
	CodeLimitReached:         "LimitReached",
	CodeInsufficientGasPrice: "InsufficientGasPrice",
	CodeInsufficientGas:      "InsufficientGas",
	CodeInsufficientBalance:  "InsufficientBalance",
	CodeGasLimitExceeded:     "GasLimitExceeded",
	CodeInvalidGasLimit:      "InvalidGasLimit",
	CodeSenderBanned:         "SenderBanned",
	CodeRecipientBanned:      "RecipientBanned",
	CodeCodeBanned:           "CodeBanned",
	CodeInvalidChainID:       "InvalidChainId",
	CodeNotAllowed:           "NotAllowed",
	CodeInvalidSignature:     "InvalidSignature",
	CodeTooBig:               "TooBig",
	CodeInvalidRLP:           "InvalidRlp",
}

func (c Code) String() string {
	if int(c) < len(codeNames) && codeNames[c] != "" {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// Error is implemented by every transaction rejection reason.
// The set of implementations is closed: the sentinels and error types below.
type Error interface {
	error
	Code() Code
}

type codeError struct {
	code Code
	msg  string
}

func (e *codeError) Error() string { return e.msg }
func (e *codeError) Code() Code { return e.code }

// Rejections without parameters. Compare with errors.Is.
var (
	// ErrAlreadyImported the transaction is already in the queue.
	ErrAlreadyImported Error = &codeError{CodeAlreadyImported, "Already imported"}
	// ErrOld the state already has a higher nonce.
	ErrOld Error = &codeError{CodeOld, "No longer valid"}
	// ErrTooCheapToReplace a transaction with the same sender and nonce pays more.
	ErrTooCheapToReplace Error = &codeError{CodeTooCheapToReplace, "Gas price too low to replace"}
	// ErrLimitReached the queue is full.
	ErrLimitReached Error = &codeError{CodeLimitReached, "Transaction limit reached"}
	// ErrSenderBanned the sender is temporarily banned.
	ErrSenderBanned Error = &codeError{CodeSenderBanned, "Sender is temporarily banned."}
	// ErrRecipientBanned the recipient is temporarily banned.
	ErrRecipientBanned Error = &codeError{CodeRecipientBanned, "Recipient is temporarily banned."}
	// ErrCodeBanned the contract creation code is temporarily banned.
	ErrCodeBanned Error = &codeError{CodeCodeBanned, "Contract code is temporarily banned."}
	// ErrInvalidChainID the transaction belongs to another chain.
	ErrInvalidChainID Error = &codeError{CodeInvalidChainID, "Transaction of this chain ID is not allowed on this chain."}
	// ErrNotAllowed the permission contract refused the sender.
	ErrNotAllowed Error = &codeError{CodeNotAllowed, "Sender does not have permissions to execute this type of transaction."}
	// ErrTooBig the encoded transaction exceeds the size limit.
	ErrTooBig Error = &codeError{CodeTooBig, "Transaction is too big."}
)

// InsufficientGasPriceError the gas price is below the threshold.
type InsufficientGasPriceError struct {
	Minimal *uint256.Int
	Got     *uint256.Int
}

func (e *InsufficientGasPriceError) Error() string {
	return fmt.Sprintf("Insufficient gas price. Min = %s, Given = %s", dec(e.Minimal), dec(e.Got))
}

func (e *InsufficientGasPriceError) Code() Code { return CodeInsufficientGasPrice }

// InsufficientGasError the gas is below the minimal requirement.
type InsufficientGasError struct {
	Minimal *uint256.Int
	Got     *uint256.Int
}

func (e *InsufficientGasError) Error() string {
	return fmt.Sprintf("Insufficient gas. Min = %s, Given = %s", dec(e.Minimal), dec(e.Got))
}

func (e *InsufficientGasError) Code() Code { return CodeInsufficientGas }

// InsufficientBalanceError the sender cannot pay for the transaction.
type InsufficientBalanceError struct {
	Balance *uint256.Int
	Cost    *uint256.Int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance for transaction. Balance = %s, Cost = %s", dec(e.Balance), dec(e.Cost))
}

func (e *InsufficientBalanceError) Code() Code { return CodeInsufficientBalance }

// GasLimitExceededError the gas is higher than the current gas limit.
type GasLimitExceededError struct {
	Limit *uint256.Int
	Got   *uint256.Int
}

func (e *GasLimitExceededError) Error() string {
	return fmt.Sprintf("Gas limit exceeded. Limit = %s, Given = %s", dec(e.Limit), dec(e.Got))
}

func (e *GasLimitExceededError) Code() Code { return CodeGasLimitExceeded }

// OutOfBounds describes a value outside an optional [Min, Max] range.
type OutOfBounds struct {
	Min   *uint256.Int
	Max   *uint256.Int
	Found *uint256.Int
}

func (o OutOfBounds) String() string {
	var bounds string
	switch {
	case o.Min != nil && o.Max != nil:
		bounds = fmt.Sprintf("Min=%s, Max=%s", dec(o.Min), dec(o.Max))
	case o.Min != nil:
		bounds = "Min=" + dec(o.Min)
	case o.Max != nil:
		bounds = "Max=" + dec(o.Max)
	}
	return fmt.Sprintf("Value %s out of bounds. %s", dec(o.Found), bounds)
}

// InvalidGasLimitError the gas limit is outside the accepted range.
type InvalidGasLimitError struct {
	Bounds OutOfBounds
}

func (e *InvalidGasLimitError) Error() string {
	return "Invalid gas limit. " + e.Bounds.String()
}

func (e *InvalidGasLimitError) Code() Code { return CodeInvalidGasLimit }

// InvalidSignatureError the signature is malformed or does not recover.
type InvalidSignatureError struct {
	Reason string
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("Transaction has invalid signature: %s.", e.Reason)
}

func (e *InvalidSignatureError) Code() Code { return CodeInvalidSignature }

// InvalidRLPError the transaction could not be decoded.
type InvalidRLPError struct {
	Reason string
}

func (e *InvalidRLPError) Error() string {
	return fmt.Sprintf("Transaction has invalid RLP structure: %s.", e.Reason)
}

func (e *InvalidRLPError) Code() Code { return CodeInvalidRLP }

// SignatureError converts an error of the signature library into InvalidSignature.
// Errors already in the taxonomy are returned unchanged.
func SignatureError(err error) error {
	if err == nil {
		return nil
	}
	var txErr Error
	if errors.As(err, &txErr) {
		return txErr
	}
	return &InvalidSignatureError{Reason: err.Error()}
}

// RLPError converts a decoding error into InvalidRlp.
// Errors already in the taxonomy are returned unchanged.
func RLPError(err error) error {
	if err == nil {
		return nil
	}
	var txErr Error
	if errors.As(err, &txErr) {
		return txErr
	}
	return &InvalidRLPError{Reason: err.Error()}
}

// CodeOf returns the rejection code carried by err.
func CodeOf(err error) (Code, bool) {
	var txErr Error
	if errors.As(err, &txErr) {
		return txErr.Code(), true
	}
	return 0, false
}

// IsInvalidSignature returns whether err rejects a transaction for its signature.
func IsInvalidSignature(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeInvalidSignature
}

// IsInvalidChainID returns whether err rejects a transaction for its chain id.
func IsInvalidChainID(err error) bool {
	return errors.Is(err, ErrInvalidChainID)
}

func dec(x *uint256.Int) string {
	if x == nil {
		return "0"
	}
	return x.Dec()
}

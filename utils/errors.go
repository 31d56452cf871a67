package utils

import (
	"github.com/pkg/errors"
)

// ErrTypeMismatch is the root of every error raised when an operation receives an operand
// of a kind it does not support. Match it with errors.Is.
var ErrTypeMismatch = errors.New("type mismatch")

// NewUnsupportedOperandError is used when an arithmetic operator is handed an operand it cannot combine
// with the receiver, e.g. adding a bare number to a vector.
func NewUnsupportedOperandError(op string, receiver, operand interface{}) error {
	return errors.Wrapf(ErrTypeMismatch, "unsupported operand for %s: %T and %T", op, receiver, operand)
}

package models

import (
	"errors"
	"fmt"
)

// ErrIntegrityViolation is wrapped by every error that rejects a mutation
// because it would break a catalog relationship rule.
var ErrIntegrityViolation = errors.New("integrity violation")

// IntegrityError describes a rejected mutation.
type IntegrityError struct {
	Op     string
	Reason string
}

func NewIntegrityError(op, format string, args ...interface{}) *IntegrityError {
	return &IntegrityError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrIntegrityViolation.Error(), e.Op, e.Reason)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrityViolation }

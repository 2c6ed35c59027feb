// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrDuplicateUser = errors.New("username or email already registered")
	ErrConfigInvalid = errors.New("invalid configuration")
	ErrDatabaseError = errors.New("database error")
)

// StorageError represents a failure in the document store. The store itself
// fails soft; this type exists for the few paths (directory creation, the
// credential table) that do surface errors.
type StorageError struct {
	Document string
	Op       string
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error [%s] %s: %v", e.Document, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError.
func NewStorageError(document, op string, err error) *StorageError {
	return &StorageError{
		Document: document,
		Op:       op,
		Err:      err,
	}
}

// RegistrationError is a declined registration. It carries a user-facing
// message; callers present it and move on rather than treating it as a
// failure.
type RegistrationError struct {
	Field   string
	Message string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration declined: %s", e.Message)
}

func (e *RegistrationError) Unwrap() error {
	return ErrDuplicateUser
}

// NewRegistrationError creates a new RegistrationError.
func NewRegistrationError(field, message string) *RegistrationError {
	return &RegistrationError{
		Field:   field,
		Message: message,
	}
}

// DataError represents a market-data fetch failure. Never fatal to the
// session; the caller renders an "unavailable" result.
type DataError struct {
	Symbol  string
	Message string
	Err     error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data error [%s]: %s: %v", e.Symbol, e.Message, e.Err)
	}
	return fmt.Sprintf("data error [%s]: %s", e.Symbol, e.Message)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError creates a new DataError.
func NewDataError(symbol, message string, err error) *DataError {
	return &DataError{
		Symbol:  symbol,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Package errs defines the three error kinds surfaced by the repository
// layer: ValidationError for malformed caller input rejected before any
// database contact, DatabaseError for failures propagated from the data
// store, and ConfigError for missing connection settings at startup.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed parameter. It is always raised before
// any statement executes, so persisted state is untouched.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func NewValidation(param, reason string) *ValidationError {
	return &ValidationError{Param: param, Reason: reason}
}

func Validationf(param, format string, args ...any) *ValidationError {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// DatabaseError wraps a failure surfaced by the data store. The enclosing
// transaction, if any, has already been rolled back by the time the caller
// sees it.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// WrapDatabase returns nil for a nil err, otherwise a DatabaseError tagged
// with the failing operation.
func WrapDatabase(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}

// ConfigError reports a required connection setting missing from the
// environment. Fatal; raised before any operation is attempted.
type ConfigError struct {
	Name string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required environment variable: %s", e.Name)
}

func NewConfig(name string) *ConfigError {
	return &ConfigError{Name: name}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsDatabase(err error) bool {
	var d *DatabaseError
	return errors.As(err, &d)
}

func IsConfig(err error) bool {
	var c *ConfigError
	return errors.As(err, &c)
}

// Package errors is the single import for error handling in infrastructure
// code: stdlib matching plus pkg/errors stack traces for anything that leaves
// a driver, the gateway client or the migration runner.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error without a stack.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with a stack and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf returns a formatted error carrying a stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Package errors provides drop-in replacements for the std errors functions.
// Each error is created with a stack trace
// and multiple/nested errors are rendered as a readable bullet list, see Format.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error with the message and a stack trace.
func New(msg string) error {
	return &withStack{err: errors.New(msg), trace: callers()}
}

// Errorf formats an error with a stack trace, the %w verb is supported.
func Errorf(format string, a ...any) error {
	return &withStack{err: fmt.Errorf(format, a...), trace: callers()}
}

// WithStack attaches a stack trace to the error, the message is unchanged.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return &withStack{err: err, trace: callers()}
}

// Wrap replaces the error message, the original error is accessible via Unwrap.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, err: err, trace: callers()}
}

// Wrapf replaces the error message, the original error is accessible via Unwrap.
func Wrapf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, a...), err: err, trace: callers()}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

type withStack struct {
	err   error
	trace StackTrace
}

func (e *withStack) Error() string {
	return e.err.Error()
}

func (e *withStack) Unwrap() error {
	return e.err
}

func (e *withStack) StackTrace() StackTrace {
	return e.trace
}

type wrappedError struct {
	msg   string
	err   error
	trace StackTrace
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.err
}

func (e *wrappedError) StackTrace() StackTrace {
	return e.trace
}

// chain wraps multiple errors for the std errors.Is/As functions.
type chain []error

func (e chain) Error() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Error()
}

func (e chain) Unwrap() []error {
	return e
}

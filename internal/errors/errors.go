package errors

import "fmt"

// Error codes used across the harness.
const (
	CodeInterpreterNotFound      = "INTERPRETER_NOT_FOUND"
	CodeInterpreterNotExecutable = "INTERPRETER_NOT_EXECUTABLE"
	CodeExitFailure              = "EXIT_FAILURE"
	CodeOutputMismatch           = "OUTPUT_MISMATCH"
	CodeConfigInvalid            = "CONFIG_INVALID"
)

type HarnessError struct {
	Code    string
	Message string
	Err     error
}

func (e *HarnessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *HarnessError) Unwrap() error {
	return e.Err
}

func New(code, message string) *HarnessError {
	return &HarnessError{Code: code, Message: message}
}

func Wrap(err error, code, message string) *HarnessError {
	return &HarnessError{Code: code, Message: message, Err: err}
}

// HasCode reports whether err or anything it wraps is a HarnessError with
// the given code.
func HasCode(err error, code string) bool {
	for err != nil {
		if he, ok := err.(*HarnessError); ok && he.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

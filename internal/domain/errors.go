package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrValidation = errors.New("validation failed")
	ErrParse      = errors.New("parse error")
	ErrFile       = errors.New("file error")
	ErrEmptyInput = errors.New("empty input")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindParse      ErrorKind = "parse"
	KindFile       ErrorKind = "file"
	KindEmptyInput ErrorKind = "empty_input"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// UserMessage renders err as a single line suitable for the status bar or
// stderr. OpError details (op, path) stay in logs; the user sees the cause.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var oe *OpError
	if errors.As(err, &oe) && oe.Err != nil {
		if oe.Path != "" {
			return fmt.Sprintf("%v (%s)", oe.Err, oe.Path)
		}
		return oe.Err.Error()
	}
	return err.Error()
}

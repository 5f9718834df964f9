package objpath

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of an objpath error.
type ErrorCode int

const (
	// ErrMalformedPath indicates a path expression that cannot be split into steps.
	ErrMalformedPath ErrorCode = iota + 1
	// ErrInvalidDocument indicates a serialized document could not be decoded.
	ErrInvalidDocument
	// ErrInvalidInput indicates input with nothing to decode.
	ErrInvalidInput
)

func (c ErrorCode) String() string {
	switch c {
	case ErrMalformedPath:
		return "malformed path"
	case ErrInvalidDocument:
		return "invalid document"
	case ErrInvalidInput:
		return "invalid input"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error is the structured error type returned by objpath operations.
// Resolving a path never fails; only parsing and decoding do.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode
	// Message is a human-readable description.
	Message string
	// Path is the offending path expression, if any.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s in %q", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("objpath: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("objpath: %s", msg)
}

// Unwrap returns the underlying cause, supporting errors.Is and errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

func malformed(path string, offset int, format string, args ...interface{}) *Error {
	return &Error{
		Code:    ErrMalformedPath,
		Message: fmt.Sprintf(format, args...) + fmt.Sprintf(" at offset %d", offset),
		Path:    path,
	}
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsMalformedPath returns true if err is a path syntax error.
func IsMalformedPath(err error) bool {
	return hasCode(err, ErrMalformedPath)
}

// IsDocumentError returns true if err reports an undecodable document.
func IsDocumentError(err error) bool {
	return hasCode(err, ErrInvalidDocument)
}

// IsInvalidInput returns true if err reports empty input.
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrInvalidInput)
}

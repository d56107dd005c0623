// Package clierr defines coded errors shared by the board, the TUI and the CLI.
package clierr

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	ElementNotFound  = "ELEMENT_NOT_FOUND"
	ItemNotFound     = "ITEM_NOT_FOUND"
	HandlerNotSet    = "HANDLER_NOT_SET"
	MissingAttribute = "MISSING_ATTRIBUTE"
	InvalidSelector  = "INVALID_SELECTOR"
	DuplicateItem    = "DUPLICATE_ITEM"
	TooltipClosed    = "TOOLTIP_CLOSED"
	PageNotFound     = "PAGE_NOT_FOUND"
	InvalidConfig    = "INVALID_CONFIG"
	InternalError    = "INTERNAL_ERROR"
)

// Error is an error carrying a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string { return e.Message }

// New returns an error with the given code and message.
func New(code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf is New with a format string.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetails attaches structured details and returns e.
func (e *Error) WithDetails(d map[string]any) *Error {
	e.Details = d
	return e
}

// ExitCode maps the code to a process exit status: 1 for lookup and
// user errors, 2 for everything the user cannot fix from the command line.
func (e *Error) ExitCode() int {
	switch e.Code {
	case InternalError, HandlerNotSet, InvalidConfig:
		return 2
	}
	return 1
}

// Is reports whether err, or anything it wraps, carries code.
func Is(err error, code string) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == code
}

// SilentError signals a non-zero exit whose message was already printed.
type SilentError struct {
	Code int
}

func (e *SilentError) Error() string { return fmt.Sprintf("exit %d", e.Code) }

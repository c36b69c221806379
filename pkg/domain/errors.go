package domain

import (
	"errors"
	"fmt"
)

// Code is the machine-readable category of a rejected builder call.
type Code string

const (
	CodeForeignItem          Code = "FOREIGN_ITEM"
	CodeWhiteSpace           Code = "WHITESPACE"
	CodeEmptyCollection      Code = "EMPTY_COLLECTION"
	CodeDuplicateValue       Code = "DUPLICATE_VALUE"
	CodeStrictlyNegative     Code = "STRICTLY_NEGATIVE"
	CodeOutOfRange           Code = "OUT_OF_RANGE"
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	CodeInvalidOperation     Code = "INVALID_OPERATION"
)

// Sentinels matching each code, for use with errors.Is.
var (
	ErrForeignItem          = errors.New("item belongs to another diagram")
	ErrWhiteSpace           = errors.New("text is empty or whitespace")
	ErrEmptyCollection      = errors.New("collection is empty")
	ErrDuplicateValue       = errors.New("value already defined")
	ErrStrictlyNegative     = errors.New("value is negative")
	ErrOutOfRange           = errors.New("value out of range")
	ErrInvalidConfiguration = errors.New("invalid combination of options")
	ErrInvalidOperation     = errors.New("invalid operation")
)

var sentinels = map[Code]error{
	CodeForeignItem:          ErrForeignItem,
	CodeWhiteSpace:           ErrWhiteSpace,
	CodeEmptyCollection:      ErrEmptyCollection,
	CodeDuplicateValue:       ErrDuplicateValue,
	CodeStrictlyNegative:     ErrStrictlyNegative,
	CodeOutOfRange:           ErrOutOfRange,
	CodeInvalidConfiguration: ErrInvalidConfiguration,
	CodeInvalidOperation:     ErrInvalidOperation,
}

// Error is returned by builders when a call is rejected.
// A rejected call leaves the builder exactly as it was.
type Error struct {
	Code    Code   // Machine-readable category
	Field   string // Argument that failed, if any
	Message string // Human-readable reason
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// Unwrap returns the sentinel for the error's code.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// NewError creates an Error with a formatted message.
func NewError(code Code, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the code from err, or "" when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

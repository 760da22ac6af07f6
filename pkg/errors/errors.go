package errors

import (
	"fmt"
)

// ParseError represents a props document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ContractError reports a caller precondition violation, such as a value of the
// wrong kind handed to a style converter or a responsive value without a base entry.
type ContractError struct {
	Property string
	Message  string
	Err      error
}

// NewContractError constructs a ContractError for the given abstract property.
func NewContractError(property, message string, err error) error {
	return &ContractError{Property: property, Message: message, Err: err}
}

func (e *ContractError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Property != "" {
		return fmt.Sprintf("contract error [%s]: %s", e.Property, msg)
	}
	return fmt.Sprintf("contract error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *ContractError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

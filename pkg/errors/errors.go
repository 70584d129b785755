package errors

import (
	"fmt"
)

// ParseError represents a theme file parsing failure with optional line
// metadata.
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

// ValidationError captures a theme definition that parsed but does not hold
// together: bad color values, unknown slots, duplicate names.
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

// InstallError represents a failure while fetching or placing a theme from an
// external source.
type InstallError struct {
	Source  string
	Message string
	Err     error
}

// NewInstallError constructs an InstallError for the given source.
func NewInstallError(source string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &InstallError{Source: source, Message: message, Err: err}
}

func (e *InstallError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("install error [%s]: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("install error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *InstallError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Package errors defines the typed failures surfaced by loom's theme, config
// and story loaders.
package errors

import (
	"fmt"
)

// ParseError reports a theme or config file that could not be decoded.
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

// ValidationError captures a field that failed validation.
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

// TokenError reports a design token whose value could not be resolved, for
// example a reference to an unknown token or a reference cycle.
type TokenError struct {
	Token  string
	Reason string
	Err    error
}

// NewTokenError constructs a TokenError for the named token.
func NewTokenError(token, reason string, err error) error {
	return &TokenError{Token: token, Reason: reason, Err: err}
}

func (e *TokenError) Error() string {
	if e == nil {
		return ""
	}
	if e.Token != "" {
		return fmt.Sprintf("token error [%s]: %s", e.Token, e.Reason)
	}
	return fmt.Sprintf("token error: %s", e.Reason)
}

// Unwrap exposes the underlying error.
func (e *TokenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Package errors provides custom error types for the curator system.
// These errors enable programmatic error checking around the review
// lifecycle: loading document pairs, recording decisions, editing fields,
// and gating export.
//
// Expected branching never uses errors: a missing validation state reads as
// pending, a missing diff node merges as a verbatim copy, and an
// unresolvable removal path is a silent no-op.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the curator system
var (
	// ErrNotFound indicates that a requested field or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotReady indicates that export was requested while fields are
	// still awaiting a decision
	ErrNotReady = errors.New("review not complete")

	// ErrNoActiveEdit indicates a commit or update without a started edit
	ErrNoActiveEdit = errors.New("no active edit")

	// ErrUpstreamFetch indicates the external document-pair fetch failed
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrNoDocuments indicates a session operation before a document pair
	// was loaded
	ErrNoDocuments = errors.New("no documents loaded")
)

// DecisionError represents an invalid validation decision input.
type DecisionError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface
func (e *DecisionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid decision for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid decision: %s", e.Message)
}

// Is implements errors.Is support
func (e *DecisionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PathError represents a field path that could not be resolved.
type PathError struct {
	Op   string
	Path string
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s: path %s does not resolve", e.Op, e.Path)
}

// Is implements errors.Is support
func (e *PathError) Is(target error) bool {
	return target == ErrNotFound
}

// NotReadyError indicates export was attempted with pending fields.
type NotReadyError struct {
	Pending []string
}

// Error implements the error interface
func (e *NotReadyError) Error() string {
	if len(e.Pending) == 0 {
		return "review not complete"
	}
	return fmt.Sprintf("review not complete: %d field(s) pending: %s",
		len(e.Pending), strings.Join(e.Pending, ", "))
}

// Is implements errors.Is support
func (e *NotReadyError) Is(target error) bool {
	return target == ErrNotReady
}

// FetchError represents a failure talking to the enrichment backend.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	return target == ErrUpstreamFetch
}

// ParseError represents malformed input that could not be decoded.
type ParseError struct {
	Format string // e.g. "json", "yaml"
	Source string // file path or description of the input
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parsing %s from %s: %v", e.Format, e.Source, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Format, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error indicates a missing field or resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotReady checks if an error indicates an incomplete review
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}

// IsInvalidInput checks if an error indicates invalid input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUpstreamFetch checks if an error came from the enrichment backend
func IsUpstreamFetch(err error) bool {
	return errors.Is(err, ErrUpstreamFetch)
}

// WrapParse wraps a decode error with format and source context
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Source: source, Err: err}
}

// WrapFetch wraps a transport error with endpoint context
func WrapFetch(endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Endpoint: endpoint, Message: err.Error(), Err: err}
}

// WrapIO wraps a file system error with operation context
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", operation, path, err)
}

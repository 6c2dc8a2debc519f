// Package errors provides the standardized error kinds used across the
// mesologia pipeline.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidConfig indicates an invalid pattern or run configuration
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrEmptyCorpus indicates a corpus with no usable tokens
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrZeroExpectation indicates an expected count of zero, under which
	// the observed/expected ratio and p-value are undefined
	ErrZeroExpectation = errors.New("zero expected count")
)

// ConfigError represents an invalid pattern spec or run configuration.
// Configuration errors are detected before scanning and abort the run
// for the affected spec.
type ConfigError struct {
	Field   string // Field or flag that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidConfig
}

// DataError represents an empty or malformed corpus source.
// Data errors abort the run before any partial results are produced.
type DataError struct {
	Source  string // Corpus source involved (path or description)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *DataError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("corpus data error in %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("corpus data error: %s", e.Message)
}

func (e *DataError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrEmptyCorpus
}

// Helper functions for creating common errors

// NewConfig creates a ConfigError
func NewConfig(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewData creates a DataError
func NewData(source, message string) *DataError {
	return &DataError{
		Source:  source,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

package util

import (
	"errors"
	"fmt"
)

// Error taxonomy for the dashboard. Everything here is fatal or a user
// error: degraded query failures never surface as errors at all, they are
// swallowed inside the resolver and renderers.
var (
	// ErrClusterUnreachable indicates the API server could not be reached
	// during initialization
	ErrClusterUnreachable = errors.New("cluster unreachable")

	// ErrNamespaceNotFound indicates the target namespace does not exist
	ErrNamespaceNotFound = errors.New("namespace not found")

	// ErrInvalidInterval indicates a non-positive refresh interval
	ErrInvalidInterval = errors.New("invalid refresh interval")

	// ErrInvalidOutput indicates an unsupported output format
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidConfig indicates a configuration error
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCancelled indicates the run was interrupted
	ErrCancelled = errors.New("operation cancelled")
)

// ValidationError represents a rejected flag or config value.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if v.Value != nil {
		return fmt.Sprintf("validation failed for %q (value: %v): %s", v.Field, v.Value, v.Message)
	}
	return fmt.Sprintf("validation failed for %q: %s", v.Field, v.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// WrapErrorf wraps an error with a formatted message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// IsFatal reports whether an error must abort the process before the
// refresh loop starts.
func IsFatal(err error) bool {
	return errors.Is(err, ErrClusterUnreachable) || errors.Is(err, ErrNamespaceNotFound)
}

// IsUserError reports whether an error comes from invalid operator input.
func IsUserError(err error) bool {
	var vErr *ValidationError
	return errors.Is(err, ErrInvalidInterval) ||
		errors.Is(err, ErrInvalidOutput) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.As(err, &vErr)
}

// FriendlyError converts technical errors to user-friendly messages
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrClusterUnreachable):
		return "Failed to reach the cluster API server. Please check your kubeconfig and network connectivity."
	case errors.Is(err, ErrNamespaceNotFound):
		return "Target namespace does not exist. Please check the --namespace flag."
	case errors.Is(err, ErrInvalidInterval):
		return "Refresh interval must be a positive number of seconds."
	case errors.Is(err, ErrInvalidOutput):
		return "Output format must be one of: table, json, yaml."
	case errors.Is(err, ErrInvalidConfig):
		return "Invalid configuration. Please check your config file and command-line flags."
	case errors.Is(err, ErrCancelled):
		return "Operation was cancelled."
	default:
		return err.Error()
	}
}

package lzerrors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents errors that are a result of missing or invalid flags, configuration file
// settings or environment values. They are raised before any resource is described.
type ConfigurationError struct {
	// Setting is the name of the offending setting, if there is a single one
	Setting string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Setting == "" {
		return "configuration error: " + e.Err.Error()
	}
	return "configuration error: " + e.Setting + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError builds a ConfigurationError for a single setting.
func NewConfigurationError(setting string, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Setting: setting,
		Err:     fmt.Errorf(format, args...),
	}
}

// DependencyError is returned when a resource references another resource that has not been described,
// or when a value is read before the resources it depends on have been realized.
// Seeing one of these means a component wired its graph edges incorrectly.
type DependencyError struct {
	Resource string
	Missing  []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("resource %s depends on unresolved resources %v", e.Resource, e.Missing)
}

// IsConfigurationError returns true if err, or any error it wraps, is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsDependencyError returns true if err, or any error it wraps, is a DependencyError.
func IsDependencyError(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

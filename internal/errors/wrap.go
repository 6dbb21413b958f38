package errors

import (
	"errors"
	"fmt"
)

// Report whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Find the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithContext attaches a key-value pair to err, converting foreign errors
// into ResolveError values along the way.
func WithContext(err error, key string, value interface{}) error {
	if err == nil {
		return nil
	}

	var resolveErr *ResolveError
	if As(err, &resolveErr) {
		return resolveErr.WithContext(key, value)
	}

	newErr := NewResolveError(ErrCodeGitOperation, err.Error(), err)
	return newErr.WithContext(key, value)
}

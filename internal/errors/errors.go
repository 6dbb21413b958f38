package errors

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling
const (
	// User input errors
	ErrCodeNoFile          = "NO_FILE"
	ErrCodeStrategyInvalid = "STRATEGY_INVALID"

	// Environment errors
	ErrCodeRepoNotFound = "REPO_NOT_FOUND"

	// Benign outcomes
	ErrCodeNotConflicted = "NOT_CONFLICTED"

	// Pipeline errors
	ErrCodeStageExtraction = "STAGE_EXTRACTION"
	ErrCodeMergeFailed     = "MERGE_FAILED"
	ErrCodeCommitFailed    = "COMMIT_FAILED"

	// Infrastructure errors
	ErrCodeGitOperation = "GIT_OPERATION"
	ErrCodeFileSystem   = "FILE_SYSTEM"
	ErrCodeLockHeld     = "LOCK_HELD"
)

// ResolveError represents a standardized error with code and context.
//
// ResolveError provides structured error handling for resolution operations:
//   - Code: standardized error code for programmatic handling
//   - Message: human-readable error description
//   - Cause: underlying error that caused this error (optional)
//   - Context: additional contextual information as key-value pairs
type ResolveError struct {
	Code    string                 // Standardized error code (see ErrCode* constants)
	Message string                 // Human-readable error message
	Cause   error                  // Underlying error that caused this error
	Context map[string]interface{} // Additional contextual information
}

// Error implements the error interface
func (e *ResolveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code
func (e *ResolveError) Is(target error) bool {
	if t, ok := target.(*ResolveError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *ResolveError) WithContext(key string, value interface{}) *ResolveError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewResolveError creates a new standardized error
func NewResolveError(code, message string, cause error) *ResolveError {
	return &ResolveError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewResolveErrorf creates a new standardized error with formatted message
func NewResolveErrorf(code string, cause error, format string, args ...interface{}) *ResolveError {
	return &ResolveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Error factory functions for the failure taxonomy

// User input errors
func ErrNoFile() *ResolveError {
	return NewResolveError(ErrCodeNoFile, "no file given and no conflicted file to infer", nil)
}

func ErrStrategyInvalid(name string) *ResolveError {
	return NewResolveErrorf(ErrCodeStrategyInvalid, nil, "unknown strategy %q (expected ours, theirs or union)", name).
		WithContext("strategy", name)
}

// Environment errors
func ErrRepoNotFound(path string) *ResolveError {
	return NewResolveErrorf(ErrCodeRepoNotFound, nil, "not in a git repository: %s", path).
		WithContext("path", path)
}

// Benign outcomes
func ErrNotConflicted(relPath string) *ResolveError {
	return NewResolveErrorf(ErrCodeNotConflicted, nil, "file is not in conflicted state: %s", relPath).
		WithContext("path", relPath)
}

// Pipeline errors
func ErrStageExtraction(relPath string, cause error) *ResolveError {
	return NewResolveErrorf(ErrCodeStageExtraction, cause, "failed to extract conflict versions of %s", relPath).
		WithContext("path", relPath)
}

func ErrMergeFailed(relPath string, cause error) *ResolveError {
	return NewResolveErrorf(ErrCodeMergeFailed, cause, "merge failed for %s", relPath).
		WithContext("path", relPath)
}

func ErrCommitFailed(relPath string, cause error) *ResolveError {
	return NewResolveErrorf(ErrCodeCommitFailed, cause, "failed to stage resolved file %s", relPath).
		WithContext("path", relPath)
}

// Infrastructure errors
func ErrGitOperation(operation string, cause error) *ResolveError {
	return NewResolveErrorf(ErrCodeGitOperation, cause, "git %s failed", operation).
		WithContext("operation", operation)
}

func ErrFileSystem(operation string, cause error) *ResolveError {
	return NewResolveErrorf(ErrCodeFileSystem, cause, "file system operation failed: %s", operation).
		WithContext("operation", operation)
}

func ErrLockHeld(repoRoot string) *ResolveError {
	return NewResolveErrorf(ErrCodeLockHeld, nil, "another resolution is in progress for %s", repoRoot).
		WithContext("repository", repoRoot)
}

// IsResolveError checks if an error carries the given code anywhere in its chain
func IsResolveError(err error, code string) bool {
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Code == code
	}
	return false
}

// CodeOf returns the error code of err, or empty string for foreign errors
func CodeOf(err error) string {
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Code
	}
	return ""
}

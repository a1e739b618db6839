package refscan

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common scan error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNilScene indicates a scan was asked to walk a nil scene.
	ErrNilScene = errors.New("nil scene")

	// ErrNilSource indicates a scan was given a nil source.
	ErrNilSource = errors.New("nil source")

	// ErrInvalidConfig indicates the provided configuration is invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a scene, document, or asset was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindDecode represents errors that occur while decoding documents.
	KindDecode = "decode"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindInternal represents internal scanner errors.
	KindInternal = "internal"
)

// ScanError is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of error.
//
// ScanError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &ScanError{
//		Op:   "Scanner.ScanScene",
//		Kind: KindValidation,
//		Err:  ErrNilScene,
//	}
type ScanError struct {
	// Op is the operation that failed (e.g., "Scanner.ScanScene", "refscan.New").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include document paths, node ids, or other debugging information.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *ScanError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("refscan: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("refscan: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("refscan: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ScanError, allowing comparison based on
// the underlying error or the ScanError itself.
func (e *ScanError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*ScanError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a new ScanError with the provided context added.
// This is useful for adding debugging information to errors.
//
//	err := refscan.NewDecodeError("project.DecodeScene", err).WithContext(map[string]any{
//		"document": "Scenes/Level01.scene.yaml",
//	})
func (e *ScanError) WithContext(ctx map[string]any) *ScanError {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewNotFoundError creates a new ScanError with KindNotFound.
func NewNotFoundError(op string, err error) *ScanError {
	return &ScanError{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewValidationError creates a new ScanError with KindValidation.
func NewValidationError(op string, err error) *ScanError {
	return &ScanError{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewDecodeError creates a new ScanError with KindDecode.
func NewDecodeError(op string, err error) *ScanError {
	return &ScanError{
		Op:   op,
		Kind: KindDecode,
		Err:  err,
	}
}

// NewConfigurationError creates a new ScanError with KindConfiguration.
func NewConfigurationError(op string, err error) *ScanError {
	return &ScanError{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewInternalError creates a new ScanError with KindInternal.
func NewInternalError(op string, err error) *ScanError {
	return &ScanError{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}

// CloseWithLog attempts to close the provided resource and logs any error
// at warning level. This is intended for use in defer statements to ensure
// cleanup errors are not silently ignored.
//
// The name parameter should describe the resource being closed (e.g.,
// "property set", "report file"). If logger is nil, slog.Default() is used.
//
// Example usage:
//
//	defer refscan.CloseWithLog(props, logger, "property set")
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}

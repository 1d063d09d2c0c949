// Package errors provides error types and handling for s3cmd operations.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a failed s3cmd operation with the bucket and key it targeted.
// It wraps the underlying AWS SDK or validation error for errors.Is/As checks.
type Error struct {
	// Op is the operation that failed (e.g., "copy", "download", "ls")
	Op string

	// Bucket is the S3 bucket name (if applicable)
	Bucket string

	// Key is the S3 object key (if applicable)
	Key string

	// Err is the underlying error from the AWS SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("s3cmd.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("s3cmd.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("s3cmd.%s object %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("s3cmd.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds object key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%w: %s", e.Err, message)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewObjectError creates a new Error with bucket and key context.
func NewObjectError(op, bucket, key string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Err:    err,
	}
}

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrInvalidURI indicates a string that is neither an s3:// nor a file:// URI,
	// or an s3:// URI from which no bucket can be extracted.
	ErrInvalidURI = errors.New("s3cmd: invalid uri")

	// ErrInvalidArgument indicates a combination of parameters with no meaning,
	// such as a recursive listing of all buckets.
	ErrInvalidArgument = errors.New("s3cmd: invalid argument")

	// ErrUnsupportedOperation indicates an operation with no semantics for the
	// given kinds of URI, such as copying a local file to a local file.
	ErrUnsupportedOperation = errors.New("s3cmd: unsupported operation")

	// ErrUnsupportedEnvironment indicates that a real-effect operation was refused
	// because the backend could not be verified as a sandbox.
	ErrUnsupportedEnvironment = errors.New("s3cmd: unsupported environment")

	// ErrEnvironmentUnverified indicates that a sandbox check could not reach
	// the backend. The check counts as passed for that call only.
	ErrEnvironmentUnverified = errors.New("s3cmd: environment could not be verified")

	// ErrNotText indicates that an object read as text is not valid UTF-8.
	ErrNotText = errors.New("s3cmd: object content is not utf-8 text")

	// ErrInvalidInput indicates that the provided bucket or key is invalid
	ErrInvalidInput = errors.New("s3cmd: invalid input")

	// ErrObjectNotFound indicates that the requested object does not exist
	ErrObjectNotFound = errors.New("s3cmd: object not found")

	// ErrBucketNotFound indicates that the requested bucket does not exist
	ErrBucketNotFound = errors.New("s3cmd: bucket not found")

	// ErrAccessDenied indicates that access to the resource is denied
	ErrAccessDenied = errors.New("s3cmd: access denied")
)

// IsInvalidURI reports whether err was caused by an unrecognized URI.
func IsInvalidURI(err error) bool {
	return errors.Is(err, ErrInvalidURI)
}

// IsUnsupportedEnvironment reports whether err was raised by a sandbox guard.
func IsUnsupportedEnvironment(err error) bool {
	return errors.Is(err, ErrUnsupportedEnvironment)
}

// IsEnvironmentUnverified reports whether err is an inconclusive sandbox check.
func IsEnvironmentUnverified(err error) bool {
	return errors.Is(err, ErrEnvironmentUnverified)
}

// IsObjectNotFound checks if an error indicates that an object was not found.
func IsObjectNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsAccessDenied checks if an error indicates access was denied.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

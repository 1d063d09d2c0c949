// Package validation checks bucket names and object keys before they are
// sent to S3, so malformed input fails locally with errors.ErrInvalidInput
// instead of as an opaque SDK error.
package validation

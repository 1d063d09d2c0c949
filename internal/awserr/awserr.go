// Package awserr classifies AWS SDK errors into the module's sentinel errors.
package awserr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	s3errors "github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
)

// S3 error codes returned by the service (and by S3-compatible sandboxes).
const (
	CodeNoSuchKey    = "NoSuchKey"
	CodeNotFound     = "NotFound"
	CodeNoSuchBucket = "NoSuchBucket"
	CodeAccessDenied = "AccessDenied"
	CodeForbidden    = "Forbidden"
)

// Convert maps err to a sentinel when it recognizes the failure. The original
// error stays in the chain so callers can still reach the smithy.APIError.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

// IsAPIError reports whether err carries a service error response, as opposed
// to a transport failure where no S3 endpoint answered.
func IsAPIError(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr)
}

func classify(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return s3errors.ErrObjectNotFound
	}

	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return s3errors.ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case CodeNoSuchKey, CodeNotFound:
			return s3errors.ErrObjectNotFound
		case CodeNoSuchBucket:
			return s3errors.ErrBucketNotFound
		case CodeAccessDenied, CodeForbidden:
			return s3errors.ErrAccessDenied
		}
	}

	// Some S3-compatible services only surface the code in the message
	msg := err.Error()
	switch {
	case strings.Contains(msg, CodeNoSuchBucket):
		return s3errors.ErrBucketNotFound
	case strings.Contains(msg, CodeNoSuchKey):
		return s3errors.ErrObjectNotFound
	}

	return nil
}

package validation

import (
	"strings"
	"unicode"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
)

const (
	// MaxBucketLength is the longest bucket name S3 accepts.
	MaxBucketLength = 63

	// MaxKeyLength is the longest object key S3 accepts, in bytes.
	MaxKeyLength = 1024
)

// ValidateBucket checks that bucket can name an S3 bucket. Only structural
// problems are rejected; DNS naming rules are left to the backend since
// S3-compatible stores differ on them.
func ValidateBucket(bucket string) error {
	switch {
	case bucket == "":
		return invalidBucket(bucket, "bucket name cannot be empty")
	case len(bucket) > MaxBucketLength:
		return invalidBucket(bucket, "bucket name cannot exceed 63 characters")
	case strings.Contains(bucket, "/"):
		return invalidBucket(bucket, "bucket name cannot contain a slash")
	case strings.IndexFunc(bucket, unicode.IsSpace) >= 0:
		return invalidBucket(bucket, "bucket name cannot contain whitespace")
	case hasControlCharacters(bucket):
		return invalidBucket(bucket, "bucket name cannot contain control characters")
	}
	return nil
}

// ValidateKey checks that key can address a single S3 object.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return invalidKey(key, "object key cannot be empty")
	case len(key) > MaxKeyLength:
		return invalidKey(key, "object key cannot exceed 1024 bytes")
	case hasControlCharacters(key):
		return invalidKey(key, "object key cannot contain control characters")
	}
	return nil
}

// ValidatePrefix checks a listing prefix. Unlike a key it may be empty.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	return ValidateKey(prefix)
}

// ValidateObject validates a bucket and key pair.
func ValidateObject(bucket, key string) error {
	if err := ValidateBucket(bucket); err != nil {
		return err
	}
	return ValidateKey(key)
}

func hasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

func invalidBucket(bucket, msg string) error {
	return errors.NewError("validateBucket", errors.ErrInvalidInput).
		WithBucket(bucket).
		WithMessage(msg)
}

func invalidKey(key, msg string) error {
	return errors.NewError("validateKey", errors.ErrInvalidInput).
		WithKey(key).
		WithMessage(msg)
}

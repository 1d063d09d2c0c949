package sandbox

import (
	"context"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/awserr"
)

// MarkerBucket is the bucket whose presence identifies a sandbox.
const MarkerBucket = "s3cmd-sandbox-marker"

// BucketLister is the part of the S3 API RequireSandbox needs.
type BucketLister interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

// RequireSandbox returns ErrUnsupportedEnvironment unless api can see
// MarkerBucket. An error response from the service also fails the check.
//
// The check is best effort. When no endpoint answers at all it returns
// ErrEnvironmentUnverified, which callers treat as a pass for the current
// operation only.
func RequireSandbox(ctx context.Context, api BucketLister) error {
	output, err := api.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		if !awserr.IsAPIError(err) {
			return errors.NewError("requireSandbox", errors.ErrEnvironmentUnverified).
				WithMessage(err.Error())
		}
		return errors.NewError("requireSandbox", errors.ErrUnsupportedEnvironment).
			WithMessage("invalid access, are you sure you are in a sandbox? " + err.Error())
	}

	found := slices.ContainsFunc(output.Buckets, func(b s3types.Bucket) bool {
		return aws.ToString(b.Name) == MarkerBucket
	})
	if !found {
		return errors.NewError("requireSandbox", errors.ErrUnsupportedEnvironment).
			WithMessage("a bucket called " + MarkerBucket + " is required to prove this is a sandbox")
	}
	return nil
}

// Check binds RequireSandbox to api for use with s3cmd.Guarded.
func Check(api BucketLister) s3cmd.CheckFunc {
	return func(ctx context.Context) error {
		return RequireSandbox(ctx, api)
	}
}

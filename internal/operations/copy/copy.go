package copy

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Interface defines the S3 operations we need.
type S3Interface interface {
	CopyObject(
		ctx context.Context,
		params *s3.CopyObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.CopyObjectOutput, error)
}

// Copier performs server-side copies.
type Copier struct {
	s3Client S3Interface
}

// NewCopier creates a new copy operation handler
func NewCopier(s3Client S3Interface) *Copier {
	return &Copier{
		s3Client: s3Client,
	}
}

// ResolveKey returns the key a copy of srcKey should be written to.
// An empty dstKey means "same key"; a dstKey ending in "/" receives the last
// segment of srcKey.
func ResolveKey(srcKey, dstKey string) string {
	switch {
	case dstKey == "":
		return srcKey
	case strings.HasSuffix(dstKey, "/"):
		return dstKey + srcKey[strings.LastIndex(srcKey, "/")+1:]
	default:
		return dstKey
	}
}

// CopySource returns the URL-encoded bucket/key value CopyObject expects.
// Each key segment is path-escaped and "+" is escaped as well, since some
// backends decode the header with query rules.
func CopySource(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = strings.ReplaceAll(url.PathEscape(segment), "+", "%2B")
	}
	return bucket + "/" + strings.Join(segments, "/")
}

// Copy copies srcBucket/srcKey to dstBucket/dstKey using CopyObject.
// dstKey must already be resolved.
func (c *Copier) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error {
	copySource := CopySource(srcBucket, srcKey)

	_, err := c.s3Client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(copySource),
	})
	if err != nil {
		return fmt.Errorf("copy from %s/%s: %w", srcBucket, srcKey, err)
	}

	return nil
}

package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// maxKeys is the page size of the single ListObjectsV2 call made per listing.
const maxKeys = 1000

// S3Interface defines the S3 operations we need.
type S3Interface interface {
	ListBuckets(
		ctx context.Context,
		input *s3.ListBucketsInput,
		opts ...func(*s3.Options),
	) (*s3.ListBucketsOutput, error)
	ListObjectsV2(
		ctx context.Context,
		input *s3.ListObjectsV2Input,
		opts ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)
}

// Lister lists buckets and keys.
type Lister struct {
	client S3Interface
}

// New creates a new Lister.
func New(client S3Interface) *Lister {
	return &Lister{
		client: client,
	}
}

// Buckets returns the names of all buckets visible to the client.
func (l *Lister) Buckets(ctx context.Context) ([]string, error) {
	output, err := l.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	names := make([]string, 0, len(output.Buckets))
	for _, b := range output.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, nil
}

// Keys lists the keys under prefix with a single ListObjectsV2 call.
// When recursive is false the keys are folded one level below the prefix.
func (l *Lister) Keys(ctx context.Context, bucket, prefix string, recursive bool) ([]string, error) {
	output, err := l.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(maxKeys),
	})
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	keys := make([]string, 0, len(output.Contents))
	for _, obj := range output.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}

	if recursive {
		return keys, nil
	}
	return Fold(keys, prefix), nil
}

// Fold collapses keys to the level directly below prefix. Keys sharing the
// next segment become a single "segment/" entry. Order of first appearance is kept.
func Fold(keys []string, prefix string) []string {
	depth := KeyDepth(prefix) + 1

	seen := make(map[string]struct{}, len(keys))
	folded := make([]string, 0, len(keys))
	for _, key := range keys {
		entry := CommonPrefix(key, depth)
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		folded = append(folded, entry)
	}
	return folded
}

// KeyDepth returns the number of path segments in key. A trailing slash does
// not add a segment and the empty key has depth zero.
func KeyDepth(key string) int {
	if key == "" {
		return 0
	}
	return len(strings.Split(strings.TrimSuffix(key, "/"), "/"))
}

// CommonPrefix truncates key to its first depth segments. If that drops any
// segment the result ends in a slash, marking it as a directory entry.
func CommonPrefix(key string, depth int) string {
	segments := strings.Split(key, "/")
	if depth >= len(segments) {
		return key
	}
	return strings.Join(segments[:depth], "/") + "/"
}

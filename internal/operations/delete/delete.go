package delete

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Interface defines the S3 operations we need.
type S3Interface interface {
	DeleteObject(
		ctx context.Context,
		input *s3.DeleteObjectInput,
		opts ...func(*s3.Options),
	) (*s3.DeleteObjectOutput, error)
}

// Deleter removes single objects.
type Deleter struct {
	client S3Interface
}

// New creates a new Deleter.
func New(client S3Interface) *Deleter {
	return &Deleter{
		client: client,
	}
}

// Delete removes bucket/key. S3 reports success for keys that do not exist.
func (d *Deleter) Delete(ctx context.Context, bucket, key string) error {
	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

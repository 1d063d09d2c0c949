package sandbox

import (
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd"
)

const (
	// Region is the region sandbox clients are configured with.
	Region = "us-east-1"

	// accessKey and secretKey are the static credentials sandbox clients sign with.
	accessKey = "sandbox"
	secretKey = "sandbox"
)

type config struct {
	marker     bool
	clientOpts []s3cmd.Option
}

// Option configures a Sandbox.
type Option func(*config)

// WithMarkerBucket also creates MarkerBucket, so RequireSandbox passes
// against the sandbox.
func WithMarkerBucket() Option {
	return func(c *config) {
		c.marker = true
	}
}

// WithClientOptions passes options to the s3cmd.Client bound to the sandbox.
// Only options that apply to s3cmd.NewWithClient have an effect.
func WithClientOptions(opts ...s3cmd.Option) Option {
	return func(c *config) {
		c.clientOpts = append(c.clientOpts, opts...)
	}
}

// Sandbox is an in-process S3 server holding all objects in memory.
type Sandbox struct {
	// Client runs operations against the sandbox.
	Client *s3cmd.Client

	// S3 is the SDK client bound to the sandbox.
	S3 *s3.Client

	// URL is the endpoint the server listens on.
	URL string

	server *httptest.Server
}

// New starts a sandbox and creates buckets in it. The sandbox must be closed
// with Close.
func New(ctx context.Context, buckets []string, opts ...Option) (*Sandbox, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	faker := gofakes3.New(s3mem.New())
	server := httptest.NewServer(faker.Server())

	api := NewS3Client(server.URL)
	sb := &Sandbox{
		Client: s3cmd.NewWithClient(api, cfg.clientOpts...),
		S3:     api,
		URL:    server.URL,
		server: server,
	}

	if cfg.marker {
		buckets = append(buckets[:len(buckets):len(buckets)], MarkerBucket)
	}
	for _, bucket := range buckets {
		if err := sb.CreateBucket(ctx, bucket); err != nil {
			sb.Close()
			return nil, err
		}
	}

	return sb, nil
}

// NewS3Client returns an SDK client for the S3-compatible server at endpoint,
// using path-style addressing and static credentials.
func NewS3Client(endpoint string) *s3.Client {
	return s3.New(s3.Options{
		Region:                     Region,
		Credentials:                credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		BaseEndpoint:               aws.String(endpoint),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})
}

// CreateBucket creates bucket in the sandbox.
func (sb *Sandbox) CreateBucket(ctx context.Context, bucket string) error {
	_, err := sb.S3.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		return fmt.Errorf("create sandbox bucket %s: %w", bucket, err)
	}
	return nil
}

// Check returns a check that passes only while the sandbox has a marker bucket.
func (sb *Sandbox) Check() s3cmd.CheckFunc {
	return Check(sb.S3)
}

// Guarded returns the sandbox client gated behind its own Check.
func (sb *Sandbox) Guarded() *s3cmd.Guarded {
	return s3cmd.NewGuarded(sb.Client, sb.Check())
}

// Close stops the server. Every object in the sandbox is lost.
func (sb *Sandbox) Close() {
	sb.server.Close()
}

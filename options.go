package s3cmd

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-git/go-billy/v5"
)

// clientConfig holds the settings applied by Option values.
type clientConfig struct {
	region         string
	profile        string
	endpoint       string
	forcePathStyle bool
	awsConfig      *aws.Config
	maxRetries     int
	timeout        time.Duration
	httpClient     *http.Client
	fs             billy.Filesystem
	logger         *slog.Logger
}

// Option configures a Client.
type Option func(*clientConfig)

// WithRegion sets the AWS region for S3 operations.
// If not specified, uses the region from the default credential chain.
func WithRegion(region string) Option {
	return func(c *clientConfig) {
		c.region = region
	}
}

// WithProfile selects a named profile from the shared AWS config and
// credentials files. It is ignored when WithAWSConfig is also given.
func WithProfile(profile string) Option {
	return func(c *clientConfig) {
		c.profile = profile
	}
}

// WithEndpoint sets a custom S3 endpoint URL.
// This is useful for S3-compatible services or local testing with LocalStack.
func WithEndpoint(endpoint string) Option {
	return func(c *clientConfig) {
		c.endpoint = endpoint
	}
}

// WithForcePathStyle forces the use of path-style URLs instead of virtual-hosted style.
// This is required for S3-compatible services that don't support virtual hosting.
func WithForcePathStyle(forcePathStyle bool) Option {
	return func(c *clientConfig) {
		c.forcePathStyle = forcePathStyle
	}
}

// WithAWSConfig allows providing a custom AWS configuration.
// This overrides the default configuration loading behavior.
func WithAWSConfig(config *aws.Config) Option {
	return func(c *clientConfig) {
		c.awsConfig = config
	}
}

// WithMaxRetries sets the maximum number of attempts the SDK makes per request.
// Zero keeps the SDK default.
func WithMaxRetries(maxRetries int) Option {
	return func(c *clientConfig) {
		c.maxRetries = maxRetries
	}
}

// WithTimeout sets the timeout of the HTTP client used for S3 requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used for S3 requests. It takes
// precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithFilesystem sets the filesystem local paths are resolved against.
// Defaults to the OS filesystem.
func WithFilesystem(filesystem billy.Filesystem) Option {
	return func(c *clientConfig) {
		c.fs = filesystem
	}
}

// WithLogger configures the client with a structured logger.
// If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// uploadConfig holds the settings applied by UploadOption values.
type uploadConfig struct {
	contentType string
	encrypt     bool
}

// UploadOption configures a single upload.
type UploadOption func(*uploadConfig)

// WithEncryption requests AES256 server-side encryption for the upload.
func WithEncryption() UploadOption {
	return func(c *uploadConfig) {
		c.encrypt = true
	}
}

// WithContentType sets the content type for upload operations.
// Without it the content type is detected from the data and the key.
func WithContentType(contentType string) UploadOption {
	return func(c *uploadConfig) {
		c.contentType = contentType
	}
}

func applyUploadOptions(opts []UploadOption) uploadConfig {
	var cfg uploadConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

package s3cmd

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/s3api"
)

// defaultRegion is used when neither the options nor the environment name one.
const defaultRegion = "us-east-1"

// Client executes operations against a real (or emulated) S3 backend.
//
// Thread Safety: all fields are immutable after construction and the AWS SDK
// client is safe for concurrent use, so a Client may be shared between goroutines.
type Client struct {
	// api is the backend every operation is sent to
	api s3api.S3API

	// fs resolves local paths for Download and UploadFile
	fs billy.Filesystem

	// logger receives one record per operation
	logger *slog.Logger
}

var _ Operations = (*Client)(nil)

// New creates a Client backed by the AWS SDK. Credentials and region come from
// the default credential chain unless overridden by options.
//
// Example:
//
//	client, err := s3cmd.New(ctx,
//	    s3cmd.WithRegion("eu-west-1"),
//	    s3cmd.WithLogger(slog.Default()),
//	)
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var awsCfg aws.Config
	if cfg.awsConfig != nil {
		awsCfg = *cfg.awsConfig
	} else {
		var loadOpts []func(*config.LoadOptions) error
		if cfg.profile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.profile))
		}

		var err error
		awsCfg, err = config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.NewError("client initialization", err)
		}
	}

	if cfg.region != "" {
		awsCfg.Region = cfg.region
	} else if awsCfg.Region == "" {
		awsCfg.Region = defaultRegion
	}

	if cfg.maxRetries > 0 {
		awsCfg.RetryMaxAttempts = cfg.maxRetries
	}

	api := s3.NewFromConfig(awsCfg, s3Options(cfg)...)
	return newClient(api, cfg), nil
}

// NewWithClient creates a Client around an existing S3 API implementation,
// such as an *s3.Client bound to a sandbox or a mock in tests.
// Only the filesystem and logger options apply.
func NewWithClient(api s3api.S3API, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return newClient(api, cfg)
}

func newClient(api s3api.S3API, cfg *clientConfig) *Client {
	filesystem := cfg.fs
	if filesystem == nil {
		filesystem = osfs.New("")
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		api:    api,
		fs:     filesystem,
		logger: logger,
	}
}

func s3Options(cfg *clientConfig) []func(*s3.Options) {
	var s3Opts []func(*s3.Options)

	if cfg.forcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	if cfg.endpoint != "" {
		endpoint := cfg.endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	httpClient := cfg.httpClient
	if httpClient == nil && cfg.timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}
	if httpClient != nil {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = httpClient
		})
	}

	return s3Opts
}

package s3cmd

import (
	"context"
	"unicode/utf8"

	s3errors "github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/awserr"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/operations/copy"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/operations/delete"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/operations/download"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/operations/list"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/operations/upload"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/validation"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/uri"
)

// List lists bucket names or keys. See Operations.List.
//
// Errors:
//   - ErrInvalidArgument: recursive is set and uri is empty
//   - ErrInvalidURI: uri is not an s3:// URI
//   - ErrBucketNotFound, ErrAccessDenied: classified backend failures
//
// Example:
//
//	keys, err := client.List(ctx, "s3://testing/foo", false)
//	// keys == []string{"foo/bar/", "foo/bam.txt"}
func (c *Client) List(ctx context.Context, u string, recursive bool) ([]string, error) {
	lister := list.New(c.api)

	if u == "" {
		if recursive {
			return nil, s3errors.NewError("ls", s3errors.ErrInvalidArgument).
				WithMessage("listing buckets does not support recursive")
		}

		c.logger.DebugContext(ctx, "listing buckets", "op", "ls")
		buckets, err := lister.Buckets(ctx)
		if err != nil {
			return nil, c.fail(ctx, s3errors.NewError("ls", awserr.Convert(err)))
		}
		return buckets, nil
	}

	bucket, prefix, err := uri.ParseRemote(u)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateBucket(bucket); err != nil {
		return nil, err
	}
	if err := validation.ValidatePrefix(prefix); err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "listing keys",
		"op", "ls", "bucket", bucket, "prefix", prefix, "recursive", recursive)

	keys, err := lister.Keys(ctx, bucket, prefix, recursive)
	if err != nil {
		return nil, c.fail(ctx, s3errors.NewObjectError("ls", bucket, prefix, awserr.Convert(err)))
	}
	return keys, nil
}

// Copy copies fromBucket/fromKey to toBucket/toKey and returns the
// destination URI. See Operations.Copy for how toKey is resolved.
func (c *Client) Copy(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	if err := validation.ValidateObject(fromBucket, fromKey); err != nil {
		return "", err
	}
	if err := validation.ValidateBucket(toBucket); err != nil {
		return "", err
	}

	toKey = copy.ResolveKey(fromKey, toKey)

	c.logger.DebugContext(ctx, "copying object",
		"op", "copy", "bucket", fromBucket, "key", fromKey, "toBucket", toBucket, "toKey", toKey)

	err := copy.NewCopier(c.api).Copy(ctx, fromBucket, fromKey, toBucket, toKey)
	if err != nil {
		return "", c.fail(ctx, s3errors.NewObjectError("copy", toBucket, toKey, awserr.Convert(err)))
	}
	return uri.FormatRemote(toBucket, toKey), nil
}

// Move copies the object and then removes the source. If the copy fails the
// source is left untouched. A destination that resolves to the source itself
// is rejected with ErrInvalidArgument before any request is made.
func (c *Client) Move(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	if fromBucket == toBucket && copy.ResolveKey(fromKey, toKey) == fromKey {
		return "", c.fail(ctx, s3errors.NewObjectError("mv", fromBucket, fromKey, s3errors.ErrInvalidArgument).
			WithMessage("source and destination are the same object"))
	}

	destination, err := c.Copy(ctx, fromBucket, fromKey, toBucket, toKey)
	if err != nil {
		return "", err
	}

	if _, err := c.Remove(ctx, fromBucket, fromKey); err != nil {
		return "", err
	}
	return destination, nil
}

// Remove deletes bucket/key and returns its URI.
func (c *Client) Remove(ctx context.Context, bucket, key string) (string, error) {
	if err := validation.ValidateObject(bucket, key); err != nil {
		return "", err
	}

	c.logger.DebugContext(ctx, "removing object", "op", "rm", "bucket", bucket, "key", key)

	if err := delete.New(c.api).Delete(ctx, bucket, key); err != nil {
		return "", c.fail(ctx, s3errors.NewObjectError("rm", bucket, key, awserr.Convert(err)))
	}
	return uri.FormatRemote(bucket, key), nil
}

// Download writes bucket/key to localPath on the client's filesystem and
// returns localPath. An existing file is overwritten.
func (c *Client) Download(ctx context.Context, bucket, key, localPath string) (string, error) {
	if err := validation.ValidateObject(bucket, key); err != nil {
		return "", err
	}
	if localPath == "" {
		return "", s3errors.NewObjectError("download", bucket, key, s3errors.ErrInvalidInput).
			WithMessage("local path cannot be empty")
	}

	c.logger.DebugContext(ctx, "downloading object",
		"op", "download", "bucket", bucket, "key", key, "path", localPath)

	n, err := download.New(c.api).DownloadFile(ctx, c.fs, bucket, key, localPath)
	if err != nil {
		return "", c.fail(ctx, s3errors.NewObjectError("download", bucket, key, awserr.Convert(err)))
	}

	c.logger.DebugContext(ctx, "object downloaded",
		"op", "download", "bucket", bucket, "key", key, "bytes", n)
	return localPath, nil
}

// Read returns the content of bucket/key as text.
//
// Errors:
//   - ErrNotText: the content is not valid UTF-8
//   - ErrObjectNotFound: the key does not exist
func (c *Client) Read(ctx context.Context, bucket, key string) (string, error) {
	if err := validation.ValidateObject(bucket, key); err != nil {
		return "", err
	}

	c.logger.DebugContext(ctx, "reading object", "op", "read", "bucket", bucket, "key", key)

	data, err := download.New(c.api).Get(ctx, bucket, key)
	if err != nil {
		return "", c.fail(ctx, s3errors.NewObjectError("read", bucket, key, awserr.Convert(err)))
	}
	if !utf8.Valid(data) {
		return "", s3errors.NewObjectError("read", bucket, key, s3errors.ErrNotText)
	}
	return string(data), nil
}

// UploadFile uploads the file at localPath on the client's filesystem to
// bucket/key and returns the object URI.
func (c *Client) UploadFile(
	ctx context.Context,
	localPath, bucket, key string,
	opts ...UploadOption,
) (string, error) {
	if err := validation.ValidateObject(bucket, key); err != nil {
		return "", err
	}
	if localPath == "" {
		return "", s3errors.NewObjectError("upload", bucket, key, s3errors.ErrInvalidInput).
			WithMessage("local path cannot be empty")
	}

	cfg := applyUploadOptions(opts)

	c.logger.DebugContext(ctx, "uploading file",
		"op", "upload", "bucket", bucket, "key", key, "path", localPath, "encrypt", cfg.encrypt)

	err := upload.New(c.api).UploadFile(ctx, c.fs, localPath, bucket, key, upload.Config{
		ContentType: cfg.contentType,
		Encrypt:     cfg.encrypt,
	})
	if err != nil {
		return "", c.fail(ctx, s3errors.NewObjectError("upload", bucket, key, awserr.Convert(err)))
	}
	return uri.FormatRemote(bucket, key), nil
}

// UploadBytes uploads data to bucket/key and returns the object URI.
func (c *Client) UploadBytes(
	ctx context.Context,
	data []byte,
	bucket, key string,
	opts ...UploadOption,
) (string, error) {
	if err := validation.ValidateObject(bucket, key); err != nil {
		return "", err
	}

	cfg := applyUploadOptions(opts)

	c.logger.DebugContext(ctx, "uploading bytes",
		"op", "upload", "bucket", bucket, "key", key, "size", len(data), "encrypt", cfg.encrypt)

	err := upload.New(c.api).UploadBytes(ctx, bucket, key, data, upload.Config{
		ContentType: cfg.contentType,
		Encrypt:     cfg.encrypt,
	})
	if err != nil {
		return "", c.fail(ctx, s3errors.NewObjectError("upload", bucket, key, awserr.Convert(err)))
	}
	return uri.FormatRemote(bucket, key), nil
}

// fail logs err and returns it.
func (c *Client) fail(ctx context.Context, err *s3errors.Error) error {
	c.logger.ErrorContext(ctx, "operation failed",
		"op", err.Op, "bucket", err.Bucket, "key", err.Key, "error", err.Err)
	return err
}

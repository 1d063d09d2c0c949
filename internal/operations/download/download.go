package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-git/go-billy/v5"
)

// S3Interface defines the S3 operations we need.
type S3Interface interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Downloader handles S3 download operations.
type Downloader struct {
	s3Client S3Interface
}

// New creates a new Downloader instance.
func New(s3Client S3Interface) *Downloader {
	return &Downloader{
		s3Client: s3Client,
	}
}

// Download streams an object into writer and returns the number of bytes written.
func (d *Downloader) Download(ctx context.Context, bucket, key string, writer io.Writer) (int64, error) {
	body, err := d.open(ctx, bucket, key)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	return copyBody(writer, body)
}

// DownloadFile downloads an object to path on fs. Missing parent directories
// are created. The object is written to a temporary file next to path and
// renamed over it only once the whole body has arrived, so a failed download
// leaves any existing file at path untouched.
func (d *Downloader) DownloadFile(ctx context.Context, fs billy.Filesystem, bucket, key, path string) (int64, error) {
	body, err := d.open(ctx, bucket, key)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	dir := filepath.Dir(path)
	if dir != "." && dir != string(filepath.Separator) {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tmp, err := fs.TempFile(dir, "."+filepath.Base(path)+".s3cmd-")
	if err != nil {
		return 0, fmt.Errorf("create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	n, err := copyBody(tmp, body)
	if change, ok := fs.(billy.Change); ok && err == nil {
		_ = change.Chmod(tmpName, 0o644)
	}
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", tmpName, closeErr)
	}
	if err == nil {
		if renameErr := fs.Rename(tmpName, path); renameErr != nil {
			err = fmt.Errorf("rename to %s: %w", path, renameErr)
		}
	}
	if err != nil {
		_ = fs.Remove(tmpName)
		return n, err
	}
	return n, nil
}

func (d *Downloader) open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	output, err := d.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	return output.Body, nil
}

func copyBody(writer io.Writer, body io.Reader) (int64, error) {
	n, err := io.Copy(writer, body)
	if err != nil {
		return n, fmt.Errorf("read object body: %w", err)
	}
	return n, nil
}

// Get downloads an entire object and returns it as a byte slice.
// This is a convenience method for small objects that can fit in memory.
func (d *Downloader) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.Download(ctx, bucket, key, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

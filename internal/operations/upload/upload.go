package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
)

const (
	// DefaultContentType is the default content type used when content type detection fails
	DefaultContentType = "application/octet-stream"

	// sniffLen is how much of a payload is inspected to detect its content type.
	sniffLen = 512
)

// S3Interface defines the S3 operations we need.
type S3Interface interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds per-upload settings.
type Config struct {
	// ContentType overrides detection when set.
	ContentType string

	// Encrypt requests AES256 server-side encryption.
	Encrypt bool
}

// Uploader handles S3 upload operations.
type Uploader struct {
	s3Client S3Interface
}

// New creates a new Uploader instance.
func New(s3Client S3Interface) *Uploader {
	return &Uploader{
		s3Client: s3Client,
	}
}

// UploadBytes uploads data to bucket/key.
func (u *Uploader) UploadBytes(ctx context.Context, bucket, key string, data []byte, config Config) error {
	contentType := config.ContentType
	if contentType == "" {
		contentType = DetectContentType(key, data)
	}

	return u.put(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), contentType, config.Encrypt)
}

// UploadFile uploads the file at path on fs to bucket/key.
func (u *Uploader) UploadFile(
	ctx context.Context,
	fs billy.Filesystem,
	path, bucket, key string,
	config Config,
) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	contentType := config.ContentType
	if contentType == "" {
		head := make([]byte, sniffLen)
		n, err := file.ReadAt(head, 0)
		if err != nil && err != io.EOF {
			return fmt.Errorf("read %s: %w", path, err)
		}
		contentType = DetectContentType(path, head[:n])
	}

	return u.put(ctx, bucket, key, file, info.Size(), contentType, config.Encrypt)
}

func (u *Uploader) put(
	ctx context.Context,
	bucket, key string,
	body io.Reader,
	size int64,
	contentType string,
	encrypt bool,
) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}
	if encrypt {
		input.ServerSideEncryption = awstypes.ServerSideEncryptionAes256
	}

	if _, err := u.s3Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// DetectContentType sniffs data with mimetype. Payloads that only sniff as
// generic text or binary fall back to the extension of name.
func DetectContentType(name string, data []byte) string {
	if len(data) > 0 {
		mt := mimetype.Detect(data)
		if !mt.Is("application/octet-stream") && !mt.Is("text/plain") {
			return mt.String()
		}
	}

	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}

	if len(data) > 0 {
		return mimetype.Detect(data).String()
	}
	return DefaultContentType
}

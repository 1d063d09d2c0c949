package upload

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/testutil"
)

// capturePut records the PutObject input and body.
func capturePut(t *testing.T, input **s3.PutObjectInput, body *string) *testutil.MockS3Client {
	t.Helper()
	return testutil.NewMockBuilder().
		WithPutObject(func(_ context.Context, params *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			data, err := io.ReadAll(params.Body)
			require.NoError(t, err)
			*input = params
			*body = string(data)
			return &s3.PutObjectOutput{ETag: aws.String(`"etag"`)}, nil
		}).
		Build()
}

func TestUploader_UploadBytes(t *testing.T) {
	tests := []struct {
		name            string
		key             string
		data            string
		config          Config
		wantContentType string
		wantSSE         awstypes.ServerSideEncryption
	}{
		{
			name:            "plain text by extension",
			key:             "foo/bar/baz.txt",
			data:            "foo bar",
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name:            "json sniffed from content",
			key:             "config",
			data:            `{"config": "value"}`,
			wantContentType: "application/json",
		},
		{
			name:            "explicit content type",
			key:             "data.bin",
			data:            "x",
			config:          Config{ContentType: "application/x-custom"},
			wantContentType: "application/x-custom",
		},
		{
			name:            "encrypted",
			key:             "secret.txt",
			data:            "s",
			config:          Config{Encrypt: true},
			wantContentType: "text/plain; charset=utf-8",
			wantSSE:         awstypes.ServerSideEncryptionAes256,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input *s3.PutObjectInput
			var body string
			mock := capturePut(t, &input, &body)

			err := New(mock).UploadBytes(context.Background(), "test-bucket", tt.key, []byte(tt.data), tt.config)
			require.NoError(t, err)

			assert.Equal(t, "test-bucket", aws.ToString(input.Bucket))
			assert.Equal(t, tt.key, aws.ToString(input.Key))
			assert.Equal(t, tt.data, body)
			assert.Equal(t, int64(len(tt.data)), aws.ToInt64(input.ContentLength))
			assert.Equal(t, tt.wantContentType, aws.ToString(input.ContentType))
			assert.Equal(t, tt.wantSSE, input.ServerSideEncryption)
		})
	}
}

func TestUploader_UploadFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "sub/hello.txt", []byte("content"), 0o644))

	var input *s3.PutObjectInput
	var body string
	mock := capturePut(t, &input, &body)

	err := New(mock).UploadFile(context.Background(), fs, "sub/hello.txt", "b", "foo/bar/baz.txt", Config{})
	require.NoError(t, err)
	assert.Equal(t, "content", body)
	assert.Equal(t, int64(7), aws.ToInt64(input.ContentLength))
	assert.Equal(t, "foo/bar/baz.txt", aws.ToString(input.Key))
}

func TestUploader_UploadFile_Errors(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("dir", 0o755))
	mock := testutil.NewMockBuilder().WithSuccessfulUpload().Build()
	uploader := New(mock)

	err := uploader.UploadFile(context.Background(), fs, "missing.txt", "b", "k", Config{})
	assert.Error(t, err)

	err = uploader.UploadFile(context.Background(), fs, "dir", "b", "k", Config{})
	assert.ErrorContains(t, err, "is a directory")

	assert.Equal(t, 0, mock.Calls("PutObject"))
}

func TestUploader_PutError(t *testing.T) {
	boom := errors.New("boom")
	mock := testutil.NewMockBuilder().WithFailedUpload(boom).Build()

	err := New(mock).UploadBytes(context.Background(), "b", "k", []byte("x"), Config{})
	assert.ErrorIs(t, err, boom)
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, DefaultContentType, DetectContentType("noext", nil))
	assert.Equal(t, "application/json", DetectContentType("x", []byte(`{"a": 1}`)))
	assert.Equal(t, "image/png", DetectContentType("x.png", nil))
}

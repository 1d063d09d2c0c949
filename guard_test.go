package s3cmd

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	s3errors "github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/testutil"
)

func memfsWith(t *testing.T, path, content string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, path, []byte(content), 0o644))
	return fs
}

func TestGuarded_Refuses(t *testing.T) {
	ctx := context.Background()
	mock := &testutil.MockS3Client{}
	var checks atomic.Int32
	guarded := NewGuarded(NewWithClient(mock), func(context.Context) error {
		checks.Add(1)
		return errors.New("no marker bucket")
	})

	_, err := guarded.Copy(ctx, "b1", "k", "b2", "")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)
	assert.Contains(t, err.Error(), "no marker bucket")
	_, err = guarded.Move(ctx, "b1", "k", "b2", "")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)
	_, err = guarded.Remove(ctx, "b1", "k")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)
	_, err = guarded.Download(ctx, "b1", "k", "/tmp/k")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)
	_, err = guarded.UploadFile(ctx, "/tmp/k", "b1", "k")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)
	_, err = guarded.UploadBytes(ctx, []byte("x"), "b1", "k")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)

	assert.Equal(t, int32(1), checks.Load())
	assert.Equal(t, 0, mock.TotalCalls())
}

func TestGuarded_ReadOnlyPassThrough(t *testing.T) {
	ctx := context.Background()
	mock := testutil.NewMockBuilder().WithKeys("a.txt").WithObject([]byte("text")).Build()
	guarded := NewGuarded(NewWithClient(mock), func(context.Context) error {
		return errors.New("not a sandbox")
	})

	keys, err := guarded.List(ctx, "s3://testing", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, keys)

	text, err := guarded.Read(ctx, "testing", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "text", text)
}

func TestGuarded_Allows(t *testing.T) {
	ctx := context.Background()
	mock := &testutil.MockS3Client{}
	var checks atomic.Int32
	guarded := NewGuarded(NewWithClient(mock), func(context.Context) error {
		checks.Add(1)
		return nil
	})

	dest, err := guarded.UploadBytes(ctx, []byte("x"), "testing", "k")
	require.NoError(t, err)
	assert.Equal(t, "s3://testing/k", dest)
	_, err = guarded.Remove(ctx, "testing", "k")
	require.NoError(t, err)

	assert.Equal(t, int32(1), checks.Load())
	assert.Equal(t, 2, mock.TotalCalls())
}

func TestGuarded_RechecksUnverified(t *testing.T) {
	ctx := context.Background()
	mock := &testutil.MockS3Client{}
	var checks atomic.Int32
	guarded := NewGuarded(NewWithClient(mock), func(context.Context) error {
		if checks.Add(1) == 1 {
			return s3errors.NewError("requireSandbox", s3errors.ErrEnvironmentUnverified)
		}
		return errors.New("no marker bucket")
	})

	_, err := guarded.UploadBytes(ctx, []byte("x"), "testing", "k")
	require.NoError(t, err)

	_, err = guarded.UploadBytes(ctx, []byte("x"), "testing", "k")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)
	_, err = guarded.Remove(ctx, "testing", "k")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)

	assert.Equal(t, int32(2), checks.Load())
	assert.Equal(t, 1, mock.TotalCalls())
}

func TestGuarded_CancelledContextIsNotRemembered(t *testing.T) {
	mock := &testutil.MockS3Client{}
	guarded := NewGuarded(NewWithClient(mock), func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return s3errors.NewError("requireSandbox", s3errors.ErrEnvironmentUnverified).WithMessage(err.Error())
		}
		return errors.New("no marker bucket")
	})

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := guarded.UploadBytes(cancelled, []byte("x"), "testing", "k")
	require.NoError(t, err)

	_, err = guarded.UploadBytes(context.Background(), []byte("x"), "testing", "k")
	assert.ErrorIs(t, err, s3errors.ErrUnsupportedEnvironment)
}

func TestGuarded_KeepsEnvironmentError(t *testing.T) {
	envErr := s3errors.NewError("requireSandbox", s3errors.ErrUnsupportedEnvironment)
	guarded := NewGuarded(&Fake{}, func(context.Context) error { return envErr })

	_, err := guarded.Remove(context.Background(), "b", "k")
	assert.Same(t, envErr, err)
}

func TestGuarded_NilCheck(t *testing.T) {
	guarded := &Guarded{Next: NewWithClient(&testutil.MockS3Client{})}
	_, err := guarded.Remove(context.Background(), "b", "k")
	assert.NoError(t, err)
}

package delete

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	s3errors "github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/awserr"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/testutil"
)

func TestDeleter_Delete(t *testing.T) {
	var got *s3.DeleteObjectInput
	mock := testutil.NewMockBuilder().
		WithDeleteObject(func(_ context.Context, params *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
			got = params
			return &s3.DeleteObjectOutput{}, nil
		}).
		Build()

	err := New(mock).Delete(context.Background(), "testing", "foo/bar/baz.txt")
	require.NoError(t, err)
	assert.Equal(t, "testing", aws.ToString(got.Bucket))
	assert.Equal(t, "foo/bar/baz.txt", aws.ToString(got.Key))
	assert.Equal(t, 1, mock.Calls("DeleteObject"))
}

func TestDeleter_DeleteError(t *testing.T) {
	boom := errors.New("connection reset")
	mock := testutil.NewMockBuilder().
		WithDeleteObject(func(context.Context, *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
			return nil, boom
		}).
		Build()

	err := New(mock).Delete(context.Background(), "b", "k")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "delete object")
}

func TestDeleter_DeleteAccessDenied(t *testing.T) {
	mock := testutil.NewMockBuilder().WithAccessDenied().Build()

	err := New(mock).Delete(context.Background(), "b", "k")
	assert.ErrorIs(t, awserr.Convert(err), s3errors.ErrAccessDenied)
}

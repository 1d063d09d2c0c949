package s3cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/testutil"
)

// runAll calls every operation once on ops.
func runAll(t *testing.T, ops Operations) {
	t.Helper()
	ctx := context.Background()

	_, err := Ls(ctx, ops, "s3://testing/foo", false)
	require.NoError(t, err)
	_, err = Ls(ctx, ops, "s3://testing/foo", true)
	require.NoError(t, err)
	_, err = Ls(ctx, ops, "", false)
	require.NoError(t, err)
	_, err = Cp(ctx, ops, "s3://testing/foo/bam.txt", "s3://production/")
	require.NoError(t, err)
	_, err = Cp(ctx, ops, "s3://testing/foo/bam.txt", "file:///tmp/bam.txt")
	require.NoError(t, err)
	_, err = Cp(ctx, ops, "file:///tmp/bam.txt", "s3://testing/up.txt")
	require.NoError(t, err)
	_, err = Mv(ctx, ops, "s3://testing/foo/bam.txt", "s3://production/bam.txt")
	require.NoError(t, err)
	_, err = Rm(ctx, ops, "s3://testing/foo/bam.txt")
	require.NoError(t, err)
	_, err = ops.Read(ctx, "testing", "foo/bam.txt")
	require.NoError(t, err)
	_, err = ops.UploadBytes(ctx, []byte("foo bar"), "testing", "/foo/bar/baz.txt")
	require.NoError(t, err)
}

const wantCommands = `aws s3 ls s3://testing/foo
aws s3 ls --recursive s3://testing/foo
aws s3 ls
aws s3 cp s3://testing/foo/bam.txt s3://production/foo/bam.txt
aws s3 cp s3://testing/foo/bam.txt file:///tmp/bam.txt
aws s3 cp file:///tmp/bam.txt s3://testing/up.txt
aws s3 mv s3://testing/foo/bam.txt s3://production/bam.txt
aws s3 rm s3://testing/foo/bam.txt
aws s3 cp s3://testing/foo/bam.txt -
echo 'foo bar' | aws s3 cp - s3://testing/foo/bar/baz.txt
`

func TestFake_Output(t *testing.T) {
	var out bytes.Buffer
	runAll(t, &Fake{Out: &out})
	assert.Equal(t, wantCommands, out.String())
}

func TestFake_Placeholders(t *testing.T) {
	ctx := context.Background()
	fake := &Fake{Out: &bytes.Buffer{}}

	keys, err := fake.List(ctx, "s3://testing", false)
	require.NoError(t, err)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)

	dest, err := fake.Copy(ctx, "b1", "foo/bar.txt", "b2", "")
	require.NoError(t, err)
	assert.Equal(t, "s3://b2/foo/bar.txt", dest)

	dest, err = fake.Move(ctx, "b1", "foo/bar.txt", "b2", "dir/")
	require.NoError(t, err)
	assert.Equal(t, "s3://b2/dir/bar.txt", dest)

	dest, err = fake.Remove(ctx, "b1", "k")
	require.NoError(t, err)
	assert.Equal(t, "s3://b1/k", dest)

	path, err := fake.Download(ctx, "b1", "k", "/tmp/k")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/k", path)

	text, err := fake.Read(ctx, "b1", "k")
	require.NoError(t, err)
	assert.Empty(t, text)

	dest, err = fake.UploadFile(ctx, "/tmp/k", "b1", "k")
	require.NoError(t, err)
	assert.Equal(t, "s3://b1/k", dest)
}

func TestFake_Lister(t *testing.T) {
	mock := testutil.NewMockBuilder().WithKeys("foo/bar/baz.txt", "foo/bam.txt").Build()
	var out bytes.Buffer
	fake := &Fake{Out: &out, Lister: NewWithClient(mock)}

	keys, err := fake.List(context.Background(), "s3://testing/foo", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo/bar/", "foo/bam.txt"}, keys)
	assert.Equal(t, "aws s3 ls s3://testing/foo\n", out.String())

	_, err = fake.Remove(context.Background(), "testing", "foo/bam.txt")
	require.NoError(t, err)
	assert.Equal(t, 0, mock.Calls("DeleteObject"))
}

func TestFake_Prefix(t *testing.T) {
	var out bytes.Buffer
	fake := &Fake{Out: &out, Prefix: "s3cmd"}

	_, err := Rm(context.Background(), fake, "s3://b/k")
	require.NoError(t, err)
	assert.Equal(t, "s3cmd rm s3://b/k\n", out.String())
}

func TestEcho_PrintsAndDelegates(t *testing.T) {
	mock := testutil.NewMockBuilder().
		WithKeys("foo/bar/baz.txt", "foo/bam.txt").
		WithBuckets("testing", "production").
		WithSuccessfulUpload().
		Build()
	var out bytes.Buffer
	echo := &Echo{Next: NewWithClient(mock, WithFilesystem(memfsWith(t, "/tmp/bam.txt", "x"))), Out: &out}

	runAll(t, echo)

	assert.Equal(t, wantCommands, out.String())
	assert.Equal(t, 2, mock.Calls("ListObjectsV2"))
	assert.Equal(t, 1, mock.Calls("ListBuckets"))
	assert.Equal(t, 2, mock.Calls("CopyObject"))
	assert.Equal(t, 2, mock.Calls("DeleteObject"))
	assert.Equal(t, 2, mock.Calls("GetObject"))
	assert.Equal(t, 2, mock.Calls("PutObject"))
}

func TestEcho_ReturnsNextResult(t *testing.T) {
	mock := testutil.NewMockBuilder().WithObject([]byte("foo bar")).Build()
	echo := &Echo{Next: NewWithClient(mock), Out: &bytes.Buffer{}}

	text, err := echo.Read(context.Background(), "testing", "foo/bar/baz.txt")
	require.NoError(t, err)
	assert.Equal(t, "foo bar", text)
}

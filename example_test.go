package s3cmd_test

import (
	"context"
	"fmt"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/sandbox"
)

// Example_dryRun prints the commands a sequence of operations would run.
func Example_dryRun() {
	ctx := context.Background()
	ops := &s3cmd.Fake{Out: os.Stdout}

	_, _ = s3cmd.Ls(ctx, ops, "s3://b1", true)
	_, _ = s3cmd.Cp(ctx, ops, "s3://b1/foo", "s3://b2/bar/baz")
	_, _ = s3cmd.Mv(ctx, ops, "s3://b1/foo", "s3://b2/bar/baz")
	_, _ = s3cmd.Rm(ctx, ops, "s3://b1/foo")
	_, _ = ops.UploadBytes(ctx, []byte("hello"), "b1", "greeting.txt")

	// Output:
	// aws s3 ls --recursive s3://b1
	// aws s3 cp s3://b1/foo s3://b2/bar/baz
	// aws s3 mv s3://b1/foo s3://b2/bar/baz
	// aws s3 rm s3://b1/foo
	// echo 'hello' | aws s3 cp - s3://b1/greeting.txt
}

// Example_sandbox runs real operations against an in-memory S3 server.
func Example_sandbox() {
	ctx := context.Background()

	sb, err := sandbox.New(ctx, []string{"testing"}, sandbox.WithMarkerBucket())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer sb.Close()

	ops := sb.Guarded()
	if _, err := ops.UploadBytes(ctx, []byte("foo bar"), "testing", "foo/bar/baz.txt"); err != nil {
		fmt.Println(err)
		return
	}

	moved, err := s3cmd.Mv(ctx, ops, "s3://testing/foo/bar/baz.txt", "s3://testing/archive/")
	if err != nil {
		fmt.Println(err)
		return
	}
	text, _ := ops.Read(ctx, "testing", "archive/baz.txt")

	fmt.Println(moved)
	fmt.Println(text)

	// Output:
	// s3://testing/archive/baz.txt
	// foo bar
}

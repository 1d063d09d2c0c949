package s3cmd

import (
	"context"
	"io"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/uri"
)

// Fake prints the command line equivalent to each operation and returns a
// placeholder result without touching any backend. It is the dry-run mode.
//
// Placeholders are the destination URI for copies, moves, removals and
// uploads, the local path for downloads, empty text for reads and an empty
// listing.
type Fake struct {
	// Out receives one line per operation. Defaults to os.Stdout.
	Out io.Writer

	// Prefix is the command the lines start with. Defaults to DefaultCommandPrefix.
	Prefix string

	// Lister, when set, answers List after the line is printed so a dry run
	// can still inspect real (typically sandboxed) contents.
	Lister Operations
}

var _ Operations = (*Fake)(nil)

func (f *Fake) writer() commandWriter {
	return newCommandWriter(f.Out, f.Prefix)
}

// List implements Operations.
func (f *Fake) List(ctx context.Context, u string, recursive bool) ([]string, error) {
	f.writer().ls(u, recursive)
	if f.Lister != nil {
		return f.Lister.List(ctx, u, recursive)
	}
	return []string{}, nil
}

// Copy implements Operations.
func (f *Fake) Copy(_ context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	target := copyTarget(fromKey, toBucket, toKey)
	f.writer().cp(uri.FormatRemote(fromBucket, fromKey), target)
	return target, nil
}

// Move implements Operations.
func (f *Fake) Move(_ context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	target := copyTarget(fromKey, toBucket, toKey)
	f.writer().mv(uri.FormatRemote(fromBucket, fromKey), target)
	return target, nil
}

// Remove implements Operations.
func (f *Fake) Remove(_ context.Context, bucket, key string) (string, error) {
	target := uri.FormatRemote(bucket, key)
	f.writer().rm(target)
	return target, nil
}

// Download implements Operations.
func (f *Fake) Download(_ context.Context, bucket, key, localPath string) (string, error) {
	f.writer().cp(uri.FormatRemote(bucket, key), uri.FormatLocal(localPath))
	return localPath, nil
}

// Read implements Operations.
func (f *Fake) Read(_ context.Context, bucket, key string) (string, error) {
	f.writer().cp(uri.FormatRemote(bucket, key), "-")
	return "", nil
}

// UploadFile implements Operations.
func (f *Fake) UploadFile(_ context.Context, localPath, bucket, key string, _ ...UploadOption) (string, error) {
	target := uri.FormatRemote(bucket, key)
	f.writer().cp(uri.FormatLocal(localPath), target)
	return target, nil
}

// UploadBytes implements Operations.
func (f *Fake) UploadBytes(_ context.Context, data []byte, bucket, key string, _ ...UploadOption) (string, error) {
	target := uri.FormatRemote(bucket, key)
	f.writer().pipe(data, target)
	return target, nil
}

package s3cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/internal/operations/copy"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/uri"
)

// DefaultCommandPrefix is the command echoed operations are rendered as.
const DefaultCommandPrefix = "aws s3"

// commandWriter renders operations as aws CLI command lines.
type commandWriter struct {
	out    io.Writer
	prefix string
}

func newCommandWriter(out io.Writer, prefix string) commandWriter {
	if out == nil {
		out = os.Stdout
	}
	if prefix == "" {
		prefix = DefaultCommandPrefix
	}
	return commandWriter{out: out, prefix: prefix}
}

func (w commandWriter) ls(u string, recursive bool) {
	line := w.prefix + " ls"
	if recursive {
		line += " --recursive"
	}
	if u != "" {
		line += " " + u
	}
	fmt.Fprintln(w.out, line)
}

func (w commandWriter) cp(from, to string) {
	fmt.Fprintf(w.out, "%s cp %s %s\n", w.prefix, from, to)
}

func (w commandWriter) mv(from, to string) {
	fmt.Fprintf(w.out, "%s mv %s %s\n", w.prefix, from, to)
}

func (w commandWriter) rm(u string) {
	fmt.Fprintf(w.out, "%s rm %s\n", w.prefix, u)
}

func (w commandWriter) pipe(data []byte, to string) {
	fmt.Fprintf(w.out, "echo '%s' | %s cp - %s\n", data, w.prefix, to)
}

// copyTarget returns the destination URI a copy resolves to.
func copyTarget(fromKey, toBucket, toKey string) string {
	return uri.FormatRemote(toBucket, copy.ResolveKey(fromKey, toKey))
}

// Echo prints the command line equivalent to each operation to Out and then
// runs the operation on Next.
type Echo struct {
	// Next performs the operations.
	Next Operations

	// Out receives one line per operation. Defaults to os.Stdout.
	Out io.Writer

	// Prefix is the command the lines start with. Defaults to DefaultCommandPrefix.
	Prefix string
}

var _ Operations = (*Echo)(nil)

func (e *Echo) writer() commandWriter {
	return newCommandWriter(e.Out, e.Prefix)
}

// List implements Operations.
func (e *Echo) List(ctx context.Context, u string, recursive bool) ([]string, error) {
	e.writer().ls(u, recursive)
	return e.Next.List(ctx, u, recursive)
}

// Copy implements Operations.
func (e *Echo) Copy(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	e.writer().cp(uri.FormatRemote(fromBucket, fromKey), copyTarget(fromKey, toBucket, toKey))
	return e.Next.Copy(ctx, fromBucket, fromKey, toBucket, toKey)
}

// Move implements Operations.
func (e *Echo) Move(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	e.writer().mv(uri.FormatRemote(fromBucket, fromKey), copyTarget(fromKey, toBucket, toKey))
	return e.Next.Move(ctx, fromBucket, fromKey, toBucket, toKey)
}

// Remove implements Operations.
func (e *Echo) Remove(ctx context.Context, bucket, key string) (string, error) {
	e.writer().rm(uri.FormatRemote(bucket, key))
	return e.Next.Remove(ctx, bucket, key)
}

// Download implements Operations.
func (e *Echo) Download(ctx context.Context, bucket, key, localPath string) (string, error) {
	e.writer().cp(uri.FormatRemote(bucket, key), uri.FormatLocal(localPath))
	return e.Next.Download(ctx, bucket, key, localPath)
}

// Read implements Operations.
func (e *Echo) Read(ctx context.Context, bucket, key string) (string, error) {
	e.writer().cp(uri.FormatRemote(bucket, key), "-")
	return e.Next.Read(ctx, bucket, key)
}

// UploadFile implements Operations.
func (e *Echo) UploadFile(ctx context.Context, localPath, bucket, key string, opts ...UploadOption) (string, error) {
	e.writer().cp(uri.FormatLocal(localPath), uri.FormatRemote(bucket, key))
	return e.Next.UploadFile(ctx, localPath, bucket, key, opts...)
}

// UploadBytes implements Operations.
func (e *Echo) UploadBytes(ctx context.Context, data []byte, bucket, key string, opts ...UploadOption) (string, error) {
	e.writer().pipe(data, uri.FormatRemote(bucket, key))
	return e.Next.UploadBytes(ctx, data, bucket, key, opts...)
}

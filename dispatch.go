package s3cmd

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/uri"
)

// Ls lists u with ops. An empty u lists bucket names.
func Ls(ctx context.Context, ops Operations, u string, recursive bool) ([]string, error) {
	return ops.List(ctx, u, recursive)
}

// Cp copies between two URIs, choosing the operation from their kinds:
//
//	s3://   -> s3://    Copy
//	s3://   -> file://  Download
//	file:// -> s3://    UploadFile
//	file:// -> file://  ErrUnsupportedOperation
//
// Both URIs are parsed before ops is called, so a malformed URI or a local
// to local copy never reaches the backend.
func Cp(ctx context.Context, ops Operations, from, to string) (string, error) {
	src, err := uri.Parse(from)
	if err != nil {
		return "", err
	}
	dst, err := uri.Parse(to)
	if err != nil {
		return "", err
	}

	switch {
	case src.Kind == uri.Remote && dst.Kind == uri.Remote:
		return ops.Copy(ctx, src.Bucket, src.Key, dst.Bucket, dst.Key)
	case src.Kind == uri.Remote && dst.Kind == uri.Local:
		return ops.Download(ctx, src.Bucket, src.Key, dst.Path)
	case src.Kind == uri.Local && dst.Kind == uri.Remote:
		return ops.UploadFile(ctx, src.Path, dst.Bucket, dst.Key)
	default:
		return "", errors.NewError("cp", errors.ErrUnsupportedOperation).
			WithMessage("cannot copy local to local")
	}
}

// Mv moves an object between two s3:// URIs.
func Mv(ctx context.Context, ops Operations, from, to string) (string, error) {
	fromBucket, fromKey, err := uri.ParseRemote(from)
	if err != nil {
		return "", err
	}
	toBucket, toKey, err := uri.ParseRemote(to)
	if err != nil {
		return "", err
	}

	return ops.Move(ctx, fromBucket, fromKey, toBucket, toKey)
}

// Rm removes the object at an s3:// URI.
func Rm(ctx context.Context, ops Operations, u string) (string, error) {
	bucket, key, err := uri.ParseRemote(u)
	if err != nil {
		return "", err
	}

	return ops.Remove(ctx, bucket, key)
}

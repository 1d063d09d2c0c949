package s3cmd

import "context"

// Operations is the set of storage operations every mode implements. Client
// executes them, Echo prints and executes them, Fake only prints them and
// Guarded gates them behind a sandbox check. Callers pick one explicitly and
// pass it to Ls, Cp, Mv and Rm.
//
// Bucket-and-key methods return the canonical URI of the object they produced
// or removed, except Download which returns the local path it wrote.
type Operations interface {
	// List lists bucket names when uri is empty, otherwise the keys under the
	// s3:// uri. Non-recursive listings fold keys one level below the prefix.
	List(ctx context.Context, uri string, recursive bool) ([]string, error)

	// Copy copies an object server side. An empty toKey keeps fromKey and a
	// toKey ending in "/" receives the last segment of fromKey.
	Copy(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error)

	// Move copies an object like Copy and then removes the source.
	Move(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error)

	// Remove deletes a single object.
	Remove(ctx context.Context, bucket, key string) (string, error)

	// Download writes an object to localPath, creating parent directories.
	Download(ctx context.Context, bucket, key, localPath string) (string, error)

	// Read returns the content of an object as UTF-8 text.
	Read(ctx context.Context, bucket, key string) (string, error)

	// UploadFile uploads the file at localPath.
	UploadFile(ctx context.Context, localPath, bucket, key string, opts ...UploadOption) (string, error)

	// UploadBytes uploads data.
	UploadBytes(ctx context.Context, data []byte, bucket, key string, opts ...UploadOption) (string, error)
}

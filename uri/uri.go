// Package uri parses and formats the two kinds of location s3cmd understands:
// remote objects addressed as s3://bucket/key and local files addressed as
// file://path.
package uri

import (
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
)

const (
	// RemotePrefix is the scheme prefix of an S3 object URI.
	RemotePrefix = "s3://"

	// LocalPrefix is the scheme prefix of a local file URI.
	LocalPrefix = "file://"
)

// Kind classifies a URI.
type Kind int

const (
	// Remote is an object in a bucket.
	Remote Kind = iota + 1
	// Local is a path on the local filesystem.
	Local
)

// String returns the scheme name of the kind.
func (k Kind) String() string {
	switch k {
	case Remote:
		return "s3"
	case Local:
		return "file"
	default:
		return "invalid"
	}
}

// URI is a parsed location. Bucket and Key are set for Remote URIs, Path for Local ones.
type URI struct {
	Kind   Kind
	Bucket string
	Key    string
	Path   string
}

// String returns the canonical form of u.
func (u URI) String() string {
	if u.Kind == Local {
		return FormatLocal(u.Path)
	}
	return FormatRemote(u.Bucket, u.Key)
}

// Parse classifies s and extracts its components.
func Parse(s string) (URI, error) {
	kind, err := Classify(s)
	if err != nil {
		return URI{}, err
	}

	if kind == Local {
		return URI{Kind: Local, Path: s[len(LocalPrefix):]}, nil
	}

	bucket, key, err := ParseRemote(s)
	if err != nil {
		return URI{}, err
	}
	return URI{Kind: Remote, Bucket: bucket, Key: key}, nil
}

// Classify reports whether s is a Remote or Local URI.
func Classify(s string) (Kind, error) {
	switch {
	case strings.HasPrefix(s, RemotePrefix):
		return Remote, nil
	case strings.HasPrefix(s, LocalPrefix):
		return Local, nil
	}

	return 0, errors.NewError("classify", errors.ErrInvalidURI).
		WithMessage("unrecognized scheme in " + quote(s))
}

// ParseRemote splits an s3:// URI into its bucket and key.
// The key is everything after the first slash following the bucket and may be empty.
func ParseRemote(s string) (bucket, key string, err error) {
	if !strings.HasPrefix(s, RemotePrefix) {
		return "", "", errors.NewError("parseRemote", errors.ErrInvalidURI).
			WithMessage("uri must start with " + RemotePrefix + ": " + quote(s))
	}

	bucket, key, _ = strings.Cut(s[len(RemotePrefix):], "/")
	if bucket == "" {
		return "", "", errors.NewError("parseRemote", errors.ErrInvalidURI).
			WithMessage("no bucket in " + quote(s))
	}

	return bucket, key, nil
}

// FormatRemote builds the canonical s3:// URI for bucket and key.
// A single trailing slash on bucket and a single leading slash on key are dropped.
func FormatRemote(bucket, key string) string {
	bucket = strings.TrimSuffix(bucket, "/")
	key = strings.TrimPrefix(key, "/")

	return RemotePrefix + bucket + "/" + key
}

// FormatLocal builds the file:// URI for path.
func FormatLocal(path string) string {
	return LocalPrefix + path
}

// Peel strips the recognized scheme prefix from s.
func Peel(s string) (string, error) {
	switch {
	case strings.HasPrefix(s, RemotePrefix):
		return s[len(RemotePrefix):], nil
	case strings.HasPrefix(s, LocalPrefix):
		return s[len(LocalPrefix):], nil
	}

	return "", errors.NewError("peel", errors.ErrInvalidURI).
		WithMessage("unrecognized scheme in " + quote(s))
}

func quote(s string) string {
	return "\"" + s + "\""
}

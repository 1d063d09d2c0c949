// Package sandbox runs an in-memory S3 server for tests and dry runs, and
// provides the marker-bucket check used to make sure destructive work only
// happens against such an isolated backend.
//
// Example usage:
//
//	sb, err := sandbox.New(ctx, []string{"testing"}, sandbox.WithMarkerBucket())
//	if err != nil {
//	    return err
//	}
//	defer sb.Close()
//
//	ops := sb.Guarded()
//	_, err = s3cmd.Cp(ctx, ops, "s3://testing/a.txt", "s3://testing/b.txt")
package sandbox

// Package s3cmd offers aws-cli style S3 commands addressed by URI.
//
// Locations are written as s3://bucket/key for objects and file://path for
// local files. Ls, Cp, Mv and Rm dispatch on the kinds of their URIs and run
// against an Operations implementation chosen by the caller:
//
//   - Client executes operations with the AWS SDK
//   - Echo prints the equivalent aws command line, then executes
//   - Fake prints the command line only (dry run)
//   - Guarded refuses real effects unless a sandbox check passes
//
// The sandbox subpackage runs an in-memory S3 server and returns a Client
// bound to it.
//
// Example usage:
//
//	client, err := s3cmd.New(ctx)
//	if err != nil {
//	    return err
//	}
//
//	ops := &s3cmd.Echo{Next: client}
//	if _, err := s3cmd.Cp(ctx, ops, "file:///tmp/report.csv", "s3://reports/2024/report.csv"); err != nil {
//	    return err
//	}
package s3cmd

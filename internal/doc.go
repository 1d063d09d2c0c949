// Package internal contains private implementation details for s3cmd.
// These packages are not intended for external use and may change without notice.
//
// The internal packages are organized as follows:
//   - s3api: The subset of the S3 API the module calls
//   - awserr: Classification of AWS SDK errors
//   - operations: One package per S3 operation
//   - validation: Input validation logic
//   - testutil: Mocks and LocalStack helpers for tests
package internal

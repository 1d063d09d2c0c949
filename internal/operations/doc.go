// Package operations contains the S3 operation implementations behind s3cmd.
// Each operation is isolated into its own subpackage and declares the narrow
// slice of the S3 API it needs, so it can be tested with a mock.
package operations

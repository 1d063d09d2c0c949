// Package download handles S3 object download operations.
// Objects are streamed to a writer, to a file on a billy filesystem, or
// buffered in memory for small reads.
package download

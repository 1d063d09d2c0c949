// Package upload handles S3 object uploads from memory and from local files.
// Content types are sniffed from the payload with mimetype, falling back to
// the file extension.
package upload

// Package copy handles server-side S3 object copies.
// It also resolves the destination key when the caller gives none or names a
// directory-style prefix.
package copy

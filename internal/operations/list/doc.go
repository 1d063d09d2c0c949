// Package list handles S3 listing for the ls command.
// This includes listing buckets, listing keys under a prefix, and folding keys
// into directory-like entries for non-recursive listings.
package list

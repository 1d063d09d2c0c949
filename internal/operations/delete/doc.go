// Package delete handles S3 object deletion.
package delete

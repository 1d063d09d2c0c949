package s3cmd

import (
	"context"
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
)

// CheckFunc verifies that operations are about to run against an isolated
// backend. sandbox.RequireSandbox builds one.
//
// A CheckFunc returns nil when the backend is a sandbox and an error wrapping
// ErrEnvironmentUnverified when it could not tell. Any other error refuses.
type CheckFunc func(ctx context.Context) error

// Guarded runs Check before the first operation with a real effect, and
// refuses every such operation with ErrUnsupportedEnvironment if it failed.
// List and Read have no effect and pass straight through.
//
// A conclusive result is remembered for the lifetime of the Guarded. An
// unverified result lets the current call through and the check runs again
// on the next one. Check runs with the context of the operation that
// triggered it, so a cancelled or expired context yields an unverified
// result rather than a remembered one.
//
// A Guarded must not be copied after first use.
type Guarded struct {
	// Next performs the operations once the check has passed.
	Next Operations

	// Check decides whether effectful operations may run. A nil Check always passes.
	Check CheckFunc

	mu   sync.Mutex
	done bool
	err  error
}

var _ Operations = (*Guarded)(nil)

// NewGuarded returns next gated behind check.
func NewGuarded(next Operations, check CheckFunc) *Guarded {
	return &Guarded{Next: next, Check: check}
}

func (g *Guarded) guard(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done || g.Check == nil {
		return g.err
	}

	err := g.Check(ctx)
	switch {
	case err == nil:
	case errors.IsEnvironmentUnverified(err):
		return nil
	case errors.IsUnsupportedEnvironment(err):
		g.err = err
	default:
		g.err = errors.NewError("guard", errors.ErrUnsupportedEnvironment).WithMessage(err.Error())
	}

	g.done = true
	return g.err
}

// List implements Operations.
func (g *Guarded) List(ctx context.Context, u string, recursive bool) ([]string, error) {
	return g.Next.List(ctx, u, recursive)
}

// Read implements Operations.
func (g *Guarded) Read(ctx context.Context, bucket, key string) (string, error) {
	return g.Next.Read(ctx, bucket, key)
}

// Copy implements Operations.
func (g *Guarded) Copy(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	if err := g.guard(ctx); err != nil {
		return "", err
	}
	return g.Next.Copy(ctx, fromBucket, fromKey, toBucket, toKey)
}

// Move implements Operations.
func (g *Guarded) Move(ctx context.Context, fromBucket, fromKey, toBucket, toKey string) (string, error) {
	if err := g.guard(ctx); err != nil {
		return "", err
	}
	return g.Next.Move(ctx, fromBucket, fromKey, toBucket, toKey)
}

// Remove implements Operations.
func (g *Guarded) Remove(ctx context.Context, bucket, key string) (string, error) {
	if err := g.guard(ctx); err != nil {
		return "", err
	}
	return g.Next.Remove(ctx, bucket, key)
}

// Download implements Operations.
func (g *Guarded) Download(ctx context.Context, bucket, key, localPath string) (string, error) {
	if err := g.guard(ctx); err != nil {
		return "", err
	}
	return g.Next.Download(ctx, bucket, key, localPath)
}

// UploadFile implements Operations.
func (g *Guarded) UploadFile(ctx context.Context, localPath, bucket, key string, opts ...UploadOption) (string, error) {
	if err := g.guard(ctx); err != nil {
		return "", err
	}
	return g.Next.UploadFile(ctx, localPath, bucket, key, opts...)
}

// UploadBytes implements Operations.
func (g *Guarded) UploadBytes(ctx context.Context, data []byte, bucket, key string, opts ...UploadOption) (string, error) {
	if err := g.guard(ctx); err != nil {
		return "", err
	}
	return g.Next.UploadBytes(ctx, data, bucket, key, opts...)
}

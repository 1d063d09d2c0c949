package sandbox

import (
	"context"
	"math/rand/v2"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3cmd/errors"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Seed uploads the same short random ASCII text to every key in bucket.
// It refuses to write anything unless check passes. A nil check never passes
// and an unverified check counts as a pass.
func Seed(ctx context.Context, ops s3cmd.Operations, check s3cmd.CheckFunc, bucket string, keys ...string) error {
	if check == nil {
		return errors.NewError("seed", errors.ErrUnsupportedEnvironment).
			WithMessage("a sandbox check is required")
	}
	if err := check(ctx); err != nil && !errors.IsEnvironmentUnverified(err) {
		return err
	}

	data := randomText(10 + rand.IntN(15))
	for _, key := range keys {
		if _, err := ops.UploadBytes(ctx, data, bucket, key); err != nil {
			return err
		}
	}
	return nil
}

func randomText(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return b
}

package cmdutil

import (
	"context"

	"quickdna/internal/pipeline"
)

// RunStream runs the record pipeline, applies a visitor, and streams results via send.
// It returns the number of sent outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	visit func(pipeline.Job) (T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.Map(ctx, cfg, seqFiles, visit, func(v T) error {
		if err := send(v); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}

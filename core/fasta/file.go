// core/fasta/file.go
package fasta

import (
	"context"
	"fmt"
)

// StreamFile opens path (see Open) and parses it record by record.
// Cancellation via ctx is honored between lines.
func StreamFile(ctx context.Context, path string, settings Settings, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := Parse(ctx, rc, settings, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadFile collects every record of path.
func ReadFile(ctx context.Context, path string, settings Settings) ([]Record, error) {
	var out []Record
	err := StreamFile(ctx, path, settings, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Records is the channel form of StreamFile. Open errors are reported
// immediately; later errors arrive on the error channel, which receives at
// most one value and is closed after the record channel.
func Records(ctx context.Context, path string, settings Settings) (<-chan Record, <-chan error, error) {
	if path != "-" {
		rc, err := Open(path)
		if err != nil {
			return nil, nil, err
		}
		_ = rc.Close()
	}
	out := make(chan Record, 8)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(out)
		err := StreamFile(ctx, path, settings, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			errc <- err
		}
	}()
	return out, errc, nil
}

package writers

import (
	"errors"
	"io"
	"syscall"

	"quickdna/internal/output"
)

// Start spins up a writer goroutine for results of type T in the given
// format. The returned error channel receives exactly one value once the
// input channel is closed and everything is written (or on the first error).
// After an error the input is drained so senders never block.
func Start[T any](out io.Writer, format string, opt Options, bufSize int) (chan<- T, <-chan error) {
	if format == output.FormatJSONL {
		return StartJSONL[T](out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)

	go func() {
		enc, err := New(format, out, opt)
		if err == nil {
			for v := range in {
				if err = enc.Encode(v); err != nil {
					break
				}
			}
			if err == nil {
				err = enc.Close()
			}
		}
		errCh <- err
		for range in {
		}
	}()

	return in, errCh
}

// IsBrokenPipe reports whether err means the reader went away, e.g. `| head`.
// Such errors end a run successfully.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

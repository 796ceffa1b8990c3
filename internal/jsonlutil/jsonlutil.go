// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// 64 KiB line buffers shared by every JSONL stream in the process.
var bwPool = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// Start runs a JSONL writer goroutine for values of type T. encode writes
// one value (nil means enc.Encode); HTML escaping is off so FASTA ids with
// '<' or '&' come out as written. Errors accepted by isBroken end the stream
// quietly. done receives one value after in is closed, and in is drained after
// a failure.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if encode == nil {
		encode = func(enc *json.Encoder, v T) error { return enc.Encode(v) }
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)

		var err error
		for v := range in {
			if err = encode(enc, v); err != nil {
				break
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
		for range in {
		}
	}()

	return in, done
}

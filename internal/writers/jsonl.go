// internal/writers/jsonl.go
package writers

import (
	"io"

	"quickdna/internal/jsonlutil"
)

// StartJSONL streams each result as one JSON object per line.
func StartJSONL[T any](out io.Writer, bufSize int) (chan<- T, <-chan error) {
	return jsonlutil.Start[T](out, bufSize, nil, IsBrokenPipe)
}

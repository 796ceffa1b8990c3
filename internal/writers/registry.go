// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Encoder writes a stream of results in one format. Close flushes anything
// buffered; it does not close the underlying writer.
type Encoder interface {
	Encode(v any) error
	Close() error
}

// Options tune the text-like formats.
type Options struct {
	Header bool // TSV header row before the first result
	Pretty bool // six-frame blocks instead of TSV rows for translations
	Color  bool // highlight start and stop codons in pretty blocks
	Width  int  // pretty block width in bases (0 = default)
}

// Writer registry (format → encoder factory). Register in init() blocks
// from the per-format files.
var registry = map[string]func(w io.Writer, opt Options) Encoder{}

// Register installs a format (idempotent last-wins).
func Register(format string, fn func(io.Writer, Options) Encoder) { registry[format] = fn }

// New returns the encoder registered for format.
func New(format string, w io.Writer, opt Options) (Encoder, error) {
	fn, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, opt), nil
}

// Registered lists the registered formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandInputs expands shell-style globs among FASTA input paths, for shells
// (and config files) that pass them through unexpanded. "-" is stdin and is
// kept as is. A glob matching nothing is an error; a plain path is left for
// the reader to fail on.
func ExpandInputs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}

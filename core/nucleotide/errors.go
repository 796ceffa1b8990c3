package nucleotide

import (
	"errors"
	"fmt"
)

var (
	ErrNonASCII            = errors.New("non-ascii byte")
	ErrBadNucleotide       = errors.New("bad nucleotide")
	ErrUnexpectedAmbiguity = errors.New("unexpected ambiguous nucleotide")
	ErrCodonLength         = errors.New("codon must be exactly 3 nucleotides")
)

// SymbolError reports the byte that could not be decoded.
type SymbolError struct {
	Byte byte
	Err  error
}

func (e *SymbolError) Error() string {
	if e.Byte >= 128 {
		return fmt.Sprintf("%v: %#x", e.Err, e.Byte)
	}
	return fmt.Sprintf("%v: %q", e.Err, rune(e.Byte))
}

func (e *SymbolError) Unwrap() error { return e.Err }

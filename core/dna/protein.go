package dna

import (
	"iter"

	"quickdna/core/nucleotide"
)

// Protein is uppercase ASCII amino-acid letters, '*' for stop.
type Protein []byte

// ParseProtein accepts any ASCII and uppercases it.
func ParseProtein(b []byte) (Protein, error) {
	out := make(Protein, len(b))
	for i, c := range b {
		if c >= 128 {
			return nil, &nucleotide.SymbolError{Byte: c, Err: nucleotide.ErrNonASCII}
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return out, nil
}

func (p Protein) String() string { return string(p) }

func (p Protein) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *Protein) UnmarshalText(b []byte) error {
	v, err := ParseProtein(b)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Windows yields every length-n window of p, sharing storage with p.
func (p Protein) Windows(n int) iter.Seq[Protein] {
	return func(yield func(Protein) bool) {
		if n <= 0 {
			return
		}
		for i := 0; i+n <= len(p); i++ {
			if !yield(p[i : i+n : i+n]) {
				return
			}
		}
	}
}

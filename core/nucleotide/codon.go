package nucleotide

import (
	"fmt"
	"iter"
)

// Codon is three unambiguous bases, the unit of translation.
type Codon [3]Nucleotide

// AmbiguousCodon is three bases or ambiguity codes.
type AmbiguousCodon [3]Ambiguous

// ParseCodon decodes exactly three ACGT letters.
func ParseCodon(s string) (Codon, error) {
	var c Codon
	if len(s) != 3 {
		return c, fmt.Errorf("%w: got %d in %q", ErrCodonLength, len(s), s)
	}
	for i := 0; i < 3; i++ {
		n, err := ParseNucleotide(s[i])
		if err != nil {
			return Codon{}, err
		}
		c[i] = n
	}
	return c, nil
}

// ParseAmbiguousCodon decodes exactly three IUPAC letters.
func ParseAmbiguousCodon(s string) (AmbiguousCodon, error) {
	var c AmbiguousCodon
	if len(s) != 3 {
		return c, fmt.Errorf("%w: got %d in %q", ErrCodonLength, len(s), s)
	}
	for i := 0; i < 3; i++ {
		a, err := ParseAmbiguous(s[i])
		if err != nil {
			return AmbiguousCodon{}, err
		}
		c[i] = a
	}
	return c, nil
}

func (c Codon) String() string {
	return string([]byte{c[0].ASCII(), c[1].ASCII(), c[2].ASCII()})
}

func (c Codon) Ambiguous() AmbiguousCodon {
	return AmbiguousCodon{Ambiguous(c[0]), Ambiguous(c[1]), Ambiguous(c[2])}
}

func (c AmbiguousCodon) String() string {
	return string([]byte{c[0].ASCII(), c[1].ASCII(), c[2].ASCII()})
}

// IsAmbiguous reports whether any position holds a real ambiguity code.
func (c AmbiguousCodon) IsAmbiguous() bool {
	return c[0].IsAmbiguous() || c[1].IsAmbiguous() || c[2].IsAmbiguous()
}

// Strict narrows c to a concrete codon.
func (c AmbiguousCodon) Strict() (Codon, error) {
	var out Codon
	for i, a := range c {
		n, err := a.Strict()
		if err != nil {
			return Codon{}, err
		}
		out[i] = n
	}
	return out, nil
}

// Count is the number of concrete codons c stands for.
func (c AmbiguousCodon) Count() int {
	return c[0].Count() * c[1].Count() * c[2].Count()
}

// Possibilities yields every concrete codon c stands for. The first position
// varies slowest and the last fastest.
func (c AmbiguousCodon) Possibilities() iter.Seq[Codon] {
	return func(yield func(Codon) bool) {
		for _, x := range c[0].Possibilities() {
			for _, y := range c[1].Possibilities() {
				for _, z := range c[2].Possibilities() {
					if !yield(Codon{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

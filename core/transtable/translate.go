package transtable

import (
	"fmt"

	"quickdna/core/nucleotide"
)

// codes is t's column of the dense lookup, indexed by address.
func (t Table) codes() *[codonSpace]byte {
	base := t.column() * codonSpace
	return (*[codonSpace]byte)(dense()[base : base+codonSpace])
}

func (t Table) get(a, b, c uint8) byte {
	return t.codes()[address(a, b, c)]
}

// Codon translates one concrete codon.
func (t Table) Codon(c nucleotide.Codon) byte {
	return t.get(c[0].Bits(), c[1].Bits(), c[2].Bits())
}

// AmbiguousCodon translates a codon that may hold ambiguity codes.
func (t Table) AmbiguousCodon(c nucleotide.AmbiguousCodon) byte {
	return t.get(c[0].Bits(), c[1].Bits(), c[2].Bits())
}

// Lookup translates three symbols of either kind.
func Lookup[N nucleotide.Like[N]](t Table, a, b, c N) byte {
	return t.get(a.Bits(), b.Bits(), c.Bits())
}

// Translate translates s codon by codon. A trailing partial codon is dropped.
func Translate[N nucleotide.Like[N]](t Table, s []N) []byte {
	out := make([]byte, 0, len(s)/3)
	codes := t.codes()
	for i := 0; i+3 <= len(s); i += 3 {
		out = append(out, codes[address(s[i].Bits(), s[i+1].Bits(), s[i+2].Bits())])
	}
	return out
}

/* ---------------------------- byte entry points ---------------------------- */

func parseBytes[N nucleotide.Like[N]](dna []byte) ([]N, error) {
	out := make([]N, len(dna))
	for i, b := range dna {
		v, err := nucleotide.Parse[N](b)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// TranslateBytes decodes dna as IUPAC text and translates it.
func (t Table) TranslateBytes(dna []byte) ([]byte, error) {
	s, err := parseBytes[nucleotide.Ambiguous](dna)
	if err != nil {
		return nil, err
	}
	return Translate(t, s), nil
}

// TranslateBytesStrict is TranslateBytes restricted to A, C, G and T.
func (t Table) TranslateBytesStrict(dna []byte) ([]byte, error) {
	s, err := parseBytes[nucleotide.Nucleotide](dna)
	if err != nil {
		return nil, err
	}
	return Translate(t, s), nil
}

func reverseComplement[N nucleotide.Like[N]](dna []byte) ([]byte, error) {
	s, err := parseBytes[N](dna)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v.Complement().ASCII()
	}
	return out, nil
}

// ReverseComplementBytes returns the uppercase reverse complement of dna.
func ReverseComplementBytes(dna []byte) ([]byte, error) {
	return reverseComplement[nucleotide.Ambiguous](dna)
}

// ReverseComplementBytesStrict rejects ambiguity codes.
func ReverseComplementBytesStrict(dna []byte) ([]byte, error) {
	return reverseComplement[nucleotide.Nucleotide](dna)
}

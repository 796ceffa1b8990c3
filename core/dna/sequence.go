// Package dna provides DNA and protein sequence types on top of the symbol
// model, with translation, reverse complement, canonical forms and ambiguity
// expansion.
package dna

import (
	"fmt"
	"iter"

	"quickdna/core/canonical"
	"quickdna/core/expand"
	"quickdna/core/nucleotide"
	"quickdna/core/transtable"
)

// Sequence is DNA over either symbol kind.
type Sequence[N nucleotide.Like[N]] []N

// Strict holds only A, C, G and T.
type Strict = Sequence[nucleotide.Nucleotide]

// Ambiguous may hold any IUPAC code.
type Ambiguous = Sequence[nucleotide.Ambiguous]

// Parse decodes ASCII DNA. Spaces and tabs are skipped; any other byte must be
// a symbol of kind N.
func Parse[N nucleotide.Like[N]](b []byte) (Sequence[N], error) {
	out := make(Sequence[N], 0, len(b))
	for i, c := range b {
		if c == ' ' || c == '\t' {
			continue
		}
		n, err := nucleotide.Parse[N](c)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func ParseString[N nucleotide.Like[N]](s string) (Sequence[N], error) {
	return Parse[N]([]byte(s))
}

func (s Sequence[N]) String() string {
	b := make([]byte, len(s))
	for i, n := range s {
		b[i] = n.ASCII()
	}
	return string(b)
}

func (s Sequence[N]) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Sequence[N]) UnmarshalText(b []byte) error {
	v, err := Parse[N](b)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IsAmbiguous reports whether any position holds a real ambiguity code.
func (s Sequence[N]) IsAmbiguous() bool {
	for _, n := range s {
		if n.IsAmbiguous() {
			return true
		}
	}
	return false
}

func (s Sequence[N]) ReverseComplement() Sequence[N] {
	out := make(Sequence[N], len(s))
	for i, n := range s {
		out[len(s)-1-i] = n.Complement()
	}
	return out
}

// Translate translates reading frame 0. A trailing partial codon is dropped.
func (s Sequence[N]) Translate(t transtable.Table) Protein {
	return Protein(transtable.Translate(t, []N(s)))
}

// SelfFrames translates every reading frame of this strand that holds at
// least one codon: three for length 5 and up, two for 4, one for 3.
func (s Sequence[N]) SelfFrames(t transtable.Table) []Protein {
	frames := ReadingFrames([]N(s))
	out := make([]Protein, len(frames))
	for i, f := range frames {
		out[i] = Protein(transtable.Translate(t, f))
	}
	return out
}

// AllFrames is SelfFrames of s followed by SelfFrames of its reverse
// complement.
func (s Sequence[N]) AllFrames(t transtable.Table) []Protein {
	return append(s.SelfFrames(t), s.ReverseComplement().SelfFrames(t)...)
}

// Windows yields every length-n window of s. Windows share storage with s.
func (s Sequence[N]) Windows(n int) iter.Seq[Sequence[N]] {
	return func(yield func(Sequence[N]) bool) {
		if n <= 0 {
			return
		}
		for i := 0; i+n <= len(s); i++ {
			if !yield(s[i : i+n : i+n]) {
				return
			}
		}
	}
}

// Codons yields reading frame 0 codon by codon.
func (s Sequence[N]) Codons() iter.Seq[[3]N] {
	return Codons(Values([]N(s)))
}

/* ------------------------- strict / ambiguous only ------------------------ */

// Canonical returns the canonical form of s under relabeling and reversal.
func Canonical(s Strict) Strict { return canonical.Of(s) }

// ForwardCanonical returns the relabeling-only canonical form of s.
func ForwardCanonical(s Strict) Strict { return canonical.Forward(s) }

// CanonicalAmbiguous is the smallest canonical form over every expansion of
// s. Check ExpansionCount first on untrusted input.
func CanonicalAmbiguous(s Ambiguous) Strict { return canonical.OfAmbiguous(s) }

func Expansions(s Ambiguous) *expand.Expansions { return expand.New(s) }

// ExpansionCount is the number of concrete sequences s stands for; ok is false
// when it does not fit in a uint64.
func ExpansionCount(s Ambiguous) (n uint64, ok bool) { return expand.Count(s) }

// ToStrict narrows s, failing at the first ambiguity code.
func ToStrict(s Ambiguous) (Strict, error) {
	out := make(Strict, len(s))
	for i, a := range s {
		n, err := a.Strict()
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// Widen converts s to its ambiguous representation.
func Widen(s Strict) Ambiguous {
	out := make(Ambiguous, len(s))
	for i, n := range s {
		out[i] = n.Ambiguous()
	}
	return out
}

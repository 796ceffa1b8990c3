package dna

import (
	"iter"

	"quickdna/core/nucleotide"
)

// Lazy adapters. None of them copy their input.

// Values yields the elements of s in order.
func Values[N any](s []N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range s {
			if !yield(n) {
				return
			}
		}
	}
}

// Codons groups seq into triples, dropping a trailing partial codon.
func Codons[N any](seq iter.Seq[N]) iter.Seq[[3]N] {
	return func(yield func([3]N) bool) {
		var c [3]N
		k := 0
		for n := range seq {
			c[k] = n
			k++
			if k < 3 {
				continue
			}
			k = 0
			if !yield(c) {
				return
			}
		}
	}
}

// Complement complements each element of seq.
func Complement[N nucleotide.Like[N]](seq iter.Seq[N]) iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range seq {
			if !yield(n.Complement()) {
				return
			}
		}
	}
}

// ReverseComplement walks s backwards, complementing as it goes.
func ReverseComplement[N nucleotide.Like[N]](s []N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i].Complement()) {
				return
			}
		}
	}
}

// ReadingFrames returns the suffixes of s starting at offsets 0, 1 and 2 that
// still hold a whole codon.
func ReadingFrames[N any](s []N) [][]N {
	var out [][]N
	for off := 0; off < 3 && len(s)-off >= 3; off++ {
		out = append(out, s[off:])
	}
	return out
}

// AllReadingFrames returns codon sequences for the forward frames in order of
// offset from the start, then the reverse complement frames in order of
// offset from the end.
func AllReadingFrames[N nucleotide.Like[N]](s []N) []iter.Seq[[3]N] {
	var out []iter.Seq[[3]N]
	for _, f := range ReadingFrames(s) {
		out = append(out, Codons(Values(f)))
	}
	for off := 0; off < 3 && len(s)-off >= 3; off++ {
		out = append(out, Codons(ReverseComplement(s[:len(s)-off])))
	}
	return out
}

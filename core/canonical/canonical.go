// Package canonical computes the representative of a DNA sequence's class
// under base relabeling and reversal.
//
// Two sequences are equivalent when one can be turned into the other by
// renaming the four bases consistently, optionally after reversing it. The
// canonical form is the lexicographically smallest member of the class under
// the base order A < T < C < G. Reversal combined with a free relabeling
// covers reverse complementation, so canonical forms are strand-independent.
package canonical

import (
	"slices"

	"golang.org/x/crypto/blake2b"

	"quickdna/core/expand"
	"quickdna/core/nucleotide"
)

// Iterator is a pull sequence with a known number of remaining elements.
type Iterator[T any] interface {
	Next() (T, bool)
	Len() int
}

/* ------------------------------- cursors -------------------------------- */

type forwardCursor struct {
	s []nucleotide.Nucleotide
	i int
}

func (c *forwardCursor) Next() (nucleotide.Nucleotide, bool) {
	if c.i >= len(c.s) {
		return 0, false
	}
	n := c.s[c.i]
	c.i++
	return n, true
}

func (c *forwardCursor) Len() int { return len(c.s) - c.i }

type reverseCursor struct {
	s []nucleotide.Nucleotide
	j int // elements left
}

func (c *reverseCursor) Next() (nucleotide.Nucleotide, bool) {
	if c.j == 0 {
		return 0, false
	}
	c.j--
	return c.s[c.j], true
}

func (c *reverseCursor) Len() int { return c.j }

// Slice walks s front to back without copying it.
func Slice(s []nucleotide.Nucleotide) Iterator[nucleotide.Nucleotide] {
	return &forwardCursor{s: s}
}

// Reversed walks s back to front without copying it.
func Reversed(s []nucleotide.Nucleotide) Iterator[nucleotide.Nucleotide] {
	return &reverseCursor{s: s, j: len(s)}
}

/* --------------------------- forward canonical -------------------------- */

// ForwardIter relabels a stream so that each base seen for the first time
// takes the smallest label not yet used. The result is the smallest sequence
// reachable by relabeling alone.
type ForwardIter struct {
	inner Iterator[nucleotide.Nucleotide]
	perm  [4]nucleotide.Nucleotide // by Index; 0 = unassigned
	used  int
}

func NewForward(it Iterator[nucleotide.Nucleotide]) *ForwardIter {
	return &ForwardIter{inner: it}
}

func (f *ForwardIter) Next() (nucleotide.Nucleotide, bool) {
	n, ok := f.inner.Next()
	if !ok {
		return 0, false
	}
	i := n.Index()
	if f.perm[i] == 0 {
		f.perm[i] = nucleotide.AllNucleotides[f.used]
		f.used++
	}
	return f.perm[i], true
}

func (f *ForwardIter) Len() int { return f.inner.Len() }

/* ------------------------------ entry points ----------------------------- */

// New streams the canonical form of s.
func New(s []nucleotide.Nucleotide) Iterator[nucleotide.Nucleotide] {
	return LexicalMin[nucleotide.Nucleotide](NewForward(Slice(s)), NewForward(Reversed(s)))
}

// Of returns the canonical form of s.
func Of(s []nucleotide.Nucleotide) []nucleotide.Nucleotide {
	return Collect(New(s))
}

// Forward returns the relabeling-only canonical form of s.
func Forward(s []nucleotide.Nucleotide) []nucleotide.Nucleotide {
	return Collect(NewForward(Slice(s)))
}

// OfAmbiguous is the smallest canonical form over every expansion of s. Its
// cost is proportional to the expansion count; check expand.Within first on
// untrusted input.
func OfAmbiguous(s []nucleotide.Ambiguous) []nucleotide.Nucleotide {
	var best []nucleotide.Nucleotide
	for x := range expand.New(s).All() {
		c := Of(x.Nucleotides())
		if best == nil || slices.Compare(c, best) < 0 {
			best = c
		}
	}
	return best
}

// Digest hashes the canonical form of s with BLAKE2b-256. Equivalent
// sequences share a digest.
func Digest(s []nucleotide.Nucleotide) [blake2b.Size256]byte {
	it := New(s)
	text := make([]byte, 0, it.Len())
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		text = append(text, n.ASCII())
	}
	return blake2b.Sum256(text)
}

// Sum hashes s as it stands, as ASCII letters. Sum(Of(s)) == Digest(s).
func Sum(s []nucleotide.Nucleotide) [blake2b.Size256]byte {
	text := make([]byte, len(s))
	for i, n := range s {
		text[i] = n.ASCII()
	}
	return blake2b.Sum256(text)
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	out := make([]T, 0, it.Len())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Package expand enumerates the concrete sequences behind an ambiguous one.
//
// Expansions come out in lexicographic order under the base order
// A < T < C < G: the enumerator is an odometer whose digits are the ambiguous
// positions, the last one turning fastest.
package expand

import (
	"iter"
	"math/bits"
	"slices"
	"strings"

	"quickdna/core/nucleotide"
)

// Expansion is one concrete sequence. It is never modified after it has been
// handed out, so any number of them may be kept.
type Expansion struct {
	seq []nucleotide.Nucleotide
}

// Nucleotides returns the bases. The slice is shared; do not modify it.
func (x Expansion) Nucleotides() []nucleotide.Nucleotide { return x.seq }

func (x Expansion) Len() int { return len(x.seq) }

func (x Expansion) String() string {
	var b strings.Builder
	b.Grow(len(x.seq))
	for _, n := range x.seq {
		b.WriteByte(n.ASCII())
	}
	return b.String()
}

type ambiguity struct {
	index int
	digit int
	code  nucleotide.Ambiguous
}

// Expansions is a lazy enumerator. It is not safe for concurrent use.
type Expansions struct {
	ambiguities []ambiguity
	buf         []nucleotide.Nucleotide
	shared      bool // buf has been handed out
	began       bool
	done        bool
}

// New prepares the enumeration of dna. Nothing is enumerated until Next.
func New(dna []nucleotide.Ambiguous) *Expansions {
	e := &Expansions{buf: make([]nucleotide.Nucleotide, len(dna))}
	for i, code := range dna {
		e.buf[i] = code.Possibilities()[0]
		if code.IsAmbiguous() {
			e.ambiguities = append(e.ambiguities, ambiguity{index: i, code: code})
		}
	}
	return e
}

// Next returns the following expansion. The first call returns the sequence
// with every position at its smallest choice.
func (e *Expansions) Next() (Expansion, bool) {
	if e.done {
		return Expansion{}, false
	}
	if !e.began {
		e.began = true
		e.shared = true
		return Expansion{seq: e.buf}, true
	}
	if e.shared {
		e.buf = slices.Clone(e.buf)
		e.shared = false
	}
	for i := len(e.ambiguities) - 1; i >= 0; i-- {
		a := &e.ambiguities[i]
		choices := a.code.Possibilities()
		a.digit = (a.digit + 1) % len(choices)
		e.buf[a.index] = choices[a.digit]
		if a.digit > 0 {
			e.shared = true
			return Expansion{seq: e.buf}, true
		}
	}
	e.done = true
	return Expansion{}, false
}

// Remaining reports how many expansions Next has yet to return. ok is false
// when the count does not fit in a uint64.
func (e *Expansions) Remaining() (n uint64, ok bool) {
	if e.done {
		return 0, true
	}
	var size uint64
	for _, a := range e.ambiguities {
		states := uint64(a.code.Count())
		hi, lo := bits.Mul64(size, states)
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		size, carry = bits.Add64(lo, states-uint64(a.digit)-1, 0)
		if carry != 0 {
			return 0, false
		}
	}
	if !e.began {
		var carry uint64
		size, carry = bits.Add64(size, 1, 0)
		if carry != 0 {
			return 0, false
		}
	}
	return size, true
}

// All drains e as a range-over-func sequence. Stopping early leaves e
// positioned after the last expansion yielded.
func (e *Expansions) All() iter.Seq[Expansion] {
	return func(yield func(Expansion) bool) {
		for {
			x, ok := e.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// String shows the pattern being enumerated.
func (e *Expansions) String() string {
	pattern := make([]byte, len(e.buf))
	for i, n := range e.buf {
		pattern[i] = n.ASCII()
	}
	for _, a := range e.ambiguities {
		pattern[a.index] = a.code.ASCII()
	}
	return "Expansions(" + string(pattern) + ")"
}

// Count is the total number of expansions of dna. ok is false when the count
// does not fit in a uint64.
func Count(dna []nucleotide.Ambiguous) (n uint64, ok bool) {
	n = 1
	for _, code := range dna {
		hi, lo := bits.Mul64(n, uint64(code.Count()))
		if hi != 0 {
			return 0, false
		}
		n = lo
	}
	return n, true
}

// Within reports whether dna has at most limit expansions. Callers enumerating
// untrusted input check this first; the enumerator itself has no ceiling.
func Within(dna []nucleotide.Ambiguous, limit uint64) bool {
	n, ok := Count(dna)
	return ok && n <= limit
}

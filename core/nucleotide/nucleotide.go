// Package nucleotide models DNA bases and IUPAC ambiguity codes as 4-bit masks.
//
// Each concrete base owns one bit (A=0001, T=0010, C=0100, G=1000). An ambiguity
// code is the union of the bits of the bases it stands for, so set operations on
// codes are plain bitwise operations. Bases sort A < T < C < G, which is also the
// numeric order of their bit values.
package nucleotide

import "math/bits"

// Nucleotide is one of the four unambiguous DNA bases.
type Nucleotide uint8

const (
	A Nucleotide = 0b0001
	T Nucleotide = 0b0010
	C Nucleotide = 0b0100
	G Nucleotide = 0b1000
)

// AllNucleotides lists the bases in sort order.
var AllNucleotides = [4]Nucleotide{A, T, C, G}

// Ambiguous is a nonempty set of bases written as an IUPAC code.
type Ambiguous uint8

// Two- and more-base IUPAC codes. The single-base codes are Ambiguous(A) etc.
const (
	W = Ambiguous(A | T)
	M = Ambiguous(A | C)
	R = Ambiguous(A | G) // purines
	Y = Ambiguous(T | C) // pyrimidines
	S = Ambiguous(C | G)
	K = Ambiguous(T | G)

	B = Ambiguous(T | C | G) // not A
	V = Ambiguous(A | C | G) // not T
	D = Ambiguous(A | T | G) // not C
	H = Ambiguous(A | T | C) // not G

	N = Ambiguous(A | T | C | G)
)

// AllAmbiguous lists all 15 codes in bit order.
var AllAmbiguous = [15]Ambiguous{
	Ambiguous(A), Ambiguous(T), W, Ambiguous(C), M, Y, H,
	Ambiguous(G), R, K, D, S, V, B, N,
}

// Like is the capability set shared by Nucleotide and Ambiguous. Generic code
// over sequences is written against it.
type Like[N any] interface {
	~uint8
	Bits() uint8
	Complement() N
	ASCII() byte
	IsAmbiguous() bool
	String() string
}

/* ------------------------------ Nucleotide ------------------------------ */

func (n Nucleotide) Bits() uint8 { return uint8(n) }

func (n Nucleotide) Complement() Nucleotide { return Nucleotide(complement[n&0xF]) }

func (n Nucleotide) ASCII() byte { return maskToASCII[n&0xF] }

func (n Nucleotide) IsAmbiguous() bool { return false }

func (n Nucleotide) String() string { return string(rune(n.ASCII())) }

// Ambiguous widens n to the single-base code.
func (n Nucleotide) Ambiguous() Ambiguous { return Ambiguous(n) }

// Index returns the position of n in AllNucleotides (A=0 … G=3).
func (n Nucleotide) Index() int { return bits.TrailingZeros8(uint8(n)) }

/* ------------------------------ Ambiguous ------------------------------- */

func (a Ambiguous) Bits() uint8 { return uint8(a) }

func (a Ambiguous) Complement() Ambiguous { return complement[a&0xF] }

func (a Ambiguous) ASCII() byte { return maskToASCII[a&0xF] }

func (a Ambiguous) IsAmbiguous() bool { return bits.OnesCount8(uint8(a)) > 1 }

func (a Ambiguous) String() string { return string(rune(a.ASCII())) }

// Count is the number of bases a stands for.
func (a Ambiguous) Count() int { return bits.OnesCount8(uint8(a) & 0xF) }

// Possibilities returns the bases a stands for, in sort order. The returned
// slice is shared and must not be modified.
func (a Ambiguous) Possibilities() []Nucleotide { return possibilities[a&0xF] }

// Contains reports whether n is one of a's possibilities.
func (a Ambiguous) Contains(n Nucleotide) bool { return uint8(a)&uint8(n) != 0 }

// Strict narrows a to a single base, failing for real ambiguity codes.
func (a Ambiguous) Strict() (Nucleotide, error) {
	if a.IsAmbiguous() {
		return 0, &SymbolError{Byte: a.ASCII(), Err: ErrUnexpectedAmbiguity}
	}
	return Nucleotide(a), nil
}

var possibilities [16][]Nucleotide

func init() {
	for m := 1; m < 16; m++ {
		for _, n := range AllNucleotides {
			if m&int(n) != 0 {
				possibilities[m] = append(possibilities[m], n)
			}
		}
	}
}

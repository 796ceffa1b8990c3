// core/nucleotide/iupac.go
package nucleotide

/* -------------------------- IUPAC lookup tables ------------------------- */

// asciiMask maps an ASCII byte to its code; 0 means "not a nucleotide".
// 256 entries so any byte indexes it without a bounds check.
var asciiMask [256]Ambiguous

// maskToASCII is the uppercase letter for each 4-bit mask.
var maskToASCII [16]byte

// complement swaps A<->T and C<->G inside a mask.
var complement [16]Ambiguous

func init() {
	set := func(c byte, code Ambiguous) {
		asciiMask[c] = code
		asciiMask[c|0x20] = code // lowercase
		maskToASCII[code] = c
	}
	set('A', Ambiguous(A)) // 0001
	set('T', Ambiguous(T)) // 0010
	set('C', Ambiguous(C)) // 0100
	set('G', Ambiguous(G)) // 1000
	set('W', W)            // A/T
	set('M', M)            // A/C
	set('R', R)            // A/G
	set('Y', Y)            // T/C
	set('S', S)            // C/G
	set('K', K)            // T/G
	set('B', B)            // T/C/G
	set('V', V)            // A/C/G
	set('D', D)            // A/T/G
	set('H', H)            // A/T/C
	set('N', N)            // any

	pair := func(x, y Ambiguous) { complement[x] = y; complement[y] = x }
	pair(Ambiguous(A), Ambiguous(T))
	pair(Ambiguous(C), Ambiguous(G))
	pair(R, Y)
	pair(K, M)
	pair(B, V)
	pair(D, H)
	pair(W, W)
	pair(S, S)
	pair(N, N)
}

/* ------------------------------- parsing -------------------------------- */

// ParseAmbiguous decodes one ASCII byte (case-insensitive) into a base or
// ambiguity code.
func ParseAmbiguous(b byte) (Ambiguous, error) {
	if b >= 128 {
		return 0, &SymbolError{Byte: b, Err: ErrNonASCII}
	}
	if code := asciiMask[b]; code != 0 {
		return code, nil
	}
	return 0, &SymbolError{Byte: b, Err: ErrBadNucleotide}
}

// ParseNucleotide decodes one ASCII byte into an unambiguous base. IUPAC
// ambiguity letters fail with ErrUnexpectedAmbiguity.
func ParseNucleotide(b byte) (Nucleotide, error) {
	code, err := ParseAmbiguous(b)
	if err != nil {
		return 0, err
	}
	return code.Strict()
}

// Parse decodes b as whichever symbol kind N is.
func Parse[N Like[N]](b byte) (N, error) {
	var zero N
	switch any(zero).(type) {
	case Nucleotide:
		n, err := ParseNucleotide(b)
		return N(n), err
	default:
		a, err := ParseAmbiguous(b)
		return N(a), err
	}
}

// IsStrictASCII reports whether b is one of ACGT in either case.
func IsStrictASCII(b byte) bool {
	code := asciiMask[b]
	return code != 0 && !code.IsAmbiguous()
}

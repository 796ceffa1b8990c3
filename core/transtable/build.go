package transtable

import (
	"fmt"
	"strings"
	"sync"

	"quickdna/core/nucleotide"
)

// codonSpace is the number of addresses per table: three 4-bit masks.
const codonSpace = 1 << 12

// unknown is the amino acid for codons with more than one meaningful outcome.
const unknown = 'X'

type lookup [numColumns * codonSpace]byte

// dense is built on first use and never written again.
var dense = sync.OnceValue(build)

// address packs three 4-bit masks, first base in the high nibble.
func address(a, b, c uint8) int {
	return int(a&0xF)<<8 | int(b&0xF)<<4 | int(c&0xF)
}

// literal parses codeColumns into [column][concrete codon] letters, concrete
// codons indexed by base order (A,T,C,G) with the first base most
// significant.
func literal() [numColumns][64]byte {
	var out [numColumns][64]byte
	var seen [64]bool
	for _, line := range strings.Split(codeColumns, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		codonText, letters, ok := strings.Cut(line, " ")
		if !ok || len(letters) != numColumns {
			panic(fmt.Sprintf("transtable: malformed row %q", line))
		}
		c, err := nucleotide.ParseCodon(codonText)
		if err != nil {
			panic(fmt.Sprintf("transtable: %v", err))
		}
		i := concreteIndex(c)
		if seen[i] {
			panic(fmt.Sprintf("transtable: duplicate row %s", codonText))
		}
		seen[i] = true
		for col := 0; col < numColumns; col++ {
			out[col][i] = letters[col]
		}
	}
	for i, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("transtable: missing codon #%d", i))
		}
	}
	return out
}

func concreteIndex(c nucleotide.Codon) int {
	return c[0].Index()<<4 | c[1].Index()<<2 | c[2].Index()
}

func build() *lookup {
	lit := literal()
	t := new(lookup)
	for col := 0; col < numColumns; col++ {
		base := col * codonSpace
		for addr := 0; addr < codonSpace; addr++ {
			a, b, c := uint8(addr>>8), uint8(addr>>4&0xF), uint8(addr&0xF)
			if a == 0 || b == 0 || c == 0 {
				t[base+addr] = unknown
				continue
			}
			codon := nucleotide.AmbiguousCodon{nucleotide.Ambiguous(a), nucleotide.Ambiguous(b), nucleotide.Ambiguous(c)}
			t[base+addr] = resolve(&lit[col], codon)
		}
	}
	return t
}

// resolve merges the outcomes of every concrete codon behind c. Three distinct
// outcomes can never map to a degenerate letter, so enumeration stops there.
func resolve(col *[64]byte, c nucleotide.AmbiguousCodon) byte {
	var outcomes [3]byte
	n := 0
	for p := range c.Possibilities() {
		aa := col[concreteIndex(p)]
		dup := false
		for _, o := range outcomes[:n] {
			if o == aa {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		outcomes[n] = aa
		n++
		if n == len(outcomes) {
			return unknown
		}
	}
	return merge(outcomes[:n])
}

// merge maps a set of distinct amino acids to one IUPAC protein letter.
func merge(set []byte) byte {
	switch len(set) {
	case 1:
		return set[0]
	case 2:
		x, y := set[0], set[1]
		if x > y {
			x, y = y, x
		}
		switch {
		case x == 'D' && y == 'N':
			return 'B'
		case x == 'E' && y == 'Q':
			return 'Z'
		case x == 'I' && y == 'L':
			return 'J'
		}
	}
	return unknown
}

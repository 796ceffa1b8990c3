// Package transtable translates codons to amino acids under the NCBI genetic
// codes.
//
// All 27 distinct codes are expanded once into a dense lookup covering every
// codon bit pattern, ambiguous ones included, so a translation is a single
// array index at query time.
package transtable

import (
	"errors"
	"fmt"
)

// ErrBadTranslationTable is returned for ids outside the NCBI numbering.
var ErrBadTranslationTable = errors.New("not a ncbi translation table")

// Table is a validated NCBI genetic-code table number.
type Table uint8

const (
	Ncbi1  Table = 1  // The standard code
	Ncbi2  Table = 2  // The vertebrate mitochondrial code
	Ncbi3  Table = 3  // The yeast mitochondrial code
	Ncbi4  Table = 4  // The mold, protozoan, and coelenterate mitochondrial code and the mycoplasma/spiroplasma code
	Ncbi5  Table = 5  // The invertebrate mitochondrial code
	Ncbi6  Table = 6  // The ciliate, dasycladacean and hexamita nuclear code
	Ncbi7  Table = 7  // The kinetoplast code; identical to table 4
	Ncbi8  Table = 8  // Identical to table 1
	Ncbi9  Table = 9  // The echinoderm and flatworm mitochondrial code
	Ncbi10 Table = 10 // The euplotid nuclear code
	Ncbi11 Table = 11 // The bacterial, archaeal and plant plastid code
	Ncbi12 Table = 12 // The alternative yeast nuclear code
	Ncbi13 Table = 13 // The ascidian mitochondrial code
	Ncbi14 Table = 14 // The alternative flatworm mitochondrial code
	Ncbi15 Table = 15 // The Blepharisma nuclear code
	Ncbi16 Table = 16 // The chlorophycean mitochondrial code
	// 17-20 are not assigned
	Ncbi21 Table = 21 // The trematode mitochondrial code
	Ncbi22 Table = 22 // The Scenedesmus obliquus mitochondrial code
	Ncbi23 Table = 23 // The Thraustochytrium mitochondrial code
	Ncbi24 Table = 24 // The Pterobranchia mitochondrial code
	Ncbi25 Table = 25 // The candidate division SR1 and gracilibacteria code
	Ncbi26 Table = 26 // The Pachysolen tannophilus nuclear code
	Ncbi27 Table = 27 // The karyorelict nuclear code
	Ncbi28 Table = 28 // The Condylostoma nuclear code
	Ncbi29 Table = 29 // The Mesodinium nuclear code
	Ncbi30 Table = 30 // The Peritrich nuclear code
	Ncbi31 Table = 31 // The Blastocrithidia nuclear code
	Ncbi32 Table = 32 // The Balanophoraceae plastid code
	Ncbi33 Table = 33 // The Cephalodiscidae mitochondrial code
)

// Standard is the table used when none is specified.
const Standard = Ncbi1

// numColumns is the number of distinct codes; 7 and 8 share columns.
const numColumns = 27

// columnIDs gives the NCBI id stored in each column of codeColumns.
var columnIDs = [numColumns]Table{
	1, 2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 14, 15, 16,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33,
}

var names = map[Table]string{
	Ncbi1:  "Standard",
	Ncbi2:  "Vertebrate Mitochondrial",
	Ncbi3:  "Yeast Mitochondrial",
	Ncbi4:  "Mold, Protozoan, and Coelenterate Mitochondrial; Mycoplasma/Spiroplasma",
	Ncbi5:  "Invertebrate Mitochondrial",
	Ncbi6:  "Ciliate, Dasycladacean and Hexamita Nuclear",
	Ncbi7:  "Kinetoplast",
	Ncbi8:  "Plant Plastid (same as Standard)",
	Ncbi9:  "Echinoderm and Flatworm Mitochondrial",
	Ncbi10: "Euplotid Nuclear",
	Ncbi11: "Bacterial, Archaeal and Plant Plastid",
	Ncbi12: "Alternative Yeast Nuclear",
	Ncbi13: "Ascidian Mitochondrial",
	Ncbi14: "Alternative Flatworm Mitochondrial",
	Ncbi15: "Blepharisma Nuclear",
	Ncbi16: "Chlorophycean Mitochondrial",
	Ncbi21: "Trematode Mitochondrial",
	Ncbi22: "Scenedesmus obliquus Mitochondrial",
	Ncbi23: "Thraustochytrium Mitochondrial",
	Ncbi24: "Pterobranchia Mitochondrial",
	Ncbi25: "Candidate Division SR1 and Gracilibacteria",
	Ncbi26: "Pachysolen tannophilus Nuclear",
	Ncbi27: "Karyorelict Nuclear",
	Ncbi28: "Condylostoma Nuclear",
	Ncbi29: "Mesodinium Nuclear",
	Ncbi30: "Peritrich Nuclear",
	Ncbi31: "Blastocrithidia Nuclear",
	Ncbi32: "Balanophoraceae Plastid",
	Ncbi33: "Cephalodiscidae Mitochondrial",
}

// FromID validates an NCBI table number.
func FromID(id int) (Table, error) {
	switch {
	case id >= 1 && id <= 16, id >= 21 && id <= 33:
		return Table(id), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrBadTranslationTable, id)
}

// Tables lists every accepted table id in ascending order, aliases included.
func Tables() []Table {
	out := make([]Table, 0, 29)
	for id := 1; id <= 33; id++ {
		if t, err := FromID(id); err == nil {
			out = append(out, t)
		}
	}
	return out
}

func (t Table) ID() int { return int(t) }

func (t Table) Name() string { return names[t] }

func (t Table) String() string { return fmt.Sprintf("ncbi%d", int(t)) }

// columnOf maps a table id to its column in the literal data; aliases 7 and
// 8 share the columns of 4 and 1.
var columnOf = func() (m [Ncbi33 + 1]int) {
	for i, id := range columnIDs {
		m[id] = i
	}
	m[Ncbi7] = m[Ncbi4]
	m[Ncbi8] = m[Ncbi1]
	return m
}()

// column maps t to its data column. Invalid tables fall back to the standard
// code; FromID is the validation point.
func (t Table) column() int {
	if int(t) < len(columnOf) {
		return columnOf[t]
	}
	return 0
}

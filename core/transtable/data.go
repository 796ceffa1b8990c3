package transtable

// codeColumns is the literal genetic code: one row per concrete codon, then
// one amino-acid letter ('*' = stop) per distinct table, in columnIDs order.
// Source: NCBI genetic codes as tabulated at
// https://en.wikipedia.org/wiki/List_of_genetic_codes
const codeColumns = `
ATT IIIIIIIIIIIIIIIIIIIIIIIIIII
ATC IIIIIIIIIIIIIIIIIIIIIIIIIII
ATA IMMIMIIIIIMIIIMIIIIIIIIIIII
ATG MMMMMMMMMMMMMMMMMMMMMMMMMMM
ACT TTTTTTTTTTTTTTTTTTTTTTTTTTT
ACC TTTTTTTTTTTTTTTTTTTTTTTTTTT
ACA TTTTTTTTTTTTTTTTTTTTTTTTTTT
ACG TTTTTTTTTTTTTTTTTTTTTTTTTTT
AAT NNNNNNNNNNNNNNNNNNNNNNNNNNN
AAC NNNNNNNNNNNNNNNNNNNNNNNNNNN
AAA KKKKKKNKKKKNKKNKKKKKKKKKKKK
AAG KKKKKKKKKKKKKKKKKKKKKKKKKKK
AGT SSSSSSSSSSSSSSSSSSSSSSSSSSS
AGC SSSSSSSSSSSSSSSSSSSSSSSSSSS
AGA R*RRSRSRRRGSRRSRRSRRRRRRRRS
AGG R*RRSRSRRRGSRRSRRKRRRRRRRRK
TAT YYYYYYYYYYYYYYYYYYYYYYYYYYY
TAC YYYYYYYYYYYYYYYYYYYYYYYYYYY
TAA *****Q*****Y********QQYEE*Y
TAG *****Q******QL*L****QQYEEW*
TTA LLLLLLLLLLLLLLLL*LLLLLLLLLL
TTT FFFFFFFFFFFFFFFFFFFFFFFFFFF
TTC FFFFFFFFFFFFFFFFFFFFFFFFFFF
TTG LLLLLLLLLLLLLLLLLLLLLLLLLLL
TCT SSSSSSSSSSSSSSSSSSSSSSSSSSS
TCC SSSSSSSSSSSSSSSSSSSSSSSSSSS
TCA SSSSSSSSSSSSSSS*SSSSSSSSSSS
TCG SSSSSSSSSSSSSSSSSSSSSSSSSSS
TGT CCCCCCCCCCCCCCCCCCCCCCCCCCC
TGC CCCCCCCCCCCCCCCCCCCCCCCCCCC
TGA *WWWW*WC**WW**W**WG*WW**W*W
TGG WWWWWWWWWWWWWWWWWWWWWWWWWWW
CTT LLTLLLLLLLLLLLLLLLLLLLLLLLL
CTC LLTLLLLLLLLLLLLLLLLLLLLLLLL
CTA LLTLLLLLLLLLLLLLLLLLLLLLLLL
CTG LLTLLLLLLSLLLLLLLLLALLLLLLL
CCT PPPPPPPPPPPPPPPPPPPPPPPPPPP
CCC PPPPPPPPPPPPPPPPPPPPPPPPPPP
CCA PPPPPPPPPPPPPPPPPPPPPPPPPPP
CCG PPPPPPPPPPPPPPPPPPPPPPPPPPP
CAT HHHHHHHHHHHHHHHHHHHHHHHHHHH
CAC HHHHHHHHHHHHHHHHHHHHHHHHHHH
CAA QQQQQQQQQQQQQQQQQQQQQQQQQQQ
CAG QQQQQQQQQQQQQQQQQQQQQQQQQQQ
CGT RRRRRRRRRRRRRRRRRRRRRRRRRRR
CGC RRRRRRRRRRRRRRRRRRRRRRRRRRR
CGA RRRRRRRRRRRRRRRRRRRRRRRRRRR
CGG RRRRRRRRRRRRRRRRRRRRRRRRRRR
GTT VVVVVVVVVVVVVVVVVVVVVVVVVVV
GTC VVVVVVVVVVVVVVVVVVVVVVVVVVV
GTA VVVVVVVVVVVVVVVVVVVVVVVVVVV
GTG VVVVVVVVVVVVVVVVVVVVVVVVVVV
GCT AAAAAAAAAAAAAAAAAAAAAAAAAAA
GCC AAAAAAAAAAAAAAAAAAAAAAAAAAA
GCA AAAAAAAAAAAAAAAAAAAAAAAAAAA
GCG AAAAAAAAAAAAAAAAAAAAAAAAAAA
GAT DDDDDDDDDDDDDDDDDDDDDDDDDDD
GAC DDDDDDDDDDDDDDDDDDDDDDDDDDD
GAA EEEEEEEEEEEEEEEEEEEEEEEEEEE
GAG EEEEEEEEEEEEEEEEEEEEEEEEEEE
GGT GGGGGGGGGGGGGGGGGGGGGGGGGGG
GGC GGGGGGGGGGGGGGGGGGGGGGGGGGG
GGA GGGGGGGGGGGGGGGGGGGGGGGGGGG
GGG GGGGGGGGGGGGGGGGGGGGGGGGGGG
`

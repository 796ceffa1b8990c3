package nucleotide

import "fmt"

// Text forms are single letters for symbols and three-letter strings for
// codons, so JSON and YAML carry "ACG" rather than arrays of numbers.

func (n Nucleotide) MarshalText() ([]byte, error) {
	if n.ASCII() == 0 || Ambiguous(n).IsAmbiguous() {
		return nil, fmt.Errorf("invalid nucleotide bits %#04b", uint8(n))
	}
	return []byte{n.ASCII()}, nil
}

func (n *Nucleotide) UnmarshalText(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("nucleotide must be one letter, got %q", b)
	}
	v, err := ParseNucleotide(b[0])
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (a Ambiguous) MarshalText() ([]byte, error) {
	if a.ASCII() == 0 {
		return nil, fmt.Errorf("invalid ambiguity bits %#04b", uint8(a))
	}
	return []byte{a.ASCII()}, nil
}

func (a *Ambiguous) UnmarshalText(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("nucleotide must be one letter, got %q", b)
	}
	v, err := ParseAmbiguous(b[0])
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (c Codon) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Codon) UnmarshalText(b []byte) error {
	v, err := ParseCodon(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c AmbiguousCodon) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *AmbiguousCodon) UnmarshalText(b []byte) error {
	v, err := ParseAmbiguousCodon(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

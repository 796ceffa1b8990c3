package output

import (
	"fmt"
	"io"

	"quickdna/pkg/api"
)

// Entry is one FASTA record ready to print.
type Entry struct {
	Header string
	Seq    string
}

// Entries returns the FASTA records for v. Result types without a sequence
// (translation tables) are rejected.
func Entries(v any) ([]Entry, error) {
	switch x := v.(type) {
	case api.TranslationV1:
		out := make([]Entry, 0, len(x.Frames))
		for _, f := range x.Frames {
			out = append(out, Entry{
				Header: fmt.Sprintf("%s frame=%s table=%d", x.SequenceID, FrameLabel(f.Frame), x.Table),
				Seq:    f.Protein,
			})
		}
		return out, nil

	case api.ReverseComplementV1:
		h := x.Header
		if h == "" {
			h = x.SequenceID
		}
		return []Entry{{Header: h, Seq: x.Seq}}, nil

	case api.CanonicalV1:
		return []Entry{{Header: fmt.Sprintf("%s digest=%s", x.SequenceID, x.Digest), Seq: x.Canonical}}, nil

	case api.ExpansionsV1:
		out := make([]Entry, 0, len(x.Expansions))
		for i, e := range x.Expansions {
			out = append(out, Entry{Header: fmt.Sprintf("%s_%d", x.SequenceID, i+1), Seq: e})
		}
		return out, nil
	}
	return nil, fmt.Errorf("fasta output is not available for %T", v)
}

// WriteFASTA writes the FASTA records of v. Multi-line headers are rendered
// with a '>' on every line.
func WriteFASTA(w io.Writer, v any) error {
	es, err := Entries(v)
	if err != nil {
		return err
	}
	for _, e := range es {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", headerLines(e.Header), e.Seq); err != nil {
			return err
		}
	}
	return nil
}

func headerLines(h string) string {
	b := make([]byte, 0, len(h))
	for i := 0; i < len(h); i++ {
		b = append(b, h[i])
		if h[i] == '\n' {
			b = append(b, '>')
		}
	}
	return string(b)
}

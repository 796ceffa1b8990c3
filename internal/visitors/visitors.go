// Package visitors turns one FASTA record into one pkg/api result per
// subcommand. Visitors are pure apart from logging and safe for concurrent use.
package visitors

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"quickdna/core/canonical"
	"quickdna/core/dna"
	"quickdna/core/expand"
	"quickdna/core/nucleotide"
	"quickdna/core/transtable"
	"quickdna/internal/pipeline"
	"quickdna/pkg/api"
)

// ErrTooManyExpansions is returned when an ambiguous record stands for more
// concrete sequences than the configured limit.
var ErrTooManyExpansions = errors.New("too many expansions")

func base(j pipeline.Job) (file, id string) { return j.File, j.Record.ID() }

/* ---------------- translate / frames ---------------- */

// Translate translates reading frame +1 of each record.
type Translate struct {
	Table   transtable.Table
	Strict  bool // reject IUPAC ambiguity codes
	WithSeq bool // keep the source DNA on the result
}

func (v Translate) Visit(j pipeline.Job) (api.TranslationV1, error) {
	return Frames{Table: v.Table, Strict: v.Strict, WithSeq: v.WithSeq, only: 1}.Visit(j)
}

// Frames translates every reading frame: up to three on the record's own
// strand followed by up to three on its reverse complement.
type Frames struct {
	Table    transtable.Table
	Strict   bool
	WithSeq  bool
	SelfOnly bool // own strand only

	only int // keep just the first n frames (0 = all)
}

func (v Frames) Visit(j pipeline.Job) (api.TranslationV1, error) {
	file, id := base(j)
	out := api.TranslationV1{SourceFile: file, SequenceID: id, Table: v.Table.ID()}
	var err error
	if v.Strict {
		out.Seq, out.Frames, err = frames[nucleotide.Nucleotide](j.Record.Seq, v)
	} else {
		out.Seq, out.Frames, err = frames[nucleotide.Ambiguous](j.Record.Seq, v)
	}
	if err != nil {
		return api.TranslationV1{}, err
	}
	if !v.WithSeq {
		out.Seq = ""
	}
	return out, nil
}

func frames[N nucleotide.Like[N]](raw []byte, v Frames) (string, []api.FrameV1, error) {
	s, err := dna.Parse[N](raw)
	if err != nil {
		return "", nil, err
	}
	var ps []dna.Protein
	if v.SelfOnly || v.only > 0 {
		ps = s.SelfFrames(v.Table)
	} else {
		ps = s.AllFrames(v.Table)
	}
	per := len(ps)
	if !v.SelfOnly && v.only == 0 {
		per = len(ps) / 2
	}
	out := make([]api.FrameV1, 0, len(ps))
	for i, p := range ps {
		frame := i + 1
		if i >= per {
			frame = -(i - per + 1)
		}
		out = append(out, api.FrameV1{Frame: frame, Protein: p.String()})
	}
	if v.only > 0 && len(out) > v.only {
		out = out[:v.only]
	}
	if v.only > 0 && len(out) == 0 {
		// Shorter than one codon: frame +1 is still reported, empty.
		out = append(out, api.FrameV1{Frame: 1})
	}
	return s.String(), out, nil
}

/* ---------------- revcomp ---------------- */

// RevComp reverse-complements each record.
type RevComp struct {
	Strict bool
}

func (v RevComp) Visit(j pipeline.Job) (api.ReverseComplementV1, error) {
	file, id := base(j)
	out := api.ReverseComplementV1{SourceFile: file, SequenceID: id, Header: j.Record.Header}
	if v.Strict {
		s, err := dna.Parse[nucleotide.Nucleotide](j.Record.Seq)
		if err != nil {
			return api.ReverseComplementV1{}, err
		}
		out.Seq = s.ReverseComplement().String()
		return out, nil
	}
	s, err := dna.Parse[nucleotide.Ambiguous](j.Record.Seq)
	if err != nil {
		return api.ReverseComplementV1{}, err
	}
	out.Seq = s.ReverseComplement().String()
	return out, nil
}

/* ---------------- canonical ---------------- */

// Canonical computes the canonical form of each record. Ambiguous records
// resolve to the smallest canonical form over their expansions, subject to
// MaxExpansions.
type Canonical struct {
	Forward       bool // relabeling only, no reverse complement
	MaxExpansions uint64
}

func (v Canonical) Visit(j pipeline.Job) (api.CanonicalV1, error) {
	file, id := base(j)
	s, err := dna.Parse[nucleotide.Ambiguous](j.Record.Seq)
	if err != nil {
		return api.CanonicalV1{}, err
	}
	out := api.CanonicalV1{SourceFile: file, SequenceID: id, Forward: v.Forward, Ambiguous: s.IsAmbiguous()}

	var c dna.Strict
	switch {
	case !out.Ambiguous:
		strict, _ := dna.ToStrict(s)
		if v.Forward {
			c = dna.ForwardCanonical(strict)
		} else {
			c = dna.Canonical(strict)
		}
	case !expand.Within(s, v.MaxExpansions):
		n, ok := dna.ExpansionCount(s)
		if !ok {
			return api.CanonicalV1{}, fmt.Errorf("%w: count overflows, limit %d", ErrTooManyExpansions, v.MaxExpansions)
		}
		return api.CanonicalV1{}, fmt.Errorf("%w: %d > %d", ErrTooManyExpansions, n, v.MaxExpansions)
	case v.Forward:
		for x := range dna.Expansions(s).All() {
			f := dna.Strict(canonical.Forward(x.Nucleotides()))
			if c == nil || slices.Compare(f, c) < 0 {
				c = f
			}
		}
	default:
		c = dna.CanonicalAmbiguous(s)
	}
	d := canonical.Sum(c)
	out.Canonical = c.String()
	out.Digest = hex.EncodeToString(d[:])
	return out, nil
}

/* ---------------- expand ---------------- */

// Expand lists every concrete sequence of each record. Records above
// MaxExpansions are reported as skipped with their count.
type Expand struct {
	MaxExpansions uint64
	Log           *zap.Logger
}

func (v Expand) Visit(j pipeline.Job) (api.ExpansionsV1, error) {
	file, id := base(j)
	s, err := dna.Parse[nucleotide.Ambiguous](j.Record.Seq)
	if err != nil {
		return api.ExpansionsV1{}, err
	}
	out := api.ExpansionsV1{SourceFile: file, SequenceID: id}
	n, ok := dna.ExpansionCount(s)
	out.Count, out.Overflow = n, !ok
	if !ok || n > v.MaxExpansions {
		out.Skipped = true
		if v.Log != nil {
			fields := []zap.Field{zap.String("record", id), zap.Uint64("limit", v.MaxExpansions)}
			if ok {
				fields = append(fields, zap.Uint64("count", n))
			} else {
				fields = append(fields, zap.String("count", "overflow"))
			}
			v.Log.Warn("skipping record with too many expansions", fields...)
		}
		return out, nil
	}
	out.Expansions = make([]string, 0, n)
	for x := range dna.Expansions(s).All() {
		out.Expansions = append(out.Expansions, x.String())
	}
	return out, nil
}

// Package fasta frames FASTA text into records.
//
// A header line starts with '>' or ';'. Content lines are kept verbatim
// (line terminators stripped); interpreting them is left to the caller.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// Settings controls header and leading-comment handling. The zero value is
// not the default; use DefaultSettings.
type Settings struct {
	// ConcatenateHeaders joins consecutive header lines with '\n' into one
	// record. When false each header without content becomes its own empty
	// record.
	ConcatenateHeaders bool
	// AllowPrecedingComment drops text before the first header. When false
	// such text is returned as a record with an empty header.
	AllowPrecedingComment bool
	// Validate, when set, is called on every content line that is kept.
	// A non-nil result stops parsing with a *LineError.
	Validate func(line []byte) error
}

func DefaultSettings() Settings {
	return Settings{ConcatenateHeaders: true}
}

// Record is one FASTA entry. Lines are 1-based; EndLine is exclusive.
type Record struct {
	Header    string
	Seq       []byte
	StartLine int
	EndLine   int
}

// ID is the first whitespace-delimited token of the first header line.
func (r Record) ID() string {
	first, _, _ := strings.Cut(r.Header, "\n")
	if f := strings.Fields(first); len(f) > 0 {
		return f[0]
	}
	return ""
}

// String renders r back to FASTA with a '>' before every header line.
func (r Record) String() string {
	var b strings.Builder
	if r.Header != "" {
		b.WriteString(">")
		b.WriteString(strings.ReplaceAll(r.Header, "\n", "\n>"))
		b.WriteByte('\n')
	}
	b.Write(r.Seq)
	b.WriteByte('\n')
	return b.String()
}

// LineError locates a content error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

type state int

const (
	startOfFile state = iota
	inHeader
	inRecord
)

func headerText(line []byte) ([]byte, bool) {
	if len(line) > 0 && (line[0] == '>' || line[0] == ';') {
		return line[1:], true
	}
	return nil, false
}

// Parse reads FASTA from r and calls emit for each record in order. Parsing
// stops at the first error from emit, from Validate, or from ctx.
func Parse(ctx context.Context, r io.Reader, settings Settings, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		st     = startOfFile
		header strings.Builder
		seq    = make([]byte, 0, 1<<16)
		start  int
		lineNo int
	)

	content := func(line []byte) error {
		if settings.Validate != nil {
			if err := settings.Validate(line); err != nil {
				return &LineError{Line: lineNo, Err: err}
			}
		}
		seq = append(seq, line...)
		return nil
	}
	flush := func(end int) error {
		rec := Record{
			Header:    header.String(),
			Seq:       append([]byte(nil), seq...),
			StartLine: start,
			EndLine:   end,
		}
		header.Reset()
		seq = seq[:0]
		return emit(rec)
	}
	// preceding reports whether text before the first header is a record.
	preceding := func() bool {
		return !settings.AllowPrecedingComment && len(bytes.TrimSpace(seq)) > 0
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := sc.Bytes()
		hdr, isHeader := headerText(line)

		switch {
		case st == startOfFile && isHeader:
			if preceding() {
				start = 1
				if err := flush(lineNo); err != nil {
					return err
				}
			}
			seq = seq[:0]
			st, start = inHeader, lineNo
			header.Write(hdr)

		case st == startOfFile:
			if !settings.AllowPrecedingComment {
				if err := content(line); err != nil {
					return err
				}
			}

		case st == inHeader && isHeader:
			if settings.ConcatenateHeaders {
				header.WriteByte('\n')
				header.Write(hdr)
				continue
			}
			if err := flush(lineNo); err != nil {
				return err
			}
			start = lineNo
			header.Write(hdr)

		case st == inHeader:
			st = inRecord
			if err := content(line); err != nil {
				return err
			}

		case isHeader: // inRecord
			if err := flush(lineNo); err != nil {
				return err
			}
			st, start = inHeader, lineNo
			header.Write(hdr)

		default: // inRecord
			if len(line) > 0 {
				if err := content(line); err != nil {
					return err
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}

	eof := lineNo + 1
	switch st {
	case startOfFile:
		if preceding() {
			start = 1
			return flush(eof)
		}
		return nil
	default:
		return flush(eof)
	}
}

// ParseString collects every record of s.
func ParseString(s string, settings Settings) ([]Record, error) {
	var out []Record
	err := Parse(context.Background(), strings.NewReader(s), settings, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

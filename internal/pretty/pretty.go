// Package pretty renders translations as six-frame text blocks: forward
// frames above the DNA, its complement below, reverse frames underneath.
// Each amino acid sits under the middle base of its codon.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"quickdna/core/nucleotide"
	"quickdna/pkg/api"
)

// Options control the rendering.
type Options struct {
	// Bases per block. If <=0, use default (60).
	Width int
	// Highlight start (M) and stop (*) letters.
	Color bool
}

// DefaultOptions keeps the plain 60-column look.
var DefaultOptions = Options{Width: 60}

const (
	linePrefix = "# "
	labelWidth = 3
)

// Whether to colour is decided by the caller, so the renderer uses a fixed
// profile instead of probing the process's stdout.
var (
	renderer = func() *lipgloss.Renderer {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI256)
		return r
	}()

	stopStyle = renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	startStyle = renderer.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))
)

func complementString(s string) string {
	out := make([]byte, len(s))
	for i := range s {
		if a, err := nucleotide.ParseAmbiguous(s[i]); err == nil {
			out[i] = a.Complement().ASCII()
		} else {
			out[i] = s[i]
		}
	}
	return string(out)
}

// track places each amino acid of f under the middle base of its codon in
// a row as wide as the DNA.
func track(f api.FrameV1, n int) []byte {
	row := []byte(strings.Repeat(" ", n))
	for k := 0; k < len(f.Protein); k++ {
		var pos int
		if f.Frame > 0 {
			pos = f.Frame - 1 + 3*k + 1
		} else {
			pos = n - 2 - (-f.Frame - 1) - 3*k
		}
		if pos < 0 || pos >= n {
			break
		}
		row[pos] = f.Protein[k]
	}
	return row
}

func label(frame int) string {
	if frame > 0 {
		return fmt.Sprintf("%-*s", labelWidth, fmt.Sprintf("+%d", frame))
	}
	return fmt.Sprintf("%-*s", labelWidth, fmt.Sprintf("%d", frame))
}

func paint(s string, color bool) string {
	if !color {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*':
			b.WriteString(stopStyle.Render("*"))
		case 'M':
			b.WriteString(startStyle.Render("M"))
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// RenderFrames prints one record. Without x.Seq only the frame rows are
// shown, one protein per line.
func RenderFrames(x api.TranslationV1, opt Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s table=%d\n", linePrefix, x.SequenceID, x.Table)

	if x.Seq == "" {
		for _, f := range x.Frames {
			fmt.Fprintf(&b, "%s%s\n", label(f.Frame), paint(f.Protein, opt.Color))
		}
		b.WriteByte('\n')
		return b.String()
	}

	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	n := len(x.Seq)
	comp := complementString(x.Seq)
	var fwd, rev []api.FrameV1
	rows := make(map[int][]byte, len(x.Frames))
	for _, f := range x.Frames {
		rows[f.Frame] = track(f, n)
		if f.Frame > 0 {
			fwd = append(fwd, f)
		} else {
			rev = append(rev, f)
		}
	}
	pad := strings.Repeat(" ", labelWidth)

	frameLine := func(f api.FrameV1, lo, hi int) {
		line := strings.TrimRight(label(f.Frame)+string(rows[f.Frame][lo:hi]), " ")
		b.WriteString(paint(line, opt.Color))
		b.WriteByte('\n')
	}
	for lo := 0; lo < n; lo += width {
		hi := min(lo+width, n)
		for _, f := range fwd {
			frameLine(f, lo, hi)
		}
		fmt.Fprintf(&b, "%s%s\n%s%s\n", pad, x.Seq[lo:hi], pad, comp[lo:hi])
		for _, f := range rev {
			frameLine(f, lo, hi)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

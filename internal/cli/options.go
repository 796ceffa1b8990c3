// internal/cli/options.go
package cli

import (
	"errors"
	"io"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"quickdna/internal/output"
	"quickdna/internal/version"
)

// Subcommands
const (
	CmdTranslate = "translate"
	CmdFrames    = "frames"
	CmdRevComp   = "revcomp"
	CmdCanonical = "canonical"
	CmdExpand    = "expand"
	CmdTables    = "tables"
)

// ThreadsUnset is Options.Threads when -j was not given.
const ThreadsUnset = -1

// ErrHelp is returned after help or version text has been printed.
var ErrHelp = errors.New("help requested")

// Options holds all CLI flags and arguments. Zero values of Table, Output,
// Threads, MaxExpansions and Color mean "use the configured default".
type Options struct {
	Command string
	Files   []string // "-" when none given

	// Global
	ConfigPath            string
	Output                string
	Threads               int
	Header                bool
	Color                 string
	Quiet                 bool
	Verbose               bool
	Progress              bool
	SplitHeaders          bool
	AllowPrecedingComment bool

	// Per command
	Table         int
	Strict        bool
	Pretty        bool
	Width         int
	SelfOnly      bool
	Forward       bool
	Unique        bool
	UniqueCap     int
	MaxExpansions uint64
}

// New builds the kingpin application bound to opt.
func New(opt *Options) *kingpin.Application {
	app := kingpin.New("quickdna", "Translate, reverse-complement, canonicalize and expand DNA in FASTA files.")
	app.Version(version.Version)
	app.HelpFlag.Short('h')

	app.Flag("config", "config file (default: quickdna.{yaml,toml,json} in . or ~/.config/quickdna)").PlaceHolder("FILE").StringVar(&opt.ConfigPath)
	app.Flag("output", "output format").Short('o').EnumVar(&opt.Output, output.Formats...)
	app.Flag("threads", "worker threads (0=all CPUs)").Short('j').Default(strconv.Itoa(ThreadsUnset)).IntVar(&opt.Threads)
	app.Flag("header", "print a header row in text output").BoolVar(&opt.Header)
	app.Flag("color", "highlight start/stop codons in pretty output").EnumVar(&opt.Color, "auto", "always", "never")
	app.Flag("quiet", "suppress warnings").Short('q').BoolVar(&opt.Quiet)
	app.Flag("verbose", "debug logging").Short('v').BoolVar(&opt.Verbose)
	app.Flag("progress", "show a progress bar on stderr").BoolVar(&opt.Progress)
	app.Flag("split-headers", "treat consecutive FASTA header lines as separate records").BoolVar(&opt.SplitHeaders)
	app.Flag("allow-preceding-comment", "ignore text before the first FASTA header").BoolVar(&opt.AllowPrecedingComment)

	files := func(cmd *kingpin.CmdClause) {
		cmd.Arg("files", "FASTA file(s), optionally gzipped, or '-' for STDIN").StringsVar(&opt.Files)
	}
	translation := func(cmd *kingpin.CmdClause) {
		cmd.Flag("table", "NCBI translation table id").Short('t').PlaceHolder("ID").IntVar(&opt.Table)
		cmd.Flag("strict", "reject IUPAC ambiguity codes").BoolVar(&opt.Strict)
		cmd.Flag("pretty", "six-frame text blocks instead of TSV").BoolVar(&opt.Pretty)
		cmd.Flag("width", "bases per pretty block").Default("60").IntVar(&opt.Width)
	}
	limit := func(cmd *kingpin.CmdClause) {
		cmd.Flag("max-expansions", "largest ambiguity expansion to enumerate (0=configured default)").PlaceHolder("N").Uint64Var(&opt.MaxExpansions)
	}

	translate := app.Command(CmdTranslate, "translate reading frame +1 of every record")
	translation(translate)
	files(translate)

	frames := app.Command(CmdFrames, "translate all six reading frames of every record")
	translation(frames)
	frames.Flag("self", "own strand only (frames +1..+3)").BoolVar(&opt.SelfOnly)
	files(frames)

	revcomp := app.Command(CmdRevComp, "reverse-complement every record")
	revcomp.Flag("strict", "reject IUPAC ambiguity codes").BoolVar(&opt.Strict)
	files(revcomp)

	canon := app.Command(CmdCanonical, "canonical form and digest of every record")
	canon.Flag("forward", "relabeling only; do not consider the reverse strand").BoolVar(&opt.Forward)
	canon.Flag("unique", "print only the first record of each canonical form").BoolVar(&opt.Unique)
	canon.Flag("unique-cap", "canonical forms remembered by --unique (least recently seen forgotten first)").Default("200000").IntVar(&opt.UniqueCap)
	limit(canon)
	files(canon)

	expand := app.Command(CmdExpand, "list every concrete sequence of ambiguous records")
	limit(expand)
	files(expand)

	app.Command(CmdTables, "list the supported translation tables")
	return app
}

// stdinArg stands in for a bare "-" while kingpin parses, since its lexer
// reads "-" as a short flag.
const stdinArg = "\x00stdin"

// ParseArgs parses argv. Help and version text go to usage; in that case
// ErrHelp is returned.
func ParseArgs(argv []string, usage io.Writer) (Options, error) {
	var opt Options
	app := New(&opt)
	app.UsageWriter(usage)
	app.ErrorWriter(usage)
	terminated := false
	app.Terminate(func(int) { terminated = true })

	args := make([]string, len(argv))
	for i, a := range argv {
		if a == "-" {
			a = stdinArg
		}
		args[i] = a
	}

	cmd, err := app.Parse(args)
	if terminated {
		return Options{}, ErrHelp
	}
	if err != nil {
		return Options{}, err
	}
	opt.Command = cmd
	for i, f := range opt.Files {
		if f == stdinArg {
			opt.Files[i] = "-"
		}
	}
	if len(opt.Files) == 0 {
		opt.Files = []string{"-"}
	}
	return opt, nil
}

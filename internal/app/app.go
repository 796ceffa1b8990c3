// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/term"

	"quickdna/core/transtable"
	"quickdna/internal/appcore"
	"quickdna/internal/cli"
	"quickdna/internal/cliutil"
	"quickdna/internal/cmdutil"
	"quickdna/internal/config"
	"quickdna/internal/output"
	"quickdna/internal/runutil"
	"quickdna/internal/visitors"
	"quickdna/internal/writers"
	"quickdna/pkg/api"
)

// settings is the merge of config defaults and command-line overrides.
type settings struct {
	config.Config
}

func resolve(opts cli.Options) (settings, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return settings{}, err
	}
	if opts.Table != 0 {
		if cfg.Table, err = transtable.FromID(opts.Table); err != nil {
			return settings{}, fmt.Errorf("--table: %w", err)
		}
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	switch {
	case opts.Threads >= 0:
		cfg.Threads = opts.Threads
	case opts.Threads != cli.ThreadsUnset:
		return settings{}, fmt.Errorf("--threads: must be >= 0, got %d", opts.Threads)
	}
	if opts.MaxExpansions != 0 {
		cfg.MaxExpansions = opts.MaxExpansions
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	cfg.Header = cfg.Header || opts.Header
	if opts.SplitHeaders {
		cfg.FASTA.ConcatenateHeaders = false
	}
	if opts.AllowPrecedingComment {
		cfg.FASTA.AllowPrecedingComment = true
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}
	if opts.Pretty && cfg.Output != output.FormatText {
		return settings{}, fmt.Errorf("--pretty needs text output, not %q", cfg.Output)
	}
	return settings{Config: cfg}, nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s settings) color(stdout io.Writer) bool {
	switch s.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal(stdout)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	opts, err := cli.ParseArgs(argv, outw)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v, try --help\n", err)
		return 2
	}

	s, err := resolve(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if opts.Files, err = cliutil.ExpandInputs(opts.Files); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	if slices.Contains(opts.Files, "-") && isTerminal(os.Stdin) && opts.Command != cli.CmdTables {
		log.Warn("reading FASTA from the terminal; end input with Ctrl-D")
	}

	wopt := writers.Options{
		Header: s.Header,
		Pretty: opts.Pretty,
		Color:  s.color(stdout),
		Width:  opts.Width,
	}
	core := appcore.Options{
		SeqFiles: opts.Files,
		Threads:  s.Threads,
		FASTA:    s.FASTA,
		Format:   s.Output,
		Writer:   wopt,
		Progress: opts.Progress,
		Log:      log,
	}
	log.Debug("resolved settings",
		zap.String("command", opts.Command),
		zap.Stringer("table", s.Table),
		zap.Uint64("max_expansions", s.MaxExpansions),
		zap.Bool("concatenate_headers", s.FASTA.ConcatenateHeaders),
		zap.Bool("allow_preceding_comment", s.FASTA.AllowPrecedingComment))

	switch opts.Command {
	case cli.CmdTranslate:
		v := visitors.Translate{Table: s.Table, Strict: opts.Strict, WithSeq: opts.Pretty}
		return appcore.Run[api.TranslationV1](parent, stdout, stderr, core, v.Visit, nil)
	case cli.CmdFrames:
		v := visitors.Frames{Table: s.Table, Strict: opts.Strict, WithSeq: opts.Pretty, SelfOnly: opts.SelfOnly}
		return appcore.Run[api.TranslationV1](parent, stdout, stderr, core, v.Visit, nil)
	case cli.CmdRevComp:
		return appcore.Run[api.ReverseComplementV1](parent, stdout, stderr, core, visitors.RevComp{Strict: opts.Strict}.Visit, nil)
	case cli.CmdCanonical:
		v := visitors.Canonical{Forward: opts.Forward, MaxExpansions: s.MaxExpansions}
		var keep func(api.CanonicalV1) bool
		if opts.Unique {
			seen := runutil.NewLRUSet[string](opts.UniqueCap)
			keep = func(c api.CanonicalV1) bool { return !seen.Add(c.Digest) }
		}
		return appcore.Run[api.CanonicalV1](parent, stdout, stderr, core, v.Visit, keep)
	case cli.CmdExpand:
		v := visitors.Expand{MaxExpansions: s.MaxExpansions, Log: log}
		return appcore.Run[api.ExpansionsV1](parent, stdout, stderr, core, v.Visit, nil)
	case cli.CmdTables:
		var items []api.TableV1
		for _, t := range transtable.Tables() {
			items = append(items, api.TableV1{ID: t.ID(), Name: t.Name()})
		}
		return appcore.Write(stdout, stderr, s.Output, wopt, items)
	}
	_, _ = fmt.Fprintf(stderr, "error: unknown command %q\n", opts.Command)
	return 2
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

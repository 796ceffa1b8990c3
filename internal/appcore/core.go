// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/cheggaaa/pb.v1"

	"quickdna/core/fasta"
	"quickdna/internal/cmdutil"
	"quickdna/internal/pipeline"
	"quickdna/internal/writers"
)

type Options struct {
	SeqFiles []string
	Threads  int
	FASTA    fasta.Settings

	Format string
	Writer writers.Options

	Progress bool
	Log      *zap.Logger
}

type VisitorFunc[T any] func(pipeline.Job) (T, error)

// Run streams every record of o.SeqFiles through visit and writes the
// results that keep accepts (nil keeps all). keep runs on a single goroutine
// in input order. Exit codes: 0 ok (including a closed downstream pipe), 3 runtime
// error, 130 cancelled.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	keep func(T) bool,
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	log := o.Log
	if log == nil {
		log = zap.NewNop()
	}

	inCh, writeErr := writers.Start[T](outw, o.Format, o.Writer, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg := pipeline.Config{Threads: thr, Settings: o.FASTA}
	if o.Progress {
		bar := pb.New(0)
		bar.Output = stderr
		bar.ShowSpeed = true
		bar.Start()
		defer bar.Finish()
		cfg.Progress = func() { bar.Increment() }
	}

	log.Debug("starting", zap.Strings("files", o.SeqFiles), zap.Int("threads", thr), zap.String("format", o.Format))
	total, perr := cmdutil.RunStream[T](
		ctx,
		cfg,
		o.SeqFiles,
		visit,
		func(x T) error {
			if keep != nil && !keep(x) {
				return nil
			}
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	log.Debug("finished", zap.Int("results", total))

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, "error:", perr)
		return 3
	}
	return 0
}

// Write writes a fixed list of results (no input files).
func Write[T any](stdout, stderr io.Writer, format string, opt writers.Options, items []T) int {
	outw := bufio.NewWriter(stdout)
	in, done := writers.Start[T](outw, format, opt, len(items))
	for _, it := range items {
		in <- it
	}
	close(in)
	err := <-done
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	return 0
}

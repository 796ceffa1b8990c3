// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"quickdna/core/fasta"
)

// Config controls the record pipeline.
type Config struct {
	Threads  int            // number of worker goroutines (>=1)
	Settings fasta.Settings // record framing for every input
	Progress func()         // called once per emitted result, from a single goroutine
}

// Job is one record with its origin. Index is the record's position across
// all inputs, starting at 0.
type Job struct {
	File   string
	Index  int
	Record fasta.Record
}

// Map reads every record of files, applies fn on cfg.Threads workers and
// calls emit with the results in input order. At most Window(cfg) records
// are in flight between the reader and emit, so one slow record stalls the
// reader instead of piling up later results. The first error in input order
// (reading, fn or emit) cancels the run and is returned; otherwise the
// parent's cancellation error (if any) is returned.
func Map[T any](
	parent context.Context,
	cfg Config,
	files []string,
	fn func(Job) (T, error),
	emit func(T) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type result struct {
		idx int
		v   T
		err error
	}
	jobs := make(chan Job, cfg.Threads)
	results := make(chan result, cfg.Threads)
	// One token per record between the feeder and emit.
	window := make(chan struct{}, Window(cfg))

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	// Workers. Errors travel with the result so the collector can report
	// them in input order.
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				v, err := fn(j)
				if err != nil {
					err = fmt.Errorf("%s:%d: %w", j.File, j.Record.StartLine, err)
				}
				select {
				case results <- result{idx: j.Index, v: v, err: err}:
				case <-ctx.Done():
				}
			}
		}()
	}

	// Collector + reorder buffer (never holds more than the window)
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result)
		next := 0
		for r := range results {
			if ctx.Err() != nil {
				continue
			}
			pending[r.idx] = r
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cur.err != nil {
					fail(cur.err)
					break
				}
				if err := emit(cur.v); err != nil {
					fail(err)
					break
				}
				<-window
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}
		}
	}()

	// Feed work
	idx := 0
feed:
	for _, path := range files {
		err := fasta.StreamFile(ctx, path, cfg.Settings, func(rec fasta.Record) error {
			select {
			case window <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- Job{File: path, Index: idx, Record: rec}:
				idx++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			if ctx.Err() == nil {
				// Queued behind the records already read.
				select {
				case results <- result{idx: idx, err: err}:
				case <-ctx.Done():
				}
			}
			break feed
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return parent.Err()
}

// Window is the number of records Map lets run ahead of emit.
func Window(cfg Config) int {
	return max(cfg.Threads, 1) * 4
}

package cmdutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"quickdna/core/fasta"
	"quickdna/internal/pipeline"
)

func TestNewLoggerLevels(t *testing.T) {
	var b bytes.Buffer
	log := NewLogger(&b, false, false)
	log.Debug("hidden")
	log.Warn("skipping record", zap.String("record", "s1"))
	_ = log.Sync()
	out := b.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "skipping record") || !strings.Contains(out, `"record": "s1"`) {
		t.Fatalf("default logger output = %q", out)
	}

	b.Reset()
	NewLogger(&b, false, true).Debug("shown")
	if !strings.Contains(b.String(), "shown") {
		t.Fatalf("verbose logger output = %q", b.String())
	}

	b.Reset()
	NewLogger(&b, true, true).Error("nothing")
	if b.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", b.String())
	}
}

func TestRunStreamCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.fa")
	if err := os.WriteFile(path, []byte(">a\nAC\n>b\nGT\n>c\nTT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var ids []string
	n, err := RunStream(context.Background(),
		pipeline.Config{Threads: 2, Settings: fasta.DefaultSettings()},
		[]string{path},
		func(j pipeline.Job) (string, error) { return j.Record.ID(), nil },
		func(id string) error { ids = append(ids, id); return nil },
	)
	if err != nil || n != 3 || strings.Join(ids, "") != "abc" {
		t.Fatalf("n=%d ids=%v err=%v", n, ids, err)
	}
}

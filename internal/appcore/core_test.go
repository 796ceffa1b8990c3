package appcore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quickdna/core/fasta"
	"quickdna/internal/pipeline"
	"quickdna/pkg/api"
)

func fastaFile(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func ids(j pipeline.Job) (api.ReverseComplementV1, error) {
	return api.ReverseComplementV1{SequenceID: j.Record.ID(), Seq: string(j.Record.Seq)}, nil
}

func TestRunKeepFilter(t *testing.T) {
	fa := fastaFile(t, ">a\nA\n>b\nC\n>c\nG\n")
	o := Options{SeqFiles: []string{fa}, Threads: 2, FASTA: fasta.DefaultSettings(), Format: "text"}
	var out, errs bytes.Buffer
	keep := func(x api.ReverseComplementV1) bool { return x.SequenceID != "b" }
	if code := Run[api.ReverseComplementV1](context.Background(), &out, &errs, o, ids, keep); code != 0 {
		t.Fatalf("exit %d: %s", code, errs.String())
	}
	if out.String() != "\ta\tA\n\tc\tG\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRunUnknownFormat(t *testing.T) {
	fa := fastaFile(t, ">a\nA\n")
	o := Options{SeqFiles: []string{fa}, Threads: 1, FASTA: fasta.DefaultSettings(), Format: "xml"}
	var out, errs bytes.Buffer
	if code := Run[api.ReverseComplementV1](context.Background(), &out, &errs, o, ids, nil); code != 3 || !strings.Contains(errs.String(), "unknown output format") {
		t.Fatalf("exit %d: %s", code, errs.String())
	}
}

func TestWrite(t *testing.T) {
	var out, errs bytes.Buffer
	items := []api.TableV1{{ID: 1, Name: "Standard"}, {ID: 2, Name: "Vertebrate Mitochondrial"}}
	if code := Write(&out, &errs, "jsonl", Options{}.Writer, items); code != 0 {
		t.Fatalf("exit %d: %s", code, errs.String())
	}
	if strings.Count(out.String(), "\n") != 2 || !strings.HasPrefix(out.String(), `{"id":1,"name":"Standard"}`) {
		t.Fatalf("got %q", out.String())
	}
}

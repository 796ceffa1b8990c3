// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quickdna/internal/app"
	"quickdna/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errBuf bytes.Buffer
	code = app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

const twoRecords = ">s1 first\nATGAAA\nTAG\n>s2\nTTRTTV\n"

func TestTranslate(t *testing.T) {
	fa := write(t, "in.fa", twoRecords)
	code, out, errs := run(t, "translate", "--header", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	want := "source_file\tsequence_id\ttable\tframe\tprotein\n" +
		fa + "\ts1\t1\t+1\tMK*\n" +
		fa + "\ts2\t1\t+1\tLX\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestTranslateTableAndGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	_, _ = gw.Write([]byte(">m\nTGAAGA\n"))
	_ = gw.Close()
	_ = f.Close()

	code, out, errs := run(t, "translate", "-t", "2", "-o", "fasta", path)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if out != ">m frame=+1 table=2\nW*\n" {
		t.Fatalf("got %q", out)
	}
}

func TestFramesJSON(t *testing.T) {
	fa := write(t, "in.fa", ">a\naaagggaaa\n")
	code, out, errs := run(t, "frames", "-o", "json", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	var got []api.TranslationV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0].Frames) != 6 || got[0].Frames[3].Frame != -1 || got[0].Frames[3].Protein != "FPF" {
		t.Fatalf("got %+v", got)
	}
}

func TestFramesPretty(t *testing.T) {
	fa := write(t, "in.fa", ">s\nATGAAATAGC\n")
	code, out, errs := run(t, "frames", "--pretty", "--color", "never", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if !strings.HasPrefix(out, "# s table=1\n+1  M  K  *\n") || !strings.Contains(out, "   ATGAAATAGC\n   TACTTTATCG\n") {
		t.Fatalf("got:\n%s", out)
	}

	code, _, errs = run(t, "frames", "--pretty", "-o", "json", fa)
	if code != 2 || !strings.Contains(errs, "--pretty") {
		t.Fatalf("pretty+json exit %d, err=%s", code, errs)
	}
}

func TestRevCompKeepsHeaders(t *testing.T) {
	fa := write(t, "in.fa", ">a one\n>a two\naTgRn\n")
	code, out, errs := run(t, "revcomp", "-o", "fasta", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if out != ">a one\n>a two\nNYCAT\n" {
		t.Fatalf("got %q", out)
	}

	code, out, _ = run(t, "--split-headers", "revcomp", fa)
	if code != 0 || out != fa+"\ta\t\n"+fa+"\ta\tNYCAT\n" {
		t.Fatalf("split headers: exit %d, %q", code, out)
	}
}

func TestCanonical(t *testing.T) {
	fa := write(t, "in.fa", ">x\nGGAT\n>y\nATCC\n")
	code, out, errs := run(t, "canonical", "-o", "jsonl", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %q", out)
	}
	var x, y api.CanonicalV1
	_ = json.Unmarshal([]byte(lines[0]), &x)
	_ = json.Unmarshal([]byte(lines[1]), &y)
	if x.Canonical != "AATC" || x.Digest != y.Digest || x.SequenceID != "x" || y.SequenceID != "y" {
		t.Fatalf("x=%+v y=%+v", x, y)
	}
}

func TestCanonicalUnique(t *testing.T) {
	fa := write(t, "in.fa", ">x\nGGAT\n>y\nATCC\n>z\nAAAA\n>w\nGGAT\n")
	code, out, errs := run(t, "canonical", "--unique", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "\tx\tAATC\t") || !strings.Contains(lines[1], "\tz\tAAAA\t") {
		t.Fatalf("got %q", out)
	}
}

func TestGlobInputs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(">"+n+"\nATG\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	code, out, errs := run(t, "translate", filepath.Join(dir, "*.fa"))
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if strings.Count(out, "\tM\n") != 2 {
		t.Fatalf("got %q", out)
	}
	if code, _, _ := run(t, "translate", filepath.Join(dir, "*.fq")); code != 2 {
		t.Fatalf("unmatched glob exit %d", code)
	}
}

func TestExpandSkipsOversize(t *testing.T) {
	fa := write(t, "in.fa", ">small\nAR\n>big\nNNN\n")
	code, out, errs := run(t, "expand", "--max-expansions", "4", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	want := fa + "\tsmall\t2\t1\tAA\n" + fa + "\tsmall\t2\t2\tAG\n" + fa + "\tbig\t64\t\t\n"
	if out != want {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(errs, "too many expansions") || !strings.Contains(errs, "big") {
		t.Fatalf("expected a warning, got %q", errs)
	}

	_, _, errs = run(t, "-q", "expand", "--max-expansions", "4", fa)
	if errs != "" {
		t.Fatalf("quiet run logged %q", errs)
	}
}

func TestTables(t *testing.T) {
	code, out, errs := run(t, "tables")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 29 || lines[0] != "1\tStandard" || lines[len(lines)-1] != "33\tCephalodiscidae Mitochondrial" {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
}

func TestConfigFile(t *testing.T) {
	fa := write(t, "in.fa", "comment line\n>s\nTGA\n")
	cfg := write(t, "q.yaml", "table: 2\noutput: text\nfasta:\n  allow_preceding_comment: true\n")
	code, out, errs := run(t, "--config", cfg, "translate", fa)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errs)
	}
	if out != fa+"\ts\t2\t+1\tW\n" {
		t.Fatalf("got %q", out)
	}
	// Flags beat the file.
	_, out, _ = run(t, "--config", cfg, "translate", "-t", "1", fa)
	if out != fa+"\ts\t1\t+1\t*\n" {
		t.Fatalf("override got %q", out)
	}
}

func TestExitCodes(t *testing.T) {
	fa := write(t, "in.fa", ">s\nATGXAA\n")

	if code, _, errs := run(t, "translate", fa); code != 3 || !strings.Contains(errs, "bad nucleotide") {
		t.Fatalf("bad input: exit %d, err=%s", code, errs)
	}
	if code, _, errs := run(t, "translate", filepath.Join(t.TempDir(), "missing.fa")); code != 3 || errs == "" {
		t.Fatalf("missing file: exit %d", code)
	}
	if code, _, _ := run(t, "translate", "-t", "19", fa); code != 2 {
		t.Fatalf("bad table: exit %d", code)
	}
	if code, _, errs := run(t, "--threads=-3", "translate", fa); code != 2 || !strings.Contains(errs, "--threads") {
		t.Fatalf("negative threads: exit %d, err=%s", code, errs)
	}
	if code, _, _ := run(t, "--bogus"); code != 2 {
		t.Fatalf("unknown flag: exit %d", code)
	}
	if code, out, _ := run(t, "--help"); code != 0 || !strings.Contains(out, "translate") {
		t.Fatalf("help: exit %d, %q", code, out)
	}
	if code, _, _ := run(t, "--version"); code != 0 {
		t.Fatalf("version: exit %d", code)
	}
}

func TestCancelledExit130(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fa := write(t, "in.fa", strings.Repeat(">s\nACGT\n", 1000))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := app.RunContext(ctx, []string{"revcomp", fa}, &out, &errBuf); code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d (%s)", code, errBuf.String())
	}
}

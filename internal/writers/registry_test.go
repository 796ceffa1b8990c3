package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"quickdna/pkg/api"
)

func run[T any](t *testing.T, format string, opt Options, vs ...T) string {
	t.Helper()
	var b bytes.Buffer
	in, done := Start[T](&b, format, opt, 1)
	for _, v := range vs {
		in <- v
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s: %v", format, err)
	}
	return b.String()
}

var rcs = []api.ReverseComplementV1{
	{SourceFile: "x.fa", SequenceID: "a", Seq: "ACGT"},
	{SourceFile: "x.fa", SequenceID: "b", Header: "b two", Seq: "NNA"},
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := Start[api.TableV1](&b, "nope-format", Options{}, 1)
	in <- api.TableV1{ID: 1}
	in <- api.TableV1{ID: 2}
	close(in) // writer must drain even after failing
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}

func TestRegisteredFormats(t *testing.T) {
	if got := strings.Join(Registered(), ","); got != "fasta,json,jsonl,msgpack,text,yaml" {
		t.Fatalf("registered = %s", got)
	}
}

func TestText(t *testing.T) {
	got := run(t, "text", Options{Header: true}, rcs...)
	want := "source_file\tsequence_id\tseq\nx.fa\ta\tACGT\nx.fa\tb\tNNA\n"
	if got != want {
		t.Fatalf("got %q", got)
	}
	if got := run(t, "text", Options{}, rcs[0]); got != "x.fa\ta\tACGT\n" {
		t.Fatalf("headerless got %q", got)
	}
}

func TestTextPrettyUsesFrameBlocks(t *testing.T) {
	x := api.TranslationV1{SequenceID: "s", Table: 1, Seq: "ATGTAA", Frames: []api.FrameV1{{Frame: 1, Protein: "M*"}}}
	got := run(t, "text", Options{Pretty: true, Header: true}, x)
	if strings.Contains(got, "source_file") || !strings.Contains(got, "ATGTAA") {
		t.Fatalf("pretty output = %q", got)
	}
}

func TestFASTA(t *testing.T) {
	got := run(t, "fasta", Options{}, rcs...)
	if got != ">a\nACGT\n>b two\nNNA\n" {
		t.Fatalf("got %q", got)
	}
}

func TestJSON(t *testing.T) {
	if got := run[api.TableV1](t, "json", Options{}); got != "[]\n" {
		t.Fatalf("empty json = %q", got)
	}
	var back []api.ReverseComplementV1
	if err := json.Unmarshal([]byte(run(t, "json", Options{}, rcs...)), &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[1].Header != "b two" {
		t.Fatalf("json = %+v", back)
	}
}

func TestJSONL(t *testing.T) {
	got := run(t, "jsonl", Options{}, rcs...)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 || lines[0] != `{"source_file":"x.fa","sequence_id":"a","seq":"ACGT"}` {
		t.Fatalf("jsonl = %q", got)
	}
}

func TestYAMLStreamsDocuments(t *testing.T) {
	got := run(t, "yaml", Options{}, rcs...)
	dec := yaml.NewDecoder(strings.NewReader(got))
	var ids []string
	for {
		var v api.ReverseComplementV1
		if err := dec.Decode(&v); err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, v.SequenceID)
	}
	if strings.Join(ids, ",") != "a,b" {
		t.Fatalf("yaml ids = %v in %q", ids, got)
	}
}

func TestMsgpackStreamsValues(t *testing.T) {
	x := api.ExpansionsV1{SequenceID: "s", Count: 2, Expansions: []string{"AA", "AG"}}
	got := run(t, "msgpack", Options{}, x, x)
	dec := msgpack.NewDecoder(strings.NewReader(got))
	for i := 0; i < 2; i++ {
		var v api.ExpansionsV1
		if err := dec.Decode(&v); err != nil {
			t.Fatal(err)
		}
		if v.Count != 2 || len(v.Expansions) != 2 || v.Expansions[1] != "AG" {
			t.Fatalf("msgpack value %d = %+v", i, v)
		}
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("EPIPE and ErrClosedPipe are broken pipes")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("false positive")
	}
}

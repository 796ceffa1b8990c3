package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodeArray(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeArray[int](&b, nil); err != nil || b.String() != "[]\n" {
		t.Fatalf("empty = %q, %v", b.String(), err)
	}
	b.Reset()
	if err := EncodeArray(&b, []string{"AC", "GT"}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "[\n  \"AC\",\n  \"GT\"\n]\n" {
		t.Fatalf("got %q", b.String())
	}
}

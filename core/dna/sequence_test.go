package dna

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/quick"

	"quickdna/core/nucleotide"
	"quickdna/core/transtable"
)

func amb(t testing.TB, s string) Ambiguous {
	t.Helper()
	v, err := ParseString[nucleotide.Ambiguous](s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return v
}

func strict(t testing.TB, s string) Strict {
	t.Helper()
	v, err := ParseString[nucleotide.Nucleotide](s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return v
}

func proteins(ps []Protein) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestParseEveryASCIIByte(t *testing.T) {
	for c := 0; c < 128; c++ {
		_, errAmb := Parse[nucleotide.Ambiguous]([]byte{byte(c)})
		_, errStrict := Parse[nucleotide.Nucleotide]([]byte{byte(c)})
		wantAmb := strings.IndexByte("aAtTcCgGmMrRwWsSyYkKvVhHdDbBnN \t", byte(c)) >= 0
		wantStrict := strings.IndexByte("aAtTcCgG \t", byte(c)) >= 0
		if (errAmb == nil) != wantAmb {
			t.Errorf("ambiguous %q: err = %v", rune(c), errAmb)
		}
		if (errStrict == nil) != wantStrict {
			t.Errorf("strict %q: err = %v", rune(c), errStrict)
		}
	}
}

func TestParseSkipsWhitespace(t *testing.T) {
	s := amb(t, "TTR\tTTV  a")
	if s.String() != "TTRTTVA" {
		t.Fatalf("String() = %s", s)
	}
	_, err := ParseString[nucleotide.Ambiguous]("AC\nGT")
	if !errors.Is(err, nucleotide.ErrBadNucleotide) {
		t.Fatalf("newline err = %v", err)
	}
	if err.Error() != `position 2: bad nucleotide: '\n'` {
		t.Fatalf("message = %q", err.Error())
	}
	if amb(t, "aAa").String() != amb(t, "AAA").String() {
		t.Fatal("parsing must be case-insensitive")
	}
}

func TestTranslate(t *testing.T) {
	if got := amb(t, "AAAGGGAAA").Translate(transtable.Ncbi1).String(); got != "KGK" {
		t.Fatalf("Translate = %s", got)
	}
	if got := strict(t, "AAAGGGAAA").Translate(transtable.Ncbi1).String(); got != "KGK" {
		t.Fatalf("strict Translate = %s", got)
	}
	if got := amb(t, "TTR TTV").Translate(transtable.Ncbi1).String(); got != "LX" {
		t.Fatalf("ambiguous Translate = %s", got)
	}
}

func TestFrames(t *testing.T) {
	tests := []struct {
		dna  string
		self []string
		all  []string
	}{
		{"AAAGGGAAA", []string{"KGK", "KG", "RE"}, []string{"KGK", "KG", "RE", "FPF", "FP", "SL"}},
		{"GGGG", []string{"G", "G"}, []string{"G", "G", "P", "P"}},
		{"GGG", []string{"G"}, []string{"G", "P"}},
		{"GG", nil, nil},
		{"G", nil, nil},
		{"", nil, nil},
	}
	for _, tc := range tests {
		for name, s := range map[string]interface {
			SelfFrames(transtable.Table) []Protein
			AllFrames(transtable.Table) []Protein
		}{"ambiguous": amb(t, tc.dna), "strict": strict(t, tc.dna)} {
			if got := proteins(s.SelfFrames(transtable.Ncbi1)); strings.Join(got, ",") != strings.Join(tc.self, ",") || len(got) != len(tc.self) {
				t.Errorf("%s %q SelfFrames = %v, want %v", name, tc.dna, got, tc.self)
			}
			if got := proteins(s.AllFrames(transtable.Ncbi1)); strings.Join(got, ",") != strings.Join(tc.all, ",") || len(got) != len(tc.all) {
				t.Errorf("%s %q AllFrames = %v, want %v", name, tc.dna, got, tc.all)
			}
		}
	}
}

func TestFrameCountByLength(t *testing.T) {
	want := map[int]int{0: 0, 1: 0, 2: 0, 3: 2, 4: 4, 5: 6, 6: 6, 30: 6}
	for n, frames := range want {
		s := amb(t, strings.Repeat("A", n))
		if got := len(s.AllFrames(transtable.Standard)); got != frames {
			t.Errorf("len %d: %d frames, want %d", n, got, frames)
		}
		if got := len(AllReadingFrames(s)); got != frames {
			t.Errorf("len %d: %d lazy frames, want %d", n, got, frames)
		}
	}
}

func TestReverseComplementRoundTrip(t *testing.T) {
	if got := amb(t, "ATGRN").ReverseComplement().String(); got != "NYCAT" {
		t.Fatalf("ReverseComplement = %s", got)
	}
	f := func(raw []byte) bool {
		s := make(Ambiguous, len(raw))
		for i, b := range raw {
			s[i] = nucleotide.AllAmbiguous[int(b)%len(nucleotide.AllAmbiguous)]
		}
		return s.ReverseComplement().ReverseComplement().String() == s.String()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestWindows(t *testing.T) {
	var got []string
	for w := range amb(t, "ATCGN").Windows(3) {
		got = append(got, w.String())
	}
	if strings.Join(got, " ") != "ATC TCG CGN" {
		t.Fatalf("Windows(3) = %v", got)
	}
	n := 0
	for range amb(t, "AT").Windows(3) {
		n++
	}
	for range amb(t, "AT").Windows(0) {
		n++
	}
	if n != 0 {
		t.Fatalf("short sequences must have no windows")
	}
}

func TestCanonicalAndExpansions(t *testing.T) {
	if got := Canonical(strict(t, "TTGT")).String(); got != "AATA" {
		t.Fatalf("Canonical = %s", got)
	}
	if got := ForwardCanonical(strict(t, "CATTAG")).String(); got != "ATCCTG" {
		t.Fatalf("ForwardCanonical = %s", got)
	}
	s := amb(t, "ATBCGYAC")
	if n, ok := ExpansionCount(s); !ok || n != 6 {
		t.Fatalf("ExpansionCount = %d, %v", n, ok)
	}
	first, _ := Expansions(s).Next()
	if first.String() != "ATTCGTAC" {
		t.Fatalf("first expansion = %s", first)
	}
	if got := CanonicalAmbiguous(amb(t, "NN")).String(); got != "AA" {
		t.Fatalf("CanonicalAmbiguous(NN) = %s", got)
	}
}

func TestStrictConversions(t *testing.T) {
	w := Widen(strict(t, "ACGT"))
	if w.IsAmbiguous() || w.String() != "ACGT" {
		t.Fatalf("Widen = %s", w)
	}
	back, err := ToStrict(w)
	if err != nil || back.String() != "ACGT" {
		t.Fatalf("ToStrict = %s, %v", back, err)
	}
	if _, err := ToStrict(amb(t, "ACNT")); !errors.Is(err, nucleotide.ErrUnexpectedAmbiguity) {
		t.Fatalf("ToStrict err = %v", err)
	}
	if !amb(t, "ACNT").IsAmbiguous() {
		t.Fatal("ACNT is ambiguous")
	}
}

func TestJSON(t *testing.T) {
	type record struct {
		DNA     Ambiguous `json:"dna"`
		Protein Protein   `json:"protein"`
	}
	b, err := json.Marshal(record{DNA: amb(t, "acgn"), Protein: Protein("MK*")})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"dna":"ACGN","protein":"MK*"}` {
		t.Fatalf("json = %s", b)
	}
	var back record
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.DNA.String() != "ACGN" || back.Protein.String() != "MK*" {
		t.Fatalf("decoded %+v", back)
	}
}

func TestParseProtein(t *testing.T) {
	p, err := ParseProtein([]byte("mk*x"))
	if err != nil || p.String() != "MK*X" {
		t.Fatalf("ParseProtein = %s, %v", p, err)
	}
	if _, err := ParseProtein([]byte("M\xc3")); !errors.Is(err, nucleotide.ErrNonASCII) {
		t.Fatalf("err = %v", err)
	}
	var got []string
	for w := range p.Windows(2) {
		got = append(got, w.String())
	}
	if strings.Join(got, " ") != "MK K* *X" {
		t.Fatalf("Windows = %v", got)
	}
}

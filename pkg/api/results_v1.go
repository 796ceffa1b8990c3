// pkg/api/results_v1.go
package api

// Result schemas, one per subcommand. Every type is emitted unchanged by
// the json, jsonl, yaml and msgpack writers.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".

// FrameV1 is one translated reading frame. Frame is 1..3 for the record's
// own strand and -1..-3 for its reverse complement.
type FrameV1 struct {
	Frame   int    `json:"frame" yaml:"frame" msgpack:"frame"`
	Protein string `json:"protein" yaml:"protein" msgpack:"protein"`
}

// TranslationV1 is the output of `translate` and `frames`. Seq is the
// source DNA, present only when requested (pretty rendering).
type TranslationV1 struct {
	SourceFile string    `json:"source_file,omitempty" yaml:"source_file,omitempty" msgpack:"source_file,omitempty"`
	SequenceID string    `json:"sequence_id" yaml:"sequence_id" msgpack:"sequence_id"`
	Table      int       `json:"table" yaml:"table" msgpack:"table"`
	Seq        string    `json:"seq,omitempty" yaml:"seq,omitempty" msgpack:"seq,omitempty"`
	Frames     []FrameV1 `json:"frames" yaml:"frames" msgpack:"frames"`
}

// ReverseComplementV1 is the output of `revcomp`.
type ReverseComplementV1 struct {
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty" msgpack:"source_file,omitempty"`
	SequenceID string `json:"sequence_id" yaml:"sequence_id" msgpack:"sequence_id"`
	Header     string `json:"header,omitempty" yaml:"header,omitempty" msgpack:"header,omitempty"`
	Seq        string `json:"seq" yaml:"seq" msgpack:"seq"`
}

// CanonicalV1 is the output of `canonical`. Digest is the hex BLAKE2b-256
// of the canonical nucleotides.
type CanonicalV1 struct {
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty" msgpack:"source_file,omitempty"`
	SequenceID string `json:"sequence_id" yaml:"sequence_id" msgpack:"sequence_id"`
	Canonical  string `json:"canonical" yaml:"canonical" msgpack:"canonical"`
	Digest     string `json:"digest" yaml:"digest" msgpack:"digest"`
	Forward    bool   `json:"forward,omitempty" yaml:"forward,omitempty" msgpack:"forward,omitempty"`
	Ambiguous  bool   `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty" msgpack:"ambiguous,omitempty"`
}

// ExpansionsV1 is the output of `expand`. Count is meaningful only when
// Overflow is false. Skipped records carry no expansions.
type ExpansionsV1 struct {
	SourceFile string   `json:"source_file,omitempty" yaml:"source_file,omitempty" msgpack:"source_file,omitempty"`
	SequenceID string   `json:"sequence_id" yaml:"sequence_id" msgpack:"sequence_id"`
	Count      uint64   `json:"count" yaml:"count" msgpack:"count"`
	Overflow   bool     `json:"overflow,omitempty" yaml:"overflow,omitempty" msgpack:"overflow,omitempty"`
	Skipped    bool     `json:"skipped,omitempty" yaml:"skipped,omitempty" msgpack:"skipped,omitempty"`
	Expansions []string `json:"expansions,omitempty" yaml:"expansions,omitempty" msgpack:"expansions,omitempty"`
}

// TableV1 describes one translation table (`tables`).
type TableV1 struct {
	ID   int    `json:"id" yaml:"id" msgpack:"id"`
	Name string `json:"name" yaml:"name" msgpack:"name"`
}

// Package writers serializes pkg/api results.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, FASTA, six-frame blocks).
//   • Visitors stay domain-only; the pipeline stays orchestration-only.
//   • Structured formats (json, jsonl, yaml, msgpack) emit pkg/api (v1) values as-is.
package writers

// Package pipeline streams FASTA records from one or more inputs through a
// worker pool and hands results back in input order.
//
// The only contract is the per-record function passed to Map. This keeps
// the pipeline independent of the subcommands and testable with fakes.
package pipeline

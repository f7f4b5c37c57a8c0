// Package writers turns evaluated residue pairs into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, JSON/JSONL, summary).
//   • Engine stays domain-only; Session stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers

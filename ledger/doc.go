// Package ledger implements an append-only, hash-linked ledger whose entries
// are admitted through a proof-of-work gate.
//
// # Core Components
//
// Block: A single write-once entry holding its position, the hash of its
// predecessor, a timestamp, an opaque payload and a proof-of-work nonce.
// Its content hash is derived from those fields at construction time.
//
// Blockchain: An in-memory sequence of blocks anchored by a genesis block.
// New blocks are appended only after a proof is found against the proof of
// the latest block.
//
// # Proof of Work
//
// A proof p is valid for a previous proof q when the SHA-256 hex digest of
// the decimal strings of q and p, concatenated, starts with Difficulty.
// The search is a deterministic scan from zero, so the same previous proof
// always yields the same result.
//
// # Integrity
//
// IsValid walks the chain and re-derives every hash, link and proof. It
// reports violations as a boolean; Verify returns the first violation as an
// error for callers that need to know what broke.
package ledger

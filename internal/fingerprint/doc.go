// Package fingerprint computes content digests used to detect byte-identical
// files regardless of name, plus an optional sqlite-backed cache so re-runs
// over large recovery dumps skip re-hashing unchanged files.
package fingerprint

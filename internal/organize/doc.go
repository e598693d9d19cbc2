// Package organize is the shared deduplication and safe-move engine behind
// every reclaim flow (music, photos, videos, junk, dedupe).
//
// A run walks a fixed pipeline: discovery (deterministic lexical walk),
// planning (classification, duplicate detection, collision-free destination
// resolution), execution (moves, in-place keeps, duplicate deletions), then a
// statistics snapshot. One file's failure never aborts the run; only an
// unusable source or target root is fatal. Dry runs perform the identical
// planning, including destination claims, so their output is a faithful
// preview of the real run.
package organize

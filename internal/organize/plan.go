package organize

import (
	"reclaim/internal/metadata"
	"reclaim/internal/scan"
)

// Action is a file's planned disposition.
type Action int

const (
	// ActionMove relocates the file to its resolved target.
	ActionMove Action = iota
	// ActionKeep leaves the canonical file in place (in-place dedupe).
	ActionKeep
	// ActionSkipDuplicate marks a byte-identical copy of an earlier file.
	ActionSkipDuplicate
	// ActionSkip marks a file the classifier declined (e.g. no capture
	// date); the file stays where it is.
	ActionSkip
	// ActionSkipError marks a file that failed before execution.
	ActionSkipError
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionKeep:
		return "keep"
	case ActionSkipDuplicate:
		return "skip_duplicate"
	case ActionSkip:
		return "skip"
	case ActionSkipError:
		return "skip_error"
	default:
		return "unknown"
	}
}

// MovePlan is one file's disposition, created during planning and consumed
// exactly once by the executor.
type MovePlan struct {
	Source *scan.FileRecord
	// IntendedTarget holds the classifier's relative components, parent
	// directories first; empty for in-place actions.
	IntendedTarget []string
	// ResolvedTarget is the final collision-free path, unique among all
	// plans in the run and free of the target filesystem at planning time.
	ResolvedTarget string
	Action         Action
	// Reason explains SKIP_* actions for logs and the run report.
	Reason string
}

// Classifier is the policy a flow supplies to the engine: which files it
// owns and where they belong.
type Classifier interface {
	// Name identifies the flow in logs and reports.
	Name() string
	// Includes reports whether the discovered path belongs to this flow.
	Includes(path string) bool
	// IntendedTarget maps a record and its metadata to relative target
	// components. A nil slice with a non-empty reason skips the file; a
	// nil slice with an empty reason keeps it in place.
	IntendedTarget(rec *scan.FileRecord, md metadata.Metadata) ([]string, string)
}

// OutcomeStatus is the result of executing one plan.
type OutcomeStatus int

const (
	OutcomeMoved OutcomeStatus = iota
	OutcomeKept
	OutcomeSkippedDuplicate
	OutcomeDuplicateDeleted
	OutcomeSkipped
	OutcomeSkippedError
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeMoved:
		return "moved"
	case OutcomeKept:
		return "kept"
	case OutcomeSkippedDuplicate:
		return "skipped_duplicate"
	case OutcomeDuplicateDeleted:
		return "duplicate_deleted"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSkippedError:
		return "skipped_error"
	default:
		return "unknown"
	}
}

// Outcome is the executor's verdict for one plan. Failures travel as values
// so a single file can never unwind the executor loop.
type Outcome struct {
	Status OutcomeStatus
	Reason string
}

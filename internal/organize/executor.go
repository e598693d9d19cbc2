package organize

import (
	"fmt"
	"os"
	"path/filepath"

	"reclaim/internal/fileutil"
)

// Executor applies one plan at a time. Per-file failures become SKIP_ERROR
// outcomes; they never escape as errors.
type Executor struct {
	// DryRun suppresses every filesystem mutation while reporting the
	// outcome a real run would produce.
	DryRun bool
	// DeleteDuplicates removes SKIP_DUPLICATE sources (the dedicated
	// dedupe flow and junk --remove-dupes).
	DeleteDuplicates bool
}

// Execute applies the plan and returns its outcome.
func (e *Executor) Execute(p *MovePlan) Outcome {
	switch p.Action {
	case ActionMove:
		return e.executeMove(p)
	case ActionKeep:
		return Outcome{Status: OutcomeKept}
	case ActionSkipDuplicate:
		return e.executeDuplicate(p)
	case ActionSkip:
		return Outcome{Status: OutcomeSkipped, Reason: p.Reason}
	case ActionSkipError:
		return Outcome{Status: OutcomeSkippedError, Reason: p.Reason}
	default:
		return Outcome{Status: OutcomeSkippedError, Reason: fmt.Sprintf("unknown action %d", p.Action)}
	}
}

func (e *Executor) executeMove(p *MovePlan) Outcome {
	if e.DryRun {
		return Outcome{Status: OutcomeMoved}
	}

	if err := os.MkdirAll(filepath.Dir(p.ResolvedTarget), 0o755); err != nil {
		wrapped := Wrap(ErrUnwritableTarget, "executing", "create target directory", "", err)
		return Outcome{Status: OutcomeSkippedError, Reason: wrapped.Error()}
	}
	if err := fileutil.MoveFile(p.Source.Path, p.ResolvedTarget); err != nil {
		wrapped := Wrap(ErrMoveFailed, "executing", "move file", "", err)
		return Outcome{Status: OutcomeSkippedError, Reason: wrapped.Error()}
	}
	return Outcome{Status: OutcomeMoved}
}

func (e *Executor) executeDuplicate(p *MovePlan) Outcome {
	if !e.DeleteDuplicates {
		return Outcome{Status: OutcomeSkippedDuplicate, Reason: p.Reason}
	}
	if e.DryRun {
		return Outcome{Status: OutcomeDuplicateDeleted, Reason: p.Reason}
	}
	if err := os.Remove(p.Source.Path); err != nil {
		wrapped := Wrap(ErrMoveFailed, "executing", "delete duplicate", "", err)
		return Outcome{Status: OutcomeSkippedError, Reason: wrapped.Error()}
	}
	return Outcome{Status: OutcomeDuplicateDeleted, Reason: p.Reason}
}

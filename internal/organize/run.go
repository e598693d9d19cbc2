package organize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"reclaim/internal/fileutil"
	"reclaim/internal/fingerprint"
	"reclaim/internal/logging"
	"reclaim/internal/metadata"
	"reclaim/internal/plan"
	"reclaim/internal/scan"
)

// State tracks run progress. Transitions only move forward.
type State int

const (
	StateDiscovering State = iota
	StatePlanning
	StateExecuting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateDiscovering:
		return "discovering"
	case StatePlanning:
		return "planning"
	case StateExecuting:
		return "executing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options configures a single run.
type Options struct {
	SourceRoot string
	// TargetRoot is where resolved targets live. Empty means the run is
	// in-place only (the dedupe flow) and every plan must keep or delete.
	TargetRoot string

	DryRun bool
	// DetectDuplicates hashes candidates and marks every byte-identical
	// copy after the first (in traversal order) as a duplicate.
	DetectDuplicates bool
	// DeleteDuplicates removes duplicate sources instead of leaving them.
	DeleteDuplicates bool
	IncludeHidden    bool
	// CheckSpace refuses to execute when the target filesystem lacks room
	// for the planned moves.
	CheckSpace bool

	MaxComponentLength int
	Placeholder        string

	Classifier Classifier
	Extractor  metadata.Extractor
	// Cache is the optional persistent fingerprint cache; nil hashes
	// directly.
	Cache *fingerprint.Cache

	Logger   *slog.Logger
	Observer Observer
}

// Run drives discovery, planning, and execution for one organization pass.
type Run struct {
	id       string
	opts     Options
	state    State
	planner  *plan.Planner
	executor Executor
	logger   *slog.Logger
	observer Observer

	// claimed holds every resolved target in this run so later plans and
	// dry runs see the same collision picture as a real run.
	claimed map[string]struct{}
	// dupIndex maps content digest to the canonical file's destination
	// (or its source path for in-place keeps). First writer wins; entries
	// are never replaced.
	dupIndex map[string]string

	stats RunStatistics
}

// NewRun validates options and prepares a run.
func NewRun(opts Options) (*Run, error) {
	if opts.Classifier == nil {
		return nil, errors.New("organize: classifier is required")
	}
	if opts.SourceRoot == "" {
		return nil, errors.New("organize: source root is required")
	}
	if opts.Extractor == nil {
		opts.Extractor = metadata.None
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.MaxComponentLength <= 0 {
		opts.MaxComponentLength = 200
	}
	if opts.Placeholder == "" {
		opts.Placeholder = "Unknown"
	}

	id := uuid.NewString()
	return &Run{
		id:      id,
		opts:    opts,
		state:   StateDiscovering,
		planner: plan.New(opts.MaxComponentLength, opts.Placeholder, nil),
		executor: Executor{
			DryRun:           opts.DryRun,
			DeleteDuplicates: opts.DeleteDuplicates,
		},
		logger: opts.Logger.With(
			logging.String("run_id", id),
			logging.String("flow", opts.Classifier.Name()),
		),
		observer: opts.Observer,
		claimed:  make(map[string]struct{}),
		dupIndex: make(map[string]string),
	}, nil
}

// ID returns the run identifier attached to every log record.
func (r *Run) ID() string { return r.id }

// State returns the current pipeline state.
func (r *Run) State() State { return r.state }

// Execute drives the run to completion and returns the statistics snapshot.
// The snapshot is also valid after a run-fatal error, covering whatever
// completed before the abort.
func (r *Run) Execute(ctx context.Context) (RunStatistics, error) {
	start := time.Now()

	records, err := r.discover()
	if err != nil {
		r.state = StateDone
		return r.stats, err
	}

	r.state = StatePlanning
	plans := make([]*MovePlan, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			r.state = StateDone
			return r.stats, err
		}
		mp := r.planRecord(ctx, rec)
		r.observer.PlanCreated(mp)
		plans = append(plans, mp)
	}

	if err := r.checkSpace(plans); err != nil {
		r.state = StateDone
		return r.stats, err
	}

	r.state = StateExecuting
	for _, mp := range plans {
		if err := ctx.Err(); err != nil {
			r.state = StateDone
			return r.stats, err
		}
		outcome := r.executor.Execute(mp)
		r.stats.apply(mp, outcome)
		r.observer.PlanExecuted(mp, outcome)
	}

	r.state = StateDone
	r.observer.RunCompleted(r.stats)
	r.logger.Info("run finished",
		logging.Duration("elapsed", time.Since(start)),
		logging.Int("processed", r.stats.Processed),
	)
	return r.stats, nil
}

func (r *Run) discover() ([]*scan.FileRecord, error) {
	records, problems, err := scan.Walk(r.opts.SourceRoot, scan.Options{
		IncludeHidden: r.opts.IncludeHidden,
		Include:       r.opts.Classifier.Includes,
	})
	if err != nil {
		return nil, Wrap(ErrRunRoot, "discovering", "walk source root", "", err)
	}
	for _, problem := range problems {
		r.stats.recordError(problem.Path, problem.Err.Error())
	}
	r.stats.Discovered = len(records)
	r.logger.Info("discovery complete",
		logging.Int("discovered", len(records)),
		logging.Int("unreadable_entries", len(problems)),
		logging.Bool("dry_run", r.opts.DryRun),
	)

	if r.opts.TargetRoot != "" && !r.opts.DryRun {
		if err := os.MkdirAll(r.opts.TargetRoot, 0o755); err != nil {
			return nil, Wrap(ErrRunRoot, "discovering", "create target root", "", err)
		}
	}
	return records, nil
}

// planRecord applies deduplication and classification policy to one record.
// Decisions happen strictly in traversal order; the duplicate index and the
// claimed set are only touched here.
func (r *Run) planRecord(ctx context.Context, rec *scan.FileRecord) *MovePlan {
	mp := &MovePlan{Source: rec}

	md, err := r.opts.Extractor.Extract(ctx, rec.Path)
	if err != nil {
		mp.Action = ActionSkipError
		mp.Reason = Wrap(ErrUnreadableFile, "planning", "extract metadata", "", err).Error()
		return mp
	}

	if r.opts.DetectDuplicates {
		digest, ok := rec.Digest()
		if !ok {
			digest, err = r.opts.Cache.ComputeCached(rec.Path)
			if err != nil {
				mp.Action = ActionSkipError
				mp.Reason = Wrap(ErrUnreadableFile, "planning", "fingerprint", "", err).Error()
				return mp
			}
			rec.SetDigest(digest)
		}
		if canonical, seen := r.dupIndex[digest]; seen {
			mp.Action = ActionSkipDuplicate
			mp.Reason = fmt.Sprintf("duplicate of %s", canonical)
			return mp
		}
	}

	components, skipReason := r.opts.Classifier.IntendedTarget(rec, md)
	if len(components) == 0 {
		if skipReason != "" {
			mp.Action = ActionSkip
			mp.Reason = skipReason
			return mp
		}
		mp.Action = ActionKeep
		r.registerCanonical(rec, rec.Path)
		return mp
	}

	mp.IntendedTarget = components
	resolved, err := r.planner.Resolve(r.opts.TargetRoot, components, r.claimed)
	if err != nil {
		mp.Action = ActionSkipError
		mp.Reason = Wrap(ErrUnwritableTarget, "planning", "resolve target", "", err).Error()
		return mp
	}
	mp.ResolvedTarget = resolved
	mp.Action = ActionMove
	r.claimed[resolved] = struct{}{}
	r.registerCanonical(rec, resolved)
	return mp
}

func (r *Run) registerCanonical(rec *scan.FileRecord, canonicalPath string) {
	if !r.opts.DetectDuplicates {
		return
	}
	digest, ok := rec.Digest()
	if !ok {
		return
	}
	if _, exists := r.dupIndex[digest]; !exists {
		r.dupIndex[digest] = canonicalPath
	}
}

func (r *Run) checkSpace(plans []*MovePlan) error {
	if !r.opts.CheckSpace || r.opts.DryRun || r.opts.TargetRoot == "" {
		return nil
	}

	var required int64
	for _, mp := range plans {
		if mp.Action == ActionMove {
			required += mp.Source.Size
		}
	}
	if required == 0 {
		return nil
	}

	free, err := freeBytes(r.opts.TargetRoot)
	if err != nil {
		r.logger.Warn("free space check unavailable", logging.Error(err))
		return nil
	}
	if free < 0 {
		return nil
	}
	if free < required {
		message := fmt.Sprintf("need %s, have %s", fileutil.FormatBytes(required), fileutil.FormatBytes(free))
		return Wrap(ErrRunRoot, "planning", "free space check", message, nil)
	}
	r.logger.Debug("free space check passed",
		logging.String("required", fileutil.FormatBytes(required)),
		logging.String("available", fileutil.FormatBytes(free)),
	)
	return nil
}

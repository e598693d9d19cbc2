package organize

import (
	"log/slog"

	"reclaim/internal/logging"
)

// Observer receives engine events at well-defined points. It replaces any
// process-wide implicit logger: callers decide what plan creation, plan
// execution, and run completion mean to them.
type Observer interface {
	PlanCreated(p *MovePlan)
	PlanExecuted(p *MovePlan, outcome Outcome)
	RunCompleted(stats RunStatistics)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) PlanCreated(*MovePlan)           {}
func (NopObserver) PlanExecuted(*MovePlan, Outcome) {}
func (NopObserver) RunCompleted(RunStatistics)      {}

// LogObserver narrates engine events through a structured logger.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) PlanCreated(p *MovePlan) {
	if p.Action != ActionMove {
		return
	}
	o.Logger.Debug("planned move",
		logging.String("src", p.Source.Path),
		logging.String("dst", p.ResolvedTarget),
	)
}

func (o LogObserver) PlanExecuted(p *MovePlan, outcome Outcome) {
	switch outcome.Status {
	case OutcomeMoved:
		o.Logger.Info("moved",
			logging.String("src", p.Source.Path),
			logging.String("dst", p.ResolvedTarget),
		)
	case OutcomeKept:
		o.Logger.Debug("kept in place", logging.String("path", p.Source.Path))
	case OutcomeSkippedDuplicate:
		o.Logger.Info("skipped duplicate",
			logging.String("path", p.Source.Path),
			logging.String("reason", outcome.Reason),
		)
	case OutcomeDuplicateDeleted:
		o.Logger.Info("deleted duplicate",
			logging.String("path", p.Source.Path),
			logging.String("reason", outcome.Reason),
		)
	case OutcomeSkipped:
		o.Logger.Info("skipped",
			logging.String("path", p.Source.Path),
			logging.String("reason", outcome.Reason),
		)
	case OutcomeSkippedError:
		o.Logger.Warn("file failed",
			logging.String("path", p.Source.Path),
			logging.String("reason", outcome.Reason),
		)
	}
}

func (o LogObserver) RunCompleted(stats RunStatistics) {
	o.Logger.Info("run completed", logging.Args(
		logging.Int("discovered", stats.Discovered),
		logging.Int("processed", stats.Processed),
		logging.Int("moved", stats.Moved),
		logging.Int("kept", stats.Kept),
		logging.Int("skipped_duplicate", stats.SkippedDuplicate),
		logging.Int("skipped", stats.Skipped),
		logging.Int("errors", stats.SkippedError),
		logging.Int64("bytes_moved", stats.BytesMoved),
		logging.Int64("bytes_reclaimed", stats.BytesReclaimed),
	)...)
}

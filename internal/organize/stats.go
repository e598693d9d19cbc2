package organize

// RunError is one recorded per-file failure.
type RunError struct {
	Path   string
	Reason string
}

// RunStatistics accumulates monotonically increasing counters for a single
// run. The engine owns the struct; callers receive a snapshot at run end.
type RunStatistics struct {
	Discovered        int
	Processed         int
	Moved             int
	Kept              int
	SkippedDuplicate  int
	Skipped           int
	SkippedError      int
	DuplicatesDeleted int

	BytesMoved     int64
	BytesReclaimed int64

	Errors []RunError
}

func (s *RunStatistics) recordError(path, reason string) {
	s.Errors = append(s.Errors, RunError{Path: path, Reason: reason})
}

// apply folds one execution outcome into the counters. Exactly one primary
// counter moves per executed plan.
func (s *RunStatistics) apply(p *MovePlan, outcome Outcome) {
	s.Processed++
	switch outcome.Status {
	case OutcomeMoved:
		s.Moved++
		s.BytesMoved += p.Source.Size
	case OutcomeKept:
		s.Kept++
	case OutcomeSkippedDuplicate:
		s.SkippedDuplicate++
	case OutcomeDuplicateDeleted:
		s.SkippedDuplicate++
		s.DuplicatesDeleted++
		s.BytesReclaimed += p.Source.Size
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeSkippedError:
		s.SkippedError++
		s.recordError(p.Source.Path, outcome.Reason)
	}
}

package organize

import (
	"errors"
	"fmt"
	"strings"
)

// Error markers classify failures for counting and propagation. Per-file
// markers are converted to SKIP_ERROR outcomes at the execution boundary;
// ErrRunRoot is the only marker that aborts a run.
var (
	ErrUnreadableFile   = errors.New("unreadable file")
	ErrUnwritableTarget = errors.New("unwritable target")
	ErrMoveFailed       = errors.New("move failed")
	ErrRunRoot          = errors.New("run root unusable")
)

// Wrap builds an error message that includes run context while tagging it
// with the provided marker for later classification.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrMoveFailed
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsRunFatal reports whether err must abort the whole run rather than a
// single file.
func IsRunFatal(err error) bool {
	return errors.Is(err, ErrRunRoot)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "run failure"
	}
	return strings.Join(parts, ": ")
}

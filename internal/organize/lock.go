package organize

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".reclaim.lock"

// AcquireRunLock takes the per-target-root lock so two runs cannot claim
// destinations in the same tree concurrently. The caller unlocks when the
// run finishes. Dry runs do not need the lock.
func AcquireRunLock(targetRoot string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(targetRoot, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("target root %q is locked by another reclaim run", targetRoot)
	}
	return lock, nil
}

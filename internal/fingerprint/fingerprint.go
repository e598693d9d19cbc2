package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// chunkSize keeps memory flat while hashing multi-gigabyte recovered files.
const chunkSize = 64 * 1024

// Compute streams the file at path through SHA-256 and returns the hex
// digest. Identical bytes always produce identical digests; a failed open or
// a read error mid-stream surfaces as an error and the partial state is
// discarded.
func Compute(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(hasher, file, buf); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

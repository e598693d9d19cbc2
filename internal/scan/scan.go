// Package scan discovers source files in a stable order.
//
// Discovery is a recursive lexicographic walk, which is the ordering every
// downstream decision (duplicate tie-breaks, collision suffixes) is defined
// against. Two runs over the same tree always see the same sequence.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileRecord is one discovered source file. Records are immutable after
// discovery except for the lazily cached content digest.
type FileRecord struct {
	Path    string // absolute
	Size    int64
	ModTime time.Time

	digest string
}

// Digest returns the cached content digest, if one has been computed.
func (r *FileRecord) Digest() (string, bool) {
	return r.digest, r.digest != ""
}

// SetDigest caches the content digest for later reuse.
func (r *FileRecord) SetDigest(digest string) {
	r.digest = digest
}

// Problem records a path that could not be visited during the walk. These
// are per-entry failures; they never abort discovery.
type Problem struct {
	Path string
	Err  error
}

// Options controls discovery behavior.
type Options struct {
	// IncludeHidden visits dotfiles and descends into dot-directories.
	IncludeHidden bool
	// Include filters discovered files; nil includes everything.
	Include func(path string) bool
}

// Walk discovers every regular file under root in lexicographic order. A
// root that cannot be read at all is an error; failures deeper in the tree
// are reported as problems and skipped.
func Walk(root string, opts Options) ([]*FileRecord, []Problem, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve source root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("source root: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("source root %q is not a directory", absRoot)
	}

	var (
		records  []*FileRecord
		problems []Problem
	)
	walkErr := filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			problems = append(problems, Problem{Path: path, Err: err})
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		hidden := path != absRoot && strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			if hidden && !opts.IncludeHidden {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if hidden && !opts.IncludeHidden {
			return nil
		}
		if opts.Include != nil && !opts.Include(path) {
			return nil
		}

		fileInfo, err := entry.Info()
		if err != nil {
			problems = append(problems, Problem{Path: path, Err: err})
			return nil
		}
		records = append(records, &FileRecord{Path: path, Size: fileInfo.Size(), ModTime: fileInfo.ModTime()})
		return nil
	})
	if walkErr != nil {
		return nil, problems, fmt.Errorf("walk source root: %w", walkErr)
	}
	return records, problems, nil
}

// ExtensionSet builds a case-insensitive include predicate from extensions
// given with or without leading dots.
func ExtensionSet(extensions []string) func(string) bool {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		set["."+ext] = struct{}{}
	}
	return func(path string) bool {
		_, ok := set[strings.ToLower(filepath.Ext(path))]
		return ok
	}
}

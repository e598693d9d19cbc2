// Package split packs a flat directory of files into size-capped batch
// subdirectories, and can reverse the operation by flattening batches back
// into one directory.
package split

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"reclaim/internal/fileutil"
	"reclaim/internal/logging"
)

// Item is one file queued for batching.
type Item struct {
	Path string
	Size int64
}

// Batch is one size-capped group of files destined for a batch_NNN directory.
type Batch struct {
	Items []Item
	Bytes int64
}

// FileError records a per-file move failure. Failures never abort a split.
type FileError struct {
	Path   string
	Reason string
}

// Result summarizes an applied split or flatten.
type Result struct {
	Batches    int
	FilesMoved int
	BytesMoved int64
	Errors     []FileError
}

// Splitter packs files greedily, largest first. A file bigger than MaxBytes
// gets a batch of its own.
type Splitter struct {
	MaxBytes int64
	DryRun   bool
	Logger   *slog.Logger
}

// New returns a splitter with the given per-batch byte cap.
func New(maxBytes int64, dryRun bool, logger *slog.Logger) (*Splitter, error) {
	if maxBytes <= 0 {
		return nil, errors.New("split: max batch size must be positive")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Splitter{MaxBytes: maxBytes, DryRun: dryRun, Logger: logger}, nil
}

// Plan lists the immediate files of sourceDir and packs them into batches.
// Subdirectories are ignored; split operates on flat dumps only.
func (s *Splitter) Plan(sourceDir string) ([]Batch, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			s.Logger.Warn("skipping unreadable entry",
				logging.String("path", filepath.Join(sourceDir, entry.Name())),
				logging.Error(err),
			)
			continue
		}
		items = append(items, Item{Path: filepath.Join(sourceDir, entry.Name()), Size: info.Size()})
	}

	// Largest first packs tighter; the name tiebreak keeps plans
	// deterministic across runs.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Size != items[j].Size {
			return items[i].Size > items[j].Size
		}
		return items[i].Path < items[j].Path
	})

	var batches []Batch
	var current Batch
	for _, item := range items {
		if item.Size > s.MaxBytes {
			s.Logger.Warn("file exceeds batch cap, placing it alone",
				logging.String("path", item.Path),
				logging.String("size", fileutil.FormatBytes(item.Size)),
				logging.String("cap", fileutil.FormatBytes(s.MaxBytes)),
			)
			if len(current.Items) > 0 {
				batches = append(batches, current)
				current = Batch{}
			}
			batches = append(batches, Batch{Items: []Item{item}, Bytes: item.Size})
			continue
		}
		if current.Bytes+item.Size > s.MaxBytes {
			if len(current.Items) > 0 {
				batches = append(batches, current)
			}
			current = Batch{Items: []Item{item}, Bytes: item.Size}
			continue
		}
		current.Items = append(current.Items, item)
		current.Bytes += item.Size
	}
	if len(current.Items) > 0 {
		batches = append(batches, current)
	}
	return batches, nil
}

// Apply moves each batch into outputDir/batch_NNN. Per-file failures are
// collected in the result.
func (s *Splitter) Apply(batches []Batch, outputDir string) (Result, error) {
	result := Result{Batches: len(batches)}
	if len(batches) == 0 {
		return result, nil
	}
	if !s.DryRun {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return result, fmt.Errorf("create output directory: %w", err)
		}
	}

	for i, batch := range batches {
		batchDir := filepath.Join(outputDir, fmt.Sprintf("batch_%03d", i+1))
		if !s.DryRun {
			if err := os.MkdirAll(batchDir, 0o755); err != nil {
				return result, fmt.Errorf("create batch directory: %w", err)
			}
		}
		s.Logger.Info("processing batch",
			logging.Int("batch", i+1),
			logging.Int("batches", len(batches)),
			logging.Int("files", len(batch.Items)),
			logging.String("size", fileutil.FormatBytes(batch.Bytes)),
		)

		claimed := make(map[string]struct{}, len(batch.Items))
		for _, item := range batch.Items {
			destination := resolveCollision(batchDir, filepath.Base(item.Path), claimed)
			claimed[destination] = struct{}{}
			if s.DryRun {
				result.FilesMoved++
				result.BytesMoved += item.Size
				continue
			}
			if err := fileutil.MoveFile(item.Path, destination); err != nil {
				s.Logger.Error("move failed", logging.String("path", item.Path), logging.Error(err))
				result.Errors = append(result.Errors, FileError{Path: item.Path, Reason: err.Error()})
				continue
			}
			result.FilesMoved++
			result.BytesMoved += item.Size
		}
	}
	return result, nil
}

// Split plans and applies in one call.
func (s *Splitter) Split(sourceDir, outputDir string) (Result, error) {
	batches, err := s.Plan(sourceDir)
	if err != nil {
		return Result{}, err
	}
	if len(batches) == 0 {
		s.Logger.Warn("no files found in source directory")
	}
	return s.Apply(batches, outputDir)
}

// Flatten is the reverse operation: every file one level below sourceDir is
// moved into outputDir, with the same collision suffixing as Apply.
func (s *Splitter) Flatten(sourceDir, outputDir string) (Result, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return Result{}, fmt.Errorf("read source directory: %w", err)
	}
	if !s.DryRun {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create output directory: %w", err)
		}
	}

	var result Result
	claimed := make(map[string]struct{})
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		subdir := filepath.Join(sourceDir, entry.Name())
		files, err := os.ReadDir(subdir)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: subdir, Reason: err.Error()})
			continue
		}
		for _, file := range files {
			if !file.Type().IsRegular() {
				continue
			}
			source := filepath.Join(subdir, file.Name())
			destination := resolveCollision(outputDir, file.Name(), claimed)
			claimed[destination] = struct{}{}
			if s.DryRun {
				result.FilesMoved++
				continue
			}
			if err := fileutil.MoveFile(source, destination); err != nil {
				s.Logger.Error("move failed", logging.String("path", source), logging.Error(err))
				result.Errors = append(result.Errors, FileError{Path: source, Reason: err.Error()})
				continue
			}
			result.FilesMoved++
		}
	}
	return result, nil
}

// resolveCollision appends _001, _002, … before the extension until the name
// is free of both the filesystem and the paths already claimed this run.
func resolveCollision(dir, name string, claimed map[string]struct{}) string {
	candidate := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; taken(candidate, claimed); counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%03d%s", stem, counter, ext))
	}
	return candidate
}

func taken(path string, claimed map[string]struct{}) bool {
	if _, ok := claimed[path]; ok {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}

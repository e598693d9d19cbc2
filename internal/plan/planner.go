package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// StatFunc is the existence oracle the planner consults. Injecting it keeps
// Resolve deterministic and testable; production callers use os.Stat.
type StatFunc func(string) (fs.FileInfo, error)

// Planner resolves intended destinations into unique, filesystem-safe paths.
// The zero value is not usable; construct with New.
type Planner struct {
	maxComponentLength int
	placeholder        string
	stat               StatFunc
}

// New returns a planner with the given sanitization bounds. A nil stat
// function defaults to os.Stat.
func New(maxComponentLength int, placeholder string, stat StatFunc) *Planner {
	if stat == nil {
		stat = os.Stat
	}
	if strings.TrimSpace(placeholder) == "" {
		placeholder = "Unknown"
	}
	return &Planner{
		maxComponentLength: maxComponentLength,
		placeholder:        placeholder,
		stat:               stat,
	}
}

// Resolve sanitizes the intended components (parent directories first, final
// filename last), joins them under targetRoot, and resolves collisions by
// appending _1, _2, ... before the extension until the path is free of both
// the filesystem and the claimed set. The claimed set belongs to the caller;
// Resolve never mutates it.
func (p *Planner) Resolve(targetRoot string, components []string, claimed map[string]struct{}) (string, error) {
	if len(components) == 0 {
		return "", errors.New("resolve: no path components")
	}

	sanitized := make([]string, len(components))
	for i, component := range components {
		keepExt := i == len(components)-1
		sanitized[i] = SanitizeComponent(component, p.maxComponentLength, p.placeholder, keepExt)
	}

	candidate := filepath.Join(append([]string{targetRoot}, sanitized...)...)

	dir := filepath.Dir(candidate)
	filename := filepath.Base(candidate)
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	final := candidate
	for counter := 1; ; counter++ {
		taken, err := p.taken(final, claimed)
		if err != nil {
			return "", err
		}
		if !taken {
			return final, nil
		}
		final = filepath.Join(dir, suffixedName(stem, fmt.Sprintf("_%d", counter), ext, p.maxComponentLength))
	}
}

// suffixedName inserts suffix between stem and ext, shortening the stem when
// the suffixed filename would exceed maxLen runes. A component already at the
// bound therefore stays within it after collision suffixing.
func suffixedName(stem, suffix, ext string, maxLen int) string {
	name := stem + suffix + ext
	if maxLen <= 0 {
		return name
	}
	over := len([]rune(name)) - maxLen
	if over <= 0 {
		return name
	}
	stemRunes := []rune(stem)
	if over >= len(stemRunes) {
		return suffix + ext
	}
	return string(stemRunes[:len(stemRunes)-over]) + suffix + ext
}

func (p *Planner) taken(path string, claimed map[string]struct{}) (bool, error) {
	if _, ok := claimed[path]; ok {
		return true, nil
	}
	_, err := p.stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat candidate path %q: %w", path, err)
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Log contains logging configuration.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
}

// Organize contains shared knobs for the organizing engine.
type Organize struct {
	Placeholder        string `toml:"placeholder"`
	MaxComponentLength int    `toml:"max_component_length"`
	CheckSpace         bool   `toml:"check_space"`
	IncludeHidden      bool   `toml:"include_hidden"`
}

// Cache contains configuration for the persistent fingerprint cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Tools contains external tool locations.
type Tools struct {
	FFprobe string `toml:"ffprobe"`
}

// Split contains defaults for the directory splitter.
type Split struct {
	MaxBytes int64 `toml:"max_bytes"`
}

// Config is the root configuration document.
type Config struct {
	Log      Log      `toml:"log"`
	Organize Organize `toml:"organize"`
	Cache    Cache    `toml:"cache"`
	Tools    Tools    `toml:"tools"`
	Split    Split    `toml:"split"`
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return is
// the resolved path, the third reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/reclaim/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("reclaim.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories reclaim writes to on its own
// behalf (logs, fingerprint cache). Source and target roots belong to the
// individual run and are handled there.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Log.Dir) != "" {
		if err := os.MkdirAll(c.Log.Dir, 0o755); err != nil {
			return fmt.Errorf("create log directory %q: %w", c.Log.Dir, err)
		}
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Path) != "" {
		if err := os.MkdirAll(filepath.Dir(c.Cache.Path), 0o755); err != nil {
			return fmt.Errorf("create cache directory %q: %w", filepath.Dir(c.Cache.Path), err)
		}
	}
	return nil
}

// FFprobeBinary returns the ffprobe executable used for video metadata.
func (c *Config) FFprobeBinary() string {
	if strings.TrimSpace(c.Tools.FFprobe) != "" {
		return c.Tools.FFprobe
	}
	return "ffprobe"
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the preferred configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/reclaim/config.toml")
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

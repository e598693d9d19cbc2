package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"reclaim/internal/config"
	"reclaim/internal/fingerprint"
	"reclaim/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// newLogger builds the command logger from configuration; --verbose forces
// debug level regardless of the configured one.
func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if c.verbose() {
		level = "debug"
	}
	outputs := []string{"stderr"}
	if strings.TrimSpace(cfg.Log.Dir) != "" {
		outputs = append(outputs, filepath.Join(cfg.Log.Dir, "reclaim.log"))
	}
	return logging.New(logging.Options{
		Level:       level,
		Format:      cfg.Log.Format,
		OutputPaths: outputs,
	})
}

// openCache opens the persistent fingerprint cache when enabled. A nil cache
// is valid; hashing then happens without persistence.
func (c *commandContext) openCache(logger *slog.Logger) *fingerprint.Cache {
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.Cache.Enabled {
		return nil
	}
	cache, err := fingerprint.OpenCache(cfg.Cache.Path)
	if err != nil {
		logger.Warn("fingerprint cache unavailable, hashing without it",
			logging.String("path", cfg.Cache.Path),
			logging.Error(err),
		)
		return nil
	}
	return cache
}

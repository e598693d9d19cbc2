package config

import (
	"fmt"
	"strings"
)

var validLogFormats = map[string]struct{}{
	"auto":    {},
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if _, ok := validLogFormats[strings.ToLower(c.Log.Format)]; !ok {
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	if _, ok := validLogLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}
	if c.Organize.MaxComponentLength < 16 {
		return fmt.Errorf("organize.max_component_length: %d is too small to hold filenames", c.Organize.MaxComponentLength)
	}
	if strings.ContainsAny(c.Organize.Placeholder, `<>:"/\|?*`) {
		return fmt.Errorf("organize.placeholder: %q contains reserved characters", c.Organize.Placeholder)
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Path) == "" {
		return fmt.Errorf("cache.path: required when cache.enabled is true")
	}
	return nil
}

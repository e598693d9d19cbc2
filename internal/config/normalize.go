package config

import "strings"

// normalize expands path fields and fills blank values with defaults so the
// rest of the program never re-checks for empties.
func (c *Config) normalize() error {
	defaults := Default()

	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = defaults.Log.Level
	}
	if strings.TrimSpace(c.Log.Format) == "" {
		c.Log.Format = defaults.Log.Format
	}
	if strings.TrimSpace(c.Organize.Placeholder) == "" {
		c.Organize.Placeholder = defaults.Organize.Placeholder
	}
	if c.Organize.MaxComponentLength <= 0 {
		c.Organize.MaxComponentLength = defaults.Organize.MaxComponentLength
	}
	if c.Split.MaxBytes <= 0 {
		c.Split.MaxBytes = defaults.Split.MaxBytes
	}
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaults.Cache.Path
	}

	for _, field := range []*string{&c.Log.Dir, &c.Cache.Path} {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

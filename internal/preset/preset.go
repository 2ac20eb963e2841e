// Package preset reads and writes listing configurations as YAML files.
package preset

import (
	"fmt"
	"os"

	"github.com/inqluet/file-analyzer/internal/extfilter"
	"github.com/inqluet/file-analyzer/internal/types"
	"gopkg.in/yaml.v3"
)

// Load reads the preset at path on top of base. Keys missing from the file
// keep their value from base.
func Load(path string, base types.Configuration) (types.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read preset: %w", err)
	}
	return Parse(data, base)
}

// Parse decodes preset YAML on top of base.
func Parse(data []byte, base types.Configuration) (types.Configuration, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse preset: %w", err)
	}

	cfg.Whitelist = normalize(cfg.Whitelist)
	cfg.Blacklist = normalize(cfg.Blacklist)
	if cfg.LimitCount < 0 {
		return base, fmt.Errorf("invalid preset: limit must not be negative, got %d", cfg.LimitCount)
	}

	return cfg, nil
}

// normalize lowercases extensions, accepting either a YAML list or a single
// comma-separated string item.
func normalize(exts []string) []string {
	var out []string
	for _, ext := range exts {
		out = append(out, extfilter.ParseList(ext)...)
	}
	return out
}

// Save writes cfg to path as YAML.
func Save(path string, cfg types.Configuration) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}
